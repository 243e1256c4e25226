package validation

import (
	"strings"
	"testing"
)

func validInput() ClientInput {
	return ClientInput{
		Image:       "http://x/a.png",
		CNPJ:        "12345678000199",
		Name:        "Acme",
		FantasyName: "Acme Co",
		CEP:         "01310000",
		Logradouro:  "Av Paulista",
		Bairro:      "Bela Vista",
		City:        "São Paulo",
		UF:          "SP",
		Email:       "a@a.com",
		Phone:       "1199999999",
	}
}

func TestValidateClient_Valid(t *testing.T) {
	if errs := ValidateClient(validInput()); errs != nil {
		t.Fatalf("expected valid input, got %v", errs)
	}

	in := validInput()
	in.Complement = "Sala 12"
	if errs := ValidateClient(in); errs != nil {
		t.Fatalf("expected valid input with complement, got %v", errs)
	}
}

func TestValidateClient_MissingMandatoryField(t *testing.T) {
	for _, field := range Fields {
		if field == FieldComplement {
			continue
		}
		t.Run(field, func(t *testing.T) {
			values := validInput().Values()
			values[field] = ""

			errs := ValidateClient(FromValues(values))
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if _, ok := errs[field]; !ok {
				t.Fatalf("expected error for %q, got %v", field, errs)
			}
		})
	}
}

func TestValidateClient_FieldRules(t *testing.T) {
	long := strings.Repeat("a", 101)

	cases := []struct {
		name  string
		field string
		value string
		want  string // "" means valid
	}{
		{"cnpj short", FieldCNPJ, "123", "CNPJ deve ter 14 caracteres."},
		{"cnpj long", FieldCNPJ, "123456780001990", "CNPJ deve ter 14 caracteres."},
		{"cnpj letters", FieldCNPJ, "1234567800019a", "CNPJ deve conter apenas números."},
		{"cnpj punctuated", FieldCNPJ, "12.345.678/000", "CNPJ deve conter apenas números."},
		{"cnpj ok", FieldCNPJ, "00000000000000", ""},
		{"cep short", FieldCEP, "0131000", "CEP deve ter 8 caracteres."},
		{"cep dash", FieldCEP, "0131-000", "CEP deve conter apenas números."},
		{"cep ok", FieldCEP, "99999999", ""},
		{"uf lower", FieldUF, "sp", "UF deve conter duas letras maiúsculas."},
		{"uf three", FieldUF, "SPX", "UF deve ter 2 caracteres."},
		{"uf digits", FieldUF, "12", "UF deve conter duas letras maiúsculas."},
		{"uf ok", FieldUF, "RJ", ""},
		{"image not url", FieldImage, "not a url", "URL da imagem inválida."},
		{"email invalid", FieldEmail, "a@", "Email inválido."},
		{"email too long", FieldEmail, strings.Repeat("a", 95) + "@a.com", "Email deve ter no máximo 100 caracteres."},
		{"phone short", FieldPhone, "119999999", "Telefone deve ter entre 10 a 15 dígitos."},
		{"phone long", FieldPhone, "1234567890123456", "Telefone deve ter entre 10 a 15 dígitos."},
		{"phone symbols", FieldPhone, "(11)99999-9999", "Telefone deve ter entre 10 a 15 dígitos."},
		{"phone max", FieldPhone, "123456789012345", ""},
		{"name too long", FieldName, long, "Nome deve ter no máximo 100 caracteres."},
		{"name 100 runes", FieldName, strings.Repeat("ã", 100), ""},
		{"complement too long", FieldComplement, long, "Complemento deve ter no máximo 100 caracteres."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := validInput().Values()
			values[tc.field] = tc.value

			errs := ValidateClient(FromValues(values))
			got := errs[tc.field]
			if got != tc.want {
				t.Fatalf("field %s=%q: expected %q, got %q (all: %v)", tc.field, tc.value, tc.want, got, errs)
			}
			if tc.want == "" && errs != nil {
				t.Fatalf("expected no errors, got %v", errs)
			}

			if single := ValidateField(tc.field, tc.value); single != tc.want {
				t.Fatalf("ValidateField(%s, %q) = %q, want %q", tc.field, tc.value, single, tc.want)
			}
		})
	}
}

func TestValidateClient_OneMessagePerField(t *testing.T) {
	errs := ValidateClient(ClientInput{})
	for _, field := range Fields {
		if field == FieldComplement {
			if _, ok := errs[field]; ok {
				t.Fatalf("complement is optional, got %q", errs[field])
			}
			continue
		}
		if errs[field] == "" {
			t.Fatalf("expected message for %s, got %v", field, errs)
		}
	}
	if errs[FieldCNPJ] != "CNPJ é obrigatório." {
		t.Fatalf("expected required message first, got %q", errs[FieldCNPJ])
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		raw   string
		want  uint
		valid bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"007", 7, true},
		{"0", 0, false},
		{"", 0, false},
		{"-1", 0, false},
		{"1.5", 0, false},
		{"abc", 0, false},
		{" 1", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tc := range cases {
		id, errs := ParseID(tc.raw)
		if tc.valid {
			if errs != nil || id != tc.want {
				t.Fatalf("ParseID(%q) = %d, %v; want %d", tc.raw, id, errs, tc.want)
			}
			continue
		}
		if errs == nil || errs[FieldID] == "" {
			t.Fatalf("ParseID(%q): expected id error, got %d", tc.raw, id)
		}
	}
}

func TestErrors_ErrorIsSorted(t *testing.T) {
	e := Errors{"uf": "b", "cep": "a"}
	if got := e.Error(); got != "cep: a; uf: b" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}
