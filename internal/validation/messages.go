package validation

var messages = map[string]map[string]string{
	FieldImage: {
		"required": "URL da imagem é obrigatória.",
		"url":      "URL da imagem inválida.",
	},
	FieldCNPJ: {
		"required": "CNPJ é obrigatório.",
		"len":      "CNPJ deve ter 14 caracteres.",
		"digits":   "CNPJ deve conter apenas números.",
	},
	FieldName: {
		"required": "Nome é obrigatório.",
		"max":      "Nome deve ter no máximo 100 caracteres.",
	},
	FieldFantasyName: {
		"required": "Nome fantasia é obrigatório.",
		"max":      "Nome fantasia deve ter no máximo 100 caracteres.",
	},
	FieldCEP: {
		"required": "CEP é obrigatório.",
		"len":      "CEP deve ter 8 caracteres.",
		"digits":   "CEP deve conter apenas números.",
	},
	FieldLogradouro: {
		"required": "Logradouro é obrigatório.",
		"max":      "Logradouro deve ter no máximo 100 caracteres.",
	},
	FieldBairro: {
		"required": "Bairro é obrigatório.",
		"max":      "Bairro deve ter no máximo 100 caracteres.",
	},
	FieldCity: {
		"required": "Cidade é obrigatória.",
		"max":      "Cidade deve ter no máximo 100 caracteres.",
	},
	FieldUF: {
		"required": "UF é obrigatório.",
		"len":      "UF deve ter 2 caracteres.",
		"uf":       "UF deve conter duas letras maiúsculas.",
	},
	FieldComplement: {
		"max": "Complemento deve ter no máximo 100 caracteres.",
	},
	FieldEmail: {
		"required": "Email é obrigatório.",
		"email":    "Email inválido.",
		"max":      "Email deve ter no máximo 100 caracteres.",
	},
	FieldPhone: {
		"required": "Telefone é obrigatório.",
		"phone":    "Telefone deve ter entre 10 a 15 dígitos.",
	},
}

func message(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return "Valor inválido."
}
