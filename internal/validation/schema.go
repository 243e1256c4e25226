package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ClientInput is the caller-supplied shape of a client record. The same
// tags are enforced by the API on every create/update and by the form
// state before it submits, so there is exactly one schema.
type ClientInput struct {
	Image       string `json:"image" validate:"required,url"`
	CNPJ        string `json:"cnpj" validate:"required,len=14,digits"`
	Name        string `json:"name" validate:"required,max=100"`
	FantasyName string `json:"fantasyname" validate:"required,max=100"`
	CEP         string `json:"cep" validate:"required,len=8,digits"`
	Logradouro  string `json:"logradouro" validate:"required,max=100"`
	Bairro      string `json:"bairro" validate:"required,max=100"`
	City        string `json:"city" validate:"required,max=100"`
	UF          string `json:"uf" validate:"required,len=2,uf"`
	Complement  string `json:"complement" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"required,max=100,email"`
	Phone       string `json:"phone" validate:"required,phone"`
}

// Field names, in form order.
const (
	FieldImage       = "image"
	FieldCNPJ        = "cnpj"
	FieldName        = "name"
	FieldFantasyName = "fantasyname"
	FieldCEP         = "cep"
	FieldLogradouro  = "logradouro"
	FieldBairro      = "bairro"
	FieldCity        = "city"
	FieldUF          = "uf"
	FieldComplement  = "complement"
	FieldEmail       = "email"
	FieldPhone       = "phone"
)

var Fields = []string{
	FieldImage, FieldCNPJ, FieldName, FieldFantasyName, FieldCEP, FieldLogradouro,
	FieldBairro, FieldCity, FieldUF, FieldComplement, FieldEmail, FieldPhone,
}

var (
	digitsRe = regexp.MustCompile(`^\d+$`)
	ufRe     = regexp.MustCompile(`^[A-Z]{2}$`)
	phoneRe  = regexp.MustCompile(`^\d{10,15}$`)
)

var (
	validate  = newValidator()
	fieldTags = collectTags()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "digits", digitsRe)
	mustRegister(v, "uf", ufRe)
	mustRegister(v, "phone", phoneRe)

	return v
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}

func collectTags() map[string]string {
	tags := make(map[string]string, len(Fields))
	t := reflect.TypeOf(ClientInput{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		tags[name] = f.Tag.Get("validate")
	}
	return tags
}

// Errors maps a field name to the message of its first failing rule.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// ValidateClient returns nil when in satisfies the schema.
func ValidateClient(in ClientInput) Errors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// só acontece com uso incorreto da lib (tipo inválido)
		return Errors{"_": err.Error()}
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, fe.Tag())
	}
	return out
}

// ValidateField checks a single value against the rules of field and
// returns its message, or "" when the value is acceptable.
func ValidateField(field, value string) string {
	tag, ok := fieldTags[field]
	if !ok {
		return ""
	}
	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return message(field, verrs[0].Tag())
	}
	return message(field, "")
}

// Values flattens the input into field → value.
func (in ClientInput) Values() map[string]string {
	return map[string]string{
		FieldImage:       in.Image,
		FieldCNPJ:        in.CNPJ,
		FieldName:        in.Name,
		FieldFantasyName: in.FantasyName,
		FieldCEP:         in.CEP,
		FieldLogradouro:  in.Logradouro,
		FieldBairro:      in.Bairro,
		FieldCity:        in.City,
		FieldUF:          in.UF,
		FieldComplement:  in.Complement,
		FieldEmail:       in.Email,
		FieldPhone:       in.Phone,
	}
}

// FromValues is the inverse of Values; unknown keys are ignored.
func FromValues(v map[string]string) ClientInput {
	return ClientInput{
		Image:       v[FieldImage],
		CNPJ:        v[FieldCNPJ],
		Name:        v[FieldName],
		FantasyName: v[FieldFantasyName],
		CEP:         v[FieldCEP],
		Logradouro:  v[FieldLogradouro],
		Bairro:      v[FieldBairro],
		City:        v[FieldCity],
		UF:          v[FieldUF],
		Complement:  v[FieldComplement],
		Email:       v[FieldEmail],
		Phone:       v[FieldPhone],
	}
}
