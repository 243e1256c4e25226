package enrichment

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/client-directory/internal/validation"
)

// viacep payload. "erro" comes back as true or "true" depending on the
// API version.
type cepResponse struct {
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        any    `json:"erro"`
}

func (r cepResponse) notFound() bool {
	switch v := r.Erro.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

func (c *Client) fetchCEP(ctx context.Context, cep string) (Prefill, error) {
	var body cepResponse
	status, err := c.getJSON(ctx, c.cepURL+"/"+cep+"/json/", &body)
	if err != nil {
		if status == http.StatusNotFound || status == http.StatusBadRequest {
			return nil, &LookupError{Field: validation.FieldCEP, Err: ErrNotFound, Cause: err}
		}
		return nil, &LookupError{Field: validation.FieldCEP, Err: ErrUnavailable, Cause: err}
	}
	if body.notFound() {
		return nil, &LookupError{Field: validation.FieldCEP, Err: ErrNotFound}
	}

	p := Prefill{}
	p.set(validation.FieldLogradouro, body.Logradouro)
	p.set(validation.FieldBairro, body.Bairro)
	p.set(validation.FieldCity, body.Localidade)
	p.set(validation.FieldUF, body.UF)
	p.set(validation.FieldComplement, body.Complemento)
	return p, nil
}
