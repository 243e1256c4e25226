package enrichment

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/client-directory/internal/validation"
)

// publica.cnpj.ws payload, only the parts we map.
type cnpjResponse struct {
	RazaoSocial     string `json:"razao_social"`
	Estabelecimento struct {
		NomeFantasia string `json:"nome_fantasia"`
		CEP          string `json:"cep"`
		Logradouro   string `json:"logradouro"`
		Bairro       string `json:"bairro"`
		Complemento  string `json:"complemento"`
		Email        string `json:"email"`
		DDD1         string `json:"ddd1"`
		Telefone1    string `json:"telefone1"`
		Cidade       struct {
			Nome string `json:"nome"`
		} `json:"cidade"`
		Estado struct {
			Sigla string `json:"sigla"`
		} `json:"estado"`
	} `json:"estabelecimento"`
}

func (c *Client) fetchCNPJ(ctx context.Context, cnpj string) (Prefill, error) {
	var body cnpjResponse
	status, err := c.getJSON(ctx, c.cnpjURL+"/"+cnpj, &body)
	if err != nil {
		if status == http.StatusNotFound || status == http.StatusBadRequest {
			return nil, &LookupError{Field: validation.FieldCNPJ, Err: ErrNotFound, Cause: err}
		}
		return nil, &LookupError{Field: validation.FieldCNPJ, Err: ErrUnavailable, Cause: err}
	}
	if body.RazaoSocial == "" {
		return nil, &LookupError{Field: validation.FieldCNPJ, Err: ErrNotFound}
	}

	est := body.Estabelecimento
	p := Prefill{}
	p.set(validation.FieldName, body.RazaoSocial)
	p.set(validation.FieldFantasyName, est.NomeFantasia)
	p.set(validation.FieldCEP, digitsOnly(est.CEP))
	p.set(validation.FieldLogradouro, est.Logradouro)
	p.set(validation.FieldBairro, est.Bairro)
	p.set(validation.FieldCity, est.Cidade.Nome)
	p.set(validation.FieldUF, est.Estado.Sigla)
	p.set(validation.FieldEmail, est.Email)
	p.set(validation.FieldPhone, digitsOnly(est.DDD1+est.Telefone1))
	p.set(validation.FieldComplement, est.Complemento)
	return p, nil
}
