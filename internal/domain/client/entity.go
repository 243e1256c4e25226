package client

import (
	"github.com/BruksfildServices01/client-directory/internal/models"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

// ===============================
// Domain Actions
// ===============================

// New builds an unsaved record from a validated input.
func New(in validation.ClientInput) *models.Client {
	c := &models.Client{}
	Apply(c, in)
	return c
}

// Apply copies every caller-owned column; ID and timestamps are untouched.
func Apply(c *models.Client, in validation.ClientInput) {
	c.Image = in.Image
	c.CNPJ = in.CNPJ
	c.Name = in.Name
	c.FantasyName = in.FantasyName
	c.CEP = in.CEP
	c.Logradouro = in.Logradouro
	c.Bairro = in.Bairro
	c.City = in.City
	c.UF = in.UF
	c.Complement = in.Complement
	c.Email = in.Email
	c.Phone = in.Phone
}

// ToInput is the inverse of Apply.
func ToInput(c *models.Client) validation.ClientInput {
	return validation.ClientInput{
		Image:       c.Image,
		CNPJ:        c.CNPJ,
		Name:        c.Name,
		FantasyName: c.FantasyName,
		CEP:         c.CEP,
		Logradouro:  c.Logradouro,
		Bairro:      c.Bairro,
		City:        c.City,
		UF:          c.UF,
		Complement:  c.Complement,
		Email:       c.Email,
		Phone:       c.Phone,
	}
}
