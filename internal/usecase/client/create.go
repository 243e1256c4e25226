package client

import (
	"context"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/models"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewCreateClient(repo domain.Repository, audit *audit.Logger) *CreateClient {
	return &CreateClient{repo: repo, audit: audit}
}

// Execute returns validation.Errors when in does not satisfy the schema;
// nothing is written in that case.
func (uc *CreateClient) Execute(
	ctx context.Context,
	in validation.ClientInput,
) (*models.Client, error) {

	if errs := validation.ValidateClient(in); errs != nil {
		return nil, errs
	}

	c := domain.New(in)
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		Action:   audit.ActionClientCreated,
		Entity:   audit.EntityClient,
		EntityID: &c.ID,
		Metadata: map[string]string{"cnpj": c.CNPJ},
	})

	return c, nil
}
