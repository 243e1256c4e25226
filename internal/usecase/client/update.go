package client

import (
	"context"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/models"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

// UpdateClient is a full replace of the caller-owned columns. It serves
// both PUT and PATCH, which accept the same shape.
type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUpdateClient(repo domain.Repository, audit *audit.Logger) *UpdateClient {
	return &UpdateClient{repo: repo, audit: audit}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	id uint,
	in validation.ClientInput,
) (*models.Client, error) {

	if errs := validation.ValidateClient(in); errs != nil {
		return nil, errs
	}

	current, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changed := changedFields(domain.ToInput(current), in)

	domain.Apply(current, in)
	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		Action:   audit.ActionClientUpdated,
		Entity:   audit.EntityClient,
		EntityID: &current.ID,
		Metadata: map[string][]string{"changed": changed},
	})

	return current, nil
}

func changedFields(before, after validation.ClientInput) []string {
	b, a := before.Values(), after.Values()
	changed := make([]string, 0)
	for _, f := range validation.Fields {
		if b[f] != a[f] {
			changed = append(changed, f)
		}
	}
	return changed
}
