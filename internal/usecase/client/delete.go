package client

import (
	"context"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDeleteClient(repo domain.Repository, audit *audit.Logger) *DeleteClient {
	return &DeleteClient{repo: repo, audit: audit}
}

// Execute is idempotent: deleting an absent id succeeds.
func (uc *DeleteClient) Execute(ctx context.Context, id uint) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if removed {
		uc.audit.Record(ctx, audit.Event{
			Action:   audit.ActionClientDeleted,
			Entity:   audit.EntityClient,
			EntityID: &id,
		})
	}
	return nil
}
