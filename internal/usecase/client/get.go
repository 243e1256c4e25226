package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(ctx context.Context, id uint) (*models.Client, error) {
	return uc.repo.Get(ctx, id)
}
