package client

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/client-directory/internal/models"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	List(ctx context.Context) ([]models.Client, error)

	// Get returns ErrNotFound when id does not resolve to a record.
	Get(ctx context.Context, id uint) (*models.Client, error)

	// Create assigns c.ID.
	Create(ctx context.Context, c *models.Client) error

	// Update overwrites every column of the row keyed by c.ID and reloads
	// c from the store. ErrNotFound when the row is absent.
	Update(ctx context.Context, c *models.Client) error

	// Delete reports whether a row was removed; a missing id is not an error.
	Delete(ctx context.Context, id uint) (bool, error)
}
