package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

var _ domain.Repository = (*ClientGormRepository)(nil)

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientGormRepository) Get(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return &c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	c.ID = 0
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Update (full overwrite)
// --------------------------------------------------

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Client
		if err := tx.First(&current, c.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("load client %d: %w", c.ID, err)
		}

		// Select("*") grava também valores zero (ex.: complemento vazio)
		if err := tx.Model(&current).
			Select("*").
			Omit("id", "created_at").
			Updates(c).Error; err != nil {
			return fmt.Errorf("update client %d: %w", c.ID, err)
		}

		if err := tx.First(c, c.ID).Error; err != nil {
			return fmt.Errorf("reload client %d: %w", c.ID, err)
		}
		return nil
	})
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete client %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
