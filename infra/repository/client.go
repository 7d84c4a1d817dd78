package repository

import (
	"context"

	"github.com/neobank/backoffice/pkg/domain"
	repo "github.com/neobank/backoffice/pkg/repository"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a gorm-backed client repository.
func NewClientRepository(db *gorm.DB) repo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Get(ctx context.Context, id int64) (*domain.Client, error) {
	var m Client
	if err := r.db.WithContext(ctx).First(&m, "identification = ?", id).Error; err != nil {
		return nil, mapGormError(err, domain.ErrClientNotFound)
	}
	return m.toDomain(), nil
}

func (r *clientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("identification = ?", id).
		Count(&count).Error
	if err != nil {
		return false, mapGormError(err, domain.ErrClientNotFound)
	}
	return count > 0, nil
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := clientModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapGormError(err, domain.ErrClientNotFound)
	}
	return nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	m := clientModel(c)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return mapGormError(err, domain.ErrClientNotFound)
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).
		Delete(&Client{}, "identification = ?", id).Error
	if err != nil {
		return mapGormError(err, domain.ErrClientNotFound)
	}
	return nil
}
