package repository

import (
	"context"

	"github.com/neobank/backoffice/pkg/domain"
	repo "github.com/neobank/backoffice/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a gorm-backed account repository.
func NewAccountRepository(db *gorm.DB) repo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, number int64) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "account_number = ?", number).Error; err != nil {
		return nil, mapGormError(err, domain.ErrAccountNotFound)
	}
	return m.toDomain(), nil
}

// GetForUpdate reads the account row under SELECT ... FOR UPDATE so the
// balance check and the subsequent mutation cannot race with a concurrent
// posting. Only meaningful inside a UnitOfWork transaction.
func (r *accountRepository) GetForUpdate(ctx context.Context, number int64) (*domain.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "account_number = ?", number).Error
	if err != nil {
		return nil, mapGormError(err, domain.ErrAccountNotFound)
	}
	return m.toDomain(), nil
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := accountModel(a)
	m.Number = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapGormError(err, domain.ErrAccountNotFound)
	}
	a.Number = m.Number
	return nil
}

func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	m := accountModel(a)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return mapGormError(err, domain.ErrAccountNotFound)
	}
	return nil
}

func (r *accountRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Account, error) {
	return r.listByClient(ctx, r.db, clientID)
}

// ListByClientForUpdate locks every owned account row; used by the
// zero-balance deletion check.
func (r *accountRepository) ListByClientForUpdate(ctx context.Context, clientID int64) ([]*domain.Account, error) {
	locked := r.db.Clauses(clause.Locking{Strength: "UPDATE"})
	return r.listByClient(ctx, locked, clientID)
}

func (r *accountRepository) listByClient(ctx context.Context, db *gorm.DB, clientID int64) ([]*domain.Account, error) {
	var ms []Account
	err := db.WithContext(ctx).
		Where("client_identification = ?", clientID).
		Find(&ms).Error
	if err != nil {
		return nil, mapGormError(err, domain.ErrAccountNotFound)
	}
	accounts := make([]*domain.Account, 0, len(ms))
	for i := range ms {
		accounts = append(accounts, ms[i].toDomain())
	}
	return accounts, nil
}
