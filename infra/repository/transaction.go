package repository

import (
	"context"
	"time"

	"github.com/neobank/backoffice/pkg/domain"
	repo "github.com/neobank/backoffice/pkg/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a gorm-backed ledger repository.
func NewTransactionRepository(db *gorm.DB) repo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	m := transactionModel(tx)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapGormError(err, domain.ErrAccountNotFound)
	}
	return nil
}

func (r *transactionRepository) ListByDateRange(
	ctx context.Context,
	from, to time.Time,
	offset, limit int,
) ([]*domain.Transaction, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("date BETWEEN ? AND ?", from, to).
		Count(&total).Error
	if err != nil {
		return nil, 0, mapGormError(err, domain.ErrReportEmpty)
	}

	var ms []Transaction
	err = r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date").
		Offset(offset).
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, 0, mapGormError(err, domain.ErrReportEmpty)
	}

	txs := make([]*domain.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, ms[i].toDomain())
	}
	return txs, total, nil
}
