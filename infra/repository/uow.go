package repository

import (
	"context"

	repo "github.com/neobank/backoffice/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do are bound to the pending
// gorm transaction, so every read and write of a manager operation commits
// or rolls back as one unit.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a transaction boundary, providing a UoW whose repositories
// use the transaction session.
func (u *UoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// ClientRepository returns a client repository bound to the current session.
func (u *UoW) ClientRepository() (repo.ClientRepository, error) {
	return NewClientRepository(u.session()), nil
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() (repo.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}

// TransactionRepository returns a ledger repository bound to the current session.
func (u *UoW) TransactionRepository() (repo.TransactionRepository, error) {
	return NewTransactionRepository(u.session()), nil
}
