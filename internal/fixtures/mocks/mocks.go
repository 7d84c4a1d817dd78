// Package mocks provides test doubles for the repository contracts. The
// repositories are testify mocks; UnitOfWork is a pass-through fake that
// runs the closure against whatever repositories the test wires in.
package mocks

import (
	"context"
	"time"

	"github.com/neobank/backoffice/pkg/domain"
	"github.com/neobank/backoffice/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// UnitOfWork is a fake transaction boundary: Do simply invokes fn with the
// fake itself, so repository expectations drive the test.
type UnitOfWork struct {
	Clients      repository.ClientRepository
	Accounts     repository.AccountRepository
	Transactions repository.TransactionRepository
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(u)
}

func (u *UnitOfWork) ClientRepository() (repository.ClientRepository, error) {
	return u.Clients, nil
}

func (u *UnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return u.Accounts, nil
}

func (u *UnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return u.Transactions, nil
}

// ClientRepository is a testify mock of repository.ClientRepository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) Get(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// AccountRepository is a testify mock of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Get(ctx context.Context, number int64) (*domain.Account, error) {
	args := m.Called(ctx, number)
	if a, ok := args.Get(0).(*domain.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) GetForUpdate(ctx context.Context, number int64) (*domain.Account, error) {
	args := m.Called(ctx, number)
	if a, ok := args.Get(0).(*domain.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AccountRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Account, error) {
	args := m.Called(ctx, clientID)
	if as, ok := args.Get(0).([]*domain.Account); ok {
		return as, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) ListByClientForUpdate(ctx context.Context, clientID int64) ([]*domain.Account, error) {
	args := m.Called(ctx, clientID)
	if as, ok := args.Get(0).([]*domain.Account); ok {
		return as, args.Error(1)
	}
	return nil, args.Error(1)
}

// TransactionRepository is a testify mock of repository.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *TransactionRepository) ListByDateRange(
	ctx context.Context,
	from, to time.Time,
	offset, limit int,
) ([]*domain.Transaction, int64, error) {
	args := m.Called(ctx, from, to, offset, limit)
	var txs []*domain.Transaction
	if ts, ok := args.Get(0).([]*domain.Transaction); ok {
		txs = ts
	}
	return txs, args.Get(1).(int64), args.Error(2)
}
