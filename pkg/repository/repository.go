// Package repository defines the data-access contracts the services depend
// on. Implementations live in infra/repository; tests substitute mocks.
package repository

import (
	"context"
	"time"

	"github.com/neobank/backoffice/pkg/domain"
)

// ClientRepository defines data access for client identity records.
type ClientRepository interface {
	Get(ctx context.Context, id int64) (*domain.Client, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// AccountRepository defines data access for accounts. The ForUpdate variants
// take row locks so balance checks and mutations inside one unit of work
// cannot race with concurrent postings.
type AccountRepository interface {
	Get(ctx context.Context, number int64) (*domain.Account, error)
	GetForUpdate(ctx context.Context, number int64) (*domain.Account, error)
	// Create persists a new account and fills in the assigned number.
	Create(ctx context.Context, a *domain.Account) error
	Update(ctx context.Context, a *domain.Account) error
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Account, error)
	ListByClientForUpdate(ctx context.Context, clientID int64) ([]*domain.Account, error)
}

// TransactionRepository defines data access for the append-only ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	// ListByDateRange returns one page of transactions dated within
	// [from, to] inclusive plus the total count of the unpaginated set.
	ListByDateRange(
		ctx context.Context,
		from, to time.Time,
		offset, limit int,
	) ([]*domain.Transaction, int64, error)
}
