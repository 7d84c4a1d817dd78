package repository

import "context"

// UnitOfWork is the transaction boundary for manager operations. Do runs fn
// inside one store transaction; repositories obtained from the UnitOfWork
// passed to fn are bound to that transaction's session, so all reads and
// writes of an operation commit or roll back as one unit.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an
	// error the transaction is rolled back and the error is returned.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	ClientRepository() (ClientRepository, error)
	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
}
