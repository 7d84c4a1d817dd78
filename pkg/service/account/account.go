// Package account provides business logic for account creation and
// per-client account listing.
package account

import (
	"context"
	"log/slog"

	"github.com/neobank/backoffice/pkg/domain"
	"github.com/neobank/backoffice/pkg/repository"
)

// Service provides business logic for account operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create persists a new account for an existing client. Any caller-supplied
// account number is discarded; the store assigns one and it is filled into
// the returned account.
func (s *Service) Create(ctx context.Context, a *domain.Account) (created *domain.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		found, err := clients.Exists(ctx, a.ClientIdentification)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrClientNotFound
		}
		a.Number = 0
		return accounts.Create(ctx, a)
	})
	if err != nil {
		s.logger.Error("account create failed",
			"clientID", a.ClientIdentification, "error", err)
		return nil, err
	}
	s.logger.Info("account created",
		"accountNumber", a.Number, "clientID", a.ClientIdentification)
	return a, nil
}

// ListByClient returns every account owned by the client, in storage order.
// It distinguishes an unknown client from a known client with no accounts.
func (s *Service) ListByClient(ctx context.Context, clientID int64) (owned []*domain.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		found, err := clients.Exists(ctx, clientID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrClientNotFound
		}
		owned, err = accounts.ListByClient(ctx, clientID)
		if err != nil {
			return err
		}
		if len(owned) == 0 {
			return domain.ErrNoAccountsForClient
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return owned, nil
}
