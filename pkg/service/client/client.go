// Package client provides business logic for the client lifecycle: creation
// with duplicate and age checks, full-replacement updates, retrieval and the
// zero-balance-guarded deletion.
package client

import (
	"context"
	"log/slog"

	"github.com/neobank/backoffice/pkg/domain"
	"github.com/neobank/backoffice/pkg/repository"
)

// Service provides business logic for client operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create persists a new client. It fails with ErrClientAlreadyExists when
// the identification is taken and with ErrClientUnderMinimumAge when the
// client is too young.
func (s *Service) Create(ctx context.Context, c *domain.Client) (created *domain.Client, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		taken, err := repo.Exists(ctx, c.Identification)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrClientAlreadyExists
		}
		if err := c.Validate(); err != nil {
			return err
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		s.logger.Error("client create failed", "clientID", c.Identification, "error", err)
		return nil, err
	}
	s.logger.Info("client created", "clientID", c.Identification)
	return c, nil
}

// Update fully replaces the stored record keyed by the client's
// identification. There are no partial-field semantics.
func (s *Service) Update(ctx context.Context, c *domain.Client) (updated *domain.Client, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		found, err := repo.Exists(ctx, c.Identification)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrClientNotFound
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Get retrieves a client by identification.
func (s *Service) Get(ctx context.Context, id int64) (c *domain.Client, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a client, but only when every owned account holds exactly
// zero balance. The account rows are locked for the duration of the check so
// a concurrent posting cannot slip funds in under the deletion. On failure
// it returns a NonZeroBalanceError listing the offending account numbers.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := clients.Get(ctx, id); err != nil {
			return err
		}
		owned, err := accounts.ListByClientForUpdate(ctx, id)
		if err != nil {
			return err
		}
		var offending []int64
		for _, a := range owned {
			if a.Balance != 0 {
				offending = append(offending, a.Number)
			}
		}
		if len(offending) > 0 {
			return &domain.NonZeroBalanceError{ClientID: id, AccountNumbers: offending}
		}
		return clients.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("client delete failed", "clientID", id, "error", err)
		return err
	}
	s.logger.Info("client deleted", "clientID", id)
	return nil
}
