// Package transaction provides the transaction-posting protocol and the
// statement-report assembly. Posting locks the account row, validates the
// balance-sufficiency rule, mutates the balance and appends the ledger entry
// atomically; the report joins a date-filtered page of the ledger with the
// client's accounts and identity.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/neobank/backoffice/pkg/domain"
	"github.com/neobank/backoffice/pkg/dto"
	"github.com/neobank/backoffice/pkg/repository"
)

// Service provides business logic for transaction posting and reporting.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Post applies a CREDIT or DEBIT of amount against the account. The account
// row is read under a lock inside the unit of work, so two concurrent debits
// cannot both pass the sufficiency check; the balance update and the ledger
// entry commit together or not at all.
func (s *Service) Post(
	ctx context.Context,
	accountNumber int64,
	txType domain.TransactionType,
	amount float64,
) (tx *domain.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.GetForUpdate(ctx, accountNumber)
		if err != nil {
			return err
		}
		tx, err = acct.Apply(txType, amount)
		if err != nil {
			return err
		}
		if err := accounts.Update(ctx, acct); err != nil {
			return err
		}
		return ledger.Create(ctx, tx)
	})
	if err != nil {
		s.logger.Error("transaction posting failed",
			"accountNumber", accountNumber, "type", txType, "error", err)
		return nil, err
	}
	s.logger.Info("transaction posted",
		"transactionID", tx.ID,
		"accountNumber", accountNumber,
		"type", txType,
		"balanceAfter", tx.BalanceAfter)
	return tx, nil
}

// StatementReport assembles one page of report rows for the client's
// transactions dated within [from, to] inclusive. Emptiness is judged on the
// total count of the filtered set, not on the requested page, so later pages
// of a nonempty range return an empty content slice rather than an error.
// Transactions on accounts not owned by the client are skipped.
func (s *Service) StatementReport(
	ctx context.Context,
	from, to time.Time,
	clientID int64,
	page, size int,
) (report *dto.Page[dto.ReportRow], err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		txs, total, err := ledger.ListByDateRange(ctx, from, to, page*size, size)
		if err != nil {
			return err
		}
		if total == 0 {
			return domain.ErrReportEmpty
		}

		c, err := clients.Get(ctx, clientID)
		if err != nil {
			return err
		}
		owned, err := accounts.ListByClient(ctx, clientID)
		if err != nil {
			return err
		}
		if len(owned) == 0 {
			return domain.ErrNoAccountsForClient
		}

		byNumber := make(map[int64]*domain.Account, len(owned))
		for _, a := range owned {
			byNumber[a.Number] = a
		}

		rows := make([]dto.ReportRow, 0, len(txs))
		for _, tx := range txs {
			acct, ok := byNumber[tx.AccountNumber]
			if !ok {
				continue
			}
			rows = append(rows, dto.ReportRow{
				Date:             tx.Date,
				ClientName:       c.Name,
				AccountNumber:    tx.AccountNumber,
				AccountType:      string(acct.Type),
				InitialBalance:   tx.BalanceBefore,
				State:            acct.State,
				TransactionValue: tx.Amount,
				AvailableBalance: tx.BalanceAfter,
			})
		}
		report = &dto.Page[dto.ReportRow]{
			Content:       rows,
			TotalElements: total,
			Page:          page,
			Size:          size,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
