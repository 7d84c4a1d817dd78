package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotFound is returned when an operation references a client
	// identification with no matching record.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientAlreadyExists is returned when a client is created with an
	// identification that is already taken.
	ErrClientAlreadyExists = errors.New("client already exists")

	// ErrClientUnderMinimumAge is returned when a client is created or
	// updated with an age below the legal minimum.
	ErrClientUnderMinimumAge = errors.New("client must be of legal age")

	// ErrAccountNotFound is returned when a transaction references a
	// nonexistent account number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNoAccountsForClient is returned when a client exists but owns no
	// accounts.
	ErrNoAccountsForClient = errors.New("no accounts found for client")

	// ErrInsufficientBalance is returned when a debit exceeds the available
	// balance or the balance is not positive.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrTransactionAmountNotPositive is returned when a posting carries a
	// zero or negative amount.
	ErrTransactionAmountNotPositive = errors.New("transaction amount must be positive")

	// ErrInvalidTransactionType is returned when a posting carries an
	// unknown transaction type.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrReportEmpty is returned when no transactions match the requested
	// date range.
	ErrReportEmpty = errors.New("no transactions found for the requested period")

	// ErrInfrastructure wraps store-layer failures that are not domain
	// conditions.
	ErrInfrastructure = errors.New("infrastructure failure")
)

// NonZeroBalanceError blocks client deletion while any owned account still
// holds funds. It carries the offending account numbers so the caller can
// report them.
type NonZeroBalanceError struct {
	ClientID       int64
	AccountNumbers []int64
}

func (e *NonZeroBalanceError) Error() string {
	return fmt.Sprintf(
		"client %d has accounts with non-zero balance: %v",
		e.ClientID, e.AccountNumbers,
	)
}
