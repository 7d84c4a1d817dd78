package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType enumerates the two directions a posting can take.
type TransactionType string

const (
	// TransactionCredit increases the account balance.
	TransactionCredit TransactionType = "CREDIT"
	// TransactionDebit decreases the account balance.
	TransactionDebit TransactionType = "DEBIT"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// Transaction is an immutable, append-only ledger entry recording one
// balance-affecting event. BalanceBefore and BalanceAfter are denormalized
// snapshots kept for statement reports.
type Transaction struct {
	ID            uuid.UUID
	Date          time.Time
	Type          TransactionType
	Amount        float64
	BalanceBefore float64
	BalanceAfter  float64
	AccountNumber int64
}

// NewTransaction builds a ledger entry dated today at day precision.
func NewTransaction(
	accountNumber int64,
	txType TransactionType,
	amount, balanceBefore, balanceAfter float64,
) *Transaction {
	return &Transaction{
		ID:            uuid.New(),
		Date:          Today(),
		Type:          txType,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		AccountNumber: accountNumber,
	}
}

// Today returns the current date truncated to day precision in UTC.
// Postings carry no time component.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
