// Package repository implements the data-access contracts over gorm and
// PostgreSQL, including the UnitOfWork transaction boundary.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/neobank/backoffice/pkg/domain"
)

// Client represents a client record in the database. The identification is
// caller-supplied, so it is the primary key rather than a generated one.
type Client struct {
	Identification int64  `gorm:"primaryKey;autoIncrement:false;column:identification"`
	Name           string `gorm:"size:100;not null"`
	Gender         string `gorm:"size:20"`
	Age            int    `gorm:"not null"`
	Address        string `gorm:"size:255"`
	Phone          int64
	Password       string `gorm:"size:100"`
	State          bool
}

// TableName implements the gorm naming override.
func (Client) TableName() string { return "client" }

// Account represents an account record in the database. The account number
// is DB-assigned. The balance column keeps the historical name
// initial_balance; it holds the running balance.
type Account struct {
	Number               int64   `gorm:"primaryKey;autoIncrement;column:account_number"`
	AccountType          string  `gorm:"type:varchar(16);not null"`
	Balance              float64 `gorm:"column:initial_balance;not null"`
	State                bool
	ClientIdentification int64 `gorm:"index;not null"`
}

func (Account) TableName() string { return "account" }

// Transaction represents a persisted ledger entry. Rows are only ever
// inserted.
type Transaction struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date             time.Time `gorm:"type:date;index;not null"`
	TransactionType  string    `gorm:"type:varchar(16);not null"`
	TransactionValue float64   `gorm:"not null"`
	InitialBalance   float64   `gorm:"not null"`
	FinalBalance     float64   `gorm:"not null"`
	AccountNumber    int64     `gorm:"index;not null"`
}

func (Transaction) TableName() string { return "transaction" }

func (m *Client) toDomain() *domain.Client {
	return &domain.Client{
		Identification: m.Identification,
		Name:           m.Name,
		Gender:         m.Gender,
		Age:            m.Age,
		Address:        m.Address,
		Phone:          m.Phone,
		Password:       m.Password,
		State:          m.State,
	}
}

func clientModel(c *domain.Client) Client {
	return Client{
		Identification: c.Identification,
		Name:           c.Name,
		Gender:         c.Gender,
		Age:            c.Age,
		Address:        c.Address,
		Phone:          c.Phone,
		Password:       c.Password,
		State:          c.State,
	}
}

func (m *Account) toDomain() *domain.Account {
	return &domain.Account{
		Number:               m.Number,
		Type:                 domain.AccountType(m.AccountType),
		Balance:              m.Balance,
		State:                m.State,
		ClientIdentification: m.ClientIdentification,
	}
}

func accountModel(a *domain.Account) Account {
	return Account{
		Number:               a.Number,
		AccountType:          string(a.Type),
		Balance:              a.Balance,
		State:                a.State,
		ClientIdentification: a.ClientIdentification,
	}
}

func (m *Transaction) toDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:            m.ID,
		Date:          m.Date,
		Type:          domain.TransactionType(m.TransactionType),
		Amount:        m.TransactionValue,
		BalanceBefore: m.InitialBalance,
		BalanceAfter:  m.FinalBalance,
		AccountNumber: m.AccountNumber,
	}
}

func transactionModel(tx *domain.Transaction) Transaction {
	return Transaction{
		ID:               tx.ID,
		Date:             tx.Date,
		TransactionType:  string(tx.Type),
		TransactionValue: tx.Amount,
		InitialBalance:   tx.BalanceBefore,
		FinalBalance:     tx.BalanceAfter,
		AccountNumber:    tx.AccountNumber,
	}
}
