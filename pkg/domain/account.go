package domain

// AccountType enumerates the supported account kinds.
type AccountType string

const (
	AccountSavings  AccountType = "SAVINGS"
	AccountChecking AccountType = "CHECKING"
)

// Valid reports whether t is one of the supported account types.
func (t AccountType) Valid() bool {
	return t == AccountSavings || t == AccountChecking
}

// Account is a balance-bearing record owned by exactly one client. Number is
// assigned by the store on creation; Balance is the running balance and the
// sole unit of truth for the account's funds.
type Account struct {
	Number               int64
	Type                 AccountType
	Balance              float64
	State                bool
	ClientIdentification int64
}

// Apply posts a transaction against the account. It validates the amount and
// the debit sufficiency rule, mutates the balance and returns the ledger
// entry carrying the before/after snapshots. On any error the balance is
// left untouched.
func (a *Account) Apply(txType TransactionType, amount float64) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrTransactionAmountNotPositive
	}

	var newBalance float64
	switch txType {
	case TransactionCredit:
		newBalance = a.Balance + amount
	case TransactionDebit:
		if a.Balance <= 0 || a.Balance < amount {
			return nil, ErrInsufficientBalance
		}
		newBalance = a.Balance - amount
	default:
		return nil, ErrInvalidTransactionType
	}

	tx := NewTransaction(a.Number, txType, amount, a.Balance, newBalance)
	a.Balance = newBalance
	return tx, nil
}
