package transaction

// TransactionRequest is the body for posting a movement against an account.
type TransactionRequest struct {
	AccountNumber    int64   `json:"accountNumber" validate:"required"`
	TransactionType  string  `json:"transactionType" validate:"required,oneof=CREDIT DEBIT"`
	TransactionValue float64 `json:"transactionValue" validate:"required"`
}
