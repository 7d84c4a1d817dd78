package account

// AccountRequest is the body for opening an account. Any accountNumber in
// the payload is ignored; the store assigns one.
type AccountRequest struct {
	AccountType          string  `json:"accountType" validate:"required,oneof=SAVINGS CHECKING"`
	InitialBalance       float64 `json:"initialBalance" validate:"gte=0"`
	State                bool    `json:"state"`
	ClientIdentification int64   `json:"clientIdentification" validate:"required"`
}
