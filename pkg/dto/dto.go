// Package dto defines the read models shared between the service layer and
// the HTTP adapters.
package dto

import "time"

// ClientRead is the outward view of a client record.
type ClientRead struct {
	Identification int64  `json:"identification"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Address        string `json:"address"`
	Phone          int64  `json:"phone"`
	State          bool   `json:"state"`
}

// AccountRead is the outward view of an account. InitialBalance carries the
// running balance; the wire name is kept for compatibility with the report
// consumers.
type AccountRead struct {
	AccountNumber        int64   `json:"accountNumber"`
	AccountType          string  `json:"accountType"`
	InitialBalance       float64 `json:"initialBalance"`
	State                bool    `json:"state"`
	ClientIdentification int64   `json:"clientIdentification"`
}

// TransactionRead is the response body for a successful posting.
type TransactionRead struct {
	Date             time.Time `json:"date"`
	TransactionType  string    `json:"transactionType"`
	TransactionValue float64   `json:"transactionValue"`
	FinalBalance     float64   `json:"finalBalance"`
}

// ReportRow is one line of a statement report: a transaction joined with its
// account and the owning client's name.
type ReportRow struct {
	Date             time.Time `json:"date"`
	ClientName       string    `json:"clientName"`
	AccountNumber    int64     `json:"accountNumber"`
	AccountType      string    `json:"accountType"`
	InitialBalance   float64   `json:"initialBalance"`
	State            bool      `json:"state"`
	TransactionValue float64   `json:"transactionValue"`
	AvailableBalance float64   `json:"availableBalance"`
}

// Page is the offset-pagination envelope for list results.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}
