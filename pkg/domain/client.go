// Package domain holds the core entities of the back office and the
// invariants they enforce: client lifecycle rules, account ownership and the
// balance-mutation protocol for transaction postings.
package domain

// MinimumAge is the youngest a client may be at creation or update.
const MinimumAge = 18

// Client is a bank customer identity record. The identification is supplied
// by the caller and immutable once created.
type Client struct {
	Identification int64
	Name           string
	Gender         string
	Age            int
	Address        string
	Phone          int64
	Password       string
	State          bool
}

// Validate checks the client lifecycle invariants that apply on both create
// and update.
func (c *Client) Validate() error {
	if c.Age < MinimumAge {
		return ErrClientUnderMinimumAge
	}
	return nil
}
