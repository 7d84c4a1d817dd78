package client

// ClientRequest is the body for creating or fully replacing a client. Age is
// range-checked by the domain (legal-age rule), not here.
type ClientRequest struct {
	Identification int64  `json:"identification" validate:"required"`
	Name           string `json:"name" validate:"required,max=100"`
	Gender         string `json:"gender" validate:"max=20"`
	Age            int    `json:"age" validate:"required,gte=0"`
	Address        string `json:"address" validate:"max=255"`
	Phone          int64  `json:"phone"`
	Password       string `json:"password" validate:"required,max=100"`
	State          bool   `json:"state"`
}
