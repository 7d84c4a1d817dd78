// Package common holds the response envelopes, the request binder and the
// domain-error-to-status mapping shared by all handlers.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/neobank/backoffice/pkg/domain"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response.
func ProblemDetailsJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Instance: c.OriginalURL(),
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// DomainErrorJSON maps a domain error to its HTTP status and writes the
// problem response.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	title := "Request failed"
	if status == fiber.StatusInternalServerError {
		title = "Internal Server Error"
	}
	return ProblemDetailsJSON(c, status, title, err.Error())
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var nzErr *domain.NonZeroBalanceError
	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrNoAccountsForClient),
		errors.Is(err, domain.ErrReportEmpty):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrClientAlreadyExists),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrTransactionAmountNotPositive),
		errors.Is(err, domain.ErrInvalidTransactionType):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrClientUnderMinimumAge):
		return fiber.StatusTooEarly
	case errors.As(err, &nzErr):
		return fiber.StatusNotAcceptable
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure the error response is already written
// and a nil struct is returned.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
