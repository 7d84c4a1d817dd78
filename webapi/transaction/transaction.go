// Package transaction exposes transaction posting and the statement report
// over HTTP.
package transaction

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/neobank/backoffice/pkg/domain"
	"github.com/neobank/backoffice/pkg/dto"
	txsvc "github.com/neobank/backoffice/pkg/service/transaction"
	"github.com/neobank/backoffice/webapi/common"
)

// reportDateLayout is the day-first format of the report query parameters.
const reportDateLayout = "02/01/2006"

const (
	defaultPage = 0
	defaultSize = 10
)

// Routes registers the transaction endpoints.
func Routes(app *fiber.App, svc *txsvc.Service) {
	app.Post("/transactions", Post(svc))
	app.Get("/transactions/reports", Report(svc))
}

// Post handles POST /transactions.
func Post(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err
		}
		tx, err := svc.Post(
			c.Context(),
			input.AccountNumber,
			domain.TransactionType(input.TransactionType),
			input.TransactionValue,
		)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction posted", dto.TransactionRead{
			Date:             tx.Date,
			TransactionType:  string(tx.Type),
			TransactionValue: tx.Amount,
			FinalBalance:     tx.BalanceAfter,
		})
	}
}

// Report handles GET /transactions/reports. Dates are day-first
// (dd/MM/yyyy); page and size default to 0 and 10.
func Report(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := time.Parse(reportDateLayout, c.Query("from"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid date range", "from must be a dd/MM/yyyy date")
		}
		to, err := time.Parse(reportDateLayout, c.Query("to"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid date range", "to must be a dd/MM/yyyy date")
		}
		clientID, err := strconv.ParseInt(c.Query("client"), 10, 64)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid client ID", "client must be an integer")
		}
		page := c.QueryInt("page", defaultPage)
		size := c.QueryInt("size", defaultSize)
		if page < 0 || size <= 0 {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid pagination", "page must be >= 0 and size > 0")
		}

		report, err := svc.StatementReport(c.Context(), from, to, clientID, page, size)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Report generated", report)
	}
}
