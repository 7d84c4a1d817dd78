// Package account exposes account creation and per-client listing over HTTP.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/neobank/backoffice/pkg/domain"
	"github.com/neobank/backoffice/pkg/dto"
	accountsvc "github.com/neobank/backoffice/pkg/service/account"
	"github.com/neobank/backoffice/webapi/common"
)

// Routes registers the account endpoints.
func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/accounts", Create(svc))
	app.Get("/accounts/client/:clientId", ListByClient(svc))
}

// Create handles POST /accounts.
func Create(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AccountRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.Create(c.Context(), &domain.Account{
			Type:                 domain.AccountType(input.AccountType),
			Balance:              input.InitialBalance,
			State:                input.State,
			ClientIdentification: input.ClientIdentification,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toRead(created))
	}
}

// ListByClient handles GET /accounts/client/:clientId.
func ListByClient(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID, err := c.ParamsInt("clientId")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid client ID", "Client ID must be an integer")
		}
		owned, err := svc.ListByClient(c.Context(), int64(clientID))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		reads := make([]dto.AccountRead, 0, len(owned))
		for _, a := range owned {
			reads = append(reads, toRead(a))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts found", reads)
	}
}

func toRead(a *domain.Account) dto.AccountRead {
	return dto.AccountRead{
		AccountNumber:        a.Number,
		AccountType:          string(a.Type),
		InitialBalance:       a.Balance,
		State:                a.State,
		ClientIdentification: a.ClientIdentification,
	}
}
