// Package client exposes the client lifecycle over HTTP.
package client

import (
	"github.com/gofiber/fiber/v2"
	"github.com/neobank/backoffice/pkg/domain"
	"github.com/neobank/backoffice/pkg/dto"
	clientsvc "github.com/neobank/backoffice/pkg/service/client"
	"github.com/neobank/backoffice/webapi/common"
)

// Routes registers the client endpoints.
func Routes(app *fiber.App, svc *clientsvc.Service) {
	app.Post("/clients", Create(svc))
	app.Put("/clients", Update(svc))
	app.Get("/clients/:id", Get(svc))
	app.Delete("/clients/:id", Delete(svc))
}

// Create handles POST /clients.
func Create(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ClientRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.Create(c.Context(), toDomain(input))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Client created", toRead(created))
	}
}

// Update handles PUT /clients: a full replacement keyed by identification.
func Update(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ClientRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.Update(c.Context(), toDomain(input))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client updated", toRead(updated))
	}
}

// Get handles GET /clients/:id.
func Get(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid client ID", "Client ID must be an integer")
		}
		found, err := svc.Get(c.Context(), int64(id))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client found", toRead(found))
	}
}

// Delete handles DELETE /clients/:id. Deletion succeeds only when every
// owned account holds zero balance.
func Delete(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid client ID", "Client ID must be an integer")
		}
		if err := svc.Delete(c.Context(), int64(id)); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client deleted", nil)
	}
}

func toDomain(in *ClientRequest) *domain.Client {
	return &domain.Client{
		Identification: in.Identification,
		Name:           in.Name,
		Gender:         in.Gender,
		Age:            in.Age,
		Address:        in.Address,
		Phone:          in.Phone,
		Password:       in.Password,
		State:          in.State,
	}
}

func toRead(c *domain.Client) dto.ClientRead {
	return dto.ClientRead{
		Identification: c.Identification,
		Name:           c.Name,
		Gender:         c.Gender,
		Age:            c.Age,
		Address:        c.Address,
		Phone:          c.Phone,
		State:          c.State,
	}
}
