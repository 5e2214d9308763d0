package controller

import (
	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
}

type contactController struct {
	contactService service.IContactService
}

func NewContactController(contactService service.IContactService) IContactController {
	return &contactController{contactService: contactService}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.Create)
}

func (c *contactController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateContactMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contactService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Message received", res))
}
