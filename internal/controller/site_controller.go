package controller

import (
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISiteController interface {
	RegisterRoutes(r fiber.Router)
	ContactInfo(ctx *fiber.Ctx) error
}

type siteController struct {
	siteService service.ISiteService
}

func NewSiteController(siteService service.ISiteService) ISiteController {
	return &siteController{siteService: siteService}
}

func (c *siteController) RegisterRoutes(r fiber.Router) {
	r.Get("/site/contact", c.ContactInfo)
}

func (c *siteController) ContactInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Site contact", c.siteService.ContactInfo(ctx.Query("product"))))
}
