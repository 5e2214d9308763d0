package controller

import (
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISeedController interface {
	RegisterRoutes(r fiber.Router)
	SeedCatalog(ctx *fiber.Ctx) error
	SeedAdmin(ctx *fiber.Ctx) error
}

type seedController struct {
	seedService   service.ISeedService
	adminGuard    fiber.Handler
	adminEmail    string
	adminPassword string
	enabled       bool
}

// NewSeedController exposes /seed-admin only when enabled is true; the
// bootstrap credentials come from configuration, never from the request.
func NewSeedController(
	seedService service.ISeedService,
	adminGuard fiber.Handler,
	adminEmail, adminPassword string,
	enabled bool,
) ISeedController {
	return &seedController{
		seedService:   seedService,
		adminGuard:    adminGuard,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		enabled:       enabled,
	}
}

func (c *seedController) RegisterRoutes(r fiber.Router) {
	r.Post("/seed", c.adminGuard, c.SeedCatalog)
	r.Post("/seed-admin", c.SeedAdmin)
}

func (c *seedController) SeedCatalog(ctx *fiber.Ctx) error {
	res, err := c.seedService.SeedCatalog(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Database seeded successfully", res))
}

func (c *seedController) SeedAdmin(ctx *fiber.Ctx) error {
	if !c.enabled {
		return fiber.ErrNotFound
	}

	res, err := c.seedService.SeedAdmin(ctx.UserContext(), c.adminEmail, c.adminPassword)
	if err != nil {
		return err
	}
	if !res.Created {
		return ctx.JSON(serverutils.SuccessResponse("Admin already exists", res))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Admin created", res))
}
