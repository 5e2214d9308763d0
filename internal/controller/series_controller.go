package controller

import (
	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISeriesController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type seriesController struct {
	seriesService service.ISeriesService
	adminGuard    fiber.Handler
}

func NewSeriesController(seriesService service.ISeriesService, adminGuard fiber.Handler) ISeriesController {
	return &seriesController{
		seriesService: seriesService,
		adminGuard:    adminGuard,
	}
}

func (c *seriesController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/series")
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)

	// Admin only
	h.Post("", c.adminGuard, c.Create)
	h.Patch("/:id", c.adminGuard, c.Update)
	h.Delete("/:id", c.adminGuard, c.Delete)
}

func (c *seriesController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.seriesService.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all series", res))
}

func (c *seriesController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id", "series")
	if err != nil {
		return err
	}

	res, err := c.seriesService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show series", res))
}

func (c *seriesController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSeriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.seriesService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create series", res))
}

func (c *seriesController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id", "series")
	if err != nil {
		return err
	}

	var req dto.UpdateSeriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	req.Id = id

	res, err := c.seriesService.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update series", res))
}

func (c *seriesController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id", "series")
	if err != nil {
		return err
	}

	if err := c.seriesService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete series", dto.MessageResponse{Message: "Series deleted"}))
}
