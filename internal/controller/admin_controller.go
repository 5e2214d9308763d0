package controller

import (
	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	GetProducts(ctx *fiber.Ctx) error
	GetContactMessages(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	authService    service.IAuthService
	productService service.IProductService
	contactService service.IContactService
	logService     service.ILogService
	adminGuard     fiber.Handler
}

func NewAdminController(
	authService service.IAuthService,
	productService service.IProductService,
	contactService service.IContactService,
	logService service.ILogService,
	adminGuard fiber.Handler,
) IAdminController {
	return &adminController{
		authService:    authService,
		productService: productService,
		contactService: contactService,
		logService:     logService,
		adminGuard:     adminGuard,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")

	// Public Admin Route (Login)
	h.Post("/login", c.Login)

	h.Get("/me", c.adminGuard, c.Me)
	h.Get("/products", c.adminGuard, c.GetProducts)
	h.Get("/contact-messages", c.adminGuard, c.GetContactMessages)

	// Logs
	h.Get("/logs", c.adminGuard, c.GetLogs)
	h.Get("/logs/:id", c.adminGuard, c.GetLogDetail)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.LoginAdmin(ctx.UserContext(), &req, ctx.IP())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) Me(ctx *fiber.Ctx) error {
	principal, ok := serverutils.CurrentAdmin(ctx)
	if !ok {
		return serverutils.Unauthorized("Unauthorized")
	}

	res, err := c.authService.Me(ctx.UserContext(), principal.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Current admin", res))
}

func (c *adminController) GetProducts(ctx *fiber.Ctx) error {
	query, err := parseProductListQuery(ctx)
	if err != nil {
		return err
	}
	query.IncludeInactive = ctx.QueryBool("includeInactive", false)

	res, err := c.productService.List(ctx.UserContext(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *adminController) GetContactMessages(ctx *fiber.Ctx) error {
	limit, err := serverutils.QueryInt(ctx, "limit", service.DefaultProductLimit)
	if err != nil {
		return err
	}
	skip, err := serverutils.QueryInt(ctx, "skip", 0)
	if err != nil {
		return err
	}

	res, err := c.contactService.List(ctx.UserContext(), &dto.PageQuery{Limit: limit, Skip: skip})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact messages", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	limit, err := serverutils.QueryInt(ctx, "limit", 50)
	if err != nil {
		return err
	}
	offset, err := serverutils.QueryInt(ctx, "offset", 0)
	if err != nil {
		return err
	}

	logs, err := c.logService.List(ctx.Query("level"), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	// Log ids are md5 hashes, not UUIDs.
	l, err := c.logService.Show(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", l))
}
