package controller

import (
	"io"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	ShowBySlug(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type productController struct {
	productService service.IProductService
	adminGuard     fiber.Handler
}

func NewProductController(productService service.IProductService, adminGuard fiber.Handler) IProductController {
	return &productController{
		productService: productService,
		adminGuard:     adminGuard,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get("", c.List)
	// Must stay ahead of /:slug.
	h.Get("/id/:id", c.Show)
	h.Get("/:slug", c.ShowBySlug)

	// Admin only
	h.Post("", c.adminGuard, c.Create)
	h.Patch("/:id", c.adminGuard, c.Update)
	h.Delete("/:id", c.adminGuard, c.Delete)
}

// parseProductListQuery reads series, limit and skip. Shared with the admin
// listing, which adds includeInactive.
func parseProductListQuery(ctx *fiber.Ctx) (*dto.ProductListQuery, error) {
	query := &dto.ProductListQuery{}

	if raw := ctx.Query("series"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, serverutils.BadRequest("Invalid series ID")
		}
		query.SeriesId = &id
	}

	limit, err := serverutils.QueryInt(ctx, "limit", service.DefaultProductLimit)
	if err != nil {
		return nil, err
	}
	skip, err := serverutils.QueryInt(ctx, "skip", 0)
	if err != nil {
		return nil, err
	}
	query.Limit = limit
	query.Skip = skip
	return query, nil
}

func (c *productController) List(ctx *fiber.Ctx) error {
	query, err := parseProductListQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.productService.List(ctx.UserContext(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *productController) ShowBySlug(ctx *fiber.Ctx) error {
	res, err := c.productService.ShowBySlug(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id", "product")
	if err != nil {
		return err
	}

	res, err := c.productService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req *dto.CreateProductRequest
	var closer io.Closer

	if isFormRequest(ctx) {
		form, err := readProductForm(ctx)
		if err != nil {
			return err
		}
		if req, err = form.createRequest(); err != nil {
			return err
		}
		if req.Image, closer, err = form.openImage(); err != nil {
			return err
		}
	} else {
		req = &dto.CreateProductRequest{}
		if err := ctx.BodyParser(req); err != nil {
			return serverutils.BadRequest("Invalid request body")
		}
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Create(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create product", res))
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id", "product")
	if err != nil {
		return err
	}

	var req *dto.UpdateProductRequest
	var closer io.Closer

	if isFormRequest(ctx) {
		form, err := readProductForm(ctx)
		if err != nil {
			return err
		}
		if req, err = form.updateRequest(); err != nil {
			return err
		}
		if req.Image, closer, err = form.openImage(); err != nil {
			return err
		}
	} else {
		req = &dto.UpdateProductRequest{}
		if err := ctx.BodyParser(req); err != nil {
			return serverutils.BadRequest("Invalid request body")
		}
	}
	if closer != nil {
		defer closer.Close()
	}
	req.Id = id

	res, err := c.productService.Update(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *productController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id", "product")
	if err != nil {
		return err
	}

	if err := c.productService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete product", dto.MessageResponse{Message: "Product deleted"}))
}
