package handlers

import (
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service   *services.ProductService
	validator *validation.Validator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validator *validation.Validator) *ProductHandler {
	return &ProductHandler{service: service, validator: validator}
}

// RegisterRoutes registers the product routes on router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/products")
	routes.Get("/", h.HandleGetProducts)
	routes.Post("/", h.HandleCreateProduct)
	routes.Patch("/", h.HandleUpdateProduct)
	routes.Put("/", h.HandleUpdateProduct)
	routes.Get("/:id", h.HandleGetProductByID)
	routes.Delete("/:id", h.HandleDeleteProducts)
}

// HandleGetProducts lists products filtered by name, category name or
// category id.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	params, err := listParams(c, repositories.ProductSortColumns)
	if err != nil {
		return err
	}
	filter := repositories.ProductFilter{
		Name:       c.Query("name"),
		Category:   c.Query("category"),
		CategoryID: c.Query("categoryId"),
	}

	products, count, err := h.service.List(c.UserContext(), filter, params)
	if err != nil {
		return failed("getting products", err)
	}
	return respondList(c, "products", products, len(products) == 0, count, params)
}

func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, errs := validation.ID(c.Params("id"), "Product")
	if errs != nil {
		return invalid(errs)
	}
	product, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return failed("getting product", err)
	}
	return c.JSON(fiber.Map{"product": product})
}

func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Product(ctx, &in, false)
	if err != nil {
		return failed("creating product", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	product, err := h.service.Create(ctx, &in)
	if err != nil {
		return failed("creating product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": product})
}

// HandleUpdateProduct updates the product named by the id in the body.
// Stock levels in the body are ignored.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Product(ctx, &in, true)
	if err != nil {
		return failed("updating product", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	product, err := h.service.Update(ctx, &in)
	if err != nil {
		return failed("updating product", err)
	}
	return c.JSON(fiber.Map{"product": product})
}

func (h *ProductHandler) HandleDeleteProducts(c *fiber.Ctx) error {
	ids, errs := validation.IDs(c.Params("id"), "Product")
	if errs != nil {
		return invalid(errs)
	}
	if err := h.service.Delete(c.UserContext(), ids); err != nil {
		return failed("deleting products", err)
	}
	return deleted(c, "Product", "products", len(ids))
}
