package handlers

import (
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service   *services.CategoryService
	validator *validation.Validator
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, validator *validation.Validator) *CategoryHandler {
	return &CategoryHandler{service: service, validator: validator}
}

// RegisterRoutes registers the category routes on router.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/categories")
	routes.Get("/", h.HandleGetCategories)
	routes.Post("/", h.HandleCreateCategory)
	routes.Patch("/", h.HandleUpdateCategory)
	routes.Put("/", h.HandleUpdateCategory)
	routes.Get("/:id", h.HandleGetCategoryByID)
	routes.Delete("/:id", h.HandleDeleteCategories)
}

// HandleGetCategories lists categories, optionally filtered by name.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	params, err := listParams(c, repositories.CategorySortColumns)
	if err != nil {
		return err
	}
	filter := repositories.CategoryFilter{Name: c.Query("name")}

	categories, count, err := h.service.List(c.UserContext(), filter, params)
	if err != nil {
		return failed("getting categories", err)
	}
	return respondList(c, "categories", categories, len(categories) == 0, count, params)
}

func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, errs := validation.ID(c.Params("id"), "Category")
	if errs != nil {
		return invalid(errs)
	}
	category, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return failed("getting category", err)
	}
	return c.JSON(fiber.Map{"category": category})
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var in models.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Category(ctx, &in, false)
	if err != nil {
		return failed("creating category", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	category, err := h.service.Create(ctx, &in)
	if err != nil {
		return failed("creating category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"category": category})
}

// HandleUpdateCategory updates the category named by the id in the body.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var in models.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Category(ctx, &in, true)
	if err != nil {
		return failed("updating category", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	category, err := h.service.Update(ctx, &in)
	if err != nil {
		return failed("updating category", err)
	}
	return c.JSON(fiber.Map{"category": category})
}

// HandleDeleteCategories deletes a comma separated list of categories with
// their products.
func (h *CategoryHandler) HandleDeleteCategories(c *fiber.Ctx) error {
	ids, errs := validation.IDs(c.Params("id"), "Category")
	if errs != nil {
		return invalid(errs)
	}
	if err := h.service.Delete(c.UserContext(), ids); err != nil {
		return failed("deleting categories", err)
	}
	return deleted(c, "Category", "categories", len(ids))
}
