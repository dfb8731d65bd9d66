package handlers

import (
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	service   *services.SupplierService
	validator *validation.Validator
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService, validator *validation.Validator) *SupplierHandler {
	return &SupplierHandler{service: service, validator: validator}
}

// RegisterRoutes registers the supplier routes on router.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/suppliers")
	routes.Get("/", h.HandleGetSuppliers)
	routes.Post("/", h.HandleCreateSupplier)
	routes.Patch("/", h.HandleUpdateSupplier)
	routes.Put("/", h.HandleUpdateSupplier)
	routes.Get("/:id", h.HandleGetSupplierByID)
	routes.Delete("/:id", h.HandleDeleteSuppliers)
}

func (h *SupplierHandler) HandleGetSuppliers(c *fiber.Ctx) error {
	params, err := listParams(c, repositories.SupplierSortColumns)
	if err != nil {
		return err
	}
	filter := repositories.SupplierFilter{Name: c.Query("name")}

	suppliers, count, err := h.service.List(c.UserContext(), filter, params)
	if err != nil {
		return failed("getting suppliers", err)
	}
	return respondList(c, "suppliers", suppliers, len(suppliers) == 0, count, params)
}

func (h *SupplierHandler) HandleGetSupplierByID(c *fiber.Ctx) error {
	id, errs := validation.ID(c.Params("id"), "Supplier")
	if errs != nil {
		return invalid(errs)
	}
	supplier, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return failed("getting supplier", err)
	}
	return c.JSON(fiber.Map{"supplier": supplier})
}

func (h *SupplierHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	var in models.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Supplier(ctx, &in, false)
	if err != nil {
		return failed("creating supplier", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	supplier, err := h.service.Create(ctx, &in)
	if err != nil {
		return failed("creating supplier", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"supplier": supplier})
}

func (h *SupplierHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	var in models.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Supplier(ctx, &in, true)
	if err != nil {
		return failed("updating supplier", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	supplier, err := h.service.Update(ctx, &in)
	if err != nil {
		return failed("updating supplier", err)
	}
	return c.JSON(fiber.Map{"supplier": supplier})
}

// HandleDeleteSuppliers deletes suppliers together with their purchases.
func (h *SupplierHandler) HandleDeleteSuppliers(c *fiber.Ctx) error {
	ids, errs := validation.IDs(c.Params("id"), "Supplier")
	if errs != nil {
		return invalid(errs)
	}
	if err := h.service.Delete(c.UserContext(), ids); err != nil {
		return failed("deleting suppliers", err)
	}
	return deleted(c, "Supplier", "suppliers", len(ids))
}
