package handlers

import (
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SaleHandler handles HTTP requests for sales.
type SaleHandler struct {
	service   *services.SaleService
	validator *validation.Validator
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(service *services.SaleService, validator *validation.Validator) *SaleHandler {
	return &SaleHandler{service: service, validator: validator}
}

// RegisterRoutes registers the sale routes on router.
func (h *SaleHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/sales")
	routes.Get("/", h.HandleGetSales)
	routes.Post("/", h.HandleCreateSale)
	routes.Patch("/", h.HandleUpdateSale)
	routes.Put("/", h.HandleUpdateSale)
	routes.Delete("/:id/cancel", h.HandleCancelSale)
	routes.Get("/:id", h.HandleGetSaleByID)
	routes.Delete("/:id", h.HandleDeleteSales)
}

func (h *SaleHandler) HandleGetSales(c *fiber.Ctx) error {
	params, err := listParams(c, repositories.SaleSortColumns)
	if err != nil {
		return err
	}
	filter := repositories.SaleFilter{Product: c.Query("product")}

	sales, count, err := h.service.List(c.UserContext(), filter, params)
	if err != nil {
		return failed("getting sales", err)
	}
	return respondList(c, "sales", sales, len(sales) == 0, count, params)
}

func (h *SaleHandler) HandleGetSaleByID(c *fiber.Ctx) error {
	id, errs := validation.ID(c.Params("id"), "Sale")
	if errs != nil {
		return invalid(errs)
	}
	sale, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return failed("getting sale", err)
	}
	return c.JSON(fiber.Map{"sale": sale})
}

// HandleCreateSale records a sale and takes its quantity off the counter.
func (h *SaleHandler) HandleCreateSale(c *fiber.Ctx) error {
	var in models.SaleInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Sale(ctx, &in)
	if err != nil {
		return failed("creating sale", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	sale, err := h.service.Create(ctx, &in)
	if err != nil {
		return failed("creating sale", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sale": sale})
}

// HandleUpdateSale changes the quantity of a sale. A request that keeps the
// quantity only gets a confirmation message.
func (h *SaleHandler) HandleUpdateSale(c *fiber.Ctx) error {
	var in models.SaleUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.SaleUpdate(ctx, &in)
	if err != nil {
		return failed("updating sale", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	sale, err := h.service.Update(ctx, &in)
	if err != nil {
		return failed("updating sale", err)
	}
	if sale == nil {
		return c.JSON(fiber.Map{"message": "Sale updated successfully"})
	}
	return c.JSON(fiber.Map{"sale": sale})
}

// HandleCancelSale deletes a sale and returns its quantity to the counter.
func (h *SaleHandler) HandleCancelSale(c *fiber.Ctx) error {
	id, errs := validation.ID(c.Params("id"), "Sale")
	if errs != nil {
		return invalid(errs)
	}
	if err := h.service.Cancel(c.UserContext(), id); err != nil {
		return failed("cancelling sale", err)
	}
	return c.JSON(fiber.Map{"message": "Sale cancelled successfully"})
}

// HandleDeleteSales deletes sales. Product stock is kept.
func (h *SaleHandler) HandleDeleteSales(c *fiber.Ctx) error {
	ids, errs := validation.IDs(c.Params("id"), "Sale")
	if errs != nil {
		return invalid(errs)
	}
	if err := h.service.Delete(c.UserContext(), ids); err != nil {
		return failed("deleting sales", err)
	}
	return deleted(c, "Sale", "sales", len(ids))
}
