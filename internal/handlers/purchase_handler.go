package handlers

import (
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler handles HTTP requests for purchases.
type PurchaseHandler struct {
	service   *services.PurchaseService
	validator *validation.Validator
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(service *services.PurchaseService, validator *validation.Validator) *PurchaseHandler {
	return &PurchaseHandler{service: service, validator: validator}
}

// RegisterRoutes registers the purchase routes on router.
func (h *PurchaseHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/purchases")
	routes.Get("/", h.HandleGetPurchases)
	routes.Post("/", h.HandleCreatePurchase)
	routes.Patch("/", h.HandleUpdatePurchase)
	routes.Put("/", h.HandleUpdatePurchase)
	routes.Get("/:id", h.HandleGetPurchaseByID)
	routes.Delete("/:id", h.HandleDeletePurchases)
}

// HandleGetPurchases lists purchases filtered by supplier or product name.
func (h *PurchaseHandler) HandleGetPurchases(c *fiber.Ctx) error {
	params, err := listParams(c, repositories.PurchaseSortColumns)
	if err != nil {
		return err
	}
	filter := repositories.PurchaseFilter{
		Supplier: c.Query("supplier"),
		Product:  c.Query("product"),
	}

	purchases, count, err := h.service.List(c.UserContext(), filter, params)
	if err != nil {
		return failed("getting purchases", err)
	}
	return respondList(c, "purchases", purchases, len(purchases) == 0, count, params)
}

func (h *PurchaseHandler) HandleGetPurchaseByID(c *fiber.Ctx) error {
	id, errs := validation.ID(c.Params("id"), "Purchase")
	if errs != nil {
		return invalid(errs)
	}
	purchase, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return failed("getting purchase", err)
	}
	return c.JSON(fiber.Map{"purchase": purchase})
}

// HandleCreatePurchase records a purchase and adds its stock to the product.
func (h *PurchaseHandler) HandleCreatePurchase(c *fiber.Ctx) error {
	var in models.PurchaseInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Purchase(ctx, &in, false)
	if err != nil {
		return failed("creating purchase", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	purchase, err := h.service.Create(ctx, &in)
	if err != nil {
		return failed("creating purchase", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"purchase": purchase})
}

func (h *PurchaseHandler) HandleUpdatePurchase(c *fiber.Ctx) error {
	var in models.PurchaseInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Purchase(ctx, &in, true)
	if err != nil {
		return failed("updating purchase", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	purchase, err := h.service.Update(ctx, &in)
	if err != nil {
		return failed("updating purchase", err)
	}
	return c.JSON(fiber.Map{"purchase": purchase})
}

// HandleDeletePurchases deletes purchases. Product stock is kept.
func (h *PurchaseHandler) HandleDeletePurchases(c *fiber.Ctx) error {
	ids, errs := validation.IDs(c.Params("id"), "Purchase")
	if errs != nil {
		return invalid(errs)
	}
	if err := h.service.Delete(c.UserContext(), ids); err != nil {
		return failed("deleting purchases", err)
	}
	return deleted(c, "Purchase", "purchases", len(ids))
}
