package handlers

import (
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler handles HTTP requests for transfers. Transfers cannot be
// updated.
type TransferHandler struct {
	service   *services.TransferService
	validator *validation.Validator
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(service *services.TransferService, validator *validation.Validator) *TransferHandler {
	return &TransferHandler{service: service, validator: validator}
}

// RegisterRoutes registers the transfer routes on router.
func (h *TransferHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/transfers")
	routes.Get("/", h.HandleGetTransfers)
	routes.Post("/", h.HandleCreateTransfer)
	routes.Get("/:id", h.HandleGetTransferByID)
	routes.Delete("/:id", h.HandleDeleteTransfers)
}

func (h *TransferHandler) HandleGetTransfers(c *fiber.Ctx) error {
	params, err := listParams(c, repositories.TransferSortColumns)
	if err != nil {
		return err
	}
	filter := repositories.TransferFilter{Product: c.Query("product")}

	transfers, count, err := h.service.List(c.UserContext(), filter, params)
	if err != nil {
		return failed("getting transfers", err)
	}
	return respondList(c, "transfers", transfers, len(transfers) == 0, count, params)
}

func (h *TransferHandler) HandleGetTransferByID(c *fiber.Ctx) error {
	id, errs := validation.ID(c.Params("id"), "Transfer")
	if errs != nil {
		return invalid(errs)
	}
	transfer, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return failed("getting transfer", err)
	}
	return c.JSON(fiber.Map{"transfer": transfer})
}

// HandleCreateTransfer moves stock between the store and the counter.
func (h *TransferHandler) HandleCreateTransfer(c *fiber.Ctx) error {
	var in models.TransferInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	ctx := c.UserContext()
	errs, err := h.validator.Transfer(ctx, &in)
	if err != nil {
		return failed("creating transfer", err)
	}
	if errs != nil {
		return invalid(errs)
	}

	transfer, err := h.service.Create(ctx, &in)
	if err != nil {
		return failed("creating transfer", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"transfer": transfer})
}

func (h *TransferHandler) HandleDeleteTransfers(c *fiber.Ctx) error {
	ids, errs := validation.IDs(c.Params("id"), "Transfer")
	if errs != nil {
		return invalid(errs)
	}
	if err := h.service.Delete(c.UserContext(), ids); err != nil {
		return failed("deleting transfers", err)
	}
	return deleted(c, "Transfer", "transfers", len(ids))
}
