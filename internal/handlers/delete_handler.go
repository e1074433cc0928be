package handlers

import (
	"speedxpress/internal/middleware"
	"speedxpress/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeleteHandler removes records addressed by kind and id.
type DeleteHandler struct {
	base
	deletions *services.DeletionService
}

// NewDeleteHandler creates a new DeleteHandler.
func NewDeleteHandler(deletions *services.DeletionService, logger *zap.Logger) *DeleteHandler {
	return &DeleteHandler{base: newBase(logger), deletions: deletions}
}

// RegisterRoutes registers the delete route with the Fiber app.
func (h *DeleteHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Delete("/delete/:kind/:id", authRequired, h.HandleDelete)
}

// HandleDelete deletes one customer, employee, merchant or parcel owned by
// the caller.
func (h *DeleteHandler) HandleDelete(c *fiber.Ctx) error {
	kind, id := c.Params("kind"), c.Params("id")
	owners, err := h.deletions.Owners(c.UserContext(), kind, id)
	if err != nil {
		return h.fail(c, err)
	}
	if err := middleware.RequireOwner(c, owners...); err != nil {
		return h.fail(c, err)
	}
	if err := h.deletions.Delete(c.UserContext(), kind, id); err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "Deleted successfully", nil)
}
