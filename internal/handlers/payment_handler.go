package handlers

import (
	"speedxpress/internal/models"
	"speedxpress/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PaymentHandler handles parcel payments.
type PaymentHandler struct {
	base
	payments *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments *services.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{base: newBase(logger), payments: payments}
}

// RegisterRoutes registers the payment route with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/payment", authRequired, h.HandlePayment)
}

// HandlePayment charges the parcel named in the body.
func (h *PaymentHandler) HandlePayment(c *fiber.Ctx) error {
	var req models.PaymentRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	result, err := h.payments.PayParcel(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "Payment successful", result)
}
