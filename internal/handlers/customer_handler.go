package handlers

import (
	"speedxpress/internal/middleware"
	"speedxpress/internal/models"
	"speedxpress/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests for merchant customers.
type CustomerHandler struct {
	base
	customers *services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers *services.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{base: newBase(logger), customers: customers}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Put("/customer/:email", authRequired, h.HandleSaveCustomer)
	router.Get("/customers/:email", h.HandleListCustomers)
}

// HandleSaveCustomer upserts the customer identified by the path email.
// The caller must be the customer or its merchant: the stored one when the
// customer exists, otherwise the one named in the body.
func (h *CustomerHandler) HandleSaveCustomer(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := h.checkEmail("email", email); err != nil {
		return h.fail(c, err)
	}

	var customer models.Customer
	if err := h.parseBody(c, &customer); err != nil {
		return h.fail(c, err)
	}
	owners, err := h.customers.Owners(c.UserContext(), email, &customer)
	if err != nil {
		return h.fail(c, err)
	}
	if err := middleware.RequireOwner(c, owners...); err != nil {
		return h.fail(c, err)
	}

	result, err := h.customers.SaveCustomer(c.UserContext(), email, &customer)
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "", result)
}

// HandleListCustomers lists the customers of a merchant.
func (h *CustomerHandler) HandleListCustomers(c *fiber.Ctx) error {
	customers, err := h.customers.ListByMerchant(c.UserContext(), c.Params("email"))
	return listResponse(h.base, c, customers, err, "No customer found")
}
