package handlers

import (
	"fmt"

	"speedxpress/internal/apperr"
	"speedxpress/internal/middleware"
	"speedxpress/internal/models"
	"speedxpress/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for users and tokens.
type UserHandler struct {
	base
	users *services.UserService
	auth  *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *services.UserService, auth *services.AuthService, logger *zap.Logger) *UserHandler {
	return &UserHandler{base: newBase(logger), users: users, auth: auth}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Put("/user/:email", authRequired, h.HandleSaveUser)
	router.Get("/user/:email", h.HandleGetAccountType)
	router.Get("/userData/:email", h.HandleGetUser)
	router.Get("/getUser/:userType", h.HandleListUsers)
	router.Get("/jwt", h.HandleIssueToken)
}

// HandleSaveUser upserts the user identified by the path email.
func (h *UserHandler) HandleSaveUser(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := h.checkEmail("email", email); err != nil {
		return h.fail(c, err)
	}
	if err := middleware.RequireOwner(c, email); err != nil {
		return h.fail(c, err)
	}

	var user models.User
	if err := h.parseBody(c, &user); err != nil {
		return h.fail(c, err)
	}

	result, err := h.users.SaveUser(c.UserContext(), email, &user)
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "", result)
}

// HandleGetAccountType returns only the account type of a user.
func (h *UserHandler) HandleGetAccountType(c *fiber.Ctx) error {
	email := c.Params("email")
	accountType, err := h.users.GetAccountType(c.UserContext(), email)
	if apperr.Is(err, apperr.KindNotFound) || (err == nil && accountType == "") {
		return c.Status(fiber.StatusOK).JSON(envelope{Success: false, Message: "no account found", Data: nil})
	}
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, fmt.Sprintf("user founded and account type is %s", accountType), accountType)
}

// HandleGetUser returns the full user record, or null data when absent.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.users.GetUser(c.UserContext(), c.Params("email"))
	if apperr.Is(err, apperr.KindNotFound) {
		return c.Status(fiber.StatusOK).JSON(envelope{Success: false, Message: "no account found", Data: nil})
	}
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "", user)
}

// HandleListUsers lists users of one account type.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListByAccountType(c.UserContext(), c.Params("userType"))
	return listResponse(h.base, c, users, err, "no data found")
}

// HandleIssueToken signs a token for the email query parameter.
func (h *UserHandler) HandleIssueToken(c *fiber.Ctx) error {
	email := c.Query("email")
	if err := h.checkEmail("email", email); err != nil {
		return h.fail(c, err)
	}
	token, err := h.auth.IssueToken(email)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}
