package handlers

import (
	"speedxpress/internal/middleware"
	"speedxpress/internal/models"
	"speedxpress/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShopHandler handles HTTP requests for merchant shops.
type ShopHandler struct {
	base
	shops *services.ShopService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(shops *services.ShopService, logger *zap.Logger) *ShopHandler {
	return &ShopHandler{base: newBase(logger), shops: shops}
}

// RegisterRoutes registers the shop routes with the Fiber app.
func (h *ShopHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/create-shop", authRequired, h.HandleCreateShop)
	router.Patch("/update-shop", authRequired, h.HandleUpdateShop)
	router.Get("/shop", h.HandleListShops)
	router.Delete("/delete-shop", authRequired, h.HandleDeleteShop)
}

type updateShopRequest struct {
	ShopID      string             `json:"shopId" validate:"required"`
	UpdatedData models.ShopProfile `json:"updatedData"`
}

type deleteShopRequest struct {
	ShopID string `json:"shopId" validate:"required"`
}

// HandleCreateShop creates a shop owned by the caller.
func (h *ShopHandler) HandleCreateShop(c *fiber.Ctx) error {
	var shop models.Shop
	if err := h.parseBody(c, &shop); err != nil {
		return h.fail(c, err)
	}
	if err := middleware.RequireOwner(c, shop.ShopEmail); err != nil {
		return h.fail(c, err)
	}

	id, err := h.shops.CreateShop(c.UserContext(), &shop)
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusCreated, "shop creation successfully", fiber.Map{"insertedId": id})
}

// HandleUpdateShop sets the profile fields of a shop owned by the caller.
func (h *ShopHandler) HandleUpdateShop(c *fiber.Ctx) error {
	var req updateShopRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := h.requireShopOwner(c, req.ShopID); err != nil {
		return h.fail(c, err)
	}
	result, err := h.shops.UpdateProfile(c.UserContext(), req.ShopID, req.UpdatedData)
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "Shop updated successfully", result)
}

// HandleListShops lists the shops registered to the email query parameter.
func (h *ShopHandler) HandleListShops(c *fiber.Ctx) error {
	shops, err := h.shops.ListByOwner(c.UserContext(), c.Query("email"))
	return listResponse(h.base, c, shops, err, "No shop found")
}

// HandleDeleteShop removes the shop named in the body.
func (h *ShopHandler) HandleDeleteShop(c *fiber.Ctx) error {
	var req deleteShopRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := h.requireShopOwner(c, req.ShopID); err != nil {
		return h.fail(c, err)
	}
	if err := h.shops.DeleteShop(c.UserContext(), req.ShopID); err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "shop deleted successfully", nil)
}

func (h *ShopHandler) requireShopOwner(c *fiber.Ctx, id string) error {
	shop, err := h.shops.GetShop(c.UserContext(), id)
	if err != nil {
		return err
	}
	return middleware.RequireOwner(c, shop.ShopEmail)
}
