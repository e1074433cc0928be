package handlers

import (
	"speedxpress/internal/middleware"
	"speedxpress/internal/models"
	"speedxpress/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ParcelHandler handles HTTP requests for parcels.
type ParcelHandler struct {
	base
	parcels *services.ParcelService
}

// NewParcelHandler creates a new ParcelHandler.
func NewParcelHandler(parcels *services.ParcelService, logger *zap.Logger) *ParcelHandler {
	return &ParcelHandler{base: newBase(logger), parcels: parcels}
}

// RegisterRoutes registers the parcel routes with the Fiber app.
func (h *ParcelHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/parcel", authRequired, h.HandleCreateParcel)
	router.Get("/parcel/:id", h.HandleGetParcel)
	router.Get("/parcels", h.HandleListBySender)
	router.Get("/parcels/:district", h.HandleListByDistrict)
	router.Get("/all-parcels", h.HandleListAll)
	router.Patch("/update-status", authRequired, h.HandleUpdateStatus)
}

type updateStatusRequest struct {
	ParcelID      string `json:"parcelId" validate:"required"`
	UpdatedStatus string `json:"updatedStatus" validate:"required"`
}

// HandleCreateParcel stores a parcel on behalf of its sender.
func (h *ParcelHandler) HandleCreateParcel(c *fiber.Ctx) error {
	var parcel models.Parcel
	if err := h.parseBody(c, &parcel); err != nil {
		return h.fail(c, err)
	}
	if err := middleware.RequireOwner(c, parcel.SenderEmail); err != nil {
		return h.fail(c, err)
	}

	id, err := h.parcels.CreateParcel(c.UserContext(), &parcel)
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusCreated, "parcel creation successfully", fiber.Map{"insertedId": id})
}

// HandleGetParcel returns one parcel, used for tracking.
func (h *ParcelHandler) HandleGetParcel(c *fiber.Ctx) error {
	parcel, err := h.parcels.GetParcel(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "", parcel)
}

// HandleListBySender lists parcels by the email query parameter.
func (h *ParcelHandler) HandleListBySender(c *fiber.Ctx) error {
	parcels, err := h.parcels.ListBySender(c.UserContext(), c.Query("email"))
	return listResponse(h.base, c, parcels, err, "No Parcels found")
}

// HandleListByDistrict lists parcels bound for a district, optionally
// filtered by the status query parameter.
func (h *ParcelHandler) HandleListByDistrict(c *fiber.Ctx) error {
	parcels, err := h.parcels.ListByDistrict(c.UserContext(), c.Params("district"), c.Query("status"))
	return listResponse(h.base, c, parcels, err, "No Parcels found")
}

// HandleListAll lists every parcel.
func (h *ParcelHandler) HandleListAll(c *fiber.Ctx) error {
	parcels, err := h.parcels.ListAll(c.UserContext())
	return listResponse(h.base, c, parcels, err, "No Parcels found")
}

// HandleUpdateStatus moves a parcel to a new delivery status.
func (h *ParcelHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := h.parcels.UpdateStatus(c.UserContext(), req.ParcelID, req.UpdatedStatus); err != nil {
		return h.fail(c, err)
	}
	return h.ok(c, fiber.StatusOK, "Status updated successfully", nil)
}
