package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/havenstay/backend/internal/dtos"
	"github.com/havenstay/backend/internal/middleware"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/repositories"
	"github.com/havenstay/backend/internal/utils"
)

type BookingController struct {
	repo repositories.BookingRepository
}

func NewBookingController(repo repositories.BookingRepository) *BookingController {
	return &BookingController{repo: repo}
}

// -----------------------------------------------------------------------------
// GET /bookings
// -----------------------------------------------------------------------------
func (c *BookingController) ListForRenter(w http.ResponseWriter, r *http.Request) {
	bookings := c.repo.ListForRenter(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dtos.BookingListResponse{Bookings: bookings})
}

// -----------------------------------------------------------------------------
// GET /bookings/owner
// -----------------------------------------------------------------------------
func (c *BookingController) ListForOwner(w http.ResponseWriter, r *http.Request) {
	bookings := c.repo.ListForOwner(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dtos.BookingListResponse{Bookings: bookings})
}

// -----------------------------------------------------------------------------
// POST /bookings
// -----------------------------------------------------------------------------
func (c *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Malformed propertyId", nil, err,
		)
		return
	}

	input := models.BookingInput{
		PropertyID:    propertyID,
		PropertyTitle: req.PropertyTitle,
		RenterName:    req.RenterName,
		RenterEmail:   req.RenterEmail,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		TotalPrice:    req.TotalPrice,
		Message:       req.Message,
	}
	if renterID, ok := r.Context().Value(middleware.ContextKeyUserID).(uuid.UUID); ok {
		input.RenterID = renterID
	}

	booking, err := c.repo.Create(r.Context(), input)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

// -----------------------------------------------------------------------------
// POST /bookings/{id}/status
// -----------------------------------------------------------------------------
func (c *BookingController) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateBookingStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := c.repo.SetStatus(r.Context(), id, models.BookingStatusType(req.Status))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// -----------------------------------------------------------------------------
// POST /bookings/{id}/cancel
// -----------------------------------------------------------------------------
func (c *BookingController) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	booking, err := c.repo.Cancel(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}
