package dtos

import (
	"time"

	"github.com/havenstay/backend/internal/models"
)

type CreateBookingRequest struct {
	PropertyID    string    `json:"propertyId" validate:"required,uuid"`
	PropertyTitle string    `json:"propertyTitle" validate:"required"`
	RenterName    string    `json:"renterName" validate:"required"`
	RenterEmail   string    `json:"renterEmail" validate:"required,email"`
	CheckIn       time.Time `json:"checkIn" validate:"required"`
	CheckOut      time.Time `json:"checkOut" validate:"required"`
	TotalPrice    float64   `json:"totalPrice" validate:"required,gt=0"`
	Message       string    `json:"message,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected"`
}

type BookingListResponse struct {
	Bookings []models.Booking `json:"bookings"`
}
