package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatusType string

const (
	BookingStatusPending   BookingStatusType = "pending"
	BookingStatusConfirmed BookingStatusType = "confirmed"
	BookingStatusRejected  BookingStatusType = "rejected"
	BookingStatusCancelled BookingStatusType = "cancelled"
)

// Booking is a stay request against an approved property. The status is
// overwritten unconditionally by the confirm/reject/cancel operations.
type Booking struct {
	ID            uuid.UUID         `json:"id"`
	PropertyID    uuid.UUID         `json:"propertyId"`
	PropertyTitle string            `json:"propertyTitle"`
	RenterID      uuid.UUID         `json:"renterId"`
	RenterName    string            `json:"renterName"`
	RenterEmail   string            `json:"renterEmail"`
	CheckIn       time.Time         `json:"checkIn"`
	CheckOut      time.Time         `json:"checkOut"`
	TotalPrice    float64           `json:"totalPrice"`
	Status        BookingStatusType `json:"status"`
	Message       string            `json:"message,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// BookingInput is a booking without its repository-assigned fields.
type BookingInput struct {
	PropertyID    uuid.UUID `json:"propertyId"`
	PropertyTitle string    `json:"propertyTitle"`
	RenterID      uuid.UUID `json:"renterId"`
	RenterName    string    `json:"renterName"`
	RenterEmail   string    `json:"renterEmail"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	TotalPrice    float64   `json:"totalPrice"`
	Message       string    `json:"message,omitempty"`
}
