package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyTypeType string

const (
	PropertyTypeApartment PropertyTypeType = "apartment"
	PropertyTypeHouse     PropertyTypeType = "house"
	PropertyTypeVilla     PropertyTypeType = "villa"
	PropertyTypeStudio    PropertyTypeType = "studio"
)

type Property struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Location    string           `json:"location"`
	Bedrooms    int              `json:"bedrooms"`
	Bathrooms   int              `json:"bathrooms"`
	Area        float64          `json:"area"`
	Type        PropertyTypeType `json:"type"`
	Amenities   []string         `json:"amenities"`
	Images      []string         `json:"images"`
	OwnerID     uuid.UUID        `json:"ownerId"`
	OwnerName   string           `json:"ownerName"`
	IsApproved  bool             `json:"isApproved"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// PropertyInput is everything the owner supplies at listing time. Ownership
// and approval lineage are stamped by the repository, never by the caller.
type PropertyInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Location    string           `json:"location"`
	Bedrooms    int              `json:"bedrooms"`
	Bathrooms   int              `json:"bathrooms"`
	Area        float64          `json:"area"`
	Type        PropertyTypeType `json:"type"`
	Amenities   []string         `json:"amenities"`
	Images      []string         `json:"images"`
}

// PropertyUpdate carries a partial edit. Ownership and approval fields are
// deliberately absent; approval moves only through Approve.
type PropertyUpdate struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	Location    *string           `json:"location,omitempty"`
	Bedrooms    *int              `json:"bedrooms,omitempty"`
	Bathrooms   *int              `json:"bathrooms,omitempty"`
	Area        *float64          `json:"area,omitempty"`
	Type        *PropertyTypeType `json:"type,omitempty"`
	Amenities   []string          `json:"amenities,omitempty"`
	Images      []string          `json:"images,omitempty"`
}

// PropertyFilters narrows the approved listing set. A nil field imposes no
// constraint.
type PropertyFilters struct {
	Location  *string
	PriceMin  *float64
	PriceMax  *float64
	Bedrooms  *int
	Bathrooms *int
	Type      *PropertyTypeType
}
