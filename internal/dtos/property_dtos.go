package dtos

import "github.com/havenstay/backend/internal/models"

type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Description string   `json:"description" validate:"required,min=10"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Location    string   `json:"location" validate:"required"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms" validate:"gte=0"`
	Area        float64  `json:"area" validate:"required,gt=0"`
	Type        string   `json:"type" validate:"required,oneof=apartment house villa studio"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images" validate:"dive,url"`
}

type UpdatePropertyRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=10"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Location    *string  `json:"location,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Area        *float64 `json:"area,omitempty" validate:"omitempty,gt=0"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=apartment house villa studio"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty" validate:"omitempty,dive,url"`
}

type PropertyListResponse struct {
	Properties []models.Property `json:"properties"`
}
