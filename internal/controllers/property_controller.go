package controllers

import (
	"net/http"
	"strconv"

	"github.com/havenstay/backend/internal/dtos"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/repositories"
	"github.com/havenstay/backend/internal/utils"
)

type PropertyController struct {
	repo repositories.PropertyRepository
}

func NewPropertyController(repo repositories.PropertyRepository) *PropertyController {
	return &PropertyController{repo: repo}
}

// -----------------------------------------------------------------------------
// GET /properties
// -----------------------------------------------------------------------------
func (c *PropertyController) List(w http.ResponseWriter, r *http.Request) {
	properties := c.repo.List(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyListResponse{Properties: properties})
}

// -----------------------------------------------------------------------------
// GET /properties/search
// -----------------------------------------------------------------------------
// Absent query parameters impose no constraint.
func (c *PropertyController) Search(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Malformed filter parameter", nil, err,
		)
		return
	}

	properties := c.repo.Filter(r.Context(), filters)
	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyListResponse{Properties: properties})
}

// -----------------------------------------------------------------------------
// POST /properties
// -----------------------------------------------------------------------------
func (c *PropertyController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	property, err := c.repo.Create(r.Context(), models.PropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Type:        models.PropertyTypeType(req.Type),
		Amenities:   req.Amenities,
		Images:      req.Images,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, property)
}

// -----------------------------------------------------------------------------
// PATCH /properties/{id}
// -----------------------------------------------------------------------------
func (c *PropertyController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req dtos.UpdatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updates := models.PropertyUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Amenities:   req.Amenities,
		Images:      req.Images,
	}
	if req.Type != nil {
		t := models.PropertyTypeType(*req.Type)
		updates.Type = &t
	}

	property, err := c.repo.Update(r.Context(), id, updates)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// -----------------------------------------------------------------------------
// DELETE /properties/{id}
// -----------------------------------------------------------------------------
func (c *PropertyController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := c.repo.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// -----------------------------------------------------------------------------
// POST /properties/{id}/approve
// -----------------------------------------------------------------------------
func (c *PropertyController) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	property, err := c.repo.Approve(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

func parseFilters(r *http.Request) (models.PropertyFilters, error) {
	q := r.URL.Query()
	var filters models.PropertyFilters

	if v := q.Get("location"); v != "" {
		filters.Location = &v
	}
	if v := q.Get("priceMin"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, err
		}
		filters.PriceMin = &f
	}
	if v := q.Get("priceMax"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, err
		}
		filters.PriceMax = &f
	}
	if v := q.Get("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, err
		}
		filters.Bedrooms = &n
	}
	if v := q.Get("bathrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, err
		}
		filters.Bathrooms = &n
	}
	if v := q.Get("type"); v != "" {
		t := models.PropertyTypeType(v)
		filters.Type = &t
	}
	return filters, nil
}
