package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/seeding"
	"github.com/havenstay/backend/internal/session"
	"github.com/havenstay/backend/internal/store"
	"github.com/havenstay/backend/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	List(ctx context.Context) []models.Property
	Create(ctx context.Context, input models.PropertyInput) (*models.Property, error)
	Update(ctx context.Context, id uuid.UUID, updates models.PropertyUpdate) (*models.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID) (*models.Property, error)
	Filter(ctx context.Context, filters models.PropertyFilters) []models.Property
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	mu         sync.RWMutex
	st         store.Store
	sess       *session.Manager
	cfg        *config.Config
	properties []models.Property
}

func NewPropertyRepository(st store.Store, sess *session.Manager, cfg *config.Config) PropertyRepository {
	r := &propertyRepo{st: st, sess: sess, cfg: cfg}
	sess.Subscribe(r.onSessionChange)
	return r
}

func (r *propertyRepo) onSessionChange(u *models.User) {
	if u == nil {
		r.mu.Lock()
		r.properties = nil
		r.mu.Unlock()
		return
	}
	r.load()
}

func (r *propertyRepo) load() {
	simulate(r.cfg.LoadDelay)

	properties, ok := store.LoadSlice[models.Property](r.st, store.KeyProperties)
	if !ok {
		properties = seeding.DemoProperties()
		if err := store.SaveSlice(r.st, store.KeyProperties, properties); err != nil {
			utils.Logger.WithError(err).Error("Failed to persist starter properties")
		}
	}

	r.mu.Lock()
	r.properties = properties
	r.mu.Unlock()
	utils.Logger.Infof("Loaded %d properties", len(properties))
}

func (r *propertyRepo) List(_ context.Context) []models.Property {
	return r.snapshot()
}

func (r *propertyRepo) snapshot() []models.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Property, len(r.properties))
	copy(out, r.properties)
	return out
}

type propertyInput struct {
	Title       string                  `validate:"required,min=3"`
	Description string                  `validate:"required,min=10"`
	Price       float64                 `validate:"required,gt=0"`
	Location    string                  `validate:"required"`
	Bedrooms    int                     `validate:"gte=0"`
	Bathrooms   int                     `validate:"gte=0"`
	Area        float64                 `validate:"gt=0"`
	Type        models.PropertyTypeType `validate:"required,oneof=apartment house villa studio"`
}

// Create lists a new property for the acting owner. The listing always
// starts unapproved; only an admin moves it to approved.
func (r *propertyRepo) Create(_ context.Context, input models.PropertyInput) (*models.Property, error) {
	u := r.sess.Current()
	if u == nil {
		return nil, fmt.Errorf("create property: %w", utils.ErrUnauthorized)
	}
	if u.Role != models.RoleOwner {
		return nil, fmt.Errorf("create property requires role %s: %w", models.RoleOwner, utils.ErrForbidden)
	}

	if err := validate.Struct(propertyInput{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Location:    strings.TrimSpace(input.Location),
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Area:        input.Area,
		Type:        input.Type,
	}); err != nil {
		return nil, fmt.Errorf("create property: %w: %v", utils.ErrValidation, err)
	}

	snapshot := r.snapshot()
	now := time.Now().UTC()
	property := models.Property{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Location:    strings.TrimSpace(input.Location),
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Area:        input.Area,
		Type:        input.Type,
		Amenities:   append([]string(nil), input.Amenities...),
		Images:      append([]string(nil), input.Images...),
		OwnerID:     u.ID,
		OwnerName:   u.Name,
		IsApproved:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	simulate(r.cfg.MutateDelay)

	if err := r.commit(append(snapshot, property)); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Property submitted for approval: %s", property.Title)
	return &property, nil
}

func (r *propertyRepo) Update(_ context.Context, id uuid.UUID, updates models.PropertyUpdate) (*models.Property, error) {
	snapshot := r.snapshot()

	simulate(r.cfg.MutateDelay)

	idx := -1
	for i := range snapshot {
		if snapshot[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("update property %s: %w", id, utils.ErrNotFound)
	}

	p := &snapshot[idx]
	if updates.Title != nil {
		p.Title = *updates.Title
	}
	if updates.Description != nil {
		p.Description = *updates.Description
	}
	if updates.Price != nil {
		p.Price = *updates.Price
	}
	if updates.Location != nil {
		p.Location = *updates.Location
	}
	if updates.Bedrooms != nil {
		p.Bedrooms = *updates.Bedrooms
	}
	if updates.Bathrooms != nil {
		p.Bathrooms = *updates.Bathrooms
	}
	if updates.Area != nil {
		p.Area = *updates.Area
	}
	if updates.Type != nil {
		p.Type = *updates.Type
	}
	if updates.Amenities != nil {
		p.Amenities = append([]string(nil), updates.Amenities...)
	}
	if updates.Images != nil {
		p.Images = append([]string(nil), updates.Images...)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := r.commit(snapshot); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Property updated: %s", p.ID)
	cp := *p
	return &cp, nil
}

func (r *propertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	snapshot := r.snapshot()

	simulate(r.cfg.MutateDelay)

	updated := snapshot[:0:0]
	for _, p := range snapshot {
		if p.ID != id {
			updated = append(updated, p)
		}
	}

	if err := r.commit(updated); err != nil {
		return err
	}
	utils.Logger.Infof("Property deleted: %s", id)
	return nil
}

// Approve marks a listing visible to the marketplace. Admin only.
// Approving an already approved listing is a no-op with the same result.
func (r *propertyRepo) Approve(_ context.Context, id uuid.UUID) (*models.Property, error) {
	u := r.sess.Current()
	if u == nil {
		return nil, fmt.Errorf("approve property: %w", utils.ErrUnauthorized)
	}
	if u.Role != models.RoleAdmin {
		return nil, fmt.Errorf("approve property requires role %s: %w", models.RoleAdmin, utils.ErrForbidden)
	}

	snapshot := r.snapshot()

	simulate(r.cfg.MutateDelay)

	idx := -1
	for i := range snapshot {
		if snapshot[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("approve property %s: %w", id, utils.ErrNotFound)
	}

	p := &snapshot[idx]
	p.IsApproved = true
	p.UpdatedAt = time.Now().UTC()

	if err := r.commit(snapshot); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Property approved: %s", p.ID)
	cp := *p
	return &cp, nil
}

// Filter returns the approved listings matching every supplied criterion,
// in insertion order. Pure in-memory read, no simulated latency.
func (r *propertyRepo) Filter(_ context.Context, filters models.PropertyFilters) []models.Property {
	out := []models.Property{}
	for _, p := range r.snapshot() {
		if !p.IsApproved {
			continue
		}
		if filters.Location != nil &&
			!strings.Contains(strings.ToLower(p.Location), strings.ToLower(*filters.Location)) {
			continue
		}
		if filters.PriceMin != nil && p.Price < *filters.PriceMin {
			continue
		}
		if filters.PriceMax != nil && p.Price > *filters.PriceMax {
			continue
		}
		if filters.Bedrooms != nil && p.Bedrooms < *filters.Bedrooms {
			continue
		}
		if filters.Bathrooms != nil && p.Bathrooms < *filters.Bathrooms {
			continue
		}
		if filters.Type != nil && p.Type != *filters.Type {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *propertyRepo) commit(properties []models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties = properties
	if err := store.SaveSlice(r.st, store.KeyProperties, properties); err != nil {
		return fmt.Errorf("persist properties: %w", err)
	}
	return nil
}
