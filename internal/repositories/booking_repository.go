package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/session"
	"github.com/havenstay/backend/internal/store"
	"github.com/havenstay/backend/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type BookingRepository interface {
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.BookingStatusType) (*models.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListForRenter(ctx context.Context) []models.Booking
	ListForOwner(ctx context.Context) []models.Booking
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type bookingRepo struct {
	mu       sync.RWMutex
	st       store.Store
	sess     *session.Manager
	cfg      *config.Config
	bookings []models.Booking
}

func NewBookingRepository(st store.Store, sess *session.Manager, cfg *config.Config) BookingRepository {
	r := &bookingRepo{st: st, sess: sess, cfg: cfg}
	sess.Subscribe(r.onSessionChange)
	return r
}

func (r *bookingRepo) onSessionChange(u *models.User) {
	if u == nil {
		r.mu.Lock()
		r.bookings = nil
		r.mu.Unlock()
		return
	}
	r.load()
}

func (r *bookingRepo) load() {
	simulate(r.cfg.BookingLoadDelay)

	bookings, ok := store.LoadSlice[models.Booking](r.st, store.KeyBookings)
	if !ok {
		bookings = nil
	}

	r.mu.Lock()
	r.bookings = bookings
	r.mu.Unlock()
	utils.Logger.Infof("Loaded %d bookings", len(bookings))
}

func (r *bookingRepo) snapshot() []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

type bookingInput struct {
	PropertyID    uuid.UUID `validate:"required"`
	PropertyTitle string    `validate:"required"`
	RenterEmail   string    `validate:"required,email"`
	TotalPrice    float64   `validate:"gt=0"`
}

// Create files a stay request. Any authenticated identity may book;
// the request always starts pending.
func (r *bookingRepo) Create(_ context.Context, input models.BookingInput) (*models.Booking, error) {
	u := r.sess.Current()
	if u == nil {
		return nil, fmt.Errorf("create booking: %w", utils.ErrUnauthorized)
	}

	if err := validate.Struct(bookingInput{
		PropertyID:    input.PropertyID,
		PropertyTitle: input.PropertyTitle,
		RenterEmail:   input.RenterEmail,
		TotalPrice:    input.TotalPrice,
	}); err != nil {
		return nil, fmt.Errorf("create booking: %w: %v", utils.ErrValidation, err)
	}
	if !input.CheckOut.After(input.CheckIn) {
		return nil, fmt.Errorf("create booking: check-out must follow check-in: %w", utils.ErrValidation)
	}

	snapshot := r.snapshot()
	booking := models.Booking{
		ID:            uuid.New(),
		PropertyID:    input.PropertyID,
		PropertyTitle: input.PropertyTitle,
		RenterID:      input.RenterID,
		RenterName:    input.RenterName,
		RenterEmail:   input.RenterEmail,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		TotalPrice:    input.TotalPrice,
		Status:        models.BookingStatusPending,
		Message:       input.Message,
		CreatedAt:     time.Now().UTC(),
	}

	simulate(r.cfg.MutateDelay)

	if err := r.commit(append(snapshot, booking)); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Booking request sent for property %s", booking.PropertyTitle)
	return &booking, nil
}

// SetStatus overwrites a booking's status with confirmed or rejected.
// Whoever holds the id may transition it; bookings do not carry the
// property owner's id, so owner scoping is not enforced here.
func (r *bookingRepo) SetStatus(_ context.Context, id uuid.UUID, status models.BookingStatusType) (*models.Booking, error) {
	if status != models.BookingStatusConfirmed && status != models.BookingStatusRejected {
		return nil, fmt.Errorf("set booking status %q: %w", status, utils.ErrInvalidStatus)
	}
	return r.setStatus(id, status)
}

// Cancel is the renter-side exit from pending.
func (r *bookingRepo) Cancel(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	return r.setStatus(id, models.BookingStatusCancelled)
}

func (r *bookingRepo) setStatus(id uuid.UUID, status models.BookingStatusType) (*models.Booking, error) {
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
		return nil, fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
	}

	snapshot[idx].Status = status

	if err := r.commit(snapshot); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Booking %s %s", id, status)
	cp := snapshot[idx]
	return &cp, nil
}

// ListForRenter returns the session identity's own bookings.
func (r *bookingRepo) ListForRenter(_ context.Context) []models.Booking {
	u := r.sess.Current()
	if u == nil {
		return []models.Booking{}
	}
	out := []models.Booking{}
	for _, b := range r.snapshot() {
		if b.RenterID == u.ID {
			out = append(out, b)
		}
	}
	return out
}

// ListForOwner returns every booking. Scoping to the caller's own
// properties would need the owner id on each booking, which the record
// does not carry; the unfiltered list is the documented demo behavior.
func (r *bookingRepo) ListForOwner(_ context.Context) []models.Booking {
	u := r.sess.Current()
	if u == nil {
		return []models.Booking{}
	}
	return r.snapshot()
}

func (r *bookingRepo) commit(bookings []models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = bookings
	if err := store.SaveSlice(r.st, store.KeyBookings, bookings); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	return nil
}
