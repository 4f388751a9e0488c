package seeding

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/store"
	"github.com/havenstay/backend/internal/utils"
)

// Fixed ids so the demo identities stay stable across restarts and seeds.
var (
	DemoAdminID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	DemoOwnerID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	DemoRenterID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

// SeedDemoUsers writes the three demo identities if no user collection
// exists yet. Idempotent.
func SeedDemoUsers(st store.Store) error {
	if _, ok := store.LoadSlice[models.User](st, store.KeyUsers); ok {
		utils.Logger.Debug("User collection already present; skipping demo seed.")
		return nil
	}

	hash, err := utils.HashPassword(config.DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	now := time.Now().UTC()
	users := []models.User{
		{
			ID:           DemoAdminID,
			Email:        "admin@mail.com",
			Name:         "Admin User",
			Role:         models.RoleAdmin,
			PasswordHash: hash,
			CreatedAt:    now,
		},
		{
			ID:           DemoOwnerID,
			Email:        "owner@mail.com",
			Name:         "Property Owner",
			Role:         models.RoleOwner,
			IsApproved:   true,
			PasswordHash: hash,
			CreatedAt:    now,
		},
		{
			ID:           DemoRenterID,
			Email:        "renter@mail.com",
			Name:         "Property Renter",
			Role:         models.RoleRenter,
			PasswordHash: hash,
			CreatedAt:    now,
		},
	}

	if err := store.SaveSlice(st, store.KeyUsers, users); err != nil {
		return fmt.Errorf("persist demo users: %w", err)
	}
	utils.Logger.Infof("Seeded %d demo users.", len(users))
	return nil
}
