package seeding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/store"
	"github.com/havenstay/backend/internal/utils"
)

func TestSeedDemoUsers(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, SeedDemoUsers(st))

	users, ok := store.LoadSlice[models.User](st, store.KeyUsers)
	require.True(t, ok)
	require.Len(t, users, 3)

	byEmail := map[string]models.User{}
	for _, u := range users {
		byEmail[u.Email] = u
	}

	admin := byEmail["admin@mail.com"]
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.Equal(t, DemoAdminID, admin.ID)

	owner := byEmail["owner@mail.com"]
	require.Equal(t, models.RoleOwner, owner.Role)
	require.True(t, owner.IsApproved)

	renter := byEmail["renter@mail.com"]
	require.Equal(t, models.RoleRenter, renter.Role)

	// every demo identity accepts the shared demo password
	for _, u := range users {
		require.True(t, utils.CheckPasswordHash(config.DemoPassword, u.PasswordHash))
	}
}

func TestSeedDemoUsersIsIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, SeedDemoUsers(st))
	require.NoError(t, SeedDemoUsers(st))

	users, ok := store.LoadSlice[models.User](st, store.KeyUsers)
	require.True(t, ok)
	require.Len(t, users, 3)
}

func TestDemoFixtures(t *testing.T) {
	tasks := DemoTasks()
	require.Len(t, tasks, 2)
	require.Equal(t, models.TaskStatusCompleted, tasks[0].Status)
	require.Equal(t, models.TaskStatusIncomplete, tasks[1].Status)

	properties := DemoProperties()
	require.Len(t, properties, 2)
	for _, p := range properties {
		require.True(t, p.IsApproved)
		require.Equal(t, DemoOwnerID, p.OwnerID)
	}
}
