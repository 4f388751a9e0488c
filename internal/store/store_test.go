package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/havenstay/backend/internal/models"
)

// -----------------------------------------------------------------------------
// Backend contract
// -----------------------------------------------------------------------------

func backends(t *testing.T) map[string]Store {
	t.Helper()

	fsStore, err := NewFilesystemStore(t.TempDir())
	require.NoError(t, err)

	sqlStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlStore.Close() })

	return map[string]Store{
		"memory":     NewMemoryStore(),
		"filesystem": fsStore,
		"sqlite":     sqlStore,
	}
}

func TestStoreContract(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			// missing key is absent
			_, ok := st.Load("nope")
			require.False(t, ok)

			// save then load returns what was saved
			require.NoError(t, st.Save("alpha", []byte(`[{"x":1}]`)))
			raw, ok := st.Load("alpha")
			require.True(t, ok)
			require.JSONEq(t, `[{"x":1}]`, string(raw))

			// save replaces the whole snapshot
			require.NoError(t, st.Save("alpha", []byte(`[]`)))
			raw, ok = st.Load("alpha")
			require.True(t, ok)
			require.JSONEq(t, `[]`, string(raw))

			// delete leaves the key absent; deleting again is a no-op
			require.NoError(t, st.Delete("alpha"))
			_, ok = st.Load("alpha")
			require.False(t, ok)
			require.NoError(t, st.Delete("alpha"))

			// keys are enumerable
			require.NoError(t, st.Save("b", []byte(`1`)))
			require.NoError(t, st.Save("a", []byte(`2`)))
			require.Equal(t, []string{"a", "b"}, st.Keys())
		})
	}
}

// -----------------------------------------------------------------------------
// Typed helpers
// -----------------------------------------------------------------------------

func sampleTasks(n int) []models.Task {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out := make([]models.Task, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Task{
			ID:          uuid.New(),
			Title:       "Task title",
			Description: "A description long enough to matter",
			Status:      models.TaskStatusIncomplete,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return out
}

func TestSliceRoundTrip(t *testing.T) {
	st := NewMemoryStore()

	for _, n := range []int{0, 1, 7} {
		tasks := sampleTasks(n)
		require.NoError(t, SaveSlice(st, "tasks_x", tasks))

		loaded, ok := LoadSlice[models.Task](st, "tasks_x")
		require.True(t, ok)
		require.Len(t, loaded, n)
		for i := range tasks {
			require.Equal(t, tasks[i], loaded[i])
		}
	}
}

func TestUnparseablePayloadLoadsAsAbsent(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Save("tasks_y", []byte(`{not json`)))

			_, ok := LoadSlice[models.Task](st, "tasks_y")
			require.False(t, ok)

			var v string
			require.False(t, LoadValue(st, "tasks_y", &v))
		})
	}
}

func TestValueRoundTrip(t *testing.T) {
	st := NewMemoryStore()

	require.NoError(t, SaveValue(st, KeyToken, "demo-token"))
	var token string
	require.True(t, LoadValue(st, KeyToken, &token))
	require.Equal(t, "demo-token", token)

	user := models.User{ID: uuid.New(), Email: "a@b.com", Name: "A", Role: models.RoleRenter, CreatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, SaveValue(st, KeyUser, user))
	var loaded models.User
	require.True(t, LoadValue(st, KeyUser, &loaded))
	require.Equal(t, user, loaded)
}

func TestTasksKeyNamespacing(t *testing.T) {
	require.Equal(t, "tasks_abc", TasksKey("abc"))
	require.NotEqual(t, TasksKey("u1"), TasksKey("u2"))
}
