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

type TaskRepository interface {
	List(ctx context.Context) []models.Task
	Create(ctx context.Context, title, description string) (*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, updates models.TaskUpdate) (*models.Task, error)
	Toggle(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type taskRepo struct {
	mu    sync.RWMutex
	st    store.Store
	sess  *session.Manager
	cfg   *config.Config
	tasks []models.Task
}

func NewTaskRepository(st store.Store, sess *session.Manager, cfg *config.Config) TaskRepository {
	r := &taskRepo{st: st, sess: sess, cfg: cfg}
	sess.Subscribe(r.onSessionChange)
	return r
}

func (r *taskRepo) onSessionChange(u *models.User) {
	if u == nil {
		r.mu.Lock()
		r.tasks = nil
		r.mu.Unlock()
		return
	}
	r.load(u)
}

// load pulls the identity's task collection from the store, seeding the
// starter tasks on first use.
func (r *taskRepo) load(u *models.User) {
	simulate(r.cfg.LoadDelay)

	key := store.TasksKey(u.ID.String())
	tasks, ok := store.LoadSlice[models.Task](r.st, key)
	if !ok {
		tasks = seeding.DemoTasks()
		if err := store.SaveSlice(r.st, key, tasks); err != nil {
			utils.Logger.WithError(err).Error("Failed to persist starter tasks")
		}
	}

	r.mu.Lock()
	r.tasks = tasks
	r.mu.Unlock()
	utils.Logger.Infof("Loaded %d tasks for user %s", len(tasks), u.Email)
}

func (r *taskRepo) List(_ context.Context) []models.Task {
	return r.snapshot()
}

func (r *taskRepo) snapshot() []models.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

type taskInput struct {
	Title       string `validate:"required,min=3"`
	Description string `validate:"required,min=10"`
}

func (r *taskRepo) Create(_ context.Context, title, description string) (*models.Task, error) {
	u := r.sess.Current()
	if u == nil {
		return nil, fmt.Errorf("create task: %w", utils.ErrUnauthorized)
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validate.Struct(taskInput{Title: title, Description: description}); err != nil {
		return nil, fmt.Errorf("create task: %w: %v", utils.ErrValidation, err)
	}

	snapshot := r.snapshot()
	now := time.Now().UTC()
	task := models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      models.TaskStatusIncomplete,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	simulate(r.cfg.MutateDelay)

	updated := append(snapshot, task)
	if err := r.commit(u, updated); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Task added: %s", task.Title)
	return &task, nil
}

func (r *taskRepo) Update(_ context.Context, id uuid.UUID, updates models.TaskUpdate) (*models.Task, error) {
	u := r.sess.Current()
	if u == nil {
		return nil, fmt.Errorf("update task: %w", utils.ErrUnauthorized)
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
		return nil, fmt.Errorf("update task %s: %w", id, utils.ErrNotFound)
	}

	task := &snapshot[idx]
	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Status != nil {
		task.Status = *updates.Status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := r.commit(u, snapshot); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Task updated: %s", task.ID)
	cp := *task
	return &cp, nil
}

func (r *taskRepo) Toggle(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	r.mu.RLock()
	var next models.TaskStatusType
	found := false
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			found = true
			if r.tasks[i].Status == models.TaskStatusCompleted {
				next = models.TaskStatusIncomplete
			} else {
				next = models.TaskStatusCompleted
			}
			break
		}
	}
	r.mu.RUnlock()

	if !found {
		return nil, fmt.Errorf("toggle task %s: %w", id, utils.ErrNotFound)
	}
	return r.Update(ctx, id, models.TaskUpdate{Status: &next})
}

func (r *taskRepo) Delete(_ context.Context, id uuid.UUID) error {
	u := r.sess.Current()
	if u == nil {
		return fmt.Errorf("delete task: %w", utils.ErrUnauthorized)
	}

	snapshot := r.snapshot()

	simulate(r.cfg.MutateDelay)

	updated := snapshot[:0:0]
	for _, t := range snapshot {
		if t.ID != id {
			updated = append(updated, t)
		}
	}

	if err := r.commit(u, updated); err != nil {
		return err
	}
	utils.Logger.Infof("Task deleted: %s", id)
	return nil
}

// commit swaps the in-memory collection and persists the full snapshot.
func (r *taskRepo) commit(u *models.User, tasks []models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = tasks
	if err := store.SaveSlice(r.st, store.TasksKey(u.ID.String()), tasks); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}
