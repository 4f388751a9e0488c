package controllers

import (
	"net/http"

	"github.com/havenstay/backend/internal/dtos"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/repositories"
	"github.com/havenstay/backend/internal/utils"
)

type TaskController struct {
	repo repositories.TaskRepository
}

func NewTaskController(repo repositories.TaskRepository) *TaskController {
	return &TaskController{repo: repo}
}

// -----------------------------------------------------------------------------
// GET /tasks
// -----------------------------------------------------------------------------
func (c *TaskController) List(w http.ResponseWriter, r *http.Request) {
	tasks := c.repo.List(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dtos.TaskListResponse{Tasks: tasks})
}

// -----------------------------------------------------------------------------
// POST /tasks
// -----------------------------------------------------------------------------
func (c *TaskController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := c.repo.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, task)
}

// -----------------------------------------------------------------------------
// PATCH /tasks/{id}
// -----------------------------------------------------------------------------
func (c *TaskController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updates := models.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := models.TaskStatusType(*req.Status)
		updates.Status = &status
	}

	task, err := c.repo.Update(r.Context(), id, updates)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, task)
}

// -----------------------------------------------------------------------------
// POST /tasks/{id}/toggle
// -----------------------------------------------------------------------------
func (c *TaskController) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	task, err := c.repo.Toggle(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, task)
}

// -----------------------------------------------------------------------------
// DELETE /tasks/{id}
// -----------------------------------------------------------------------------
func (c *TaskController) Delete(w http.ResponseWriter, r *http.Request) {
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
