package dtos

import "github.com/havenstay/backend/internal/models"

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=10"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=10"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=completed incomplete"`
}

type TaskListResponse struct {
	Tasks []models.Task `json:"tasks"`
}
