package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatusType string

const (
	TaskStatusCompleted  TaskStatusType = "completed"
	TaskStatusIncomplete TaskStatusType = "incomplete"
)

// Task belongs implicitly to the identity whose storage key holds it;
// there is no cross-identity visibility.
type Task struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      TaskStatusType `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TaskUpdate carries a partial edit; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *TaskStatusType `json:"status,omitempty"`
}
