package dto

import (
	"github.com/swaggest/jsonschema-go"

	"taskboard/internal/core/domain"
)

// TaskStatus is a board column as serialized to clients.
type TaskStatus string

var _ jsonschema.Exposer = TaskStatus("")

func (TaskStatus) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.WithType(jsonschema.String.Type()).
		WithTitle("Task Status").
		WithDescription("Board column of the task.")

	enum := make([]interface{}, 0, len(domain.TaskStatuses))
	for _, status := range domain.TaskStatuses {
		enum = append(enum, string(status))
	}
	s.WithEnum(enum...)

	return s, nil
}

type TaskItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	OwnerID     string     `json:"ownerId"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type TaskList struct {
	Tasks      []TaskItem `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

// ListTasksQuery documents the list query string; values are parsed leniently by the handler.
type ListTasksQuery struct {
	Page   int    `query:"page" description:"Page number, values below 1 become 1." default:"1"`
	Limit  int    `query:"limit" description:"Page size, clamped to [1, 50]." default:"10"`
	Status string `query:"status" description:"Pending, In Progress or Completed; other values are ignored."`
	Search string `query:"search" description:"Case-insensitive substring of title or description."`
}

type TaskPath struct {
	ID string `path:"id"`
}

// CreateTaskRequest fields are all optional at the transport level; nil means "not sent".
type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
