package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists the board columns in display order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ParseTaskStatus reports whether value is one of the board statuses. Matching is exact.
func ParseTaskStatus(value string) (TaskStatus, bool) {
	status := TaskStatus(value)
	return status, status.Valid()
}

type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTaskInput carries untrusted create fields. Nil means the field was not sent.
type CreateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// UpdateTaskInput carries untrusted update fields. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}
