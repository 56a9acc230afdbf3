package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

// TaskRepository is the task store. Every read and write is scoped to an owner.
type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	FindByID(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	List(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error)
	Count(ctx context.Context, query domain.TaskQuery) (int, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, ownerID, taskID string) error
}

type TaskService interface {
	ListTasks(ctx context.Context, ownerID string, in domain.ListTasksInput) (domain.TaskPage, error)
	GetTaskByID(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	CreateTask(ctx context.Context, ownerID string, in domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, in domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}
