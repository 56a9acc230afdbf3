package service

import (
	"time"

	"github.com/google/uuid"

	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
	newID          func() string
}

type TaskServiceOption func(*TaskService)

// WithClock replaces the wall clock used for createdAt/updatedAt.
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *TaskService) {
		s.now = now
	}
}

func NewTaskService(taskRepository ports.TaskRepository, opts ...TaskServiceOption) *TaskService {
	s := &TaskService{
		taskRepository: taskRepository,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is truncated to the precision of DATETIME(6) columns.
func (s *TaskService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

var _ ports.TaskService = (*TaskService)(nil)
