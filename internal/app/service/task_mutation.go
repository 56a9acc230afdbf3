package service

import (
	"context"
	"strings"
	"time"

	"taskboard/internal/core/domain"
)

// CreateTask rejects blank titles. An absent or unknown status falls back to Pending.
func (s *TaskService) CreateTask(ctx context.Context, ownerID string, in domain.CreateTaskInput) (domain.Task, error) {
	var title string
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
	}
	if title == "" {
		return domain.Task{}, domain.ErrTitleRequired
	}

	var description string
	if in.Description != nil {
		description = strings.TrimSpace(*in.Description)
	}

	status := domain.TaskStatusPending
	if in.Status != nil {
		if parsed, ok := domain.ParseTaskStatus(*in.Status); ok {
			status = parsed
		}
	}

	now := s.timestamp()
	task := domain.Task{
		ID:          s.newID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, domain.WrapStoreError("create task", err)
	}

	return task, nil
}

// UpdateTask applies the supplied fields. Unknown statuses are dropped and the stored
// status is kept; titles are not re-validated. Concurrent updates are last-write-wins.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, in domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, domain.WrapStoreError("find task", err)
	}

	if in.Title != nil {
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		if parsed, ok := domain.ParseTaskStatus(*in.Status); ok {
			task.Status = parsed
		}
	}

	now := s.timestamp()
	if !now.After(task.UpdatedAt) {
		now = task.UpdatedAt.Add(time.Microsecond)
	}
	task.UpdatedAt = now

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, domain.WrapStoreError("update task", err)
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	return domain.WrapStoreError("delete task", s.taskRepository.Delete(ctx, ownerID, taskID))
}
