package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"taskboard/internal/core/domain"
)

// ListTasks returns one page of the owner's tasks, newest first.
func (s *TaskService) ListTasks(ctx context.Context, ownerID string, in domain.ListTasksInput) (domain.TaskPage, error) {
	query := domain.NewTaskQuery(ownerID, in)

	var (
		tasks []domain.Task
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.taskRepository.List(gctx, query)
		return domain.WrapStoreError("list tasks", err)
	})
	g.Go(func() error {
		var err error
		total, err = s.taskRepository.Count(gctx, query)
		return domain.WrapStoreError("count tasks", err)
	})
	if err := g.Wait(); err != nil {
		return domain.TaskPage{}, err
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}

	return domain.TaskPage{
		Tasks:      tasks,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: domain.TotalPages(total, query.Limit),
	}, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, domain.WrapStoreError("find task", err)
	}
	return task, nil
}
