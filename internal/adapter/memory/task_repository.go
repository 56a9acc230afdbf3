// Package memory implements the stores in process memory, for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type taskRecord struct {
	seq  uint64
	task domain.Task
}

// TaskRepository is an in-memory task store.
type TaskRepository struct {
	mu      sync.Mutex
	lastSeq uint64
	tasks   map[string]taskRecord
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]taskRecord)}
}

func (r *TaskRepository) Create(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastSeq++
	r.tasks[task.ID] = taskRecord{seq: r.lastSeq, task: task}
	return nil
}

func (r *TaskRepository) FindByID(_ context.Context, ownerID, taskID string) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, found := r.tasks[taskID]
	if !found || record.task.OwnerID != ownerID {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return record.task, nil
}

func (r *TaskRepository) List(_ context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := r.match(query)
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.task.CreatedAt.Equal(b.task.CreatedAt) {
			return a.task.CreatedAt.After(b.task.CreatedAt)
		}
		return a.seq < b.seq
	})

	offset := query.Offset()
	if offset >= len(matched) {
		return []domain.Task{}, nil
	}
	end := offset + query.Limit
	if end > len(matched) {
		end = len(matched)
	}

	tasks := make([]domain.Task, 0, end-offset)
	for _, record := range matched[offset:end] {
		tasks = append(tasks, record.task)
	}
	return tasks, nil
}

func (r *TaskRepository) Count(_ context.Context, query domain.TaskQuery) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.match(query)), nil
}

func (r *TaskRepository) Update(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, found := r.tasks[task.ID]
	if !found || record.task.OwnerID != task.OwnerID {
		return domain.ErrTaskNotFound
	}

	// Owner and creation time are immutable.
	task.CreatedAt = record.task.CreatedAt
	record.task = task
	r.tasks[task.ID] = record
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, ownerID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, found := r.tasks[taskID]
	if !found || record.task.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

// match must be called with mu held.
func (r *TaskRepository) match(query domain.TaskQuery) []taskRecord {
	matched := make([]taskRecord, 0, len(r.tasks))
	for _, record := range r.tasks {
		if query.Matches(record.task) {
			matched = append(matched, record)
		}
	}
	return matched
}
