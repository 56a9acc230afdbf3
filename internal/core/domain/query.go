package domain

import (
	"math"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 50

	// MaxPage is the largest page whose offset (page-1)*MaxLimit still fits in an int.
	MaxPage = math.MaxInt / MaxLimit
)

// ListTasksInput carries untrusted list parameters. Nil means the parameter was absent.
type ListTasksInput struct {
	Page   *int
	Limit  *int
	Status *string
	Search *string
}

// TaskQuery is a normalized, owner-scoped list query.
type TaskQuery struct {
	OwnerID string
	Status  *TaskStatus
	Search  string
	Page    int
	Limit   int
}

func (q TaskQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// NewTaskQuery clamps pagination and drops filters that cannot apply.
func NewTaskQuery(ownerID string, in ListTasksInput) TaskQuery {
	query := TaskQuery{
		OwnerID: ownerID,
		Page:    NormalizePage(in.Page),
		Limit:   NormalizeLimit(in.Limit),
	}

	if in.Status != nil {
		if status, ok := ParseTaskStatus(*in.Status); ok {
			query.Status = &status
		}
	}

	if in.Search != nil {
		query.Search = strings.TrimSpace(*in.Search)
	}

	return query
}

func NormalizePage(page *int) int {
	if page == nil || *page < 1 {
		return DefaultPage
	}
	if *page > MaxPage {
		return MaxPage
	}
	return *page
}

func NormalizeLimit(limit *int) int {
	if limit == nil {
		return DefaultLimit
	}
	if *limit < MinLimit {
		return MinLimit
	}
	if *limit > MaxLimit {
		return MaxLimit
	}
	return *limit
}

// Matches applies the query filters (not pagination) to a single task.
func (q TaskQuery) Matches(task Task) bool {
	if task.OwnerID != q.OwnerID {
		return false
	}
	if q.Status != nil && task.Status != *q.Status {
		return false
	}
	if q.Search == "" {
		return true
	}

	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(task.Title), needle) ||
		strings.Contains(strings.ToLower(task.Description), needle)
}

type TaskPage struct {
	Tasks      []Task
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
