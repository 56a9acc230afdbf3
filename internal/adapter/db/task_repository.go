package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/config"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const taskColumns = `id, owner_id, title, description, status, created_at, updated_at`

const insertTaskQuery = `
INSERT INTO tasks (` + taskColumns + `)
VALUES (:id, :owner_id, :title, :description, :status, :created_at, :updated_at)
`

const findTaskQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = ? AND owner_id = ?
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, status = ?, updated_at = ?
WHERE id = ? AND owner_id = ?
`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ? AND owner_id = ?`

// likeEscape is portable across MySQL and SQLite, unlike a backslash.
const likeEscape = "!"

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToTaskRow(task))
	return err
}

func (r *TaskRepository) FindByID(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(findTaskQuery), taskID, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) List(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	where, args := buildTaskFilter(query, r.lowerFunc())
	statement := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + where +
		` ORDER BY created_at DESC, seq ASC LIMIT ? OFFSET ?`
	args = append(args, query.Limit, query.Offset())

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(statement), args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, query domain.TaskQuery) (int, error) {
	where, args := buildTaskFilter(query, r.lowerFunc())

	var total int
	err := r.db.GetContext(ctx, &total, r.db.Rebind(`SELECT COUNT(*) FROM tasks WHERE `+where), args...)
	return total, err
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	result, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(updateTaskQuery),
		task.Title,
		task.Description,
		string(task.Status),
		task.UpdatedAt,
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(deleteTaskQuery), taskID, ownerID)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

// lowerFunc names the SQL function that folds case the same way strings.ToLower does.
func (r *TaskRepository) lowerFunc() string {
	if r.db.DriverName() == config.DriverSQLite {
		return unicodeLowerFunc
	}
	return "LOWER"
}

// buildTaskFilter always scopes to the owner; status and search are optional.
func buildTaskFilter(query domain.TaskQuery, lower string) (string, []interface{}) {
	conditions := []string{"owner_id = ?"}
	args := []interface{}{query.OwnerID}

	if query.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*query.Status))
	}

	if query.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(query.Search)) + "%"
		conditions = append(conditions,
			"("+lower+"(title) LIKE ? ESCAPE '"+likeEscape+"' OR "+lower+"(description) LIKE ? ESCAPE '"+likeEscape+"')")
		args = append(args, pattern, pattern)
	}

	return strings.Join(conditions, " AND "), args
}

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

func escapeLike(value string) string {
	return likeReplacer.Replace(value)
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func mapDomainTaskToTaskRow(task domain.Task) taskRow {
	return taskRow{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
