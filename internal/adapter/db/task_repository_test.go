package db_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	dbadapter "taskboard/internal/adapter/db"
	"taskboard/internal/core/domain"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TaskRepositorySuite struct {
	suite.Suite

	db   *sqlx.DB
	repo *dbadapter.TaskRepository
	base time.Time
}

func TestTaskRepositorySuite(t *testing.T) {
	suite.Run(t, new(TaskRepositorySuite))
}

func (s *TaskRepositorySuite) SetupTest() {
	s.db = openSQLite(s.T())
	s.repo = dbadapter.NewTaskRepository(s.db)
	s.base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *TaskRepositorySuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *TaskRepositorySuite) insert(id, owner, title, description string, status domain.TaskStatus, createdAt time.Time) {
	s.Require().NoError(s.repo.Create(context.Background(), domain.Task{
		ID:          id,
		OwnerID:     owner,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}))
}

func (s *TaskRepositorySuite) list(owner string, in domain.ListTasksInput) ([]string, int) {
	ctx := context.Background()
	query := domain.NewTaskQuery(owner, in)

	tasks, err := s.repo.List(ctx, query)
	s.Require().NoError(err)
	total, err := s.repo.Count(ctx, query)
	s.Require().NoError(err)

	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		s.Require().Equal(owner, task.OwnerID)
		ids = append(ids, task.ID)
	}
	return ids, total
}

func (s *TaskRepositorySuite) TestCreateAndFindByID() {
	s.insert("t1", "u1", "Buy Milk", "semi-skimmed", domain.TaskStatusInProgress, s.base)

	task, err := s.repo.FindByID(context.Background(), "u1", "t1")
	s.Require().NoError(err)
	s.Require().Equal("Buy Milk", task.Title)
	s.Require().Equal("semi-skimmed", task.Description)
	s.Require().Equal(domain.TaskStatusInProgress, task.Status)
	s.Require().True(task.CreatedAt.Equal(s.base))
	s.Require().True(task.UpdatedAt.Equal(s.base))
}

func (s *TaskRepositorySuite) TestFindByID_ForeignOwnerIsNotFound() {
	s.insert("t1", "u1", "Buy Milk", "", domain.TaskStatusPending, s.base)

	_, err := s.repo.FindByID(context.Background(), "u2", "t1")
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)

	_, err = s.repo.FindByID(context.Background(), "u1", "missing")
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *TaskRepositorySuite) TestList_OrderAndOwnerScope() {
	s.insert("old", "u1", "old", "", domain.TaskStatusPending, s.base)
	s.insert("tie-1", "u1", "tie one", "", domain.TaskStatusPending, s.base.Add(time.Hour))
	s.insert("tie-2", "u1", "tie two", "", domain.TaskStatusPending, s.base.Add(time.Hour))
	s.insert("foreign", "u2", "not mine", "", domain.TaskStatusPending, s.base.Add(2*time.Hour))

	ids, total := s.list("u1", domain.ListTasksInput{})
	s.Require().Equal([]string{"tie-1", "tie-2", "old"}, ids)
	s.Require().Equal(3, total)
}

func (s *TaskRepositorySuite) TestList_Pagination() {
	for i := 0; i < 12; i++ {
		s.insert(fmt.Sprintf("t%02d", i), "u1", fmt.Sprintf("task %d", i), "", domain.TaskStatusPending,
			s.base.Add(time.Duration(i)*time.Minute))
	}

	page, limit := 1, 10
	ids, total := s.list("u1", domain.ListTasksInput{Page: &page, Limit: &limit})
	s.Require().Len(ids, 10)
	s.Require().Equal(12, total)
	s.Require().Equal("t11", ids[0])

	page = 2
	ids, total = s.list("u1", domain.ListTasksInput{Page: &page, Limit: &limit})
	s.Require().Equal([]string{"t01", "t00"}, ids)
	s.Require().Equal(12, total)

	page = 3
	ids, _ = s.list("u1", domain.ListTasksInput{Page: &page, Limit: &limit})
	s.Require().Empty(ids)
}

func (s *TaskRepositorySuite) TestList_StatusAndSearchFilters() {
	s.insert("milk", "u1", "Buy Milk", "", domain.TaskStatusPending, s.base)
	s.insert("report", "u1", "Write report", "include MILK prices", domain.TaskStatusCompleted, s.base.Add(time.Minute))
	s.insert("walk", "u1", "Walk the dog", "", domain.TaskStatusPending, s.base.Add(2*time.Minute))
	s.insert("other", "u2", "Buy milk too", "", domain.TaskStatusPending, s.base.Add(3*time.Minute))

	search := "milk"
	ids, total := s.list("u1", domain.ListTasksInput{Search: &search})
	s.Require().Equal([]string{"report", "milk"}, ids)
	s.Require().Equal(2, total)

	status := string(domain.TaskStatusPending)
	ids, total = s.list("u1", domain.ListTasksInput{Search: &search, Status: &status})
	s.Require().Equal([]string{"milk"}, ids)
	s.Require().Equal(1, total)

	bogus := "Bogus"
	_, total = s.list("u1", domain.ListTasksInput{Status: &bogus})
	s.Require().Equal(3, total)
}

func (s *TaskRepositorySuite) TestList_SearchTreatsWildcardsLiterally() {
	s.insert("pct", "u1", "Raise by 100%", "", domain.TaskStatusPending, s.base)
	s.insert("plain", "u1", "Raise by 1000", "", domain.TaskStatusPending, s.base.Add(time.Minute))
	s.insert("under", "u1", "snake_case names", "", domain.TaskStatusPending, s.base.Add(2*time.Minute))
	s.insert("bang", "u1", "Ship it!", "", domain.TaskStatusPending, s.base.Add(3*time.Minute))

	search := "100%"
	ids, _ := s.list("u1", domain.ListTasksInput{Search: &search})
	s.Require().Equal([]string{"pct"}, ids)

	search = "e_c"
	ids, _ = s.list("u1", domain.ListTasksInput{Search: &search})
	s.Require().Equal([]string{"under"}, ids)

	search = "it!"
	ids, _ = s.list("u1", domain.ListTasksInput{Search: &search})
	s.Require().Equal([]string{"bang"}, ids)
}

func (s *TaskRepositorySuite) TestList_SearchFoldsNonASCIICase() {
	s.insert("office", "u1", "Ärger im Büro", "", domain.TaskStatusPending, s.base)
	s.insert("cafe", "u1", "Call the café", "ÉCLAIRS for Friday", domain.TaskStatusPending, s.base.Add(time.Minute))
	s.insert("plain", "u1", "Water plants", "", domain.TaskStatusPending, s.base.Add(2*time.Minute))

	search := "ärger"
	ids, total := s.list("u1", domain.ListTasksInput{Search: &search})
	s.Require().Equal([]string{"office"}, ids)
	s.Require().Equal(1, total)

	search = "BÜRO"
	ids, _ = s.list("u1", domain.ListTasksInput{Search: &search})
	s.Require().Equal([]string{"office"}, ids)

	search = "éclairs"
	ids, _ = s.list("u1", domain.ListTasksInput{Search: &search})
	s.Require().Equal([]string{"cafe"}, ids)
}

func (s *TaskRepositorySuite) TestUpdate() {
	s.insert("t1", "u1", "Buy Milk", "", domain.TaskStatusPending, s.base)
	ctx := context.Background()

	updated := domain.Task{
		ID:          "t1",
		OwnerID:     "u1",
		Title:       "Buy oat milk",
		Description: "two cartons",
		Status:      domain.TaskStatusCompleted,
		UpdatedAt:   s.base.Add(time.Hour),
	}
	s.Require().NoError(s.repo.Update(ctx, updated))

	task, err := s.repo.FindByID(ctx, "u1", "t1")
	s.Require().NoError(err)
	s.Require().Equal("Buy oat milk", task.Title)
	s.Require().Equal("two cartons", task.Description)
	s.Require().Equal(domain.TaskStatusCompleted, task.Status)
	s.Require().True(task.CreatedAt.Equal(s.base))
	s.Require().True(task.UpdatedAt.Equal(s.base.Add(time.Hour)))

	updated.OwnerID = "u2"
	s.Require().ErrorIs(s.repo.Update(ctx, updated), domain.ErrTaskNotFound)
}

func (s *TaskRepositorySuite) TestDelete() {
	s.insert("t1", "u1", "Buy Milk", "", domain.TaskStatusPending, s.base)
	ctx := context.Background()

	s.Require().ErrorIs(s.repo.Delete(ctx, "u2", "t1"), domain.ErrTaskNotFound)
	s.Require().NoError(s.repo.Delete(ctx, "u1", "t1"))
	s.Require().ErrorIs(s.repo.Delete(ctx, "u1", "t1"), domain.ErrTaskNotFound)

	_, err := s.repo.FindByID(ctx, "u1", "t1")
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func openSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := dbadapter.ConnectSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, dbadapter.Migrate(context.Background(), db))
	return db
}
