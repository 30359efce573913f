package task

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskColumns = []string{
	"id", "project_id", "code", "name", "title", "description", "status",
	"assignee_id", "name", "due_date", "created_at", "updated_at",
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Filtered by project", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM tasks t INNER JOIN projects p ON p.id = t.project_id LEFT JOIN personas pe ON pe.id = t.assignee_id WHERE \(\$1 = 0 OR t.project_id = \$1\)`).
			WithArgs(uint(2)).
			WillReturnRows(sqlmock.NewRows(taskColumns).
				AddRow(5, 2, "SET-02", "Bodega", "Inventario", "", "in_progress", 3, "Carla", due, now, now).
				AddRow(4, 2, "SET-02", "Bodega", "Etiquetas", "", "pending", nil, nil, nil, now, now))

		list, err := repo.List(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, list, 2)

		require.NotNil(t, list[0].AssigneeID)
		assert.Equal(t, uint(3), *list[0].AssigneeID)
		assert.Equal(t, "Carla", *list[0].AssigneeName)
		assert.Equal(t, StatusInProgress, list[0].Status)

		assert.Nil(t, list[1].AssigneeID)
		assert.Nil(t, list[1].AssigneeName)
		assert.Nil(t, list[1].DueDate)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM tasks`).WithArgs(uint(0)).WillReturnError(errors.New("db down"))

		_, err := repo.List(context.Background(), 0)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM tasks t .* WHERE t.id = \$1`).WithArgs(uint(9)).WillReturnError(sql.ErrNoRows)

	_, err = NewRepository(db).GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	assignee := uint(3)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`INSERT INTO tasks \(project_id, title, description, status, assignee_id, due_date\)`).
			WithArgs(uint(2), "Inventario", "", "pending", uint(3), nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

		task := &Task{ProjectID: 2, Title: "Inventario", Status: StatusPending, AssigneeID: &assignee}
		require.NoError(t, repo.Create(ctx, task))
		assert.Equal(t, uint(11), task.ID)
	})

	t.Run("Unknown project", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO tasks`).WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Create(ctx, &Task{ProjectID: 99, Title: "X", Status: StatusPending})
		assert.ErrorIs(t, err, ErrUnknownReference)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE tasks SET .* WHERE id = \$1`).
		WithArgs(uint(4), uint(2), "Etiquetas", "", "done", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Update(ctx, &Task{ID: 4, ProjectID: 2, Title: "Etiquetas", Status: StatusDone}))

	mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1`).WithArgs(uint(4)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, 4), ErrTaskNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM tasks GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("pending", 3).AddRow("done", 1))

	counts, err := NewRepository(db).CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[Status]int{StatusPending: 3, StatusDone: 1}, counts)
}
