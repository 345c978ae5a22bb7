package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

func TestPostgresTaskRepository_Integration(t *testing.T) {
	db := requireDB(t)
	t.Parallel()

	users := NewPostgresUserRepository(db.DB)
	tasks := NewPostgresTaskRepository(db)
	ctx := context.Background()

	user := createTestUser(t, users)

	newTask := func(t *testing.T, title, date string) *domain.Task {
		t.Helper()
		task, err := domain.NewTask(user.ID, title, "", date)
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))
		return task
	}

	t.Run("Create and filter by day", func(t *testing.T) {
		newTask(t, "Day one", "2030-01-01")
		newTask(t, "Day two", "2030-01-02")

		dayOne, err := tasks.ListByUser(ctx, user.ID, "2030-01-01")
		require.NoError(t, err)
		require.Len(t, dayOne, 1)
		assert.Equal(t, "Day one", dayOne[0].Title)
	})

	t.Run("Range listing is inclusive on both ends", func(t *testing.T) {
		newTask(t, "Start", "2030-02-01")
		newTask(t, "Middle", "2030-02-05")
		newTask(t, "End", "2030-02-10")
		newTask(t, "Outside", "2030-02-11")

		inRange, err := tasks.ListByUserAndRange(ctx, user.ID, "2030-02-01", "2030-02-10")
		require.NoError(t, err)
		assert.Len(t, inRange, 3)
	})

	t.Run("Update persists the completed flag", func(t *testing.T) {
		task := newTask(t, "Toggle me", "2030-03-01")

		task.SetCompleted(true)
		require.NoError(t, tasks.Update(ctx, task))

		saved, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, saved.Completed)
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		task := newTask(t, "Delete me", "2030-04-01")

		require.NoError(t, tasks.Delete(ctx, task.ID))

		_, err := tasks.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("Missing rows map to the sentinel", func(t *testing.T) {
		_, err := tasks.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)

		assert.ErrorIs(t, tasks.Delete(ctx, uuid.NewString()), domain.ErrTaskNotFound)
	})
}
