package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

func (r *PostgresHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
        INSERT INTO habits (id, user_id, title, emoji, color, description, current_streak, longest_streak, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.UserID, h.Title, h.Emoji, h.Color, h.Description,
		h.CurrentStreak, h.LongestStreak, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	return nil
}

func (r *PostgresHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT * FROM habits WHERE id = $1`

	var h domain.Habit
	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return &h, nil
}

func (r *PostgresHabitRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	query := `SELECT * FROM habits WHERE user_id = $1 ORDER BY created_at ASC`

	var habits []*domain.Habit
	if err := r.db.SelectContext(ctx, &habits, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return habits, nil
}

func (r *PostgresHabitRepository) Delete(ctx context.Context, id string) error {
	// Logs go with the habit (ON DELETE CASCADE on habit_logs).
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}

	return nil
}

func (r *PostgresHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	query := `
        UPDATE habits
        SET current_streak = $1, longest_streak = $2, updated_at = NOW()
        WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, current, longest, id)
	if err != nil {
		return fmt.Errorf("streak update failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}

	return nil
}
