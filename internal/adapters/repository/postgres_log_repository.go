package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type PostgresHabitLogRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitLogRepository(db *sqlx.DB) *PostgresHabitLogRepository {
	return &PostgresHabitLogRepository{db: db}
}

func (r *PostgresHabitLogRepository) Upsert(ctx context.Context, log *domain.HabitLog) (bool, error) {
	// (habit_id, date) is the primary key; re-logging a day is a no-op
	// and affects zero rows, which is how we detect the repeat.
	query := `
        INSERT INTO habit_logs (habit_id, date, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (habit_id, date) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, log.HabitID, log.Date, log.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to upsert habit log: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (r *PostgresHabitLogRepository) Delete(ctx context.Context, habitID, date string) error {
	query := `DELETE FROM habit_logs WHERE habit_id = $1 AND date = $2`

	if _, err := r.db.ExecContext(ctx, query, habitID, date); err != nil {
		return fmt.Errorf("failed to delete habit log: %w", err)
	}

	return nil
}

func (r *PostgresHabitLogRepository) ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	query := `SELECT * FROM habit_logs WHERE habit_id = $1 ORDER BY date DESC`

	var logs []*domain.HabitLog
	if err := r.db.SelectContext(ctx, &logs, query, habitID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return logs, nil
}

func (r *PostgresHabitLogRepository) ListByUser(ctx context.Context, userID string) ([]*domain.HabitLog, error) {
	query := `
        SELECT hl.habit_id, hl.date, hl.created_at
        FROM habit_logs hl
        JOIN habits h ON h.id = hl.habit_id
        WHERE h.user_id = $1
        ORDER BY hl.date DESC`

	var logs []*domain.HabitLog
	if err := r.db.SelectContext(ctx, &logs, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return logs, nil
}

func (r *PostgresHabitLogRepository) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.HabitLog, error) {
	query := `
        SELECT hl.habit_id, hl.date, hl.created_at
        FROM habit_logs hl
        JOIN habits h ON h.id = hl.habit_id
        WHERE h.user_id = $1 AND hl.date >= $2 AND hl.date <= $3
        ORDER BY hl.date ASC`

	var logs []*domain.HabitLog
	if err := r.db.SelectContext(ctx, &logs, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("range query error: %w", err)
	}

	return logs, nil
}

type PostgresRoutineLogRepository struct {
	db *sqlx.DB
}

func NewPostgresRoutineLogRepository(db *sqlx.DB) *PostgresRoutineLogRepository {
	return &PostgresRoutineLogRepository{db: db}
}

func (r *PostgresRoutineLogRepository) Upsert(ctx context.Context, log *domain.RoutineLog) (bool, error) {
	query := `
        INSERT INTO routine_logs (routine_id, date, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (routine_id, date) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, log.RoutineID, log.Date, log.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to upsert routine log: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (r *PostgresRoutineLogRepository) Delete(ctx context.Context, routineID, date string) error {
	query := `DELETE FROM routine_logs WHERE routine_id = $1 AND date = $2`

	if _, err := r.db.ExecContext(ctx, query, routineID, date); err != nil {
		return fmt.Errorf("failed to delete routine log: %w", err)
	}

	return nil
}

func (r *PostgresRoutineLogRepository) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.RoutineLog, error) {
	query := `
        SELECT rl.routine_id, rl.date, rl.created_at
        FROM routine_logs rl
        JOIN routines ro ON ro.id = rl.routine_id
        WHERE ro.user_id = $1 AND rl.date >= $2 AND rl.date <= $3
        ORDER BY rl.date ASC`

	var logs []*domain.RoutineLog
	if err := r.db.SelectContext(ctx, &logs, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("range query error: %w", err)
	}

	return logs, nil
}
