package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type PostgresRoutineRepository struct {
	db *sqlx.DB
}

func NewPostgresRoutineRepository(db *sqlx.DB) *PostgresRoutineRepository {
	return &PostgresRoutineRepository{db: db}
}

func (r *PostgresRoutineRepository) Create(ctx context.Context, routine *domain.Routine) error {
	query := `
        INSERT INTO routines (id, user_id, title, time_label, description, sort_order, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		routine.ID, routine.UserID, routine.Title, routine.TimeLabel,
		routine.Description, routine.SortOrder, routine.CreatedAt, routine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert routine: %w", err)
	}

	return nil
}

func (r *PostgresRoutineRepository) GetByID(ctx context.Context, id string) (*domain.Routine, error) {
	query := `SELECT * FROM routines WHERE id = $1`

	var routine domain.Routine
	if err := r.db.GetContext(ctx, &routine, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoutineNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return &routine, nil
}

func (r *PostgresRoutineRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Routine, error) {
	query := `SELECT * FROM routines WHERE user_id = $1 ORDER BY sort_order ASC, created_at ASC`

	var routines []*domain.Routine
	if err := r.db.SelectContext(ctx, &routines, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return routines, nil
}

func (r *PostgresRoutineRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRoutineNotFound
	}

	return nil
}
