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

type PostgresTaskRepository struct {
	db *sqlx.DB
}

func NewPostgresTaskRepository(db *sqlx.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `
        INSERT INTO tasks (id, user_id, title, description, date, completed, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, t.Date, t.Completed, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

func (r *PostgresTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT * FROM tasks WHERE id = $1`

	var t domain.Task
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return &t, nil
}

func (r *PostgresTaskRepository) ListByUser(ctx context.Context, userID, date string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	var err error

	if date == "" {
		query := `SELECT * FROM tasks WHERE user_id = $1 ORDER BY created_at ASC`
		err = r.db.SelectContext(ctx, &tasks, query, userID)
	} else {
		query := `SELECT * FROM tasks WHERE user_id = $1 AND date = $2 ORDER BY created_at ASC`
		err = r.db.SelectContext(ctx, &tasks, query, userID, date)
	}

	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return tasks, nil
}

func (r *PostgresTaskRepository) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.Task, error) {
	query := `
        SELECT * FROM tasks
        WHERE user_id = $1 AND date >= $2 AND date <= $3
        ORDER BY date ASC, created_at ASC`

	var tasks []*domain.Task
	if err := r.db.SelectContext(ctx, &tasks, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("range query error: %w", err)
	}

	return tasks, nil
}

func (r *PostgresTaskRepository) Update(ctx context.Context, t *domain.Task) error {
	query := `
        UPDATE tasks
        SET title = $1, description = $2, date = $3, completed = $4, updated_at = $5
        WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, t.Date, t.Completed, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}
