package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type PostgresMoodLogRepository struct {
	db *sqlx.DB
}

func NewPostgresMoodLogRepository(db *sqlx.DB) *PostgresMoodLogRepository {
	return &PostgresMoodLogRepository{db: db}
}

func (r *PostgresMoodLogRepository) Upsert(ctx context.Context, mood *domain.MoodLog) error {
	// One mood per (user, day); logging again replaces type and message.
	query := `
        INSERT INTO mood_logs (id, user_id, date, mood_type, message, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id, date) DO UPDATE
        SET mood_type = EXCLUDED.mood_type,
            message = EXCLUDED.message,
            updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		mood.ID, mood.UserID, mood.Date, mood.MoodType, mood.Message, mood.CreatedAt, mood.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert mood log: %w", err)
	}

	return nil
}

func (r *PostgresMoodLogRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.MoodLog, error) {
	query := `SELECT * FROM mood_logs WHERE user_id = $1 ORDER BY date DESC LIMIT $2`

	var moods []*domain.MoodLog
	if err := r.db.SelectContext(ctx, &moods, query, userID, limit); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return moods, nil
}
