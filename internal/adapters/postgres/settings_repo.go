package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// SettingsRepo implements ports.SettingsRepository.
type SettingsRepo struct {
	db *DB
}

func NewSettingsRepo(db *DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) SetBasePoint(ctx context.Context, conversationID int64, basePoint string) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO conversation_settings (conversation_id, base_point, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (conversation_id) DO UPDATE
		SET base_point = EXCLUDED.base_point, updated_at = now()
	`, conversationID, basePoint)
	return err
}

func (r *SettingsRepo) GetBasePoint(ctx context.Context, conversationID int64) (string, error) {
	var basePoint string
	err := r.db.Pool.QueryRow(ctx, `
		SELECT base_point FROM conversation_settings WHERE conversation_id = $1
	`, conversationID).Scan(&basePoint)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return basePoint, nil
}
