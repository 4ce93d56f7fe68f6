package ports

import (
	"context"

	"github.com/okruta/routelog/internal/core/domain"
)

// RouteRecordRepository persists per-route mileage records. The log is
// append-only: records are never updated or deleted.
type RouteRecordRepository interface {
	Append(ctx context.Context, rec *domain.RouteRecord) error
	// SumInRange returns the full-precision sum of distances for one
	// conversation within the inclusive [fromTS, toTS] epoch-second window,
	// 0 when nothing matches.
	SumInRange(ctx context.Context, conversationID, fromTS, toTS int64) (float64, error)
	// ListByConversation returns records newest-first with the total count
	// for pagination.
	ListByConversation(ctx context.Context, conversationID int64, offset, limit int) ([]domain.RouteRecord, int, error)
	// ActiveConversations lists conversation IDs with at least one record
	// inside the window.
	ActiveConversations(ctx context.Context, fromTS, toTS int64) ([]int64, error)
}

// SettingsRepository persists per-conversation base-point overrides.
type SettingsRepository interface {
	// SetBasePoint upserts atomically; last write wins.
	SetBasePoint(ctx context.Context, conversationID int64, basePoint string) error
	// GetBasePoint returns the override, or "" when the conversation has
	// none set.
	GetBasePoint(ctx context.Context, conversationID int64) (string, error)
}
