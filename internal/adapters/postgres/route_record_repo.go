package postgres

import (
	"context"

	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/pkg/metrics"
)

// RouteRecordRepo implements ports.RouteRecordRepository.
type RouteRecordRepo struct {
	db *DB
}

func NewRouteRecordRepo(db *DB) *RouteRecordRepo { return &RouteRecordRepo{db: db} }

// Append persists one route record. Zero and negative distances are a
// silent no-op; the caller owns that invariant and storage never rejects
// such a value.
func (r *RouteRecordRepo) Append(ctx context.Context, rec *domain.RouteRecord) error {
	if rec.DistanceKm <= 0 {
		return nil
	}
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO route_records (conversation_id, message_ts, distance_km, raw_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rec.ConversationID, rec.MessageTS, rec.DistanceKm, rec.RawText).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return err
	}
	metrics.RecordsAppended.Inc()
	metrics.DistanceKmTotal.Add(rec.DistanceKm)
	return nil
}

func (r *RouteRecordRepo) SumInRange(ctx context.Context, conversationID, fromTS, toTS int64) (float64, error) {
	var total float64
	err := r.db.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(distance_km), 0)
		FROM route_records
		WHERE conversation_id = $1 AND message_ts BETWEEN $2 AND $3
	`, conversationID, fromTS, toTS).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *RouteRecordRepo) ListByConversation(ctx context.Context, conversationID int64, offset, limit int) ([]domain.RouteRecord, int, error) {
	var total int
	err := r.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM route_records WHERE conversation_id = $1
	`, conversationID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, conversation_id, message_ts, distance_km, raw_text, created_at
		FROM route_records
		WHERE conversation_id = $1
		ORDER BY message_ts DESC, id DESC
		LIMIT $2 OFFSET $3
	`, conversationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.RouteRecord
	for rows.Next() {
		var rec domain.RouteRecord
		if err := rows.Scan(&rec.ID, &rec.ConversationID, &rec.MessageTS,
			&rec.DistanceKm, &rec.RawText, &rec.CreatedAt); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

func (r *RouteRecordRepo) ActiveConversations(ctx context.Context, fromTS, toTS int64) ([]int64, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT DISTINCT conversation_id
		FROM route_records
		WHERE message_ts BETWEEN $1 AND $2
		ORDER BY conversation_id
	`, fromTS, toTS)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
