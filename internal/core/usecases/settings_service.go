package usecases

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/okruta/routelog/internal/core/ports"
)

// SettingsService resolves and updates per-conversation base points.
type SettingsService struct {
	settings    ports.SettingsRepository
	cache       ports.CacheService
	defaultBase string
}

// NewSettingsService creates a new SettingsService. defaultBase is the
// process-wide fallback used when a conversation has no override.
func NewSettingsService(settings ports.SettingsRepository, cache ports.CacheService, defaultBase string) *SettingsService {
	return &SettingsService{settings: settings, cache: cache, defaultBase: defaultBase}
}

// BasePoint returns the conversation's base point, falling back to the
// configured default when no override exists or the store is unreachable.
func (s *SettingsService) BasePoint(ctx context.Context, conversationID int64) string {
	cacheKey := basePointKey(conversationID)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			return string(data)
		}
	}

	base, err := s.settings.GetBasePoint(ctx, conversationID)
	if err != nil {
		slog.Warn("base point lookup failed, using default",
			"conversation_id", conversationID, "error", err)
		return s.defaultBase
	}
	if base == "" {
		base = s.defaultBase
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, []byte(base), 600)
	}
	return base
}

// SetBasePoint upserts the conversation's base point and invalidates the
// cached value.
func (s *SettingsService) SetBasePoint(ctx context.Context, conversationID int64, basePoint string) error {
	if err := s.settings.SetBasePoint(ctx, conversationID, basePoint); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, basePointKey(conversationID))
	}
	return nil
}

func basePointKey(conversationID int64) string {
	return "routelog:base:" + strconv.FormatInt(conversationID, 10)
}
