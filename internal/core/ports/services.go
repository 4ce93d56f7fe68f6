package ports

import (
	"context"

	"github.com/okruta/routelog/internal/core/domain"
)

// DirectionsProvider computes the driving distance of a round trip from
// base through the waypoints and back. Provider failures are absorbed into
// the returned Distance value, never surfaced as errors.
type DirectionsProvider interface {
	RouteDistance(ctx context.Context, base string, waypoints []string) domain.Distance
}

// Messenger delivers replies over the chat transport.
type Messenger interface {
	SendMessage(ctx context.Context, conversationID int64, text string) error
	// SendMenu sends text together with a one-tap reply keyboard.
	SendMenu(ctx context.Context, conversationID int64, text string, buttons []string) error
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishRouteComputed(ctx context.Context, event *domain.RouteComputed) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
