package domain

import (
	"time"
)

// InboundMessage is one chat message as delivered by the transport.
type InboundMessage struct {
	ConversationID int64  `json:"conversation_id"`
	Timestamp      int64  `json:"timestamp"` // seconds since epoch, transport-supplied
	Text           string `json:"text"`
}

// RouteRecord is one persisted route with its computed driving distance.
// Records are append-only: never updated or deleted once written.
type RouteRecord struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	MessageTS      int64     `json:"message_ts"`
	DistanceKm     float64   `json:"distance_km"`
	RawText        string    `json:"raw_text"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationSettings holds the per-conversation base point override.
// At most one row per conversation; last write wins.
type ConversationSettings struct {
	ConversationID int64     `json:"conversation_id"`
	BasePoint      string    `json:"base_point"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RouteComputed is the event published after a route is persisted.
type RouteComputed struct {
	ConversationID int64    `json:"conversation_id"`
	MessageTS      int64    `json:"message_ts"`
	DistanceKm     float64  `json:"distance_km"`
	Addresses      []string `json:"addresses"`
}
