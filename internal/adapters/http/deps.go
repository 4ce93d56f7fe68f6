package http

import (
	"github.com/okruta/routelog/internal/adapters/postgres"
	"github.com/okruta/routelog/internal/adapters/valkey"
	"github.com/okruta/routelog/internal/core/usecases"
)

// NATSConn is the minimal broker surface the readiness check needs.
type NATSConn interface {
	IsConnected() bool
}

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Routes       *usecases.RouteService
	Reports      *usecases.ReportService
	Settings     *usecases.SettingsService
	WebhookToken string
	NATS         NATSConn
	DB           *postgres.DB
	Cache        *valkey.Cache
}
