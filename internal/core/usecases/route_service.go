package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/core/ports"
	"github.com/okruta/routelog/internal/pkg/extract"
	"github.com/okruta/routelog/internal/pkg/mapsurl"
	"github.com/okruta/routelog/internal/pkg/metrics"
	"github.com/okruta/routelog/internal/pkg/period"
)

// Reply texts, matching the original deployment's Ukrainian wording.
const (
	replyHeader         = "🚗 Маршрут на день (старт/фініш: %s):"
	replyLink           = "🔗 Маршрут: %s"
	replyDistance       = "📏 Дистанція: %.1f км"
	replyNoDistance     = "📏 Не вдалося порахувати дистанцію."
	replyBaseSet        = "✅ Базову точку змінено: %s"
	replyBaseUsage      = "Вкажіть адресу: /setbase <адреса>"
	replyPeriodUsage    = "Формат: /period РРРР-ММ-ДД РРРР-ММ-ДД, напр. /period 2025-08-01 2025-08-31"
	replyPeriodBadRange = "Невірні дати. " + replyPeriodUsage
	replyPeriodTotal    = "📊 Пробіг за %s: %.1f км"
	replyMenuPrompt     = "Оберіть період:"
	replyTryAgain       = "Сталася помилка, спробуйте ще раз."
	replyUnknownCommand = "Невідома команда. Доступні: /setbase, /period, /lastweek, /report"
)

// RouteService orchestrates one pipeline run per inbound message: extract
// addresses, resolve the base point, build the route link, fetch the
// distance, persist, reply.
type RouteService struct {
	extractor  *extract.Extractor
	settings   *SettingsService
	reports    *ReportService
	records    ports.RouteRecordRepository
	directions ports.DirectionsProvider
	messenger  ports.Messenger
	events     ports.EventPublisher
}

// NewRouteService creates a new RouteService. events may be nil when no
// broker is configured.
func NewRouteService(
	extractor *extract.Extractor,
	settings *SettingsService,
	reports *ReportService,
	records ports.RouteRecordRepository,
	directions ports.DirectionsProvider,
	messenger ports.Messenger,
	events ports.EventPublisher,
) *RouteService {
	return &RouteService{
		extractor:  extractor,
		settings:   settings,
		reports:    reports,
		records:    records,
		directions: directions,
		messenger:  messenger,
		events:     events,
	}
}

// HandleMessage classifies the message once and dispatches. Failures are
// scoped to this one message; the caller only logs the returned error.
func (s *RouteService) HandleMessage(ctx context.Context, msg domain.InboundMessage) error {
	switch cmd := domain.ParseCommand(msg.Text).(type) {
	case domain.SetBase:
		return s.handleSetBase(ctx, msg, cmd)
	case domain.PeriodReport:
		return s.handlePeriodReport(ctx, msg, cmd)
	case domain.NamedPeriod:
		return s.handleNamedPeriod(ctx, msg, cmd)
	case domain.Menu:
		return s.messenger.SendMenu(ctx, msg.ConversationID, replyMenuPrompt, []string{
			domain.LabelLastWeek, domain.LabelThisWeek,
			domain.LabelLastMonth, domain.LabelThisMonth,
			domain.LabelManualPeriod,
		})
	case domain.Unknown:
		return s.messenger.SendMessage(ctx, msg.ConversationID, replyUnknownCommand)
	case domain.RouteText:
		return s.handleRoute(ctx, msg, cmd.Text)
	default:
		return fmt.Errorf("unhandled command type %T", cmd)
	}
}

func (s *RouteService) handleRoute(ctx context.Context, msg domain.InboundMessage, text string) error {
	addresses := s.extractor.Extract(text)
	if len(addresses) == 0 {
		// Not an address message. Stay silent.
		return nil
	}

	base := s.settings.BasePoint(ctx, msg.ConversationID)

	// The distance fetch is the only slow step; run it while the link is
	// being built. Persistence below waits on the result.
	distCh := make(chan domain.Distance, 1)
	go func() {
		distCh <- s.directions.RouteDistance(ctx, base, addresses)
	}()

	link := mapsurl.Build(base, addresses)
	metrics.RoutesComputed.Inc()
	dist := <-distCh

	if dist.Available() && dist.Km > 0 {
		rec := &domain.RouteRecord{
			ConversationID: msg.ConversationID,
			MessageTS:      msg.Timestamp,
			DistanceKm:     dist.Km,
			RawText:        msg.Text,
		}
		if err := s.records.Append(ctx, rec); err != nil {
			// The record is required; without a durable write the reply
			// is suppressed.
			return fmt.Errorf("append route record: %w", err)
		}

		if s.events != nil {
			event := &domain.RouteComputed{
				ConversationID: msg.ConversationID,
				MessageTS:      msg.Timestamp,
				DistanceKm:     dist.Km,
				Addresses:      addresses,
			}
			if err := s.events.PublishRouteComputed(ctx, event); err != nil {
				slog.Warn("route event publish failed", "error", err)
			}
		}
	} else if !dist.Available() {
		slog.Warn("distance unavailable",
			"conversation_id", msg.ConversationID, "reason", dist.Reason)
	}

	return s.messenger.SendMessage(ctx, msg.ConversationID, formatRouteReply(base, addresses, link, dist))
}

func (s *RouteService) handleSetBase(ctx context.Context, msg domain.InboundMessage, cmd domain.SetBase) error {
	if cmd.Text == "" {
		return s.messenger.SendMessage(ctx, msg.ConversationID, replyBaseUsage)
	}
	if err := s.settings.SetBasePoint(ctx, msg.ConversationID, cmd.Text); err != nil {
		return fmt.Errorf("set base point: %w", err)
	}
	return s.messenger.SendMessage(ctx, msg.ConversationID, fmt.Sprintf(replyBaseSet, cmd.Text))
}

func (s *RouteService) handlePeriodReport(ctx context.Context, msg domain.InboundMessage, cmd domain.PeriodReport) error {
	if cmd.Start == "" || cmd.End == "" {
		return s.messenger.SendMessage(ctx, msg.ConversationID, replyPeriodUsage)
	}

	r, total, err := s.reports.TotalManual(ctx, msg.ConversationID, cmd.Start, cmd.End)
	if err != nil {
		if _, perr := period.Manual(cmd.Start, cmd.End); perr != nil {
			return s.messenger.SendMessage(ctx, msg.ConversationID, replyPeriodBadRange)
		}
		_ = s.messenger.SendMessage(ctx, msg.ConversationID, replyTryAgain)
		return fmt.Errorf("period report: %w", err)
	}
	return s.messenger.SendMessage(ctx, msg.ConversationID, fmt.Sprintf(replyPeriodTotal, r, total))
}

func (s *RouteService) handleNamedPeriod(ctx context.Context, msg domain.InboundMessage, cmd domain.NamedPeriod) error {
	r, total, err := s.reports.TotalForPeriod(ctx, msg.ConversationID, cmd.Period)
	if err != nil {
		_ = s.messenger.SendMessage(ctx, msg.ConversationID, replyTryAgain)
		return fmt.Errorf("period %s report: %w", cmd.Period, err)
	}
	return s.messenger.SendMessage(ctx, msg.ConversationID, fmt.Sprintf(replyPeriodTotal, r, total))
}

// formatRouteReply renders the numbered address list, the route link, and
// the distance (or the could-not-compute notice).
func formatRouteReply(base string, addresses []string, link string, dist domain.Distance) string {
	var b strings.Builder
	fmt.Fprintf(&b, replyHeader, base)
	b.WriteString("\n\n")
	for i, a := range addresses {
		fmt.Fprintf(&b, "%d) %s\n", i+1, a)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, replyLink, link)
	b.WriteString("\n")
	if dist.Available() && dist.Km > 0 {
		fmt.Fprintf(&b, replyDistance, dist.Km)
	} else {
		b.WriteString(replyNoDistance)
	}
	return b.String()
}

// todayFrom converts an epoch-second clock into a UTC date.
func todayFrom(now NowFunc) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return time.Unix(now(), 0).UTC()
}
