package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/core/ports"
	"github.com/okruta/routelog/internal/core/usecases"
	"github.com/okruta/routelog/internal/pkg/period"
)

// DigestActivities holds the activity implementations for the weekly
// digest workflow.
type DigestActivities struct {
	Reports   *usecases.ReportService
	Messenger ports.Messenger
	Now       usecases.NowFunc
}

// ListActiveConversations returns conversations that logged mileage last week.
func (a *DigestActivities) ListActiveConversations(ctx context.Context) ([]int64, error) {
	ids, err := a.Reports.ActiveConversations(ctx, a.lastWeek())
	if err != nil {
		return nil, fmt.Errorf("list active conversations: %w", err)
	}
	return ids, nil
}

// SumLastWeek totals one conversation's mileage for the previous week.
func (a *DigestActivities) SumLastWeek(ctx context.Context, conversationID int64) (float64, error) {
	_, total, err := a.Reports.TotalForPeriod(ctx, conversationID, domain.PeriodLastWeek)
	if err != nil {
		return 0, fmt.Errorf("sum last week for %d: %w", conversationID, err)
	}
	return total, nil
}

// SendDigest delivers the weekly total to a conversation.
func (a *DigestActivities) SendDigest(ctx context.Context, conversationID int64, total float64) error {
	text := fmt.Sprintf("📊 Підсумок тижня (%s): %.1f км", a.lastWeek(), total)
	if err := a.Messenger.SendMessage(ctx, conversationID, text); err != nil {
		return fmt.Errorf("send digest to %d: %w", conversationID, err)
	}
	return nil
}

func (a *DigestActivities) lastWeek() period.Range {
	today := time.Now().UTC()
	if a.Now != nil {
		today = time.Unix(a.Now(), 0).UTC()
	}
	return period.LastWeek(today)
}
