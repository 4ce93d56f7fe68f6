package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/core/ports"
	"github.com/okruta/routelog/internal/pkg/period"
)

// ErrUnknownPeriod marks a period name outside the supported set, as
// opposed to a storage failure while summing a valid one.
var ErrUnknownPeriod = errors.New("unknown period")

// ReportService aggregates logged mileage over calendar periods.
type ReportService struct {
	records ports.RouteRecordRepository
	cache   ports.CacheService
	now     NowFunc
}

// NowFunc supplies the reference "today"; injectable for tests.
type NowFunc func() int64

// NewReportService creates a new ReportService. now may be nil to use the
// wall clock.
func NewReportService(records ports.RouteRecordRepository, cache ports.CacheService, now NowFunc) *ReportService {
	return &ReportService{records: records, cache: cache, now: now}
}

// TotalForRange sums distances for one conversation over the range. Sums
// are full precision; rounding happens at display time only.
func (s *ReportService) TotalForRange(ctx context.Context, conversationID int64, r period.Range) (float64, error) {
	from, to := r.Window()

	cacheKey := fmt.Sprintf("routelog:sum:%d:%d:%d", conversationID, from, to)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			if total, err := strconv.ParseFloat(string(data), 64); err == nil {
				return total, nil
			}
		}
	}

	total, err := s.records.SumInRange(ctx, conversationID, from, to)
	if err != nil {
		return 0, fmt.Errorf("sum in range: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, []byte(strconv.FormatFloat(total, 'f', -1, 64)), 60)
	}
	return total, nil
}

// TotalForPeriod resolves a named period against today and sums it.
func (s *ReportService) TotalForPeriod(ctx context.Context, conversationID int64, name domain.PeriodName) (period.Range, float64, error) {
	r, err := s.resolve(name)
	if err != nil {
		return period.Range{}, 0, err
	}
	total, err := s.TotalForRange(ctx, conversationID, r)
	return r, total, err
}

// TotalManual validates a caller-supplied date range and sums it. Invalid
// or inverted ranges are rejected before any storage query.
func (s *ReportService) TotalManual(ctx context.Context, conversationID int64, start, end string) (period.Range, float64, error) {
	r, err := period.Manual(start, end)
	if err != nil {
		return period.Range{}, 0, err
	}
	total, err := s.TotalForRange(ctx, conversationID, r)
	return r, total, err
}

// ListRecords returns a page of a conversation's route records with the
// total count.
func (s *ReportService) ListRecords(ctx context.Context, conversationID int64, offset, limit int) ([]domain.RouteRecord, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.records.ListByConversation(ctx, conversationID, offset, limit)
}

// ActiveConversations lists conversations with records inside the range.
func (s *ReportService) ActiveConversations(ctx context.Context, r period.Range) ([]int64, error) {
	from, to := r.Window()
	return s.records.ActiveConversations(ctx, from, to)
}

func (s *ReportService) resolve(name domain.PeriodName) (period.Range, error) {
	today := todayFrom(s.now)
	switch name {
	case domain.PeriodLastWeek:
		return period.LastWeek(today), nil
	case domain.PeriodThisWeek:
		return period.ThisWeek(today), nil
	case domain.PeriodLastMonth:
		return period.LastMonth(today), nil
	case domain.PeriodThisMonth:
		return period.ThisMonth(today), nil
	default:
		return period.Range{}, fmt.Errorf("%w %q", ErrUnknownPeriod, name)
	}
}
