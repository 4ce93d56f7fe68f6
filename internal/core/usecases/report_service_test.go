package usecases_test

import (
	"context"
	"testing"

	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/core/usecases"
	"github.com/okruta/routelog/internal/pkg/period"
)

func newReportService(repo *mockRecordRepo) *usecases.ReportService {
	// Reference today: Wed 2025-08-20 UTC.
	return usecases.NewReportService(repo, nil, func() int64 { return 1755648000 })
}

func TestTotalForRange_EmptyRangeIsZero(t *testing.T) {
	repo := &mockRecordRepo{}
	svc := newReportService(repo)

	r, err := period.Manual("2025-08-01", "2025-08-31")
	if err != nil {
		t.Fatal(err)
	}
	total, err := svc.TotalForRange(context.Background(), 42, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0 for empty range, got %f", total)
	}
}

func TestTotalForRange_SumsRecords(t *testing.T) {
	repo := &mockRecordRepo{
		sumFn: func(ctx context.Context, conversationID, fromTS, toTS int64) (float64, error) {
			// 10.0 + 5.5 logged inside the window.
			return 15.5, nil
		},
	}
	svc := newReportService(repo)

	r, _ := period.Manual("2025-08-01", "2025-08-31")
	total, err := svc.TotalForRange(context.Background(), 42, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 15.5 {
		t.Errorf("expected 15.5, got %f", total)
	}
}

func TestTotalManual_InvalidRejectedBeforeQuery(t *testing.T) {
	repo := &mockRecordRepo{}
	svc := newReportService(repo)

	if _, _, err := svc.TotalManual(context.Background(), 42, "2025-09-01", "2025-08-01"); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if _, _, err := svc.TotalManual(context.Background(), 42, "not-a-date", "2025-08-01"); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if repo.sumCalls != 0 {
		t.Errorf("invalid ranges must not reach storage, got %d queries", repo.sumCalls)
	}
}

func TestTotalForPeriod_LastWeekWindow(t *testing.T) {
	var gotFrom, gotTo int64
	repo := &mockRecordRepo{
		sumFn: func(ctx context.Context, conversationID, fromTS, toTS int64) (float64, error) {
			gotFrom, gotTo = fromTS, toTS
			return 0, nil
		},
	}
	svc := newReportService(repo)

	r, _, err := svc.TotalForPeriod(context.Background(), 42, domain.PeriodLastWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFrom != 1754870400 || gotTo != 1755475199 {
		t.Errorf("unexpected window %d..%d", gotFrom, gotTo)
	}
	if r.Start.Weekday().String() != "Monday" {
		t.Errorf("expected Monday start, got %s", r.Start.Weekday())
	}
}

func TestTotalForPeriod_UnknownName(t *testing.T) {
	svc := newReportService(&mockRecordRepo{})

	if _, _, err := svc.TotalForPeriod(context.Background(), 42, domain.PeriodName("fortnight")); err == nil {
		t.Fatal("expected error for unknown period")
	}
}

func TestListRecords_ClampsLimit(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockRecordRepo{}
	svc := usecases.NewReportService(&recordingListRepo{mockRecordRepo: repo, onList: func(offset, limit int) {
		gotOffset, gotLimit = offset, limit
	}}, nil, nil)

	if _, _, err := svc.ListRecords(context.Background(), 42, -5, 10_000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOffset != 0 || gotLimit != 50 {
		t.Errorf("expected clamped offset=0 limit=50, got offset=%d limit=%d", gotOffset, gotLimit)
	}
}

type recordingListRepo struct {
	*mockRecordRepo
	onList func(offset, limit int)
}

func (r *recordingListRepo) ListByConversation(ctx context.Context, conversationID int64, offset, limit int) ([]domain.RouteRecord, int, error) {
	r.onList(offset, limit)
	return nil, 0, nil
}
