package domain_test

import (
	"testing"

	"github.com/okruta/routelog/internal/core/domain"
)

func TestParseCommand_SetBase(t *testing.T) {
	cmd := domain.ParseCommand("/setbase вул. Симоненка 2, Ірпінь")
	sb, ok := cmd.(domain.SetBase)
	if !ok {
		t.Fatalf("expected SetBase, got %T", cmd)
	}
	if sb.Text != "вул. Симоненка 2, Ірпінь" {
		t.Errorf("unexpected argument: %q", sb.Text)
	}
}

func TestParseCommand_SetBaseMissingArg(t *testing.T) {
	cmd := domain.ParseCommand("/setbase")
	sb, ok := cmd.(domain.SetBase)
	if !ok {
		t.Fatalf("expected SetBase, got %T", cmd)
	}
	if sb.Text != "" {
		t.Errorf("expected empty argument, got %q", sb.Text)
	}
}

func TestParseCommand_Period(t *testing.T) {
	cmd := domain.ParseCommand("/period 2025-08-01 2025-08-31")
	pr, ok := cmd.(domain.PeriodReport)
	if !ok {
		t.Fatalf("expected PeriodReport, got %T", cmd)
	}
	if pr.Start != "2025-08-01" || pr.End != "2025-08-31" {
		t.Errorf("unexpected range: %q..%q", pr.Start, pr.End)
	}
}

func TestParseCommand_PeriodMissingArgs(t *testing.T) {
	cmd := domain.ParseCommand("/period 2025-08-01")
	pr, ok := cmd.(domain.PeriodReport)
	if !ok {
		t.Fatalf("expected PeriodReport, got %T", cmd)
	}
	if pr.Start != "" || pr.End != "" {
		t.Errorf("expected empty args, got %q..%q", pr.Start, pr.End)
	}
}

func TestParseCommand_MenuLabels(t *testing.T) {
	cases := map[string]domain.PeriodName{
		domain.LabelLastWeek:  domain.PeriodLastWeek,
		domain.LabelThisWeek:  domain.PeriodThisWeek,
		domain.LabelLastMonth: domain.PeriodLastMonth,
		domain.LabelThisMonth: domain.PeriodThisMonth,
	}
	for label, want := range cases {
		cmd := domain.ParseCommand(label)
		np, ok := cmd.(domain.NamedPeriod)
		if !ok {
			t.Fatalf("%q: expected NamedPeriod, got %T", label, cmd)
		}
		if np.Period != want {
			t.Errorf("%q: expected %s, got %s", label, want, np.Period)
		}
	}
}

func TestParseCommand_ManualPeriodLabel(t *testing.T) {
	cmd := domain.ParseCommand(domain.LabelManualPeriod)
	if _, ok := cmd.(domain.PeriodReport); !ok {
		t.Fatalf("expected PeriodReport prompt, got %T", cmd)
	}
}

func TestParseCommand_CaseSensitive(t *testing.T) {
	cmd := domain.ParseCommand("/SetBase somewhere")
	if _, ok := cmd.(domain.Unknown); !ok {
		t.Fatalf("expected Unknown for wrong case, got %T", cmd)
	}
}

func TestParseCommand_FreeText(t *testing.T) {
	cmd := domain.ParseCommand("Доставка:\nвул. Хрещатик 1, Київ")
	rt, ok := cmd.(domain.RouteText)
	if !ok {
		t.Fatalf("expected RouteText, got %T", cmd)
	}
	if rt.Text == "" {
		t.Error("route text should carry the original message")
	}
}
