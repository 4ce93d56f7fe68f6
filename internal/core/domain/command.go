package domain

import (
	"strings"
)

// PeriodName identifies a named calendar period.
type PeriodName string

const (
	PeriodLastWeek  PeriodName = "last_week"
	PeriodThisWeek  PeriodName = "this_week"
	PeriodLastMonth PeriodName = "last_month"
	PeriodThisMonth PeriodName = "this_month"
)

// Menu button labels, also accepted as plain-text commands when the user
// taps the reply keyboard.
const (
	LabelLastWeek     = "Минулий тиждень"
	LabelThisWeek     = "Цей тиждень"
	LabelLastMonth    = "Минулий місяць"
	LabelThisMonth    = "Цей місяць"
	LabelManualPeriod = "Вказати період"
)

// Command is the decoded form of an inbound message, decided once at the
// transport boundary and dispatched with an exhaustive type switch.
type Command interface {
	isCommand()
}

// SetBase sets the conversation's base point. Text is empty when the
// argument was missing.
type SetBase struct {
	Text string
}

// PeriodReport requests a mileage total for an explicit date range.
// Start and End are raw YYYY-MM-DD arguments, validated downstream;
// both empty means the user asked for the manual-entry prompt.
type PeriodReport struct {
	Start string
	End   string
}

// NamedPeriod requests a mileage total for a named calendar period.
type NamedPeriod struct {
	Period PeriodName
}

// Menu requests the interactive period keyboard.
type Menu struct{}

// Unknown is an unrecognized slash command.
type Unknown struct {
	Name string
}

// RouteText is a free-form message to run through address extraction.
type RouteText struct {
	Text string
}

func (SetBase) isCommand()      {}
func (PeriodReport) isCommand() {}
func (NamedPeriod) isCommand()  {}
func (Menu) isCommand()         {}
func (Unknown) isCommand()      {}
func (RouteText) isCommand()    {}

// CommandKind names a command variant for logs and metric labels.
func CommandKind(c Command) string {
	switch c.(type) {
	case SetBase:
		return "set_base"
	case PeriodReport:
		return "period_report"
	case NamedPeriod:
		return "named_period"
	case Menu:
		return "menu"
	case Unknown:
		return "unknown"
	case RouteText:
		return "route_text"
	default:
		return "invalid"
	}
}

// ParseCommand classifies one inbound message. Slash commands are matched
// case-sensitively and bypass address extraction entirely; menu button
// labels are matched against their exact text.
func ParseCommand(text string) Command {
	trimmed := strings.TrimSpace(text)

	switch trimmed {
	case LabelLastWeek:
		return NamedPeriod{Period: PeriodLastWeek}
	case LabelThisWeek:
		return NamedPeriod{Period: PeriodThisWeek}
	case LabelLastMonth:
		return NamedPeriod{Period: PeriodLastMonth}
	case LabelThisMonth:
		return NamedPeriod{Period: PeriodThisMonth}
	case LabelManualPeriod:
		return PeriodReport{}
	}

	if !strings.HasPrefix(trimmed, "/") {
		return RouteText{Text: text}
	}

	fields := strings.Fields(trimmed)
	name := fields[0]
	args := fields[1:]

	switch name {
	case "/setbase":
		return SetBase{Text: strings.TrimSpace(strings.TrimPrefix(trimmed, "/setbase"))}
	case "/period":
		if len(args) < 2 {
			return PeriodReport{}
		}
		return PeriodReport{Start: args[0], End: args[1]}
	case "/lastweek":
		return NamedPeriod{Period: PeriodLastWeek}
	case "/report":
		return Menu{}
	default:
		return Unknown{Name: name}
	}
}
