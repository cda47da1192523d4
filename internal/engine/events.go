package engine

import "log/slog"

// EventKind tags the finite set of loggable engine occurrences.
type EventKind string

const (
	EventWager           EventKind = "wager"
	EventCredit          EventKind = "credit"
	EventOutcome         EventKind = "outcome"
	EventCultJoined      EventKind = "cult_joined"
	EventBoonApplied     EventKind = "boon_applied"
	EventBoonExpired     EventKind = "boon_expired"
	EventQuestClaimed    EventKind = "quest_claimed"
	EventBlessingClaimed EventKind = "blessing_claimed"
	EventClashResolved   EventKind = "clash_resolved"
)

// Event is a tagged record of one state transition. Only the fields
// relevant to the Kind are set; the rest stay zero.
type Event struct {
	Kind    EventKind
	God     GodID
	Boon    BoonKind
	Quest   string
	Amount  int64
	Outcome ClashOutcome
}

// LogValue renders the event for slog with only its populated fields.
func (e Event) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("kind", string(e.Kind)))

	if e.God != "" {
		attrs = append(attrs, slog.String("god", string(e.God)))
	}

	if e.Boon != "" {
		attrs = append(attrs, slog.String("boon", string(e.Boon)))
	}

	if e.Quest != "" {
		attrs = append(attrs, slog.String("quest", e.Quest))
	}

	if e.Amount != 0 {
		attrs = append(attrs, slog.Int64("amount", e.Amount))
	}

	if e.Outcome != "" {
		attrs = append(attrs, slog.String("outcome", string(e.Outcome)))
	}

	return slog.GroupValue(attrs...)
}
