package event

import (
	"strings"
	"time"
)

// Type identifies the type of a campaign journal event.
type Type string

// Day-loop events.
const (
	// TypeDayCompleted records a fully processed in-world day.
	TypeDayCompleted Type = "day.completed"
)

// Clock events.
const (
	// TypeClockAdvanced records a clock segment advancing or reducing.
	TypeClockAdvanced Type = "clock.advanced"
	// TypeClockHalted records a clock halt condition firing.
	TypeClockHalted Type = "clock.halted"
	// TypeClockSpawned records a clock created by an interaction rule.
	TypeClockSpawned Type = "clock.spawned"
	// TypeTriggerFired records a clock reaching maximum progress.
	TypeTriggerFired Type = "trigger.fired"
)

// Session events.
const (
	// TypeSessionEnded records the end of a play session.
	TypeSessionEnded Type = "session.ended"
)

// Travel events.
const (
	// TypeTravelExecuted records party movement across a crossing point.
	TypeTravelExecuted Type = "travel.executed"
)

// Creative events.
const (
	// TypeCreativeApplied records a creative response applied to state.
	TypeCreativeApplied Type = "creative.applied"
)

// Event represents an immutable entry in the campaign journal.
type Event struct {
	// CampaignID is the campaign this event belongs to.
	CampaignID string
	// Seq is the event sequence number within the campaign (starts at 1).
	// Assigned by storage on append.
	Seq uint64
	// Timestamp is when the event occurred.
	Timestamp time.Time
	// Type identifies the kind of event.
	Type Type
	// SessionID is the play session the event happened in.
	SessionID int
	// Day is the in-world date when the event occurred (e.g. "23 Ilrym").
	Day string
	// PayloadJSON holds event-specific data as JSON.
	PayloadJSON []byte
}

// IsValid reports whether the event type is usable.
func (t Type) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Domain returns the domain prefix of the event type (e.g., "clock", "travel").
func (t Type) Domain() string {
	for i, c := range t {
		if c == '.' {
			return string(t[:i])
		}
	}
	return string(t)
}
