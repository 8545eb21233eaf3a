package event

// DayCompletedPayload captures the payload for day.completed events.
type DayCompletedPayload struct {
	Date     string   `json:"date"`
	Zone     string   `json:"zone"`
	Season   string   `json:"season"`
	Steps    []string `json:"steps"`
	Requests int      `json:"requests"`
	Warnings []string `json:"warnings,omitempty"`
}

// ClockAdvancedPayload captures the payload for clock.advanced events.
type ClockAdvancedPayload struct {
	Clock   string `json:"clock"`
	Action  string `json:"action"`
	Old     int    `json:"old"`
	New     int    `json:"new"`
	Max     int    `json:"max"`
	Reason  string `json:"reason,omitempty"`
	Cadence bool   `json:"cadence"`
}

// ClockHaltedPayload captures the payload for clock.halted events.
type ClockHaltedPayload struct {
	Clock     string  `json:"clock"`
	Condition string  `json:"condition"`
	Ratio     float64 `json:"ratio"`
}

// ClockSpawnedPayload captures the payload for clock.spawned events.
type ClockSpawnedPayload struct {
	Clock string `json:"clock"`
	Max   int    `json:"max"`
	Rule  string `json:"rule"`
}

// TriggerFiredPayload captures the payload for trigger.fired events.
type TriggerFiredPayload struct {
	Clock   string `json:"clock"`
	Trigger string `json:"trigger"`
}

// SessionEndedPayload captures the payload for session.ended events.
type SessionEndedPayload struct {
	SessionID int    `json:"session_id"`
	Date      string `json:"date"`
	Zone      string `json:"zone"`
}

// TravelExecutedPayload captures the payload for travel.executed events.
type TravelExecutedPayload struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Crossing string `json:"crossing"`
	Tag      string `json:"tag,omitempty"`
	Days     int    `json:"days"`
}

// CreativeAppliedPayload captures the payload for creative.applied events.
type CreativeAppliedPayload struct {
	RequestID    string `json:"request_id"`
	Kind         string `json:"kind"`
	StateChanges int    `json:"state_changes"`
}
