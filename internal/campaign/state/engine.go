package state

// EngineStatus describes whether a procedural engine participates in the
// daily cadence step.
type EngineStatus string

const (
	// EngineActive indicates an engine that runs on its cadence.
	EngineActive EngineStatus = "active"
	// EngineDormant indicates an engine whose hard gates are currently unmet.
	EngineDormant EngineStatus = "dormant"
	// EngineInert indicates an engine whose linked clock has completed; it
	// stays in the registry but produces nothing.
	EngineInert EngineStatus = "inert"
)

// RollRecord is one entry in an engine's roll history.
type RollRecord struct {
	Date string `json:"date"`
	Roll int    `json:"roll"`
	Band string `json:"band"`
}

// Engine is a procedural engine definition: a named, versioned procedure
// with hard gates and a daily run cap, optionally linked to clocks.
type Engine struct {
	Name    string       `json:"name"`
	Version string       `json:"version"`
	Status  EngineStatus `json:"status"`

	ZoneScope    string   `json:"zone_scope"`
	Cadence      bool     `json:"cadence"`
	HardGates    []string `json:"hard_gates,omitempty"`
	Randomizer   string   `json:"randomizer,omitempty"`
	LinkedClocks []string `json:"linked_clocks,omitempty"`

	RunCapPerDay   int    `json:"run_cap_per_day"`
	RunsToday      int    `json:"runs_today"`
	LastRunDate    string `json:"last_run_date,omitempty"`
	LastRunSession int    `json:"last_run_session"`

	RollHistory []RollRecord `json:"roll_history,omitempty"`
}

// RunCapReached reports whether the engine already ran its daily quota.
// An unset cap counts as one run per day.
func (e *Engine) RunCapReached() bool {
	return e.RunsToday >= e.EffectiveRunCap()
}

// EffectiveRunCap returns the daily run cap, defaulting to 1 when unset.
func (e *Engine) EffectiveRunCap() int {
	if e.RunCapPerDay <= 0 {
		return 1
	}
	return e.RunCapPerDay
}

// RecordRun counts a run against the daily cap and stamps when it happened.
func (e *Engine) RecordRun(date string, session int) {
	e.RunsToday++
	e.LastRunDate = date
	e.LastRunSession = session
}

// RecordRoll appends a roll outcome to the engine's history.
func (e *Engine) RecordRoll(date string, roll int, band string) {
	e.RollHistory = append(e.RollHistory, RollRecord{Date: date, Roll: roll, Band: band})
}

// ResetDay clears the daily run counter.
func (e *Engine) ResetDay() {
	e.RunsToday = 0
}
