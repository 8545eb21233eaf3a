// Package runner implements the procedural engines that fire during the
// day loop. The registry is a closed set keyed by engine name: an engine
// whose name has no runner surfaces as a warning in the day report, never
// as a silent skip.
package runner

import (
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/creative"
	"github.com/logarium/macros-engine/internal/campaign/dice"
	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// Kind identifies an engine runner implementation.
type Kind string

// Runner kinds, matching the engine version prefixes.
const (
	KindVP   Kind = "VP"
	KindTSDD Kind = "TSDD"
	KindHTDH Kind = "HT-DH"
	KindSRP  Kind = "SRP"
)

// ClockEffect records one clock touched, or refused, by an engine run.
type ClockEffect struct {
	Clock   string               `json:"clock"`
	Skipped bool                 `json:"skipped,omitempty"`
	Reason  string               `json:"reason,omitempty"`
	Error   string               `json:"error,omitempty"`
	Advance *state.AdvanceResult `json:"advance,omitempty"`
	Reduce  *state.ReduceResult  `json:"reduce,omitempty"`
}

// Report captures everything a single engine run did.
type Report struct {
	Engine        string               `json:"engine"`
	Skipped       bool                 `json:"skipped,omitempty"`
	Status        string               `json:"status,omitempty"`
	Reason        string               `json:"reason,omitempty"`
	Roll          *dice.Result         `json:"roll,omitempty"`
	Band          string               `json:"outcome_band,omitempty"`
	Description   string               `json:"description,omitempty"`
	ClockEffects  []ClockEffect        `json:"clock_effects_applied,omitempty"`
	SpecialAction string               `json:"special_action,omitempty"`
	ClockAdvance  *state.AdvanceResult `json:"clock_advance,omitempty"`
	Error         string               `json:"error,omitempty"`
	TriggerFired  bool                 `json:"trigger_fired,omitempty"`
	Note          string               `json:"note,omitempty"`
	LinkedClocks  []string             `json:"linked_clocks,omitempty"`
	Season        string               `json:"season,omitempty"`
	Pressure      string               `json:"pressure,omitempty"`
	Requests      []creative.Request   `json:"llm_requests,omitempty"`
}

// Runner drives one procedural engine for a single day.
type Runner interface {
	Kind() Kind

	// CheckGates reports why the engine cannot run today; nil means it may
	// run. The run cap and the engine's hard gates are both checked here.
	// A gate check may flip engine status (demon-hunt dormancy).
	CheckGates(c *state.Campaign, e *state.Engine) error

	// Run executes the engine. Callers must have cleared CheckGates first.
	Run(c *state.Campaign, e *state.Engine, roller *dice.Roller) Report
}

var runners = map[string]Runner{
	"Vanguard Patrol Doctrine":             vanguardPatrol{},
	"Temple of the Sun — Doctrinal Debate": doctrinalDebate{},
	"Hidden Temple — Demon-Hunt Cadence":   demonHunt{},
	"Seasonal Resource Pressure":           seasonalPressure{},
}

// ForEngine resolves the runner for a named engine.
func ForEngine(name string) (Runner, error) {
	r, ok := runners[name]
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeEngineRunnerMissing,
			"No runner for engine: "+name, map[string]string{"engine": name})
	}
	return r, nil
}

// SkipReport renders a failed gate check as the engine's report for the day.
func SkipReport(e *state.Engine, err error) Report {
	return Report{Engine: e.Name, Skipped: true, Reason: err.Error()}
}

func capGate(e *state.Engine) error {
	if e.RunCapReached() {
		return apperrors.WithMetadata(apperrors.CodeEngineRunCapReached,
			fmt.Sprintf("Run cap reached (%d/%d)", e.RunsToday, e.EffectiveRunCap()),
			map[string]string{"engine": e.Name})
	}
	return nil
}
