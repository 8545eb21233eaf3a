package runner

import (
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/dice"
	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

const doctrinalFractureClock = "Temple of the Sun—Doctrinal Fracture"

// doctrinalDebate runs Temple of the Sun Doctrinal Debate (TSDD v3.0).
// Non-random: the linked fracture clock accumulates one segment per day.
type doctrinalDebate struct{}

func (doctrinalDebate) Kind() Kind { return KindTSDD }

func (doctrinalDebate) CheckGates(c *state.Campaign, e *state.Engine) error {
	if err := capGate(e); err != nil {
		return err
	}
	if c.Zone("Temple of the Sun") == nil {
		return apperrors.New(apperrors.CodeEngineGateUnmet,
			"Hard_Gates: Temple of the Sun not in state")
	}
	if c.Clock(doctrinalFractureClock) == nil {
		return apperrors.New(apperrors.CodeEngineGateUnmet, "Linked clock not found")
	}
	return nil
}

func (doctrinalDebate) Run(c *state.Campaign, e *state.Engine, roller *dice.Roller) Report {
	cl := c.Clock(doctrinalFractureClock)
	if cl.Status == state.ClockTriggerFired || cl.Status == state.ClockRetired {
		return Report{Engine: e.Name, Status: "inert",
			Reason: "Linked clock status: " + string(cl.Status)}
	}

	res, err := cl.Advance("TSDD daily accumulation", c.InGameDate, c.SessionID)

	e.RecordRun(c.InGameDate, c.SessionID)
	c.AddFact(fmt.Sprintf("TSDD advanced Doctrinal Fracture: %d/%d",
		cl.Progress, cl.MaxProgress))

	report := Report{Engine: e.Name}
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.ClockAdvance = &res
	if res.TriggerFired {
		c.AddFact("Temple of the Sun SCHISM: " + cl.TriggerOnCompletion)
		report.TriggerFired = true
	}
	return report
}
