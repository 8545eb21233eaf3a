package runner

import (
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/creative"
	"github.com/logarium/macros-engine/internal/campaign/dice"
	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// vanguardPatrol runs Vanguard Patrol Doctrine (VP v3.0): roll 2d6, map to
// an outcome band, apply the band's clock effects.
type vanguardPatrol struct{}

func (vanguardPatrol) Kind() Kind { return KindVP }

func (vanguardPatrol) CheckGates(c *state.Campaign, e *state.Engine) error {
	if err := capGate(e); err != nil {
		return err
	}
	if c.Zone("Fort Vanguard") == nil {
		return apperrors.New(apperrors.CodeEngineGateUnmet,
			"Hard_Gates: Fort Vanguard not in state")
	}
	return nil
}

func (vanguardPatrol) Run(c *state.Campaign, e *state.Engine, roller *dice.Roller) Report {
	roll := roller.TwoD6("VP roll - " + c.InGameDate)
	outcome := dice.VPOutcomeBand(roll.Total)

	report := Report{
		Engine:      e.Name,
		Roll:        &roll,
		Band:        outcome.Band,
		Description: outcome.Description,
	}

	reason := fmt.Sprintf("VP roll %d -> %s", roll.Total, outcome.Band)
	for _, effect := range outcome.ClockEffects {
		cl := c.Clock(effect.Clock)
		if cl == nil {
			report.ClockEffects = append(report.ClockEffects, ClockEffect{
				Clock: effect.Clock, Error: "Clock not found in state"})
			continue
		}
		if cl.Status == state.ClockRetired || cl.TriggerFired {
			report.ClockEffects = append(report.ClockEffects, ClockEffect{
				Clock: effect.Clock, Skipped: true,
				Reason: "Clock status: " + string(cl.Status)})
			continue
		}

		switch effect.Action {
		case "advance":
			res, err := cl.Advance(reason, c.InGameDate, c.SessionID)
			if err != nil {
				report.ClockEffects = append(report.ClockEffects, ClockEffect{
					Clock: effect.Clock, Error: err.Error()})
				continue
			}
			report.ClockEffects = append(report.ClockEffects, ClockEffect{
				Clock: effect.Clock, Advance: &res})
			if res.TriggerFired {
				c.AddFact(fmt.Sprintf("Clock %s TRIGGER FIRED: %s",
					cl.Name, cl.TriggerOnCompletion))
			}
		case "reduce":
			res := cl.Reduce(reason, 1)
			report.ClockEffects = append(report.ClockEffects, ClockEffect{
				Clock: effect.Clock, Reduce: &res})
		}
	}

	if outcome.Special != "" {
		report.SpecialAction = outcome.Special
		report.Requests = append(report.Requests, creative.Request{
			Type: creative.RawCanForgeAuto,
			Context: map[string]any{
				"context": "VP roll 12 — create UA threat for Fort Vanguard",
			},
		})
	}

	e.RecordRun(c.InGameDate, c.SessionID)
	e.RecordRoll(c.InGameDate, roll.Total, outcome.Band)
	c.AddFact(fmt.Sprintf("VP engine ran: roll=%d, band=%s", roll.Total, outcome.Band))
	return report
}
