package runner

import (
	"github.com/logarium/macros-engine/internal/campaign/dice"
	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

const demonLedgerClock = "Hidden Temple—Demon Ledger"

// demonHunt runs Hidden Temple Demon-Hunt Cadence (HT-DH v3.0). It never
// advances clocks itself: while the Demon Ledger shows at least one entry,
// the linked clocks become eligible for clock-audit advancement. The ledger
// gate also drives the engine's dormant/active status, so a dormant engine
// wakes the day the ledger fills.
type demonHunt struct{}

func (demonHunt) Kind() Kind { return KindHTDH }

func (demonHunt) CheckGates(c *state.Campaign, e *state.Engine) error {
	if err := capGate(e); err != nil {
		return err
	}
	ledger := c.Clock(demonLedgerClock)
	if ledger == nil || ledger.Progress < 1 {
		e.Status = state.EngineDormant
		return apperrors.New(apperrors.CodeEngineGateUnmet,
			"Hard_Gates: Demon Ledger = 0 (dormant)")
	}
	return nil
}

func (demonHunt) Run(c *state.Campaign, e *state.Engine, roller *dice.Roller) Report {
	e.Status = state.EngineActive
	e.RecordRun(c.InGameDate, c.SessionID)

	c.AddFact("HT-DH engine active — Hidden Temple clocks eligible for audit advancement")

	return Report{
		Engine:       e.Name,
		Status:       string(state.EngineActive),
		Note:         "Linked clocks eligible for clock audit this day",
		LinkedClocks: e.LinkedClocks,
	}
}
