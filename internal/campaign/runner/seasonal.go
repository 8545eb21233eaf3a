package runner

import (
	"strings"

	"github.com/logarium/macros-engine/internal/campaign/dice"
	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// seasonalPressure runs Seasonal Resource Pressure (SRP v1.0). It fires only
// on the day a season change lands in the daily facts.
type seasonalPressure struct{}

func (seasonalPressure) Kind() Kind { return KindSRP }

func (seasonalPressure) CheckGates(c *state.Campaign, e *state.Engine) error {
	if err := capGate(e); err != nil {
		return err
	}
	for _, fact := range c.DailyFacts {
		if strings.Contains(fact, "Season changed") {
			return nil
		}
	}
	return apperrors.New(apperrors.CodeEngineGateUnmet, "No season change today")
}

func (seasonalPressure) Run(c *state.Campaign, e *state.Engine, roller *dice.Roller) Report {
	e.RecordRun(c.InGameDate, c.SessionID)

	c.AddFact("SRP triggered: " + string(c.Season) + " — " + c.SeasonalPressure)

	return Report{
		Engine:   e.Name,
		Season:   string(c.Season),
		Pressure: c.SeasonalPressure,
	}
}
