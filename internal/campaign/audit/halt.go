package audit

import (
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/state"
)

// HaltFinding names an active clock whose halt condition matched
// today's facts. At most one finding is reported per clock per day.
type HaltFinding struct {
	Clock     string  `json:"clock"`
	Condition string  `json:"condition"`
	Ratio     float64 `json:"ratio"`
}

// Reason renders the halt reason recorded on the clock.
func (f HaltFinding) Reason() string {
	return fmt.Sprintf("HALT condition met: '%s' (keyword match %.0f%%)",
		f.Condition, f.Ratio*100)
}

// Fact renders the fact establishing the halt for the daily fact sheet.
func (f HaltFinding) Fact() string {
	return "Clock HALTED: " + f.Clock + " — " + f.Condition
}

// EvaluateHalts checks each active clock's halt conditions against
// today's facts, stopping at the first condition that reaches the halt
// threshold.
func EvaluateHalts(c *state.Campaign) []HaltFinding {
	var findings []HaltFinding
	facts := factWords(c.DailyFacts)

	for _, clock := range c.Clocks {
		if clock.Status != state.ClockActive || len(clock.HaltConditions) == 0 {
			continue
		}
		for _, condition := range clock.HaltConditions {
			words := keywords(condition)
			if len(words) == 0 {
				continue
			}
			ratio := matchRatio(words, facts)
			if ratio >= HaltThreshold {
				findings = append(findings, HaltFinding{
					Clock:     clock.Name,
					Condition: condition,
					Ratio:     ratio,
				})
				break
			}
		}
	}

	return findings
}
