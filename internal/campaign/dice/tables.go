package dice

import (
	"fmt"
	"strings"
)

// Intensity gate thresholds: a 1d6 roll at or below the threshold passes.
// Extreme always passes.
var gateThresholds = map[string]int{
	"low":     2,
	"medium":  3,
	"high":    4,
	"extreme": 6,
}

// GatePasses reports whether a 1d6 roll passes the campaign intensity gate.
// Unknown intensities fall back to the medium threshold.
func GatePasses(intensity string, roll int) bool {
	threshold, ok := gateThresholds[strings.ToLower(intensity)]
	if !ok {
		threshold = gateThresholds["medium"]
	}
	return roll <= threshold
}

// NPCCount holds an NPC agency head-count roll. A Count of -1 means every
// NPC with a relevant objective acts.
type NPCCount struct {
	Count int     `json:"count"`
	Note  string  `json:"note,omitempty"`
	Roll  *Result `json:"roll,omitempty"`
}

var npcCountDice = map[string]struct{ count, sides int }{
	"low":    {1, 3},
	"medium": {2, 4},
	"high":   {3, 6},
}

// NPCCountFor rolls how many NPCs act once the agency gate has passed:
// low 1d3, medium 2d4, high 3d6, extreme all.
func (r *Roller) NPCCountFor(intensity string) NPCCount {
	key := strings.ToLower(intensity)
	if key == "extreme" {
		return NPCCount{Count: -1, Note: "All NPCs with relevant OBJ/ACT"}
	}
	spec, ok := npcCountDice[key]
	if !ok {
		spec = npcCountDice["medium"]
	}
	expression := fmt.Sprintf("%dd%d", spec.count, spec.sides)
	result := r.roll(spec.count, spec.sides, 0, expression, fmt.Sprintf("NPAG NPC count (%s)", intensity))
	return NPCCount{Count: result.Total, Roll: &result}
}

// VPEffect names a clock touched by a Vanguard Patrol outcome.
type VPEffect struct {
	Clock  string `json:"clock"`
	Action string `json:"action"`
}

// VPOutcome is one band of the Vanguard Patrol 2d6 outcome table.
type VPOutcome struct {
	Band         string     `json:"band"`
	Description  string     `json:"description"`
	ClockEffects []VPEffect `json:"clock_effects"`
	Special      string     `json:"special,omitempty"`
}

// VPOutcomeBand maps a 2d6 total to its outcome per VP v3.0
// Resolution_Method.
func VPOutcomeBand(total int) VPOutcome {
	switch {
	case total <= 4:
		return VPOutcome{
			Band:        "2-4: Clear failure",
			Description: "Threat missed or misidentified",
			ClockEffects: []VPEffect{
				{Clock: "Selde Marr", Action: "advance"},
				{Clock: "Arvek Morn", Action: "advance"},
			},
		}
	case total <= 7:
		return VPOutcome{
			Band:        "5-7: Ambiguous contact",
			Description: "Doctrine stress",
			ClockEffects: []VPEffect{
				{Clock: "Henric Bale", Action: "advance"},
			},
		}
	case total <= 9:
		return VPOutcome{
			Band:        "8-9: Correct restraint",
			Description: "Good logs, no escalation",
		}
	case total <= 11:
		return VPOutcome{
			Band:        "10-11: Correct identification",
			Description: "No engagement needed",
			ClockEffects: []VPEffect{
				{Clock: "Selde Marr", Action: "reduce"},
				{Clock: "Arvek Morn", Action: "reduce"},
			},
		}
	default:
		return VPOutcome{
			Band:        "12: Correct ID + threat",
			Description: "Suzanne deployed legitimately; create UA threat",
			ClockEffects: []VPEffect{
				{Clock: "Henric Bale", Action: "advance"},
			},
			Special: "CAN-FORGE-AUTO: create UA threat",
		}
	}
}
