// Package rules implements the cross-clock interaction table. Each rule
// watches two clocks and fires once when both cross their thresholds,
// flagging a fact, advancing a third clock, or spawning a new one.
package rules

import (
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/state"
)

// Effect names the three interaction outcomes.
const (
	EffectFlag    = "FLAG"
	EffectAdvance = "ADV"
	EffectSpawn   = "SPAWN"
)

// SpawnDef is the clock template a SPAWN rule creates.
type SpawnDef struct {
	Name                string
	Owner               string
	MaxProgress         int
	AdvanceBullets      []string
	HaltConditions      []string
	ReduceConditions    []string
	TriggerOnCompletion string
}

// Rule is one cross-clock interaction. Clock names use the short forms
// of the rule table; CanonicalName resolves them against state.
type Rule struct {
	ID         string
	ClockA     string
	ThresholdA int
	ClockB     string
	ThresholdB int
	Effect     string
	FlagText   string
	AdvClock   string
	Spawn      *SpawnDef
	OneTime    bool
}

// clockNameMap resolves the rule table's short clock names to the full
// names registered in campaign state.
var clockNameMap = map[string]string{
	"Binding Degradation":                    "Children of the Dead Gods—Binding Degradation",
	"Enigma Crystal Hunt":                    "Cult of Orcus—Enigma Crystal Hunt",
	"Dimensional Instability—Western Scarps": "Dimensional Instability—Western Scarps",
	"Demon Ledger":                           "Hidden Temple—Demon Ledger",
	"Suzanne Loyalty":                        "Suzanne Loyalty—Helkar vs Orcus",
	"Deep Tremors":                           "Deep Tremors—Khuzdukan",
	"Frontier (General)":                     "Helkar Recognition—Frontier (General)",
	"Doctrine Stress Test":                   "Doctrine Stress Test",
	"East March Unknown Tracks":              "East March Unknown Tracks",
}

// CanonicalName resolves a short clock name from the rule table to the
// full name used in campaign state. Unknown names pass through.
func CanonicalName(short string) string {
	if full, ok := clockNameMap[short]; ok {
		return full
	}
	return short
}

var interactionRules = []Rule{
	{
		ID:         "INTERACT_01",
		ClockA:     "Binding Degradation",
		ThresholdA: 15,
		ClockB:     "Enigma Crystal Hunt",
		ThresholdB: 10,
		Effect:     EffectFlag,
		FlagText:   "Entity senses Orcus network weakening; communion circles flicker; cultists receive visions",
		OneTime:    true,
	},
	{
		ID:         "INTERACT_02",
		ClockA:     "Binding Degradation",
		ThresholdA: 12,
		ClockB:     "Dimensional Instability—Western Scarps",
		ThresholdB: 5,
		Effect:     EffectAdvance,
		AdvClock:   "Dimensional Instability—Western Scarps",
		OneTime:    true,
	},
	{
		ID:         "INTERACT_03",
		ClockA:     "Demon Ledger",
		ThresholdA: 6,
		ClockB:     "Enigma Crystal Hunt",
		ThresholdB: 8,
		Effect:     EffectFlag,
		FlagText:   "Hidden Temple cell and Orcus cult operations intersect; territorial conflict imminent",
		OneTime:    true,
	},
	{
		ID:         "INTERACT_04",
		ClockA:     "Binding Degradation",
		ThresholdA: 14,
		ClockB:     "Suzanne Loyalty",
		ThresholdB: 3,
		Effect:     EffectFlag,
		FlagText:   "Yor-Kazh resonance intensifies; Suzanne's resistance tested by proximity to weakening binding",
		OneTime:    true,
	},
	{
		ID:         "INTERACT_05",
		ClockA:     "Dimensional Instability—Western Scarps",
		ThresholdA: 4,
		ClockB:     "Deep Tremors",
		ThresholdB: 5,
		Effect:     EffectSpawn,
		Spawn: &SpawnDef{
			Name:        "Continental Binding Failure",
			Owner:       "Environment",
			MaxProgress: 10,
			AdvanceBullets: []string{
				"Any binding node clock reaches max-1",
				"New instability zone discovered",
				"Edhellar incursion",
			},
			HaltConditions: []string{
				"Two or more nodes stabilized simultaneously",
			},
			ReduceConditions: []string{
				"Binding node reinforced",
				"Lithoe/equivalent applies counter-sequence to second node",
			},
			TriggerOnCompletion: "Continental binding cascade — multiple simultaneous breaches; entity freed or entities freed",
		},
		OneTime: true,
	},
	{
		ID:         "INTERACT_06",
		ClockA:     "Enigma Crystal Hunt",
		ThresholdA: 12,
		ClockB:     "Frontier (General)",
		ThresholdB: 6,
		Effect:     EffectFlag,
		FlagText:   "Orcus cult recognizes Thoron's authority as obstacle; assassination or political sabotage considered",
		OneTime:    true,
	},
	{
		ID:         "INTERACT_07",
		ClockA:     "Doctrine Stress Test",
		ThresholdA: 4,
		ClockB:     "East March Unknown Tracks",
		ThresholdB: 3,
		Effect:     EffectFlag,
		FlagText:   "Patrol doctrine under stress when unknown entity approaches; misidentification risk critical",
		OneTime:    true,
	},
}

// Rules returns the interaction rule table.
func Rules() []Rule {
	return interactionRules
}

// FlagEffect records a fired FLAG rule.
type FlagEffect struct {
	Rule   string `json:"rule"`
	Text   string `json:"text"`
	ClockA string `json:"clock_a"`
	ClockB string `json:"clock_b"`
}

// AdvanceEffect records a fired ADV rule.
type AdvanceEffect struct {
	Rule   string              `json:"rule"`
	Clock  string              `json:"clock"`
	Result state.AdvanceResult `json:"result"`
}

// SpawnEffect records a fired SPAWN rule.
type SpawnEffect struct {
	Rule  string `json:"rule"`
	Clock string `json:"clock"`
}

// SkippedRule records a rule whose effect could not apply.
type SkippedRule struct {
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

// Results collects one evaluation pass over the rule table.
type Results struct {
	Flags    []FlagEffect    `json:"flags,omitempty"`
	Advances []AdvanceEffect `json:"advances,omitempty"`
	Spawns   []SpawnEffect   `json:"spawns,omitempty"`
	Skipped  []SkippedRule   `json:"skipped,omitempty"`
}

// Empty reports whether the evaluation produced no visible effect.
func (r Results) Empty() bool {
	return len(r.Flags) == 0 && len(r.Advances) == 0 && len(r.Spawns) == 0
}

func fired(c *state.Campaign, ruleID string) bool {
	for _, id := range c.FiredInteractionRules {
		if id == ruleID {
			return true
		}
	}
	return false
}

// Evaluate checks every interaction rule against current clock
// progress and applies the effects of those whose thresholds are met.
// A one-time rule is marked fired once its thresholds are met, even
// when its effect turns out to be a no-op, so it never re-fires.
func Evaluate(c *state.Campaign) Results {
	var results Results

	for _, rule := range interactionRules {
		if rule.OneTime && fired(c, rule.ID) {
			continue
		}

		clockA := c.Clock(CanonicalName(rule.ClockA))
		clockB := c.Clock(CanonicalName(rule.ClockB))
		if clockA == nil || clockB == nil {
			continue
		}
		if clockA.Progress < rule.ThresholdA || clockB.Progress < rule.ThresholdB {
			continue
		}

		switch rule.Effect {
		case EffectFlag:
			c.AddFact(fmt.Sprintf("[INTERACTION %s] %s", rule.ID, rule.FlagText))
			results.Flags = append(results.Flags, FlagEffect{
				Rule:   rule.ID,
				Text:   rule.FlagText,
				ClockA: clockA.Name,
				ClockB: clockB.Name,
			})

		case EffectAdvance:
			advName := CanonicalName(rule.AdvClock)
			if target := c.Clock(advName); target != nil && target.CanAdvance() {
				reason := fmt.Sprintf("Clock interaction %s: %s >= %d AND %s >= %d",
					rule.ID, rule.ClockA, rule.ThresholdA, rule.ClockB, rule.ThresholdB)
				if result, err := target.Advance(reason, c.InGameDate, c.SessionID); err == nil {
					results.Advances = append(results.Advances, AdvanceEffect{
						Rule:   rule.ID,
						Clock:  advName,
						Result: result,
					})
					c.AddFact(fmt.Sprintf("[INTERACTION %s] Advanced %s: %d/%d",
						rule.ID, advName, result.New, target.MaxProgress))
				}
			}

		case EffectSpawn:
			if c.Clock(rule.Spawn.Name) != nil {
				results.Skipped = append(results.Skipped, SkippedRule{
					Rule:   rule.ID,
					Reason: fmt.Sprintf("Clock '%s' already exists", rule.Spawn.Name),
				})
				break
			}
			spawned := &state.Clock{
				Name:                rule.Spawn.Name,
				Owner:               rule.Spawn.Owner,
				MaxProgress:         rule.Spawn.MaxProgress,
				Status:              state.ClockActive,
				AdvanceBullets:      rule.Spawn.AdvanceBullets,
				HaltConditions:      rule.Spawn.HaltConditions,
				ReduceConditions:    rule.Spawn.ReduceConditions,
				TriggerOnCompletion: rule.Spawn.TriggerOnCompletion,
				CreatedSession:      c.SessionID,
			}
			c.AddClock(spawned)
			results.Spawns = append(results.Spawns, SpawnEffect{
				Rule:  rule.ID,
				Clock: rule.Spawn.Name,
			})
			c.AddFact(fmt.Sprintf("[INTERACTION %s] SPAWNED clock: %s (0/%d)",
				rule.ID, rule.Spawn.Name, rule.Spawn.MaxProgress))
		}

		if rule.OneTime {
			c.FiredInteractionRules = append(c.FiredInteractionRules, rule.ID)
		}
	}

	return results
}
