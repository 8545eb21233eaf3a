package rules

import (
	"strings"
	"testing"

	"github.com/logarium/macros-engine/internal/campaign/state"
)

func rulesCampaign() *state.Campaign {
	return &state.Campaign{
		SessionID:         7,
		InGameDate:        "24 Ilrym",
		CampaignIntensity: "medium",
	}
}

func TestEvaluateFlagRuleFiresOnce(t *testing.T) {
	c := rulesCampaign()
	c.AddClock(&state.Clock{Name: "Children of the Dead Gods—Binding Degradation", Progress: 15, MaxProgress: 16, Status: state.ClockActive})
	c.AddClock(&state.Clock{Name: "Cult of Orcus—Enigma Crystal Hunt", Progress: 10, MaxProgress: 14, Status: state.ClockActive})

	results := Evaluate(c)

	if len(results.Flags) != 1 || results.Flags[0].Rule != "INTERACT_01" {
		t.Fatalf("expected INTERACT_01 flag, got %+v", results.Flags)
	}
	found := false
	for _, fact := range c.DailyFacts {
		if strings.HasPrefix(fact, "[INTERACTION INTERACT_01] Entity senses") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected interaction fact, got %v", c.DailyFacts)
	}

	again := Evaluate(c)
	if len(again.Flags) != 0 {
		t.Fatalf("expected one-time rule not to re-fire, got %+v", again.Flags)
	}
}

func TestEvaluateBelowThresholdDoesNothing(t *testing.T) {
	c := rulesCampaign()
	c.AddClock(&state.Clock{Name: "Children of the Dead Gods—Binding Degradation", Progress: 14, MaxProgress: 16, Status: state.ClockActive})
	c.AddClock(&state.Clock{Name: "Cult of Orcus—Enigma Crystal Hunt", Progress: 10, MaxProgress: 14, Status: state.ClockActive})

	results := Evaluate(c)

	if !results.Empty() {
		t.Fatalf("expected no effects, got %+v", results)
	}
	if len(c.FiredInteractionRules) != 0 {
		t.Fatalf("expected no rules marked fired, got %v", c.FiredInteractionRules)
	}
}

func TestEvaluateMissingClockNotMarkedFired(t *testing.T) {
	c := rulesCampaign()
	c.AddClock(&state.Clock{Name: "Children of the Dead Gods—Binding Degradation", Progress: 16, MaxProgress: 16, Status: state.ClockTriggerFired})

	Evaluate(c)

	if len(c.FiredInteractionRules) != 0 {
		t.Fatalf("expected rules with missing partner clock untouched, got %v", c.FiredInteractionRules)
	}
}

func TestEvaluateAdvanceRule(t *testing.T) {
	c := rulesCampaign()
	c.AddClock(&state.Clock{Name: "Children of the Dead Gods—Binding Degradation", Progress: 12, MaxProgress: 16, Status: state.ClockActive})
	c.AddClock(&state.Clock{Name: "Dimensional Instability—Western Scarps", Progress: 5, MaxProgress: 8, Status: state.ClockActive})

	results := Evaluate(c)

	if len(results.Advances) != 1 {
		t.Fatalf("expected 1 advance, got %+v", results)
	}
	adv := results.Advances[0]
	if adv.Rule != "INTERACT_02" || adv.Clock != "Dimensional Instability—Western Scarps" {
		t.Fatalf("unexpected advance %+v", adv)
	}
	if adv.Result.New != 6 {
		t.Fatalf("expected progress 6, got %d", adv.Result.New)
	}
	if !strings.Contains(adv.Result.Reason, "Clock interaction INTERACT_02: Binding Degradation >= 12 AND Dimensional Instability—Western Scarps >= 5") {
		t.Fatalf("unexpected reason %q", adv.Result.Reason)
	}
	wantFact := "[INTERACTION INTERACT_02] Advanced Dimensional Instability—Western Scarps: 6/8"
	found := false
	for _, fact := range c.DailyFacts {
		if fact == wantFact {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected fact %q, got %v", wantFact, c.DailyFacts)
	}
}

func TestEvaluateAdvanceRuleMarkedFiredEvenWhenTargetCannotAdvance(t *testing.T) {
	c := rulesCampaign()
	c.AddClock(&state.Clock{Name: "Children of the Dead Gods—Binding Degradation", Progress: 12, MaxProgress: 16, Status: state.ClockActive})
	c.AddClock(&state.Clock{Name: "Dimensional Instability—Western Scarps", Progress: 5, MaxProgress: 8, Status: state.ClockActive, AdvancedThisDay: true})

	results := Evaluate(c)

	if len(results.Advances) != 0 {
		t.Fatalf("expected no advance, got %+v", results.Advances)
	}
	if len(c.FiredInteractionRules) != 1 || c.FiredInteractionRules[0] != "INTERACT_02" {
		t.Fatalf("expected INTERACT_02 marked fired, got %v", c.FiredInteractionRules)
	}
}

func TestEvaluateSpawnRule(t *testing.T) {
	c := rulesCampaign()
	c.AddClock(&state.Clock{Name: "Dimensional Instability—Western Scarps", Progress: 4, MaxProgress: 8, Status: state.ClockActive})
	c.AddClock(&state.Clock{Name: "Deep Tremors—Khuzdukan", Progress: 5, MaxProgress: 8, Status: state.ClockActive})

	results := Evaluate(c)

	if len(results.Spawns) != 1 || results.Spawns[0].Clock != "Continental Binding Failure" {
		t.Fatalf("expected spawn, got %+v", results)
	}
	spawned := c.Clock("Continental Binding Failure")
	if spawned == nil {
		t.Fatal("expected spawned clock registered")
	}
	if spawned.MaxProgress != 10 || spawned.Owner != "Environment" || spawned.Status != state.ClockActive {
		t.Fatalf("unexpected spawned clock %+v", spawned)
	}
	if spawned.CreatedSession != 7 {
		t.Fatalf("expected created session 7, got %d", spawned.CreatedSession)
	}
	if len(spawned.AdvanceBullets) != 3 || len(spawned.ReduceConditions) != 2 {
		t.Fatalf("expected spawn template copied, got %+v", spawned)
	}
	wantFact := "[INTERACTION INTERACT_05] SPAWNED clock: Continental Binding Failure (0/10)"
	found := false
	for _, fact := range c.DailyFacts {
		if fact == wantFact {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected fact %q, got %v", wantFact, c.DailyFacts)
	}
}

func TestEvaluateSpawnRuleSkipsAndStillMarksFired(t *testing.T) {
	c := rulesCampaign()
	c.AddClock(&state.Clock{Name: "Dimensional Instability—Western Scarps", Progress: 4, MaxProgress: 8, Status: state.ClockActive})
	c.AddClock(&state.Clock{Name: "Deep Tremors—Khuzdukan", Progress: 5, MaxProgress: 8, Status: state.ClockActive})
	c.AddClock(&state.Clock{Name: "Continental Binding Failure", Progress: 2, MaxProgress: 10, Status: state.ClockActive})

	results := Evaluate(c)

	if len(results.Spawns) != 0 {
		t.Fatalf("expected no spawn, got %+v", results.Spawns)
	}
	if len(results.Skipped) != 1 || results.Skipped[0].Reason != "Clock 'Continental Binding Failure' already exists" {
		t.Fatalf("expected skip record, got %+v", results.Skipped)
	}
	if len(c.FiredInteractionRules) != 1 || c.FiredInteractionRules[0] != "INTERACT_05" {
		t.Fatalf("expected INTERACT_05 marked fired despite skip, got %v", c.FiredInteractionRules)
	}
	if c.Clock("Continental Binding Failure").Progress != 2 {
		t.Fatal("expected existing clock untouched")
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name  string
		short string
		want  string
	}{
		{name: "mapped", short: "Binding Degradation", want: "Children of the Dead Gods—Binding Degradation"},
		{name: "identity mapping", short: "Doctrine Stress Test", want: "Doctrine Stress Test"},
		{name: "unmapped passthrough", short: "Continental Binding Failure", want: "Continental Binding Failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalName(tt.short); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
