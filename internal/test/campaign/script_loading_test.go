//go:build scenario

package campaign

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScenarioScript(t *testing.T) {
	script := `
local s = Scenario.new("smoke")
s:campaign{seed = "fresh", day = 4, month = "Demes", zone = "Hearthvale", dice_seed = 9}
s:clock{name = "Thaw", max = 3, cadence = true, cadence_bullet = "The ice recedes"}
s:rest{days = 2, skip_zone_gap = true}
s:expect_clock{name = "Thaw", progress = 2}
s:travel("Emberfall", {expect_error = true})
return s
`
	path := filepath.Join(t.TempDir(), "smoke.lua")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	scenario, err := loadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "smoke" {
		t.Fatalf("name = %q, want smoke", scenario.Name)
	}

	want := []string{"campaign", "clock", "rest", "expect_clock", "travel"}
	if len(scenario.Steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(scenario.Steps), len(want))
	}
	for i, kind := range want {
		if scenario.Steps[i].Kind != kind {
			t.Fatalf("step %d = %s, want %s", i+1, scenario.Steps[i].Kind, kind)
		}
	}

	campaignArgs := scenario.Steps[0].Args
	if got := optionalInt(campaignArgs, "dice_seed", 0); got != 9 {
		t.Fatalf("dice_seed = %d, want 9", got)
	}
	if got := optionalString(campaignArgs, "month", ""); got != "Demes" {
		t.Fatalf("month = %q, want Demes", got)
	}

	restArgs := scenario.Steps[2].Args
	if got := optionalInt(restArgs, "days", 0); got != 2 {
		t.Fatalf("rest days = %d, want 2", got)
	}
	if !optionalBool(restArgs, "skip_zone_gap", false) {
		t.Fatal("skip_zone_gap dropped in translation")
	}

	travelArgs := scenario.Steps[4].Args
	if got := requiredString(travelArgs, "to"); got != "Emberfall" {
		t.Fatalf("travel to = %q, want Emberfall", got)
	}
	if !optionalBool(travelArgs, "expect_error", false) {
		t.Fatal("travel expect_error dropped in translation")
	}
}

func TestLoadScenarioListArgs(t *testing.T) {
	script := `
local s = Scenario.new("lists")
s:zone{name = "Hearthvale", crossings = {
	{to = "Emberfall", name = "Ash Road"},
	{to = "Duskmoor", name = "Old Ford", tag = "slow"},
}}
s:clock{name = "Watchers", advance_bullets = {"strangers counted", "gate logs reviewed"}}
return s
`
	path := filepath.Join(t.TempDir(), "lists.lua")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	scenario, err := loadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}

	crossings := readTableSlice(scenario.Steps[0].Args, "crossings")
	if len(crossings) != 2 {
		t.Fatalf("got %d crossings, want 2", len(crossings))
	}
	if got := optionalString(crossings[1], "tag", ""); got != "slow" {
		t.Fatalf("second crossing tag = %q, want slow", got)
	}

	bullets := readStringSlice(scenario.Steps[1].Args, "advance_bullets")
	if len(bullets) != 2 || bullets[0] != "strangers counted" {
		t.Fatalf("advance bullets = %v", bullets)
	}
}

func TestLoadScenarioRejectsNonScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.lua")
	if err := os.WriteFile(path, []byte("return 42\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if _, err := loadScenarioFromFile(path); err == nil {
		t.Fatal("expected error for a script that does not return a Scenario")
	}
}

func TestLoadScenarioNamesUnnamedAfterFile(t *testing.T) {
	script := `
local s = Scenario.new()
s:end_session()
return s
`
	path := filepath.Join(t.TempDir(), "driftwood.lua")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	scenario, err := loadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "driftwood" {
		t.Fatalf("name = %q, want driftwood", scenario.Name)
	}
}
