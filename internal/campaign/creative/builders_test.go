package creative

import (
	"strings"
	"testing"

	"github.com/logarium/macros-engine/internal/campaign/audit"
	"github.com/logarium/macros-engine/internal/campaign/calendar"
	"github.com/logarium/macros-engine/internal/campaign/state"
)

func builderCampaign() *state.Campaign {
	return &state.Campaign{
		CampaignID:        "camp-1",
		SessionID:         7,
		InGameDate:        "23 Ilrym",
		DayOfMonth:        23,
		Month:             "Ilrym",
		PCZone:            "Caras",
		CampaignIntensity: "medium",
		Season:            calendar.SeasonSpring,
		SeasonalPressure:  "Planting season. Labor scarce.",
		Zones: []*state.Zone{
			{Name: "Caras", Intensity: "medium", ControllingFaction: "Town Council"},
		},
	}
}

func TestBuildClockAudit(t *testing.T) {
	req := BuildClockAudit("Cult Influence", "2/6",
		[]audit.BulletMatch{{Bullet: "Cult gains a foothold", Confidence: audit.ConfidenceAmbiguous, KeywordRatio: 0.5}},
		[]string{"Strangers seen at the shrine"})

	if req.Type != TypeClockAudit {
		t.Errorf("expected %s, got %s", TypeClockAudit, req.Type)
	}
	if req.ID != "" {
		t.Errorf("expected no id before enqueue, got %s", req.ID)
	}
	if req.Context["clock"] != "Cult Influence" || req.Context["progress"] != "2/6" {
		t.Errorf("unexpected context: %v", req.Context)
	}
	instruction, _ := req.Constraints["instruction"].(string)
	if !strings.Contains(instruction, "Do NOT invent events") {
		t.Errorf("unexpected instruction: %q", instruction)
	}
	if req.Constraints["max_words"] != 100 {
		t.Errorf("expected max_words 100, got %v", req.Constraints["max_words"])
	}
}

func TestBuildNPAGFiltersEligibleNPCs(t *testing.T) {
	c := builderCampaign()
	c.NPCs = []*state.NPC{
		{Name: "Henric Bale", Zone: "Caras", Status: "active", Objective: "Expand doctrine"},
		{Name: "Idle Guard", Zone: "Caras", Status: "active"},
		{Name: "Dead Man", Zone: "Caras", Status: "dead", Objective: "None now"},
		{Name: "Selde Marr", Zone: "Forgaard", Status: "active", NextAction: "Send a rider"},
	}

	req := BuildNPAG(c, 2)

	eligible, ok := req.Context["eligible_npcs"].([]map[string]any)
	if !ok {
		t.Fatalf("unexpected eligible_npcs type: %T", req.Context["eligible_npcs"])
	}
	if len(eligible) != 2 {
		t.Fatalf("expected 2 eligible NPCs, got %d", len(eligible))
	}
	if eligible[0]["name"] != "Henric Bale" || eligible[1]["name"] != "Selde Marr" {
		t.Errorf("unexpected eligible NPCs: %v", eligible)
	}
	if req.Constraints["max_words"] != 100 {
		t.Errorf("expected max_words 50 per NPC, got %v", req.Constraints["max_words"])
	}
}

func TestBuildNPCForgeClampsMaxClocks(t *testing.T) {
	c := builderCampaign()

	low := BuildNPCForge(c, "Caras", "", "", -1)
	if low.Context["max_clocks"] != 0 {
		t.Errorf("expected clamp to 0, got %v", low.Context["max_clocks"])
	}

	high := BuildNPCForge(c, "Caras", "smuggler", "Town Council", 9)
	if high.Context["max_clocks"] != 5 {
		t.Errorf("expected clamp to 5, got %v", high.Context["max_clocks"])
	}
	if high.Context["role_hint"] != "smuggler" {
		t.Errorf("unexpected role hint: %v", high.Context["role_hint"])
	}
}

func TestBuildNarrArrivalJourney(t *testing.T) {
	c := builderCampaign()
	c.DailyFacts = []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7"}
	journey := &Journey{
		FromZone:      "Grey Plains",
		CrossingPoint: "Grey Gate",
		Days:          1,
		Eventful:      false,
	}

	req := BuildNarrArrival(c, journey)

	travel, ok := req.Context["travel"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected travel type: %T", req.Context["travel"])
	}
	if travel["from_zone"] != "Grey Plains" || travel["crossing_point"] != "Grey Gate" {
		t.Errorf("unexpected travel context: %v", travel)
	}
	recent, _ := req.Context["recent_facts"].([]string)
	if len(recent) != 5 || recent[0] != "f3" {
		t.Errorf("expected last 5 facts, got %v", recent)
	}
	zone, _ := req.Context["zone"].(map[string]any)
	if zone["controlling_faction"] != "Town Council" {
		t.Errorf("unexpected zone context: %v", zone)
	}
}

func TestBuildSessionSummaryFiltersBySession(t *testing.T) {
	c := builderCampaign()
	c.AdjudicationLog = []state.LogEntry{
		{Type: "T&P_DAY", Session: 6, Date: "20 Ilrym"},
		{Type: "T&P_DAY", Session: 7, Date: "22 Ilrym"},
		{Type: "TRAVEL", Session: 7, Date: "23 Ilrym"},
	}
	c.Clocks = []*state.Clock{
		{Name: "Cult Influence", Progress: 2, MaxProgress: 6, Status: state.ClockActive},
		{Name: "Old Grudge", Progress: 4, MaxProgress: 4, Status: state.ClockRetired},
	}

	req := BuildSessionSummary(c)

	if req.Context["event_count"] != 2 {
		t.Errorf("expected 2 events for session 7, got %v", req.Context["event_count"])
	}
	clocks, _ := req.Context["clock_summary"].([]map[string]any)
	if len(clocks) != 1 || clocks[0]["name"] != "Cult Influence" {
		t.Errorf("expected retired clocks excluded, got %v", clocks)
	}
	if clocks[0]["progress"] != "2/6" {
		t.Errorf("unexpected progress string: %v", clocks[0]["progress"])
	}
}

func TestBuildNarrEncounterZoneFallback(t *testing.T) {
	c := builderCampaign()
	c.PCZone = "Uncharted Marsh"

	req := BuildNarrEncounter(c, EncounterContext{Description: "A lone rider watches from the ridge"})

	if req.Context["zone"] != "Uncharted Marsh" {
		t.Errorf("expected bare zone name fallback, got %v", req.Context["zone"])
	}
	if req.Context["bx_stat_block"] != "" {
		t.Errorf("expected empty stat block, got %v", req.Context["bx_stat_block"])
	}

	withPlug := BuildNarrEncounter(c, EncounterContext{
		Description: "Toll collectors block the ford",
		HasBXPlug:   true,
		StatBlock:   map[string]any{"type": "reaction"},
	})
	sb, ok := withPlug.Context["bx_stat_block"].(map[string]any)
	if !ok || sb["type"] != "reaction" {
		t.Errorf("expected stat block map, got %v", withPlug.Context["bx_stat_block"])
	}
}

func TestBuildUAForgeCarriesTrigger(t *testing.T) {
	c := builderCampaign()

	req := BuildUAForge(c, "Fort Vanguard", "VP roll 12 — automatic UA threat")

	if req.Context["trigger_context"] != "VP roll 12 — automatic UA threat" {
		t.Errorf("unexpected trigger context: %v", req.Context["trigger_context"])
	}
	instruction, _ := req.Constraints["instruction"].(string)
	if !strings.Contains(instruction, "anchored in a discovery") {
		t.Errorf("unexpected instruction: %q", instruction)
	}
}
