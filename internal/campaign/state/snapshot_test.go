package state

import (
	"bytes"
	"testing"

	"github.com/logarium/macros-engine/internal/campaign/calendar"
)

func TestSnapshotRoundTrip(t *testing.T) {
	c := testCampaign()
	c.Season = calendar.SeasonSpring
	c.SeasonalPressure = calendar.Pressure(calendar.SeasonSpring)
	c.AddClock(&Clock{
		Name:             "Children of the Dead Gods—Binding Degradation",
		Owner:            "Environment",
		Progress:         11,
		MaxProgress:      16,
		Status:           ClockActive,
		AdvanceBullets:   []string{"Decay", "Binding node disturbed"},
		IsCadence:        true,
		CadenceBullet:    "Decay",
		LastAdvancedDate: "23 Ilrym",
	})
	c.AddEngine(&Engine{
		Name:         "Vanguard Patrol Doctrine",
		Version:      "VP v3.0",
		Status:       EngineActive,
		ZoneScope:    "Global",
		Cadence:      true,
		Randomizer:   "2d6",
		RunCapPerDay: 1,
		RollHistory:  []RollRecord{{Date: "23 Ilrym", Roll: 8, Band: "8-9: Correct restraint"}},
	})
	c.AddZone(&Zone{
		Name:      "Caras",
		Intensity: "low",
		CrossingPoints: []CrossingPoint{
			{To: "Grey Plains", Name: "Grey Gate"},
			{To: "Riverwatch", Name: "River Koss Ferry"},
		},
	})
	c.SetEncounterList(&EncounterList{
		Zone:       "Caras",
		Randomizer: "1d6",
		Entries: []EncounterEntry{
			{Range: "1-2", Prompt: "Market argument over grain prices"},
			{Range: "3-6", Prompt: "Patrol asks for papers", BXPlug: map[string]any{"type": "reaction"}},
		},
	})
	c.AddFact("Date advanced to 23 Ilrym")
	c.FiredInteractionRules = []string{"INTERACT_02"}
	c.Log(LogEntry{Type: "T&P_DAY", Payload: map[string]any{"days": 1}})

	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.InGameDate != c.InGameDate || restored.SessionID != c.SessionID {
		t.Fatalf("expected meta preserved, got %q session %d", restored.InGameDate, restored.SessionID)
	}
	clock := restored.Clock("Children of the Dead Gods—Binding Degradation")
	if clock == nil || clock.Progress != 11 || clock.CadenceBullet != "Decay" {
		t.Fatalf("expected clock restored, got %+v", clock)
	}
	engine := restored.Engine("Vanguard Patrol Doctrine")
	if engine == nil || len(engine.RollHistory) != 1 || engine.RollHistory[0].Roll != 8 {
		t.Fatalf("expected engine roll history restored, got %+v", engine)
	}
	if restored.Zone("Caras") == nil || len(restored.Zone("Caras").CrossingPoints) != 2 {
		t.Fatal("expected zone crossing points restored")
	}
	if restored.EncounterListFor("Caras") == nil {
		t.Fatal("expected encounter list restored")
	}
	if len(restored.FiredInteractionRules) != 1 {
		t.Fatal("expected fired interaction rules restored")
	}

	again, err := Marshal(restored)
	if err != nil {
		t.Fatalf("marshal restored: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Fatal("expected save round trip to be byte identical")
	}
}

func TestUnmarshalResetsDayGuards(t *testing.T) {
	c := testCampaign()
	c.AddClock(&Clock{Name: "a", Progress: 2, MaxProgress: 4, Status: ClockActive, AdvancedThisDay: true, AdvancedThisSession: true})
	c.AddEngine(&Engine{Name: "VP", Status: EngineActive, RunCapPerDay: 1, RunsToday: 1})

	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	restored, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.Clock("a").AdvancedThisDay {
		t.Fatal("expected day guard cleared on load")
	}
	if restored.Engine("VP").RunsToday != 0 {
		t.Fatal("expected run counter cleared on load")
	}
	if !restored.Clock("a").AdvancedThisSession {
		t.Fatal("expected session guard preserved across save")
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed save")
	}
}
