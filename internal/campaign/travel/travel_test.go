package travel

import (
	"testing"

	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

func travelCampaign() *state.Campaign {
	return &state.Campaign{
		SessionID:  7,
		InGameDate: "23 Ilrym",
		PCZone:     "Caras",
		Zones: []*state.Zone{
			{
				Name: "Caras",
				CrossingPoints: []state.CrossingPoint{
					{To: "Fort Vanguard", Name: "North Road"},
					{To: "Umber Fen", Name: "Fen Causeway", Tag: "slow"},
					{To: "Redwatch", Name: "Smuggler's Track", Tag: "eventful"},
					{To: ""},
				},
			},
			{Name: "Fort Vanguard"},
		},
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		tag  string
		want int
	}{
		{tag: "", want: 1},
		{tag: "slow", want: 2},
		{tag: "eventful", want: 1},
	}

	for _, tt := range tests {
		if got := Days(tt.tag); got != tt.want {
			t.Errorf("Days(%q) = %d, want %d", tt.tag, got, tt.want)
		}
	}
}

func TestOptions(t *testing.T) {
	c := travelCampaign()
	opts := Options(c)

	if len(opts) != 3 {
		t.Fatalf("expected 3 options (empty destination dropped), got %d", len(opts))
	}

	wantLabels := []string{
		"North Road -> Fort Vanguard (1d)",
		"Fen Causeway -> Umber Fen (2d, slow)",
		"Smuggler's Track -> Redwatch (1d, eventful)",
	}
	for i, want := range wantLabels {
		if opts[i].Label != want {
			t.Errorf("option %d label = %q, want %q", i, opts[i].Label, want)
		}
	}
	if opts[1].TimeDays != 2 {
		t.Errorf("expected slow route to cost 2 days, got %d", opts[1].TimeDays)
	}

	c.PCZone = "Nowhere"
	if opts := Options(c); opts != nil {
		t.Errorf("expected no options for unknown zone, got %v", opts)
	}
}

func TestOptionsNameFallsBackToDestination(t *testing.T) {
	c := &state.Campaign{
		PCZone: "Umber Fen",
		Zones: []*state.Zone{
			{Name: "Umber Fen", CrossingPoints: []state.CrossingPoint{{To: "Caras"}}},
		},
	}

	opts := Options(c)
	if len(opts) != 1 {
		t.Fatalf("expected 1 option, got %d", len(opts))
	}
	if opts[0].Name != "Caras" || opts[0].Label != "Caras -> Caras (1d)" {
		t.Errorf("unexpected option: %+v", opts[0])
	}
}

func TestValidate(t *testing.T) {
	c := travelCampaign()

	cp, err := Validate(c, "fort vanguard")
	if err != nil {
		t.Fatalf("expected case-insensitive match, got %v", err)
	}
	if cp.To != "Fort Vanguard" || cp.Name != "North Road" {
		t.Errorf("unexpected crossing point: %+v", cp)
	}

	_, err = Validate(c, "Nowhere")
	if !apperrors.IsCode(err, apperrors.CodeTravelNoCrossingPoint) {
		t.Fatalf("expected TRAVEL_NO_CROSSING_POINT, got %v", err)
	}
	want := "'Nowhere' is not reachable from Caras. Available: Fort Vanguard, Umber Fen, Redwatch, ?"
	if err.Error() != want {
		t.Errorf("unexpected message:\n got %q\nwant %q", err.Error(), want)
	}

	c.PCZone = "Limbo"
	_, err = Validate(c, "Caras")
	if !apperrors.IsCode(err, apperrors.CodeTravelZoneNotFound) {
		t.Fatalf("expected TRAVEL_ZONE_NOT_FOUND, got %v", err)
	}
	if err.Error() != "Current zone 'Limbo' not found in state" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestExecute(t *testing.T) {
	c := travelCampaign()

	res, err := Execute(c, "fort vanguard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.PCZone != "Fort Vanguard" {
		t.Errorf("expected canonical zone name, got %q", c.PCZone)
	}
	if res.OldZone != "Caras" || res.NewZone != "Fort Vanguard" || res.CPName != "North Road" {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.DaysTraveled != 1 || res.Eventful {
		t.Errorf("unexpected travel cost: %+v", res)
	}

	wantFact := "Traveled from Caras to Fort Vanguard via North Road"
	if c.DailyFacts[len(c.DailyFacts)-1] != wantFact {
		t.Errorf("expected fact %q, got %v", wantFact, c.DailyFacts)
	}

	if len(c.AdjudicationLog) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(c.AdjudicationLog))
	}
	entry := c.AdjudicationLog[0]
	if entry.Type != "TRAVEL" || entry.Date != "23 Ilrym" || entry.Session != 7 {
		t.Errorf("unexpected log entry: %+v", entry)
	}
	if entry.Detail != "Caras -> Fort Vanguard via North Road (1d)" {
		t.Errorf("unexpected detail: %q", entry.Detail)
	}
	if entry.Payload["old_zone"] != "Caras" || entry.Payload["days"] != 1 {
		t.Errorf("unexpected payload: %v", entry.Payload)
	}
}

func TestExecuteEventfulRoute(t *testing.T) {
	c := travelCampaign()

	res, err := Execute(c, "Redwatch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Eventful || res.DaysTraveled != 1 || res.CPTag != "eventful" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestExecuteUnnamedCrossingPoint(t *testing.T) {
	c := &state.Campaign{
		PCZone: "Umber Fen",
		Zones: []*state.Zone{
			{Name: "Umber Fen", CrossingPoints: []state.CrossingPoint{{To: "Caras"}}},
		},
	}

	res, err := Execute(c, "Caras")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CPName != "" {
		t.Errorf("expected empty crossing point name, got %q", res.CPName)
	}
	if c.DailyFacts[len(c.DailyFacts)-1] != "Traveled from Umber Fen to Caras via ?" {
		t.Errorf("unexpected fact: %v", c.DailyFacts)
	}

	_, err = Execute(c, "Umber Fen")
	if !apperrors.IsCode(err, apperrors.CodeTravelNoCrossingPoint) {
		t.Fatalf("expected failed validation to abort, got %v", err)
	}
	if c.PCZone != "Caras" {
		t.Errorf("failed travel must not move the PC, got %q", c.PCZone)
	}
}
