package dice

import "testing"

func TestGatePasses(t *testing.T) {
	tests := []struct {
		name      string
		intensity string
		roll      int
		want      bool
	}{
		{name: "low passes at 2", intensity: "low", roll: 2, want: true},
		{name: "low fails at 3", intensity: "low", roll: 3, want: false},
		{name: "medium passes at 3", intensity: "medium", roll: 3, want: true},
		{name: "medium fails at 4", intensity: "medium", roll: 4, want: false},
		{name: "high passes at 4", intensity: "high", roll: 4, want: true},
		{name: "high fails at 5", intensity: "high", roll: 5, want: false},
		{name: "extreme always passes", intensity: "extreme", roll: 6, want: true},
		{name: "case insensitive", intensity: "Medium", roll: 3, want: true},
		{name: "unknown defaults to medium", intensity: "volcanic", roll: 3, want: true},
		{name: "unknown defaults to medium fail", intensity: "volcanic", roll: 4, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GatePasses(tt.intensity, tt.roll); got != tt.want {
				t.Fatalf("GatePasses(%q, %d) = %v, want %v", tt.intensity, tt.roll, got, tt.want)
			}
		})
	}
}

func TestVPOutcomeBand(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		wantBand    string
		wantEffects int
		wantAction  string
		wantSpecial bool
	}{
		{name: "snake eyes", total: 2, wantBand: "2-4: Clear failure", wantEffects: 2, wantAction: "advance"},
		{name: "band edge 4", total: 4, wantBand: "2-4: Clear failure", wantEffects: 2, wantAction: "advance"},
		{name: "ambiguous contact", total: 5, wantBand: "5-7: Ambiguous contact", wantEffects: 1, wantAction: "advance"},
		{name: "correct restraint", total: 8, wantBand: "8-9: Correct restraint", wantEffects: 0},
		{name: "correct identification", total: 10, wantBand: "10-11: Correct identification", wantEffects: 2, wantAction: "reduce"},
		{name: "boxcars", total: 12, wantBand: "12: Correct ID + threat", wantEffects: 1, wantAction: "advance", wantSpecial: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VPOutcomeBand(tt.total)
			if got.Band != tt.wantBand {
				t.Fatalf("expected band %q, got %q", tt.wantBand, got.Band)
			}
			if len(got.ClockEffects) != tt.wantEffects {
				t.Fatalf("expected %d effects, got %d", tt.wantEffects, len(got.ClockEffects))
			}
			for _, e := range got.ClockEffects {
				if e.Action != tt.wantAction {
					t.Fatalf("expected action %q, got %q", tt.wantAction, e.Action)
				}
			}
			if tt.wantSpecial && got.Special == "" {
				t.Fatal("expected special action on 12")
			}
			if !tt.wantSpecial && got.Special != "" {
				t.Fatalf("unexpected special action: %q", got.Special)
			}
		})
	}
}

func TestNPCCountFor(t *testing.T) {
	roller := NewRoller(5)

	extreme := roller.NPCCountFor("extreme")
	if extreme.Count != -1 {
		t.Fatalf("expected -1 for extreme, got %d", extreme.Count)
	}
	if extreme.Roll != nil {
		t.Fatal("expected no roll for extreme")
	}

	bounds := []struct {
		intensity string
		min, max  int
	}{
		{"low", 1, 3},
		{"medium", 2, 8},
		{"high", 3, 18},
		{"unheard-of", 2, 8},
	}
	for _, b := range bounds {
		for i := 0; i < 30; i++ {
			got := roller.NPCCountFor(b.intensity)
			if got.Count < b.min || got.Count > b.max {
				t.Fatalf("%s count %d outside [%d,%d]", b.intensity, got.Count, b.min, b.max)
			}
			if got.Roll == nil {
				t.Fatalf("%s should carry its roll", b.intensity)
			}
		}
	}
}
