// Package gammaria carries the seeded Gammaria campaign content: the
// clock roster, procedural engines, and zone network as of the end of
// Session 7. Edit Seed between sessions to update the baseline.
package gammaria

import (
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/calendar"
	"github.com/logarium/macros-engine/internal/campaign/state"
)

// Fresh creates an empty campaign with no seeded content. The date and
// zone still need to be set before the day loop will run.
func Fresh() (*state.Campaign, error) {
	c, err := state.NewCampaign()
	if err != nil {
		return nil, fmt.Errorf("new campaign: %w", err)
	}
	c.SessionID = 1
	return c, nil
}

// Seed creates the Gammaria campaign as of the end of Session 7.
func Seed() (*state.Campaign, error) {
	c, err := state.NewCampaign()
	if err != nil {
		return nil, fmt.Errorf("new campaign: %w", err)
	}

	c.SessionID = 7
	c.InGameDate = "23 Ilrym"
	c.DayOfMonth = 23
	c.Month = "Ilrym"
	c.PCZone = "Caras"
	c.CampaignIntensity = "medium"
	c.Season = calendar.SeasonSpring
	c.SeasonalPressure = "Feed & Seed — food stores depleted; planting season critical"

	seedClocks(c)
	seedEngines(c)
	seedZones(c)

	return c, nil
}

func seedClocks(c *state.Campaign) {
	// Recognition clocks.

	c.AddClock(&state.Clock{
		Name:        "Helkar Recognition—Caras",
		Owner:       "Environment/Polity",
		Progress:    1,
		MaxProgress: 4,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Thoron takes decisive sovereign action in Caras",
			"Thoron reunites with companion publicly in Caras",
			"Thoron invokes Helkar authority with force/evidence in Caras",
			"Word spreads from another location",
		},
		HaltConditions:      []string{"Thoron leaves Caras for more than 3 days"},
		ReduceConditions:    []string{"Thoron acts anonymously or defers to local authority"},
		TriggerOnCompletion: "Caras recognizes Thoron as Helkar; advance Frontier (General) +1",
	})

	c.AddClock(&state.Clock{
		Name:        "Helkar Recognition—Vornost",
		Owner:       "Environment/Polity",
		Progress:    2,
		MaxProgress: 4,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Thoron enters Black Fortress",
			"Thoron reunites with companion in Vornost",
			"Thoron issues orders and they are obeyed",
			"Military intelligence confirms identity",
			"Word spreads",
		},
		HaltConditions:      []string{"Thoron leaves Vornost >3 days"},
		ReduceConditions:    []string{"Thoron defers to Joppa", "Garrison questions identity"},
		TriggerOnCompletion: "Vornost recognizes Thoron; Black Fortress opens; advance Frontier (General) +2",
	})

	c.AddClock(&state.Clock{
		Name:        "Helkar Recognition—Frontier (General)",
		Owner:       "Environment/Polity",
		Progress:    5,
		MaxProgress: 6,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Thoron recognized at major location",
			"Companion reunion at frontier post",
			"Stories reach frontier",
			"Thoron demonstrates Helkar knowledge",
		},
		HaltConditions:      []string{"No new recognition events for one full week"},
		ReduceConditions:    []string{"Thoron fails publicly", "Companion questions authority"},
		TriggerOnCompletion: "Frontier-wide recognition; authority assumed",
	})

	c.AddClock(&state.Clock{
		Name:        "Helkar Recognition—Riverwatch/Temple",
		Owner:       "Environment/Polity",
		Progress:    1,
		MaxProgress: 4,
		Status:      state.ClockHalted,
		AdvanceBullets: []string{
			"Reunion in Riverwatch",
			"Helkar authority invoked",
			"Lock/customs crisis resolved",
			"Word spreads",
		},
		HaltConditions:      []string{"Thoron leaves Riverwatch >3 days"},
		TriggerOnCompletion: "Riverwatch institutions recognize Thoron; advance Frontier (General) +1",
		Notes:               "HALTED (>3 days absent, Session 3 Day 4)",
	})

	c.AddClock(&state.Clock{
		Name:                "Helkar Recognition—Fort Vanguard",
		Owner:               "Environment/Polity",
		Progress:            4,
		MaxProgress:         4,
		Status:              state.ClockTriggerFired,
		TriggerFired:        true,
		TriggerOnCompletion: "FIRED — Fort Vanguard recognizes Thoron",
		Notes:               "TRG FIRED Session 4; RETIRED Session 4",
	})

	c.AddClock(&state.Clock{
		Name:        "Helkar Recognition—Seawatch/Riverwatch",
		Owner:       "Environment/Polity",
		Progress:    1,
		MaxProgress: 4,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Reunion at Seawatch/Riverwatch",
			"Port crisis resolved",
			"Helkar authority invoked",
			"Word spreads",
		},
		HaltConditions:      []string{"Leaves both regions >7 days"},
		TriggerOnCompletion: "Coastal institutions recognize Thoron; advance Frontier (General) +1",
	})

	// Companion reunion clocks, all fired.

	for _, comp := range []string{"Lalholm", "Suzanne", "Lithoe", "Guldur", "Valania"} {
		c.AddClock(&state.Clock{
			Name:                "Companion Reunion—" + comp,
			Owner:               "Thoron (quest)",
			Progress:            1,
			MaxProgress:         1,
			Status:              state.ClockTriggerFired,
			TriggerFired:        true,
			TriggerOnCompletion: fmt.Sprintf("FIRED — %s reunited", comp),
		})
	}

	// Faction clocks.

	c.AddClock(&state.Clock{
		Name:        "Golden Hind—Assessment of Gammaria",
		Owner:       "Golden Hind Merchants",
		Progress:    0,
		MaxProgress: 4,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Lethal enforcement against GH personnel",
			"Seizure/exposure/humiliation of GH assets",
			"Trade restrictions attributable to Helkar policy",
		},
		HaltConditions: []string{"No direct contact", "External crises divert attention"},
		ReduceConditions: []string{
			"Successful intimidation without collateral",
			"Procedural concessions preserving merchant dignity",
		},
		TriggerOnCompletion: "Coordinated merchant countermove",
	})

	c.AddClock(&state.Clock{
		Name:                "Doctrine Stress Test",
		Owner:               "Fort Vanguard (Bale)",
		Progress:            1,
		MaxProgress:         6,
		Status:              state.ClockActive,
		AdvanceBullets:      []string{"Patrols deployed", "Ambiguous encounters strain rules"},
		HaltConditions:      []string{"Patrols suspended"},
		ReduceConditions:    []string{"Correct ID validated publicly"},
		TriggerOnCompletion: "Doctrine brittleness event",
		Notes:               "Vasha dead; Bale now holds this responsibility",
	})

	c.AddClock(&state.Clock{
		Name:                "Temple of the Sun—Doctrinal Fracture",
		Owner:               "Temple of the Sun",
		Progress:            20,
		MaxProgress:         20,
		Status:              state.ClockTriggerFired,
		TriggerFired:        true,
		TriggerOnCompletion: "FIRED — Schism irreversible; Ush'n'Elthar and Ush'n'Taalgith split",
		Notes:               "TRG FIRED Session 6 (20th Ilrym)",
	})

	// Hidden Temple clocks.

	c.AddClock(&state.Clock{
		Name:        "Hidden Temple—Demon Ledger",
		Owner:       "Hidden Temple",
		Progress:    1,
		MaxProgress: 8,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Knowledgeable NPC confirms demon/fiend-linked presence or activity",
			"Demon-linked artifacts/cults/summons discovered",
		},
		HaltConditions:      []string{"No new evidence for one full week"},
		ReduceConditions:    []string{"Demon threat destroyed/banished/sealed with proof"},
		TriggerOnCompletion: "Doctrine priority overrides mercenary work; active hunt posture begins",
		Notes:               "ERROR-CORRECTION-S7-01: retroactive advance from Session 6 (ossuary discovery)",
	})

	c.AddClock(&state.Clock{
		Name:        "Hidden Temple—Interest in Gammaria",
		Owner:       "Hidden Temple",
		Progress:    1,
		MaxProgress: 4,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Credible infernal/demonic signature detected",
			"Contract requests reference demons explicitly",
			"Orcus/Haadis jurisdictional conflict ripples publicly",
		},
		HaltConditions:      []string{"No relevant signals for one full week"},
		ReduceConditions:    []string{"Signal disproven or neutralised without Hidden Temple involvement"},
		TriggerOnCompletion: "Sanctioned cell dispatched into Gammaria",
		Notes:               "ERROR-CORRECTION-S7-02: retroactive advance from Session 6",
	})

	c.AddClock(&state.Clock{
		Name:        "Hidden Temple—Contract Pressure Vector",
		Owner:       "Hidden Temple",
		Progress:    0,
		MaxProgress: 6,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Parties seek deniable killers via Caras/Torlec routes",
			"Helkar policy creates enemies seeking removal",
		},
		HaltConditions:      []string{"No contract market activity reaches intermediaries"},
		ReduceConditions:    []string{"Procedural off-ramps reduce appetite for murder-for-hire"},
		TriggerOnCompletion: "Contract offer enters play via intermediary (choice-point)",
	})

	c.AddClock(&state.Clock{
		Name:        "Hidden Temple—Exposure Risk in Caras",
		Owner:       "Hidden Temple",
		Progress:    0,
		MaxProgress: 4,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Underlayer contact reused",
			"Evidence/bodies/residue left",
			"Rival counter-surveillance initiates",
		},
		HaltConditions:      []string{"Cell goes dark for one full week"},
		ReduceConditions:    []string{"Successful misdirection or clean exfiltration"},
		TriggerOnCompletion: "Exposure event: arrests, blackmail, or forced flight",
	})

	// Existential clocks.

	c.AddClock(&state.Clock{
		Name:        "Children of the Dead Gods—Binding Degradation",
		Owner:       "Children of Dead Gods",
		Progress:    11,
		MaxProgress: 16,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Krovekëan artifact disturbed",
			"Binding site accessed",
			"Corrupted Edhellar increases",
			"Decay",
			"Contract signed",
			"Cultist undetected ≥30d",
			"Anyone researches Crystal (psychic alarm)",
			"Orcus advances",
			"Dead Gods' names spoken aloud",
		},
		HaltConditions: []string{
			"Names spoken in warding",
			"Ancients Outpost secured",
			"Crystal/Krovekëa truth revealed and proven",
		},
		ReduceConditions: []string{
			"Cultist executed",
			"Artifact sealed",
			"Alliance forms",
			"Edhellar eliminated",
			"Contract broken",
			"Counter-sequence applied by Lithoe",
		},
		TriggerOnCompletion: "Dead God manifests (bound, insane); cult fractures; Orcus +3",
		IsCadence:           true,
		CadenceBullet:       "Decay",
	})

	c.AddClock(&state.Clock{
		Name:        "Lithoe Counter-Sequence Research",
		Owner:       "Lithoe Wano-Kan",
		Progress:    7,
		MaxProgress: 8,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"One undisturbed day passes with Lithoe researching at Khuzdukan",
		},
		HaltConditions:      []string{"Lithoe interrupted or forced to relocate"},
		TriggerOnCompletion: "Breakthrough — counter-sequence mapped; can be applied to ward",
		IsCadence:           true,
		CadenceBullet:       "One undisturbed day passes with Lithoe researching at Khuzdukan",
		Notes:               "Lithoe at Khuzdukan; undisturbed; should fire next day",
	})

	c.AddClock(&state.Clock{
		Name:        "Dimensional Instability—Western Scarps",
		Owner:       "Environment",
		Progress:    3,
		MaxProgress: 6,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Day passes with Edhellar activity in Scarps",
			"Binding Degradation advances",
		},
		HaltConditions:      []string{"Edhellar eliminated from zone", "Binding stabilised"},
		TriggerOnCompletion: "Dimensional breach event",
	})

	c.AddClock(&state.Clock{
		Name:        "Deep Tremors—Khuzdukan",
		Owner:       "Environment",
		Progress:    4,
		MaxProgress: 6,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Binding Degradation advances",
			"Ward-chamber accessed",
		},
		HaltConditions:      []string{"Counter-sequence applied"},
		TriggerOnCompletion: "Structural collapse risk; Khuzdukan evacuation",
	})

	c.AddClock(&state.Clock{
		Name:                "Wyvern Territory Dispute",
		Owner:               "Environment",
		Progress:            4,
		MaxProgress:         4,
		Status:              state.ClockTriggerFired,
		TriggerFired:        true,
		TriggerOnCompletion: "FIRED — Eastern Scarps travel requires escort",
	})

	// Orcus and Suzanne clocks.

	c.AddClock(&state.Clock{
		Name:        "Cult of Orcus—Enigma Crystal Hunt",
		Owner:       "Cult of Orcus",
		Progress:    3,
		MaxProgress: 14,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Suzanne investigates Crystal/Enigma Moon lore",
			"Ancient site explored",
			"Orcus cultist interrogates scholar",
			"Dimensional breach studied",
			"Lithoe shares findings with Suzanne",
			"Texts stolen",
			"Tharn-Krovekë consulted",
			"Children advance",
			"Player discovers Crystal location",
		},
		HaltConditions: []string{
			"Suzanne chooses Thoron",
			"All cells destroyed",
			"Crystal destruction revealed",
		},
		ReduceConditions: []string{
			"Cultist killed",
			"Site sealed",
			"Suzanne misdirects",
			"Church purge",
			"False intel",
		},
		TriggerOnCompletion: "Cult learns Crystal on Enigma Moon; Orcus demands Suzanne retrieve; spawn loyalty clock",
	})

	c.AddClock(&state.Clock{
		Name:        "Suzanne Loyalty—Helkar vs Orcus",
		Owner:       "Suzanne",
		Progress:    0,
		MaxProgress: 6,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Orcus contact",
			"Crystal lead",
			"Helkar power witnessed",
			"Thoron shares trust",
			"Asked to choose",
		},
		HaltConditions: []string{"Not in play + no cult contact for one week"},
		ReduceConditions: []string{
			"Lead disproven",
			"Thoron demonstrates loyalty",
			"Intermediary eliminated",
		},
		TriggerOnCompletion: "Choice-point (gated behind Enigma Crystal Hunt 14/14)",
	})

	// Fort Vanguard officer clocks.

	c.AddClock(&state.Clock{
		Name:                "Selde Marr",
		Owner:               "Fort Vanguard",
		Progress:            0,
		MaxProgress:         4,
		Status:              state.ClockActive,
		AdvanceBullets:      []string{"VP outcome 2-4 (clear failure)"},
		HaltConditions:      []string{"Patrols suspended"},
		ReduceConditions:    []string{"VP outcome 9-11 reduces"},
		TriggerOnCompletion: "Selde Marr's concerns become operational",
	})

	c.AddClock(&state.Clock{
		Name:                "Arvek Morn",
		Owner:               "Fort Vanguard",
		Progress:            0,
		MaxProgress:         4,
		Status:              state.ClockActive,
		AdvanceBullets:      []string{"VP outcome 2-4 (clear failure)"},
		HaltConditions:      []string{"Patrols suspended"},
		ReduceConditions:    []string{"VP outcome 9-11 reduces"},
		TriggerOnCompletion: "Arvek Morn's concerns become operational",
	})

	c.AddClock(&state.Clock{
		Name:                "Henric Bale",
		Owner:               "Fort Vanguard",
		Progress:            4,
		MaxProgress:         4,
		Status:              state.ClockRetired,
		TriggerOnCompletion: "RETIRED — Bale promoted to Castellan",
		Notes:               "TRG FIRED Session 3; RETIRED Session 4",
	})

	// Misc clocks.

	c.AddClock(&state.Clock{
		Name:        "Coastal Superstition—Neglected Shrines",
		Owner:       "UA-XX",
		Progress:    0,
		MaxProgress: 6,
		Status:      state.ClockActive,
		AdvanceBullets: []string{
			"Time passes in coastal zones without observance",
			"Folk warnings dismissed",
		},
		HaltConditions:      []string{"PC leaves zone", "Travel prevented"},
		ReduceConditions:    []string{"Shrine acknowledged", "Local guidance followed"},
		TriggerOnCompletion: "Predatory folk manifestation",
	})
}

func seedEngines(c *state.Campaign) {
	c.AddEngine(&state.Engine{
		Name:         "Vanguard Patrol Doctrine",
		Version:      "VP v3.0",
		Status:       state.EngineActive,
		ZoneScope:    "Global",
		Cadence:      true,
		HardGates:    []string{"Fort Vanguard must exist as named Zone"},
		Randomizer:   "2d6",
		LinkedClocks: []string{"Doctrine Stress Test", "Selde Marr", "Arvek Morn", "Henric Bale"},
		RollHistory: []state.RollRecord{
			{Date: "5 Ilrym", Roll: 7, Band: "5-7"},
			{Date: "6 Ilrym", Roll: 11, Band: "10-11"},
			{Date: "7 Ilrym", Roll: 3, Band: "2-4"},
			{Date: "8 Ilrym", Roll: 9, Band: "8-9"},
			{Date: "9 Ilrym", Roll: 6, Band: "5-7"},
			{Date: "10 Ilrym", Roll: 8, Band: "8-9"},
			{Date: "11 Ilrym", Roll: 8, Band: "8-9"},
			{Date: "12 Ilrym", Roll: 6, Band: "5-7"},
			{Date: "13 Ilrym", Roll: 7, Band: "5-7"},
			{Date: "14 Ilrym", Roll: 7, Band: "5-7"},
			{Date: "15 Ilrym", Roll: 11, Band: "10-11"},
			{Date: "16 Ilrym", Roll: 3, Band: "2-4"},
			{Date: "17 Ilrym", Roll: 6, Band: "5-7"},
			{Date: "18 Ilrym", Roll: 11, Band: "10-11"},
			{Date: "19 Ilrym", Roll: 6, Band: "5-7"},
			{Date: "20 Ilrym", Roll: 6, Band: "5-7"},
			{Date: "21 Ilrym", Roll: 11, Band: "10-11"},
			{Date: "22 Ilrym", Roll: 5, Band: "5-7"},
			{Date: "23 Ilrym", Roll: 9, Band: "8-9"},
		},
	})

	// Linked clock fired; engine stays inert until a new fracture clock exists.
	c.AddEngine(&state.Engine{
		Name:         "Temple of the Sun — Doctrinal Debate",
		Version:      "TSDD v3.0",
		Status:       state.EngineInert,
		ZoneScope:    "Temple of the Sun",
		Cadence:      true,
		HardGates:    []string{"Temple of the Sun must exist as named Zone"},
		LinkedClocks: []string{"Temple of the Sun—Doctrinal Fracture"},
	})

	c.AddEngine(&state.Engine{
		Name:      "Hidden Temple — Demon-Hunt Cadence",
		Version:   "HT-DH v3.0",
		Status:    state.EngineActive,
		ZoneScope: "Any region where demon/fiend evidence exists",
		Cadence:   true,
		HardGates: []string{"Demon Ledger >= 1"},
		LinkedClocks: []string{
			"Hidden Temple—Demon Ledger",
			"Hidden Temple—Interest in Gammaria",
			"Hidden Temple—Contract Pressure Vector",
		},
	})

	c.AddEngine(&state.Engine{
		Name:      "Seasonal Resource Pressure",
		Version:   "SRP v1.0",
		Status:    state.EngineActive,
		ZoneScope: "Gammaria (all settlements)",
		Cadence:   true,
		HardGates: []string{"Valid in-game date"},
	})
}

func seedZones(c *state.Campaign) {
	c.AddZone(&state.Zone{
		Name:      "Barrow Moors",
		Intensity: "high",
		CrossingPoints: []state.CrossingPoint{
			{To: "Forgaard", Name: "Barrows Gate", Tag: "eventful"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Blacktooth Forest",
		Intensity:          "moderate",
		ControllingFaction: "Blacktooth Orcs",
		CrossingPoints: []state.CrossingPoint{
			{To: "Eastern Scarps", Name: "narrow gulch", Tag: "eventful"},
			{To: "Eastern Scarps", Name: "Golden Downs", Tag: "slow"},
			{To: "Grey Plains", Name: "The Claw", Tag: "eventful"},
			{To: "Khuzduk Hills", Name: "Dwarven Bridge"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Caras",
		Intensity:          "low",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Grey Plains", Name: "Grey Gate"},
			{To: "Riverwatch", Name: "River Koss Ferry"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Deep Swamps",
		Intensity:          "high",
		ControllingFaction: "Bloodswamp Hobgoblins",
		CrossingPoints: []state.CrossingPoint{
			{To: "Sea of Birds", Name: "Sunken Shore", Tag: "eventful"},
			{To: "Sighing Swamps", Name: "broken causeway", Tag: "eventful"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "East March",
		Intensity: "moderate",
		CrossingPoints: []state.CrossingPoint{
			{To: "Fort Vanguard", Name: "Old East Road"},
			{To: "Southern Scarps", Name: "game trail"},
			{To: "Floodplain", Name: "eroded slopes"},
			{To: "Khuzduk Peaks", Name: "Dwarven Steps"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Eastern Scarps",
		Intensity:          "moderate",
		ControllingFaction: "Scarp Watch",
		CrossingPoints: []state.CrossingPoint{
			{To: "Blacktooth Forest", Name: "narrow gulch", Tag: "eventful"},
			{To: "Blacktooth Forest", Name: "Golden Downs", Tag: "slow"},
			{To: "Grey Plains", Name: "poor road", Tag: "eventful"},
			{To: "Grey Plains", Name: "good road", Tag: "slow"},
			{To: "Temple of the Sun", Name: "Pilgrim's Walk"},
			{To: "Western Scarps", Name: "Amon's Causeway"},
			{To: "Forgaard", Name: "High Fell", Tag: "eventful"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Fisher's Beach",
		Intensity: "low",
		CrossingPoints: []state.CrossingPoint{
			{To: "Sighing Swamps", Name: "beach trail", Tag: "eventful"},
			{To: "Sea of Birds", Name: "cold beach", Tag: "eventful"},
			{To: "Seawatch Ramparts", Name: "Coast Road"},
			{To: "Hinterlands", Name: "windswept trail"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Floodplain",
		Intensity: "high",
		CrossingPoints: []state.CrossingPoint{
			{To: "East March", Name: "eroded slopes"},
			{To: "Khuzduk Peaks", Name: "waterfall", Tag: "eventful"},
			{To: "Outer Wetlands", Name: "River of Stone"},
			{To: "Fort Vanguard", Name: "culvert"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Forgaard",
		Intensity:          "high",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Eastern Scarps", Name: "High Fell", Tag: "eventful"},
			{To: "Barrow Moors", Name: "Barrows Gate"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Fort Amon",
		Intensity:          "medium",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Western Scarps", Name: "down Amon's Causeway"},
			{To: "Highfell Forest", Name: "elf path"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Fort Highguard",
		Intensity:          "medium",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Hanging Cliffs", Name: "Pinnacle Gate"},
			{To: "Furdach Forest", Name: "high paths"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Fort Seawatch",
		Intensity:          "medium",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "River of Birds", Name: "main canal", Tag: "eventful"},
			{To: "Riverwatch", Name: "River of Skulls Ferry"},
			{To: "Seawatch Ramparts", Name: "Kraken Gate"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Fort Vanguard",
		Intensity:          "high",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "East March", Name: "Old East Road"},
			{To: "Floodplain", Name: "culvert"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Furdach",
		Intensity:          "medium",
		ControllingFaction: "Gnome Clans of Furdach",
		CrossingPoints: []state.CrossingPoint{
			{To: "Furdach Forest", Name: "narrow tunnel"},
			{To: "Gloatburrow Hills", Name: "goblin tunnel"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Furdach Forest",
		Intensity:          "moderate",
		ControllingFaction: "Gnome Clans of Furdach",
		CrossingPoints: []state.CrossingPoint{
			{To: "Furdach", Name: "narrow tunnel"},
			{To: "Gloatburrow Hills", Name: "scree slopes"},
			{To: "Southern Scarps", Name: "easy track"},
			{To: "Fort Highguard", Name: "high paths"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Gloatburrow Hills",
		Intensity: "lethal",
		CrossingPoints: []state.CrossingPoint{
			{To: "Furdach Forest", Name: "scree slopes", Tag: "eventful"},
			{To: "Hanging Cliffs", Name: "Conorth's Stair", Tag: "eventful"},
			{To: "Southern Shore", Name: "broken woodland", Tag: "eventful"},
			{To: "River of Birds", Name: "River of Skulls", Tag: "eventful"},
			{To: "Vargol's Reach", Name: "low pass", Tag: "slow"},
			{To: "Furdach", Name: "goblin tunnel"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Grey Plains",
		Intensity:          "low",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Vornost", Name: "Dragon-Skull Gate"},
			{To: "Hinterlands", Name: "Merchant's Highway"},
			{To: "Eastern Scarps", Name: "poor road", Tag: "eventful"},
			{To: "Eastern Scarps", Name: "good road", Tag: "slow"},
			{To: "Blacktooth Forest", Name: "The Claw", Tag: "eventful"},
			{To: "Khuzduk Hills", Name: "riverbank", Tag: "slow"},
			{To: "Khuzduk Hills", Name: "dwarf trail", Tag: "eventful"},
			{To: "Sighing Swamps", Name: "boggy track", Tag: "eventful"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Hanging Cliffs",
		Intensity: "moderate",
		CrossingPoints: []state.CrossingPoint{
			{To: "Gloatburrow Hills", Name: "Conorth's Stair", Tag: "eventful"},
			{To: "Fort Highguard", Name: "Pinnacle Gate"},
			{To: "Furdach Forest", Name: "high paths"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Highfell Forest",
		Intensity: "lethal",
		CrossingPoints: []state.CrossingPoint{
			{To: "Narrows", Name: "forest tracks", Tag: "eventful"},
			{To: "Fort Amon", Name: "elf path"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Hinterlands",
		Intensity:          "low",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Grey Plains", Name: "Merchant's Highway", Tag: "eventful"},
			{To: "Sighing Swamps", Name: "waterlogged track", Tag: "eventful"},
			{To: "Fisher's Beach", Name: "windswept trail"},
			{To: "Seawatch Ramparts", Name: "Fishers Causeway"},
			{To: "Vargol's Reach", Name: "Drummer's Bridge", Tag: "eventful"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Khuzduk Hills",
		Intensity: "moderate",
		CrossingPoints: []state.CrossingPoint{
			{To: "Blacktooth Forest", Name: "Dwarven Bridge"},
			{To: "Sighing Swamps", Name: "crumbling steps", Tag: "eventful"},
			{To: "Khuzduk Peaks", Name: "cairn path"},
			{To: "Grey Plains", Name: "riverbank", Tag: "slow"},
			{To: "Grey Plains", Name: "dwarf trail", Tag: "eventful"},
			{To: "Vornost", Name: "River Koss"},
			{To: "Khuzdukan", Name: "Dwarven Gate", Tag: "eventful"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Khuzduk Peaks",
		Intensity:          "high",
		ControllingFaction: "Khuzduk Remnant-Wardens",
		CrossingPoints: []state.CrossingPoint{
			{To: "Khuzduk Hills", Name: "cairn path"},
			{To: "Floodplain", Name: "waterfall", Tag: "eventful"},
			{To: "East March", Name: "Dwarven Steps"},
			{To: "Khuzdukan", Name: "Dwarven Aqueduct"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Khuzdukan",
		Intensity: "high",
		CrossingPoints: []state.CrossingPoint{
			{To: "Khuzduk Hills", Name: "Dwarven Gate", Tag: "eventful"},
			{To: "Khuzduk Peaks", Name: "Dwarven Aqueduct"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Narrows",
		Intensity:          "high",
		ControllingFaction: "Narrows Pathwardens",
		CrossingPoints: []state.CrossingPoint{
			{To: "Western Scarps", Name: "Amon's Gully"},
			{To: "Highfell Forest", Name: "forest tracks", Tag: "eventful"},
			{To: "Vargol's Reach", Name: "Havar's Bridge", Tag: "eventful"},
			{To: "Riverlands", Name: "old Elven road"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Outer Wetlands",
		Intensity: "medium",
		CrossingPoints: []state.CrossingPoint{
			{To: "Floodplain", Name: "River of Stone"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "River of Birds",
		Intensity: "low",
		CrossingPoints: []state.CrossingPoint{
			{To: "Gloatburrow Hills", Name: "River of Skulls", Tag: "eventful"},
			{To: "Fort Seawatch", Name: "main canal", Tag: "eventful"},
			{To: "Riverlands", Name: "River of Skulls towpath"},
			{To: "Seawatch Ramparts", Name: "Seawatch Road", Tag: "slow"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Riverlands",
		Intensity:          "low",
		ControllingFaction: "Confluence Bargemen",
		CrossingPoints: []state.CrossingPoint{
			{To: "River of Birds", Name: "River of Skulls towpath"},
			{To: "Vargol's Reach", Name: "tundra trail"},
			{To: "Narrows", Name: "old Elven road"},
			{To: "Riverwatch", Name: "Grand Lock"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Riverwatch",
		Intensity:          "low",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Riverlands", Name: "Grand Lock"},
			{To: "Caras", Name: "River Koss Ferry"},
			{To: "Fort Seawatch", Name: "River of Skulls Ferry"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Sea of Birds",
		Intensity: "high",
		CrossingPoints: []state.CrossingPoint{
			{To: "Deep Swamps", Name: "Sunken Shore", Tag: "eventful"},
			{To: "Southern Shore", Name: "shale beach", Tag: "eventful"},
			{To: "Fisher's Beach", Name: "cold beach", Tag: "eventful"},
			{To: "Seawatch Ramparts", Name: "old docks", Tag: "eventful"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Seawatch Ramparts",
		Intensity:          "low",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Fisher's Beach", Name: "Coast Road"},
			{To: "Southern Shore", Name: "South Road"},
			{To: "Sea of Birds", Name: "old docks", Tag: "eventful"},
			{To: "River of Birds", Name: "Seawatch Road", Tag: "slow"},
			{To: "Hinterlands", Name: "Fishers Causeway"},
			{To: "Fort Seawatch", Name: "Kraken Gate"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Sighing Swamps",
		Intensity: "medium",
		CrossingPoints: []state.CrossingPoint{
			{To: "Deep Swamps", Name: "broken causeway", Tag: "eventful"},
			{To: "Khuzduk Hills", Name: "crumbling steps", Tag: "eventful"},
			{To: "Hinterlands", Name: "waterlogged track", Tag: "eventful"},
			{To: "Grey Plains", Name: "boggy track", Tag: "eventful"},
			{To: "Fisher's Beach", Name: "beach trail", Tag: "eventful"},
			{To: "Vornost", Name: "low stairs"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Southern Scarps",
		Intensity: "medium",
		CrossingPoints: []state.CrossingPoint{
			{To: "East March", Name: "game trail"},
			{To: "Furdach Forest", Name: "easy track"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Southern Shore",
		Intensity: "low",
		CrossingPoints: []state.CrossingPoint{
			{To: "Seawatch Ramparts", Name: "South Road"},
			{To: "Gloatburrow Hills", Name: "broken woodland", Tag: "eventful"},
			{To: "Sea of Birds", Name: "shale beach", Tag: "eventful"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Temple of the Sun",
		Intensity: "low",
		CrossingPoints: []state.CrossingPoint{
			{To: "Eastern Scarps", Name: "Pilgrim's Walk"},
			{To: "Western Scarps", Name: "Penitent's Way"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Vallandor Mountains",
		Intensity: "high",
		CrossingPoints: []state.CrossingPoint{
			{To: "Whiteagle Keep", Name: "postern gate"},
			{To: "Gloatburrow Hills", Name: "rough trail", Tag: "eventful"},
			{To: "Vargol's Reach", Name: "steep slope", Tag: "slow"},
		},
	})

	c.AddZone(&state.Zone{
		Name:      "Vargol's Reach",
		Intensity: "medium",
		CrossingPoints: []state.CrossingPoint{
			{To: "Gloatburrow Hills", Name: "low pass", Tag: "slow"},
			{To: "Hinterlands", Name: "Drummer's Bridge", Tag: "eventful"},
			{To: "Narrows", Name: "Havar's Bridge", Tag: "eventful"},
			{To: "Riverlands", Name: "tundra trail"},
			{To: "Vallandor Mountains", Name: "steep slope", Tag: "slow"},
			{To: "Whiteagle Keep", Name: "Glaurung's Gate"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Vornost",
		Intensity:          "low",
		ControllingFaction: "Nation of Gammaria",
		CrossingPoints: []state.CrossingPoint{
			{To: "Sighing Swamps", Name: "low stairs"},
			{To: "Grey Plains", Name: "Dragon-Skull Gate"},
			{To: "Khuzduk Hills", Name: "River Koss"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Western Scarps",
		Intensity:          "medium",
		ControllingFaction: "Penitent's Way Wardens",
		CrossingPoints: []state.CrossingPoint{
			{To: "Eastern Scarps", Name: "Amon's Causeway"},
			{To: "Fort Amon", Name: "down Amon's Causeway"},
			{To: "Narrows", Name: "Amon's Gully"},
			{To: "Temple of the Sun", Name: "Penitent's Way"},
		},
	})

	c.AddZone(&state.Zone{
		Name:               "Whiteagle Keep",
		Intensity:          "medium",
		ControllingFaction: "Ironmask Council",
		CrossingPoints: []state.CrossingPoint{
			{To: "Vallandor Mountains", Name: "postern gate"},
			{To: "Vargol's Reach", Name: "Glaurung's Gate"},
		},
	})
}
