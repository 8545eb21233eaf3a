package creative

import (
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/audit"
	"github.com/logarium/macros-engine/internal/campaign/state"
)

// Journey describes the travel leg that brought the PC to the current zone.
type Journey struct {
	FromZone      string
	CrossingPoint string
	Tag           string
	Days          int
	Eventful      bool
}

// EncounterContext carries a triggered encounter into narration.
type EncounterContext struct {
	Description string
	HasBXPlug   bool
	StatBlock   map[string]any
	UACue       bool
}

// PeriodSummary condenses a run of days for time-passage narration.
type PeriodSummary struct {
	StartDate    string
	EndDate      string
	Encounters   []string
	NPAGCounts   []int
	ClockChanges []string
}

func zoneContext(c *state.Campaign, name string) map[string]any {
	z := c.Zone(name)
	if z == nil {
		return nil
	}
	return map[string]any{
		"zone_name":           z.Name,
		"controlling_faction": z.ControllingFaction,
	}
}

func zoneData(c *state.Campaign, name string) map[string]any {
	z := c.Zone(name)
	if z == nil {
		return map[string]any{}
	}
	return map[string]any{
		"controlling_faction": z.ControllingFaction,
		"intensity":           z.Intensity,
	}
}

// BuildClockAudit requests review of ADV bullets the keyword matcher could
// not settle on its own.
func BuildClockAudit(clockName, progress string, ambiguousBullets []audit.BulletMatch, dailyFacts []string) Request {
	return Request{
		Type: TypeClockAudit,
		Context: map[string]any{
			"clock":             clockName,
			"progress":          progress,
			"ambiguous_bullets": ambiguousBullets,
			"daily_facts":       dailyFacts,
		},
		Constraints: defaultConstraints(100,
			"Review whether these ADV bullets are UNAMBIGUOUSLY satisfied "+
				"by today's established facts. Respond 'advance' or 'no_advance' "+
				"with reasoning. Do NOT invent events to justify advancement."),
	}
}

// BuildNPAG requests off-screen agency resolution for NPCs with live
// objectives.
func BuildNPAG(c *state.Campaign, npcCount int) Request {
	var eligible []map[string]any
	for _, n := range c.NPCs {
		if n.Status == "active" && (n.Objective != "" || n.NextAction != "") {
			eligible = append(eligible, map[string]any{
				"name":        n.Name,
				"zone":        n.Zone,
				"role":        n.Role,
				"objective":   n.Objective,
				"next_action": n.NextAction,
				"faction":     n.Faction,
				"with_pc":     n.WithPC,
			})
		}
	}
	if len(eligible) > 20 {
		eligible = eligible[:20]
	}
	return Request{
		Type: TypeNPAG,
		Context: map[string]any{
			"npc_count":     npcCount,
			"eligible_npcs": eligible,
			"pc_zone":       c.PCZone,
			"in_game_date":  c.InGameDate,
		},
		Constraints: defaultConstraints(50*npcCount,
			fmt.Sprintf("Resolve agency actions for %d NPCs. ", npcCount)+
				"Choose NPCs with active objectives. Describe off-screen actions. "+
				"Note any clock ADV bullets their actions satisfy."),
	}
}

// BuildNarrEncounter requests narration for an encounter that passed the gate.
func BuildNarrEncounter(c *state.Campaign, enc EncounterContext) Request {
	var zone any = zoneContext(c, c.PCZone)
	if zone == nil {
		zone = c.PCZone
	}
	var statBlock any = ""
	if len(enc.StatBlock) > 0 {
		statBlock = enc.StatBlock
	}
	return Request{
		Type: TypeNarrEncounter,
		Context: map[string]any{
			"zone":                  zone,
			"encounter_description": enc.Description,
			"has_bx_plug":           enc.HasBXPlug,
			"bx_stat_block":         statBlock,
			"ua_cue":                enc.UACue,
			"season":                string(c.Season),
			"in_game_date":          c.InGameDate,
		},
		Constraints: defaultConstraints(250,
			"Narrate the encounter. If BX-PLUG combat is flagged, "+
				"describe initial contact and set up ATTACK/FLEE choice."),
	}
}

// BuildNarrTimePassage requests narration covering a completed run of days.
func BuildNarrTimePassage(c *state.Campaign, days int, period PeriodSummary) Request {
	var companions []map[string]any
	for _, n := range c.CompanionsWithPC() {
		companions = append(companions, map[string]any{
			"name": n.Name, "status": n.Status,
		})
	}
	var present []map[string]any
	for _, n := range c.NPCsInZone(c.PCZone) {
		if !n.IsCompanion {
			present = append(present, map[string]any{
				"name": n.Name, "role": n.Role,
			})
		}
	}
	return Request{
		Type: TypeNarrTimePassage,
		Context: map[string]any{
			"days_passed":               days,
			"start_date":                period.StartDate,
			"end_date":                  period.EndDate,
			"zone":                      zoneContext(c, c.PCZone),
			"companions_with_pc":        companions,
			"npcs_present":              present,
			"encounters_this_period":    period.Encounters,
			"npag_results_this_period":  period.NPAGCounts,
			"clock_changes_this_period": period.ClockChanges,
			"season":                    string(c.Season),
			"in_game_date":              c.InGameDate,
		},
		Constraints: defaultConstraints(300,
			fmt.Sprintf("Narrate the passage of %d day(s). ", days)+
				"Weave in any encounters and NPAG results that the PC would "+
				"learn about. Not all NPAG actions are visible to the PC — "+
				"only include what they would realistically see, hear, or be told. "+
				"Even uneventful days deserve a sense of time passing."),
	}
}

// BuildNarrArrival requests narration for arrival in the current zone.
func BuildNarrArrival(c *state.Campaign, journey *Journey) Request {
	var present []map[string]any
	for _, n := range c.NPCsInZone(c.PCZone) {
		present = append(present, map[string]any{
			"name":         n.Name,
			"role":         n.Role,
			"is_companion": n.IsCompanion,
		})
	}
	var companions []map[string]any
	for _, n := range c.CompanionsWithPC() {
		companions = append(companions, map[string]any{
			"name": n.Name, "status": n.Status,
		})
	}
	travel := map[string]any{}
	if journey != nil {
		travel = map[string]any{
			"from_zone":      journey.FromZone,
			"crossing_point": journey.CrossingPoint,
			"cp_tag":         journey.Tag,
			"days_traveled":  journey.Days,
			"is_eventful":    journey.Eventful,
		}
	}
	var recent []string
	if n := len(c.DailyFacts); n > 5 {
		recent = c.DailyFacts[n-5:]
	} else {
		recent = c.DailyFacts
	}
	return Request{
		Type: TypeNarrArrival,
		Context: map[string]any{
			"zone":               zoneContext(c, c.PCZone),
			"travel":             travel,
			"present_npcs":       present,
			"companions_with_pc": companions,
			"season":             string(c.Season),
			"seasonal_pressure":  c.SeasonalPressure,
			"in_game_date":       c.InGameDate,
			"recent_facts":       recent,
		},
		Constraints: defaultConstraints(300,
			"Narrate arrival at this zone. Cover: journey, "+
				"first impressions, sensory detail, companion reactions, "+
				"immediate situation. Do NOT advance time or resolve encounters."),
	}
}

// BuildSessionSummary requests the end-of-session narrative wrap-up.
func BuildSessionSummary(c *state.Campaign) Request {
	var events []state.LogEntry
	for _, e := range c.AdjudicationLog {
		if e.Session == c.SessionID {
			events = append(events, e)
		}
	}
	recent := events
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}
	var clocks []map[string]any
	for _, cl := range c.Clocks {
		if cl.Status != state.ClockRetired {
			clocks = append(clocks, map[string]any{
				"name":     cl.Name,
				"progress": fmt.Sprintf("%d/%d", cl.Progress, cl.MaxProgress),
				"status":   string(cl.Status),
			})
		}
	}
	var companions []map[string]any
	for _, n := range c.NPCs {
		if n.IsCompanion && n.WithPC {
			companions = append(companions, map[string]any{
				"name": n.Name, "status": n.Status, "zone": n.Zone,
			})
		}
	}
	return Request{
		Type: TypeSessionSummary,
		Context: map[string]any{
			"session_id":         c.SessionID,
			"in_game_date":       c.InGameDate,
			"pc_zone":            c.PCZone,
			"season":             string(c.Season),
			"event_count":        len(events),
			"recent_events":      recent,
			"clock_summary":      clocks,
			"companions_with_pc": companions,
		},
		Constraints: defaultConstraints(600,
			"Write a 400-600 word narrative summary of this session. "+
				"Cover: key events, clock movements, NPC developments, "+
				"player decisions and their consequences. "+
				"End with a 1-sentence hook for next session. "+
				"Write in past tense, third person."),
	}
}

// BuildNPCForge requests creation of one NPC for a zone.
func BuildNPCForge(c *state.Campaign, zone, roleHint, factionHint string, maxClocks int) Request {
	var existing []map[string]any
	for _, n := range c.NPCs {
		if n.Zone == zone {
			existing = append(existing, map[string]any{
				"name": n.Name, "role": n.Role, "faction": n.Faction,
			})
		}
	}
	if maxClocks < 0 {
		maxClocks = 0
	}
	if maxClocks > 5 {
		maxClocks = 5
	}
	return Request{
		Type: TypeNPCForge,
		Context: map[string]any{
			"zone":                  zone,
			"zone_data":             zoneData(c, zone),
			"existing_npcs_in_zone": existing,
			"role_hint":             roleHint,
			"faction_hint":          factionHint,
			"max_clocks":            maxClocks,
			"session_id":            c.SessionID,
			"season":                string(c.Season),
		},
		Constraints: defaultConstraints(100,
			"Create one NPC for this zone. Return a state_change with type 'npc_create'. "+
				"Required fields: name, zone, role, trait (1-2 words), "+
				"appearance (short identifying phrase), faction (from existing factions or 'none'). "+
				"Optional: objective, knowledge, next_action. "+
				"BX stats: bx_ac (9-20), bx_hd (1-8), bx_hp (rolled from HD), "+
				"bx_hp_max (same as hp), bx_at (HD-based), bx_dmg (weapon die string), bx_ml (5-12). "+
				fmt.Sprintf("Optional new clocks: up to %d (use clock_create state_changes). ", maxClocks)+
				"Do NOT duplicate existing NPC names in this zone."),
	}
}

// BuildELForge requests an encounter list for a zone that has none.
func BuildELForge(c *state.Campaign, zone string) Request {
	var existing []map[string]any
	for _, n := range c.NPCs {
		if n.Zone == zone {
			existing = append(existing, map[string]any{
				"name": n.Name, "role": n.Role,
			})
		}
	}
	return Request{
		Type: TypeELForge,
		Context: map[string]any{
			"zone":                  zone,
			"zone_data":             zoneData(c, zone),
			"existing_npcs_in_zone": existing,
			"season":                string(c.Season),
			"seasonal_pressure":     c.SeasonalPressure,
			"session_id":            c.SessionID,
			"heat_level":            "routine_only",
		},
		Constraints: defaultConstraints(400,
			"Create an encounter list for this zone. Return a state_change with type 'el_create'. "+
				"Fields: zone, randomizer (e.g. '1d6', '1d8', '1d10', '2d6'), "+
				"fallback_priority (1-4, higher = more remote), adjacency_notes (comma-separated zone flavor). "+
				"entries: list of objects with range (e.g. '1', '1-2', '5-6'), "+
				"prompt (1-2 sentence encounter description), ua_cue (bool, true if tagged [UA]), "+
				"bx_plug (dict with type/skill/save_damage/hostile_action/stats, or empty {}). "+
				"bx_plug.type: 'reaction', 'save', 'skill_check', or 'combat'. "+
				"Heat level: routine_only (default — routine encounters, no world-shaking events). "+
				"Mix combat and non-combat. Fit zone theme and threat level."),
	}
}

// BuildUAForge requests an Unknown Actor entry for a zone under threat.
func BuildUAForge(c *state.Campaign, zone, triggerContext string) Request {
	return Request{
		Type: TypeUAForge,
		Context: map[string]any{
			"zone":            zone,
			"zone_data":       zoneData(c, zone),
			"trigger_context": triggerContext,
			"session_id":      c.SessionID,
			"season":          string(c.Season),
		},
		Constraints: defaultConstraints(100,
			"Create an Unknown Actor entry (persistent threat). "+
				"Return TWO state_changes: "+
				"1) ua_create — ua_id, zone, "+
				"description (1-2 sentences of observable agency), "+
				"status ('ACTIVE'). "+
				"2) discovery_create OR thread_create — "+
				"the UA MUST be anchored in a discovery, unresolved thread, "+
				"or clock (per UA.CREATE ANCHOR rule). "+
				"UA should imply agency (surveillance, pursuit, sabotage, enforcement) "+
				"without revealing stable identity."),
	}
}
