// Package state holds the campaign aggregate: clocks, procedural
// engines, zones, encounter lists, and NPCs, together with the
// per-day fact sheet and the adjudication log. All mutation of
// campaign state goes through this package.
package state

import (
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/calendar"
)

// LogEntry is one record in the adjudication log. Payload carries the
// entry-specific structure (a day summary, a travel record) and is
// preserved as-is across saves.
type LogEntry struct {
	Type    string         `json:"type"`
	Date    string         `json:"date"`
	Session int            `json:"session"`
	Detail  string         `json:"detail,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Campaign is the complete campaign aggregate. Collections keep their
// insertion order so that day-loop iteration and saves are stable.
type Campaign struct {
	CampaignID        string          `json:"campaign_id"`
	SessionID         int             `json:"session_id"`
	InGameDate        string          `json:"in_game_date"`
	DayOfMonth        int             `json:"day_of_month"`
	Month             string          `json:"month"`
	PCZone            string          `json:"pc_zone"`
	CampaignIntensity string          `json:"campaign_intensity"`
	Season            calendar.Season `json:"season"`
	SeasonalPressure  string          `json:"seasonal_pressure"`

	Clocks         []*Clock         `json:"clocks"`
	Engines        []*Engine        `json:"engines"`
	Zones          []*Zone          `json:"zones"`
	EncounterLists []*EncounterList `json:"encounter_lists,omitempty"`
	NPCs           []*NPC           `json:"npcs,omitempty"`

	// Facts established today, consumed by the clock audit and halt
	// evaluation. Cleared at the start of each day.
	DailyFacts []string `json:"daily_facts,omitempty"`

	// One-time interaction rules that have already fired.
	FiredInteractionRules []string `json:"fired_interaction_rules,omitempty"`

	// SessionSummaries keeps the closing summary of each ended session,
	// keyed by session id.
	SessionSummaries map[string]string `json:"session_summaries,omitempty"`

	AdjudicationLog []LogEntry `json:"adjudication_log,omitempty"`
}

// NewCampaign creates an empty campaign with a generated identifier.
func NewCampaign() (*Campaign, error) {
	campaignID, err := NewID()
	if err != nil {
		return nil, fmt.Errorf("generate campaign id: %w", err)
	}
	return &Campaign{
		CampaignID:        campaignID,
		CampaignIntensity: "medium",
	}, nil
}

// Clock returns the clock with the given name, or nil.
func (c *Campaign) Clock(name string) *Clock {
	for _, cl := range c.Clocks {
		if cl.Name == name {
			return cl
		}
	}
	return nil
}

// Engine returns the engine with the given name, or nil.
func (c *Campaign) Engine(name string) *Engine {
	for _, e := range c.Engines {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Zone returns the zone with the given name, or nil.
func (c *Campaign) Zone(name string) *Zone {
	for _, z := range c.Zones {
		if z.Name == name {
			return z
		}
	}
	return nil
}

// EncounterListFor returns the encounter list for a zone, or nil.
func (c *Campaign) EncounterListFor(zone string) *EncounterList {
	for _, el := range c.EncounterLists {
		if el.Zone == zone {
			return el
		}
	}
	return nil
}

// NPC returns the NPC with the given name, or nil.
func (c *Campaign) NPC(name string) *NPC {
	for _, n := range c.NPCs {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// AddClock inserts a clock, replacing any existing clock with the same name.
func (c *Campaign) AddClock(cl *Clock) {
	for i, existing := range c.Clocks {
		if existing.Name == cl.Name {
			c.Clocks[i] = cl
			return
		}
	}
	c.Clocks = append(c.Clocks, cl)
}

// AddEngine inserts an engine, replacing any existing engine with the same name.
func (c *Campaign) AddEngine(e *Engine) {
	for i, existing := range c.Engines {
		if existing.Name == e.Name {
			c.Engines[i] = e
			return
		}
	}
	c.Engines = append(c.Engines, e)
}

// AddZone inserts a zone, replacing any existing zone with the same name.
func (c *Campaign) AddZone(z *Zone) {
	for i, existing := range c.Zones {
		if existing.Name == z.Name {
			c.Zones[i] = z
			return
		}
	}
	c.Zones = append(c.Zones, z)
}

// AddNPC inserts an NPC, replacing any existing NPC with the same name.
func (c *Campaign) AddNPC(n *NPC) {
	for i, existing := range c.NPCs {
		if existing.Name == n.Name {
			c.NPCs[i] = n
			return
		}
	}
	c.NPCs = append(c.NPCs, n)
}

// SetEncounterList inserts a zone encounter list, replacing any existing one.
func (c *Campaign) SetEncounterList(el *EncounterList) {
	for i, existing := range c.EncounterLists {
		if existing.Zone == el.Zone {
			c.EncounterLists[i] = el
			return
		}
	}
	c.EncounterLists = append(c.EncounterLists, el)
}

// AddFact appends a fact to today's fact sheet.
func (c *Campaign) AddFact(fact string) {
	c.DailyFacts = append(c.DailyFacts, fact)
}

// Log appends an entry to the adjudication log, stamping it with the
// current in-game date and session.
func (c *Campaign) Log(entry LogEntry) {
	entry.Date = c.InGameDate
	entry.Session = c.SessionID
	c.AdjudicationLog = append(c.AdjudicationLog, entry)
}

// ResetDay clears the fact sheet and every per-day guard: the clocks'
// once-per-day advance markers and the engines' run counters.
func (c *Campaign) ResetDay() {
	c.DailyFacts = nil
	for _, cl := range c.Clocks {
		cl.ResetDay()
	}
	for _, e := range c.Engines {
		e.ResetDay()
	}
}

// ResetSession clears the clocks' per-session advance markers.
func (c *Campaign) ResetSession() {
	for _, cl := range c.Clocks {
		cl.ResetSession()
	}
}

// ResetDayGuards clears the per-day guards without touching the fact
// sheet. Load paths use this: a restored save may represent a different
// day, so stale advance markers and run counters cannot be trusted.
func (c *Campaign) ResetDayGuards() {
	for _, cl := range c.Clocks {
		cl.AdvancedThisDay = false
	}
	for _, e := range c.Engines {
		e.RunsToday = 0
	}
}

// ActiveClocks returns the clocks currently in ClockActive status.
func (c *Campaign) ActiveClocks() []*Clock {
	var out []*Clock
	for _, cl := range c.Clocks {
		if cl.Status == ClockActive {
			out = append(out, cl)
		}
	}
	return out
}

// CadenceClocks returns the active clocks that tick on daily cadence.
func (c *Campaign) CadenceClocks() []*Clock {
	var out []*Clock
	for _, cl := range c.ActiveClocks() {
		if cl.IsCadence {
			out = append(out, cl)
		}
	}
	return out
}

// CadenceEngines returns the cadence engines eligible for the daily
// engine step. Dormant engines are included so their gates are
// re-checked each day; inert engines are not.
func (c *Campaign) CadenceEngines() []*Engine {
	var out []*Engine
	for _, e := range c.Engines {
		if e.Cadence && (e.Status == EngineActive || e.Status == EngineDormant) {
			out = append(out, e)
		}
	}
	return out
}

// NPCsInZone returns the active NPCs currently in the given zone.
func (c *Campaign) NPCsInZone(zone string) []*NPC {
	var out []*NPC
	for _, n := range c.NPCs {
		if n.Zone == zone && n.Status == "active" {
			out = append(out, n)
		}
	}
	return out
}

// CompanionsWithPC returns the companion NPCs traveling with the PC.
func (c *Campaign) CompanionsWithPC() []*NPC {
	var out []*NPC
	for _, n := range c.NPCs {
		if n.IsCompanion && n.WithPC {
			out = append(out, n)
		}
	}
	return out
}

// AdvanceDate moves the in-game date forward one day and refreshes the
// season and its pressure note. A season change establishes its fact
// before the date fact so that season-gated engines can see it.
func (c *Campaign) AdvanceDate() calendar.Change {
	change := calendar.AdvanceDate(calendar.Date{Day: c.DayOfMonth, Month: c.Month})

	c.DayOfMonth = change.New.Day
	c.Month = change.New.Month
	c.InGameDate = change.New.String()
	c.Season = change.NewSeason
	c.SeasonalPressure = change.Pressure

	if change.SeasonChanged {
		c.AddFact("Season changed: " + string(change.OldSeason) + " -> " + string(change.NewSeason))
	}
	c.AddFact("Date advanced to " + c.InGameDate)

	return change
}
