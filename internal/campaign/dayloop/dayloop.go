// Package dayloop orchestrates one Time & Pressure day: calendar
// advance, cadence engines, halt sweep, cadence clocks, clock audit,
// interaction rules, the encounter and NPC-agency gates, and the zone
// content-gap check, in that fixed order. Every step lands in the
// DayReport; nothing is silently dropped.
package dayloop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/logarium/macros-engine/internal/campaign/audit"
	"github.com/logarium/macros-engine/internal/campaign/calendar"
	"github.com/logarium/macros-engine/internal/campaign/creative"
	"github.com/logarium/macros-engine/internal/campaign/dice"
	"github.com/logarium/macros-engine/internal/campaign/rules"
	"github.com/logarium/macros-engine/internal/campaign/runner"
	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// HaltApplication is one halt finding applied to its clock.
type HaltApplication struct {
	Finding audit.HaltFinding `json:"finding"`
	Result  state.HaltResult  `json:"result"`
}

// CadenceResult records one cadence clock's daily handling: an advance,
// an audit-eligible pass, or a skip.
type CadenceResult struct {
	Clock   string               `json:"clock"`
	Action  string               `json:"action,omitempty"`
	Reason  string               `json:"reason,omitempty"`
	Advance *state.AdvanceResult `json:"advance,omitempty"`
}

// AuditApplication is one audit finding applied to its clock.
type AuditApplication struct {
	Finding audit.AutoAdvance    `json:"finding"`
	Advance *state.AdvanceResult `json:"advance,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// AuditStep is the clock audit outcome with its advances applied.
type AuditStep struct {
	Applied     []AuditApplication   `json:"auto_advanced,omitempty"`
	NeedsReview []audit.Review       `json:"needs_review,omitempty"`
	Skipped     []audit.SkippedClock `json:"skipped,omitempty"`
	NoMatch     []string             `json:"no_match,omitempty"`
}

// Reaction is a 2d6 reaction roll on first NPC contact.
type Reaction struct {
	Roll  dice.Result `json:"roll"`
	Total int         `json:"total"`
	Band  string      `json:"band"`
}

// Encounter is a resolved encounter-table entry, or the reason one
// could not be resolved.
type Encounter struct {
	Roll         *dice.Result   `json:"roll,omitempty"`
	RangeMatched string         `json:"range_matched,omitempty"`
	Prompt       string         `json:"prompt,omitempty"`
	UACue        bool           `json:"ua_cue,omitempty"`
	BXPlug       map[string]any `json:"bx_plug,omitempty"`
	Reaction     *Reaction      `json:"reaction,omitempty"`
	Note         string         `json:"note,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// GateStep is an intensity-gated event roll: the encounter gate or the
// NPC agency gate.
type GateStep struct {
	Gate      string         `json:"gate"`
	Roll      dice.Result    `json:"roll"`
	Intensity string         `json:"intensity"`
	Passed    bool           `json:"passed"`
	Note      string         `json:"note,omitempty"`
	Encounter *Encounter     `json:"encounter,omitempty"`
	NPCCount  *dice.NPCCount `json:"npc_count,omitempty"`
}

// GapStep lists the content gaps found in the PC's zone.
type GapStep struct {
	Gaps []string `json:"gaps"`
}

// Step is one recorded stage of the day. Exactly one of the payload
// fields is set, matching the step name.
type Step struct {
	Name         string            `json:"step"`
	Calendar     *calendar.Change  `json:"calendar,omitempty"`
	Engine       *runner.Report    `json:"engine,omitempty"`
	Halts        []HaltApplication `json:"halts,omitempty"`
	Cadence      []CadenceResult   `json:"cadence,omitempty"`
	Audit        *AuditStep        `json:"audit,omitempty"`
	Interactions *rules.Results    `json:"interactions,omitempty"`
	Gate         *GateStep         `json:"gate,omitempty"`
	ZoneGaps     *GapStep          `json:"zone_gaps,omitempty"`
}

// Report is the complete audit log of one simulated day.
type Report struct {
	DayNumber int                `json:"day_number,omitempty"`
	Date      string             `json:"date"`
	Steps     []Step             `json:"steps"`
	Requests  []creative.Request `json:"llm_requests,omitempty"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// Find returns the first step with the given name, or nil.
func (r *Report) Find(name string) *Step {
	for i := range r.Steps {
		if r.Steps[i].Name == name {
			return &r.Steps[i]
		}
	}
	return nil
}

// RunDay executes one complete Time & Pressure day against the
// campaign. skipZoneGap suppresses the content-gap check when arrival
// forging will cover it.
func RunDay(c *state.Campaign, roller *dice.Roller, skipZoneGap bool) *Report {
	c.ResetDay()

	report := &Report{}

	change := c.AdvanceDate()
	report.Date = c.InGameDate
	report.Steps = append(report.Steps, Step{Name: "date_advance", Calendar: &change})

	for _, e := range c.CadenceEngines() {
		r, err := runner.ForEngine(e.Name)
		if err != nil {
			report.Warnings = append(report.Warnings, err.Error())
			continue
		}
		engineReport := runEngine(c, e, r, roller)
		report.Steps = append(report.Steps, Step{Name: "engine:" + e.Name, Engine: &engineReport})
		report.Requests = append(report.Requests, engineReport.Requests...)
	}

	// Halt sweep comes before cadence ticking so a halt established
	// today vetoes today's tick.
	if findings := audit.EvaluateHalts(c); len(findings) != 0 {
		halts := make([]HaltApplication, 0, len(findings))
		for _, f := range findings {
			res := c.Clock(f.Clock).Halt(f.Reason())
			c.AddFact(f.Fact())
			halts = append(halts, HaltApplication{Finding: f, Result: res})
		}
		report.Steps = append(report.Steps, Step{Name: "halt_evaluation", Halts: halts})
	}

	if cadence := advanceCadenceClocks(c); len(cadence) != 0 {
		report.Steps = append(report.Steps, Step{Name: "cadence_clocks", Cadence: cadence})
	}

	auditStep := applyAudit(c)
	report.Steps = append(report.Steps, Step{Name: "clock_audit", Audit: auditStep})
	for _, review := range auditStep.NeedsReview {
		report.Requests = append(report.Requests, creative.Request{
			Type: creative.RawClockAuditReview,
			Context: map[string]any{
				"clock":             review.Clock,
				"progress":          review.Progress,
				"ambiguous_bullets": review.Bullets,
				"daily_facts":       review.DailyFacts,
			},
		})
	}

	// Interaction rules run strictly after the audit so audit advances
	// count toward thresholds the same day.
	if results := rules.Evaluate(c); !results.Empty() {
		report.Steps = append(report.Steps, Step{Name: "clock_interactions", Interactions: &results})
	}

	encounterStep, encounterReq := encounterGate(c, roller)
	report.Steps = append(report.Steps, Step{Name: "encounter_gate", Gate: encounterStep})
	if encounterReq != nil {
		report.Requests = append(report.Requests, *encounterReq)
	}

	runNonCadence(c, roller, report)

	npagStep, npagReq := npagGate(c, roller)
	report.Steps = append(report.Steps, Step{Name: "npag_gate", Gate: npagStep})
	if npagReq != nil {
		report.Requests = append(report.Requests, *npagReq)
	}

	if !skipZoneGap {
		if gaps, reqs := ZoneGapCheck(c); len(gaps) != 0 {
			report.Steps = append(report.Steps, Step{Name: "zone_gap_check", ZoneGaps: &GapStep{Gaps: gaps}})
			report.Requests = append(report.Requests, reqs...)
		}
	}

	c.Log(state.LogEntry{Type: "T&P_DAY", Payload: map[string]any{"summary": report}})

	return report
}

// RunDays runs the day loop for a span of days, numbering each report.
func RunDays(c *state.Campaign, roller *dice.Roller, days int, skipZoneGap bool) ([]*Report, error) {
	if c.PCZone == "" {
		return nil, apperrors.New(apperrors.CodeLoopZoneUnset,
			"PC_Zone is blank/unknown — STOP per T&P §1.3")
	}

	reports := make([]*Report, 0, days)
	for i := 0; i < days; i++ {
		report := RunDay(c, roller, skipZoneGap)
		report.DayNumber = i + 1
		reports = append(reports, report)
	}
	return reports, nil
}

func runEngine(c *state.Campaign, e *state.Engine, r runner.Runner, roller *dice.Roller) runner.Report {
	if err := r.CheckGates(c, e); err != nil {
		return runner.SkipReport(e, err)
	}
	return r.Run(c, e, roller)
}

// runNonCadence runs at most one eligible non-cadence engine: the first
// active one scoped to the PC's zone or Global.
func runNonCadence(c *state.Campaign, roller *dice.Roller, report *Report) {
	for _, e := range c.Engines {
		if e.Cadence || e.Status != state.EngineActive {
			continue
		}
		if e.ZoneScope != c.PCZone && e.ZoneScope != "Global" {
			continue
		}
		r, err := runner.ForEngine(e.Name)
		if err != nil {
			report.Warnings = append(report.Warnings, err.Error())
			return
		}
		engineReport := runEngine(c, e, r, roller)
		report.Steps = append(report.Steps, Step{Name: "non_cadence_pe:" + e.Name, Engine: &engineReport})
		report.Requests = append(report.Requests, engineReport.Requests...)
		return
	}
}

// advanceCadenceClocks ticks the active cadence clocks. A clock with no
// cadence bullet is only audit-eligible, never auto-ticked.
func advanceCadenceClocks(c *state.Campaign) []CadenceResult {
	var results []CadenceResult
	for _, clock := range c.CadenceClocks() {
		if clock.CadenceBullet == "" {
			results = append(results, CadenceResult{
				Clock:  clock.Name,
				Action: "cadence_eligible_for_audit",
				Reason: "Cadence PE active — clock eligible for audit, not auto-advanced (cadence_bullet is empty)",
			})
			continue
		}
		res, err := clock.Advance("Cadence: "+clock.CadenceBullet, c.InGameDate, c.SessionID)
		if err != nil {
			results = append(results, CadenceResult{
				Clock:  clock.Name,
				Action: "skipped",
				Reason: err.Error(),
			})
			continue
		}
		results = append(results, CadenceResult{Clock: clock.Name, Advance: &res})
		c.AddFact(fmt.Sprintf("Cadence clock %s advanced: %d/%d",
			clock.Name, res.New, clock.MaxProgress))
		if res.TriggerFired {
			c.AddFact(fmt.Sprintf("TRIGGER FIRED: %s — %s",
				clock.Name, clock.TriggerOnCompletion))
		}
	}
	return results
}

// applyAudit runs the pure clock audit and applies its auto-advances.
func applyAudit(c *state.Campaign) *AuditStep {
	found := audit.AuditClocks(c)
	step := &AuditStep{
		NeedsReview: found.NeedsReview,
		Skipped:     found.Skipped,
		NoMatch:     found.NoMatch,
	}
	for _, auto := range found.AutoAdvance {
		clock := c.Clock(auto.Clock)
		app := AuditApplication{Finding: auto}
		res, err := clock.Advance(auto.Reason(), c.InGameDate, c.SessionID)
		if err != nil {
			app.Error = err.Error()
		} else {
			app.Advance = &res
			c.AddFact(fmt.Sprintf("Clock audit advanced %s: %d/%d",
				clock.Name, res.New, clock.MaxProgress))
		}
		step.Applied = append(step.Applied, app)
	}
	return step
}

func intensityOrDefault(c *state.Campaign) string {
	if c.CampaignIntensity == "" {
		return "medium"
	}
	return c.CampaignIntensity
}

// encounterGate rolls 1d6 against campaign intensity and, on a pass,
// resolves the zone's encounter table. A BX-plug entry gets a 2d6
// reaction roll. Returns the step and the narration request, if any.
func encounterGate(c *state.Campaign, roller *dice.Roller) (*GateStep, *creative.Request) {
	roll := roller.D6("Encounter gate")
	intensity := intensityOrDefault(c)
	step := &GateStep{
		Gate:      "encounter",
		Roll:      roll,
		Intensity: intensity,
		Passed:    dice.GatePasses(intensity, roll.Total),
	}
	if !step.Passed {
		step.Note = fmt.Sprintf("Gate failed (rolled %d, intensity=%s)", roll.Total, intensity)
		return step, nil
	}

	el := c.EncounterListFor(c.PCZone)
	if el == nil {
		step.Encounter = &Encounter{Note: "No EL-DEF for zone " + c.PCZone}
		return step, nil
	}

	encounterRoll, err := roller.Roll(el.Randomizer, "Encounter table: "+el.Zone)
	if err != nil {
		step.Encounter = &Encounter{Error: err.Error()}
		return step, nil
	}

	var entry *state.EncounterEntry
	for i := range el.Entries {
		if matchesRange(encounterRoll.Total, el.Entries[i].Range) {
			entry = &el.Entries[i]
			break
		}
	}
	if entry == nil {
		step.Encounter = &Encounter{
			Roll:  &encounterRoll,
			Error: fmt.Sprintf("No entry for roll %d in %s table", encounterRoll.Total, el.Zone),
		}
		return step, nil
	}

	hasBX := len(entry.BXPlug) > 0
	step.Encounter = &Encounter{
		Roll:         &encounterRoll,
		RangeMatched: entry.Range,
		Prompt:       entry.Prompt,
		UACue:        entry.UACue,
		BXPlug:       entry.BXPlug,
	}

	var reaction *Reaction
	if hasBX {
		rr := roller.TwoD6("Reaction roll (BX-PLUG §2.1)")
		reaction = &Reaction{Roll: rr, Total: rr.Total, Band: reactionBand(rr.Total)}
		step.Encounter.Reaction = reaction
		c.AddFact(fmt.Sprintf("Reaction roll: 2d6=%d -> %s", rr.Total, reaction.Band))
	}

	context := fmt.Sprintf("Encounter in %s: %s", c.PCZone, entry.Prompt)
	req := &creative.Request{
		Type: creative.TypeNarrEncounter,
		Context: map[string]any{
			"context":        context,
			"bx_plug":        hasBX,
			"bx_plug_detail": entry.BXPlug,
			"reaction":       reaction,
			"ua_cue":         entry.UACue,
		},
	}
	c.AddFact(context)
	return step, req
}

// npagGate rolls 1d6 against campaign intensity and, on a pass, rolls
// how many NPCs act and requests their resolution.
func npagGate(c *state.Campaign, roller *dice.Roller) (*GateStep, *creative.Request) {
	roll := roller.D6("NPAG gate")
	intensity := intensityOrDefault(c)
	step := &GateStep{
		Gate:      "npag",
		Roll:      roll,
		Intensity: intensity,
		Passed:    dice.GatePasses(intensity, roll.Total),
	}
	if !step.Passed {
		step.Note = fmt.Sprintf("Gate failed (rolled %d, intensity=%s)", roll.Total, intensity)
		return step, nil
	}

	count := roller.NPCCountFor(intensity)
	step.NPCCount = &count
	req := &creative.Request{
		Type: creative.TypeNPAG,
		Context: map[string]any{
			"npc_count": count.Count,
			"context":   fmt.Sprintf("Resolve %d NPC agency actions", count.Count),
		},
	}
	c.AddFact(fmt.Sprintf("NPAG triggered: %d NPCs act", count.Count))
	return step, req
}

// ZoneGapCheck finds NPC and encounter-list deficits in the PC's zone
// and builds the forge requests to fill them. Shared with the game
// loop's arrival pass.
func ZoneGapCheck(c *state.Campaign) ([]string, []creative.Request) {
	if c.PCZone == "" {
		return nil, nil
	}

	var gaps []string
	var reqs []creative.Request

	active := c.NPCsInZone(c.PCZone)
	if len(active) <= 3 {
		deficit := 4 - len(active)
		if deficit < 1 {
			deficit = 1
		}
		factionHint := ""
		if zone := c.Zone(c.PCZone); zone != nil {
			factionHint = zone.ControllingFaction
		}
		for i := 0; i < deficit; i++ {
			reqs = append(reqs, creative.BuildNPCForge(c, c.PCZone, "", factionHint, 2))
		}
		gaps = append(gaps, fmt.Sprintf("NPC deficit: %d active, forging %d", len(active), deficit))
	}

	if c.EncounterListFor(c.PCZone) == nil {
		reqs = append(reqs, creative.BuildELForge(c, c.PCZone))
		gaps = append(gaps, "No EL-DEF for "+c.PCZone)
	}

	return gaps, reqs
}

func reactionBand(total int) string {
	switch {
	case total <= 2:
		return "hostile"
	case total <= 5:
		return "unfriendly"
	case total <= 8:
		return "neutral"
	case total <= 11:
		return "friendly"
	default:
		return "enthusiastic"
	}
}

// matchesRange reports whether a roll total falls in a table range like
// "3" or "1-2". Malformed ranges never match.
func matchesRange(total int, rangeStr string) bool {
	if lo, hi, ok := strings.Cut(rangeStr, "-"); ok {
		low, err1 := strconv.Atoi(strings.TrimSpace(lo))
		high, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil {
			return false
		}
		return low <= total && total <= high
	}
	n, err := strconv.Atoi(strings.TrimSpace(rangeStr))
	if err != nil {
		return false
	}
	return n == total
}
