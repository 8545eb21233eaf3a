// Package loop is the outer game loop: a phase machine that owns one
// campaign, runs Time & Pressure day spans, routes travel, and brokers
// the creative queue. The engine owns the game; the collaborator only
// supplies creative atoms through the queue.
package loop

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/logarium/macros-engine/internal/campaign/audit"
	"github.com/logarium/macros-engine/internal/campaign/creative"
	"github.com/logarium/macros-engine/internal/campaign/dayloop"
	"github.com/logarium/macros-engine/internal/campaign/dice"
	"github.com/logarium/macros-engine/internal/campaign/state"
	"github.com/logarium/macros-engine/internal/campaign/travel"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// Phase is the loop's current state.
type Phase string

const (
	// PhaseIdle means the PC is parked in a zone awaiting input.
	PhaseIdle Phase = "idle"
	// PhaseTravel means a crossing is being validated and executed.
	PhaseTravel Phase = "travel"
	// PhaseTimePressure means the day loop is running a span of days.
	PhaseTimePressure Phase = "time_pressure"
	// PhaseAwaitCreative means requests are queued and unanswered.
	PhaseAwaitCreative Phase = "await_creative"
)

// Loop drives one campaign through its phases. A single loop instance
// is the only writer of its campaign; persistence happens between
// operations, never mid-day.
type Loop struct {
	Campaign *state.Campaign
	Phase    Phase
	Queue    creative.Queue

	// AwaitingSummaryFor holds the session id whose closing summary is
	// still outstanding, zero otherwise.
	AwaitingSummaryFor int

	roller *dice.Roller
}

// New wraps a campaign in an idle loop.
func New(c *state.Campaign, roller *dice.Roller) *Loop {
	return &Loop{Campaign: c, Phase: PhaseIdle, roller: roller}
}

type persisted struct {
	Campaign           *state.Campaign `json:"campaign"`
	Phase              Phase           `json:"phase"`
	Queue              creative.Queue  `json:"queue"`
	AwaitingSummaryFor int             `json:"awaiting_summary_for,omitempty"`
}

// Marshal serializes the loop (campaign, phase, queue) as one snapshot
// payload so a later invocation resumes exactly where this one stopped.
func (l *Loop) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(persisted{
		Campaign:           l.Campaign,
		Phase:              l.Phase,
		Queue:              l.Queue,
		AwaitingSummaryFor: l.AwaitingSummaryFor,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal loop state: %w", err)
	}
	return data, nil
}

// Resume restores a loop from its snapshot payload. Day-scoped guards
// are cleared the same way a bare campaign load clears them.
func Resume(data []byte, roller *dice.Roller) (*Loop, error) {
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal loop state: %w", err)
	}
	if p.Campaign == nil {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "loop snapshot has no campaign")
	}
	p.Campaign.ResetDayGuards()
	if p.Phase == "" {
		p.Phase = PhaseIdle
	}
	return &Loop{
		Campaign:           p.Campaign,
		Phase:              p.Phase,
		Queue:              p.Queue,
		AwaitingSummaryFor: p.AwaitingSummaryFor,
		roller:             roller,
	}, nil
}

// SaveName is the canonical snapshot name for the current state:
// "Session NN - <date> - <zone>". Path separators in free-text fields
// are flattened so the name stays filesystem-safe.
func (l *Loop) SaveName() string {
	c := l.Campaign
	date := c.InGameDate
	if date == "" {
		date = "unknown"
	}
	zone := c.PCZone
	if zone == "" {
		zone = "unknown"
	}
	return fmt.Sprintf("Session %02d - %s - %s", c.SessionID, sanitize(date), sanitize(zone))
}

func sanitize(s string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", ":", "-")
	return r.Replace(s)
}

// RunResult summarizes a completed RestDays span.
type RunResult struct {
	DaysRun         int               `json:"days_run"`
	Reports         []*dayloop.Report `json:"reports"`
	CreativePending int               `json:"creative_pending"`
}

// RestDays runs the day loop for a span of voluntary rest days. The
// span's day-report requests are converted to typed creative requests
// and a time-passage narration request always closes the batch, so the
// loop ends in PhaseAwaitCreative. skipZoneGap suppresses the daily
// content-gap check for spans the caller will forge for separately.
func (l *Loop) RestDays(days int, skipZoneGap bool) (*RunResult, error) {
	if l.Phase != PhaseIdle {
		return nil, apperrors.WithMetadata(apperrors.CodeLoopBusy,
			fmt.Sprintf("Cannot rest during %s phase", l.Phase),
			map[string]string{"phase": string(l.Phase)})
	}
	if days < 1 || days > 30 {
		return nil, apperrors.WithMetadata(apperrors.CodeLoopDaysOutOfRange,
			"Days must be 1-30",
			map[string]string{"days": strconv.Itoa(days)})
	}

	l.Phase = PhaseTimePressure
	reports, err := dayloop.RunDays(l.Campaign, l.roller, days, skipZoneGap)
	if err != nil {
		l.Phase = PhaseIdle
		return nil, err
	}

	requests := l.convertReportRequests(reports)
	requests = append(requests, creative.BuildNarrTimePassage(l.Campaign, days, summarizePeriod(reports)))

	l.Campaign.Log(state.LogEntry{
		Type:   "REST",
		Detail: fmt.Sprintf("Rested %d day(s) in %s", days, l.Campaign.PCZone),
	})

	l.Queue.Clear()
	l.Queue.EnqueueMany(requests)
	l.Phase = PhaseAwaitCreative

	return &RunResult{
		DaysRun:         days,
		Reports:         reports,
		CreativePending: l.Queue.PendingCount(),
	}, nil
}

// TravelResult summarizes a completed travel cycle.
type TravelResult struct {
	Travel          *travel.Result    `json:"travel"`
	Reports         []*dayloop.Report `json:"reports"`
	Gaps            []string          `json:"gaps,omitempty"`
	CreativePending int               `json:"creative_pending"`
}

// TravelTo executes the full travel cycle: validate and cross, run the
// day loop for each travel day (zone-gap checks deferred), then check
// the arrival zone for content gaps and always request arrival
// narration. Forge requests queue ahead of narration so their state
// changes land first.
func (l *Loop) TravelTo(destination string) (*TravelResult, error) {
	if l.Phase != PhaseIdle {
		return nil, apperrors.WithMetadata(apperrors.CodeLoopBusy,
			fmt.Sprintf("Cannot travel during %s phase", l.Phase),
			map[string]string{"phase": string(l.Phase)})
	}
	if l.Campaign.PCZone == "" {
		return nil, apperrors.New(apperrors.CodeLoopZoneUnset, "PC zone is not set")
	}

	l.Phase = PhaseTravel
	res, err := travel.Execute(l.Campaign, destination)
	if err != nil {
		l.Phase = PhaseIdle
		return nil, err
	}

	l.Phase = PhaseTimePressure
	reports, err := dayloop.RunDays(l.Campaign, l.roller, res.DaysTraveled, true)
	if err != nil {
		l.Phase = PhaseIdle
		return nil, err
	}

	gaps, forgeReqs := dayloop.ZoneGapCheck(l.Campaign)
	for _, gap := range gaps {
		l.Campaign.Log(state.LogEntry{
			Type:   "ZONE_FORGE",
			Detail: fmt.Sprintf("Gap in %s: %s", l.Campaign.PCZone, gap),
		})
	}

	requests := l.convertReportRequests(reports)
	requests = append(requests, creative.BuildNarrArrival(l.Campaign, &creative.Journey{
		FromZone:      res.OldZone,
		CrossingPoint: res.CPName,
		Tag:           res.CPTag,
		Days:          res.DaysTraveled,
		Eventful:      res.Eventful,
	}))

	l.Queue.Clear()
	l.Queue.EnqueueMany(append(forgeReqs, requests...))
	l.Phase = PhaseAwaitCreative

	return &TravelResult{
		Travel:          res,
		Reports:         reports,
		Gaps:            gaps,
		CreativePending: l.Queue.PendingCount(),
	}, nil
}

// Narration is one piece of display text extracted from a response.
type Narration struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SubmitResult summarizes an applied response batch.
type SubmitResult struct {
	ResponsesApplied int                   `json:"responses_applied"`
	Entries          []creative.ApplyEntry `json:"log_entries"`
	Narration        []Narration           `json:"narration,omitempty"`
	Phase            Phase                 `json:"phase"`
}

// SubmitResponses accepts the collaborator's batch, applies its state
// changes through the guarded clock operations, stores any session
// summary, and returns to PhaseIdle once the queue drains.
func (l *Loop) SubmitResponses(text string) (*SubmitResult, error) {
	if l.Phase != PhaseAwaitCreative {
		return nil, apperrors.WithMetadata(apperrors.CodeLoopBusy,
			fmt.Sprintf("Not awaiting creative content (phase: %s)", l.Phase),
			map[string]string{"phase": string(l.Phase)})
	}

	responses, err := l.Queue.SubmitResponses(text)
	if err != nil {
		return nil, err
	}

	entries := l.Queue.Apply(l.Campaign)

	var narration []Narration
	for i := range responses {
		resp := &responses[i]
		if resp.Type == creative.TypeSessionSummary {
			if resp.Content != "" && l.AwaitingSummaryFor != 0 {
				if l.Campaign.SessionSummaries == nil {
					l.Campaign.SessionSummaries = map[string]string{}
				}
				sid := strconv.Itoa(l.AwaitingSummaryFor)
				l.Campaign.SessionSummaries[sid] = resp.Content
				l.Campaign.Log(state.LogEntry{
					Type:   "SESSION",
					Detail: fmt.Sprintf("Session %s summary stored (%d chars)", sid, len(resp.Content)),
				})
				l.AwaitingSummaryFor = 0
			}
			continue
		}
		if resp.Content != "" {
			narration = append(narration, Narration{Type: resp.Type, Text: resp.Content})
		}
	}

	l.Queue.ClearPending()
	l.Phase = PhaseIdle

	return &SubmitResult{
		ResponsesApplied: len(responses),
		Entries:          entries,
		Narration:        narration,
		Phase:            l.Phase,
	}, nil
}

// EndResult summarizes a session close.
type EndResult struct {
	EndedSession int `json:"ended_session"`
	NextSession  int `json:"next_session"`
	Pending      int `json:"creative_pending"`
}

// EndSession closes the current session: log the closing entry, queue
// the summary request, then roll the session counter and clear session
// guards so the next operation already runs under the new session.
func (l *Loop) EndSession() (*EndResult, error) {
	if l.Phase != PhaseIdle {
		return nil, apperrors.WithMetadata(apperrors.CodeLoopBusy,
			fmt.Sprintf("Cannot end session in phase: %s", l.Phase),
			map[string]string{"phase": string(l.Phase)})
	}

	sid := l.Campaign.SessionID
	l.Campaign.Log(state.LogEntry{
		Type:   "SESSION",
		Detail: fmt.Sprintf("=== SESSION %d ENDED ===", sid),
	})

	req := creative.BuildSessionSummary(l.Campaign)
	l.Queue.Clear()
	l.Queue.Enqueue(req)
	l.AwaitingSummaryFor = sid

	l.Campaign.SessionID++
	l.Campaign.ResetSession()
	l.Queue.CallCount = 0
	l.Phase = PhaseAwaitCreative

	return &EndResult{
		EndedSession: sid,
		NextSession:  l.Campaign.SessionID,
		Pending:      l.Queue.PendingCount(),
	}, nil
}

// ClockLine is one clock in the status report.
type ClockLine struct {
	Name     string `json:"name"`
	Progress string `json:"progress"`
	Status   string `json:"status"`
	Cadence  bool   `json:"cadence,omitempty"`
}

// Status is the loop's presentable state: where the PC is, what the
// clocks look like, and which crossings are available.
type Status struct {
	Phase            Phase           `json:"phase"`
	SessionID        int             `json:"session_id"`
	Date             string          `json:"date"`
	Zone             string          `json:"zone"`
	Season           string          `json:"season"`
	SeasonalPressure string          `json:"seasonal_pressure,omitempty"`
	ActiveClocks     []ClockLine     `json:"active_clocks"`
	TravelOptions    []travel.Option `json:"travel_options,omitempty"`
	CreativePending  int             `json:"creative_pending"`
	PendingTypes     []string        `json:"pending_types,omitempty"`
}

// CurrentStatus assembles the status report for display.
func (l *Loop) CurrentStatus() Status {
	c := l.Campaign
	var clocks []ClockLine
	for _, cl := range c.ActiveClocks() {
		clocks = append(clocks, ClockLine{
			Name:     cl.Name,
			Progress: fmt.Sprintf("%d/%d", cl.Progress, cl.MaxProgress),
			Status:   string(cl.Status),
			Cadence:  cl.IsCadence,
		})
	}
	return Status{
		Phase:            l.Phase,
		SessionID:        c.SessionID,
		Date:             c.InGameDate,
		Zone:             c.PCZone,
		Season:           string(c.Season),
		SeasonalPressure: c.SeasonalPressure,
		ActiveClocks:     clocks,
		TravelOptions:    travel.Options(c),
		CreativePending:  l.Queue.PendingCount(),
		PendingTypes:     l.Queue.PendingTypes(),
	}
}

// convertReportRequests turns the raw requests collected across a day
// span into fully built creative requests. Raw kinds the loop does not
// recognize are dropped; already-typed forge requests pass through.
func (l *Loop) convertReportRequests(reports []*dayloop.Report) []creative.Request {
	var out []creative.Request
	for _, report := range reports {
		for _, raw := range report.Requests {
			if req := l.convert(raw); req != nil {
				out = append(out, *req)
			}
		}
	}
	return out
}

func (l *Loop) convert(raw creative.Request) *creative.Request {
	switch raw.Type {
	case creative.RawClockAuditReview:
		clock, _ := raw.Context["clock"].(string)
		progress, _ := raw.Context["progress"].(string)
		bullets, _ := raw.Context["ambiguous_bullets"].([]audit.BulletMatch)
		facts, _ := raw.Context["daily_facts"].([]string)
		req := creative.BuildClockAudit(clock, progress, bullets, facts)
		return &req

	case creative.TypeNPAG:
		count, _ := raw.Context["npc_count"].(int)
		req := creative.BuildNPAG(l.Campaign, count)
		return &req

	case creative.TypeNarrEncounter:
		enc := creative.EncounterContext{}
		enc.Description, _ = raw.Context["context"].(string)
		enc.HasBXPlug, _ = raw.Context["bx_plug"].(bool)
		enc.StatBlock, _ = raw.Context["bx_plug_detail"].(map[string]any)
		enc.UACue, _ = raw.Context["ua_cue"].(bool)
		req := creative.BuildNarrEncounter(l.Campaign, enc)
		return &req

	case creative.RawCanForgeAuto:
		req := creative.BuildUAForge(l.Campaign, l.Campaign.PCZone,
			"VP roll 12 — automatic UA threat")
		return &req

	case creative.TypeNPCForge, creative.TypeELForge, creative.TypeUAForge:
		return &raw
	}
	return nil
}

// summarizePeriod condenses a day span for time-passage narration.
func summarizePeriod(reports []*dayloop.Report) creative.PeriodSummary {
	period := creative.PeriodSummary{}
	if len(reports) != 0 {
		period.StartDate = reports[0].Date
		period.EndDate = reports[len(reports)-1].Date
	}
	for _, report := range reports {
		if step := report.Find("encounter_gate"); step != nil && step.Gate != nil {
			if e := step.Gate.Encounter; e != nil && e.Prompt != "" {
				period.Encounters = append(period.Encounters, e.Prompt)
			}
		}
		if step := report.Find("npag_gate"); step != nil && step.Gate != nil && step.Gate.NPCCount != nil {
			period.NPAGCounts = append(period.NPAGCounts, step.Gate.NPCCount.Count)
		}
		if step := report.Find("cadence_clocks"); step != nil {
			for _, cr := range step.Cadence {
				if cr.Advance != nil {
					period.ClockChanges = append(period.ClockChanges,
						fmt.Sprintf("%s: %d->%d", cr.Clock, cr.Advance.Old, cr.Advance.New))
				}
			}
		}
		if step := report.Find("clock_audit"); step != nil && step.Audit != nil {
			for _, app := range step.Audit.Applied {
				if app.Advance != nil {
					period.ClockChanges = append(period.ClockChanges,
						fmt.Sprintf("%s: %d->%d", app.Advance.Clock, app.Advance.Old, app.Advance.New))
				}
			}
		}
	}
	return period
}
