package campaign

import (
	"encoding/json"

	"github.com/logarium/macros-engine/internal/campaign/creative"
	"github.com/logarium/macros-engine/internal/campaign/dayloop"
	"github.com/logarium/macros-engine/internal/campaign/event"
	"github.com/logarium/macros-engine/internal/campaign/runner"
	"github.com/logarium/macros-engine/internal/campaign/state"
)

// dayEvents translates one day report into journal entries, in the
// order the day produced them, closing with day.completed.
func dayEvents(c *state.Campaign, report *dayloop.Report) []event.Event {
	var events []event.Event
	add := func(typ event.Type, payload any) {
		events = append(events, event.Event{
			Type:        typ,
			SessionID:   c.SessionID,
			Day:         report.Date,
			PayloadJSON: payloadJSON(payload),
		})
	}

	season := string(c.Season)
	stepNames := make([]string, 0, len(report.Steps))
	for i := range report.Steps {
		step := &report.Steps[i]
		stepNames = append(stepNames, step.Name)
		switch {
		case step.Calendar != nil:
			season = string(step.Calendar.NewSeason)
		case step.Engine != nil:
			events = append(events, engineEvents(c, report.Date, step.Engine)...)
		case step.Halts != nil:
			for _, h := range step.Halts {
				add(event.TypeClockHalted, event.ClockHaltedPayload{
					Clock:     h.Finding.Clock,
					Condition: h.Finding.Condition,
					Ratio:     h.Finding.Ratio,
				})
			}
		case step.Cadence != nil:
			for _, res := range step.Cadence {
				if res.Advance == nil {
					continue
				}
				add(event.TypeClockAdvanced, advancePayload(res.Advance, true))
				if res.Advance.TriggerFired {
					add(event.TypeTriggerFired, triggerPayload(res.Advance))
				}
			}
		case step.Audit != nil:
			for _, applied := range step.Audit.Applied {
				if applied.Advance == nil {
					continue
				}
				add(event.TypeClockAdvanced, advancePayload(applied.Advance, false))
				if applied.Advance.TriggerFired {
					add(event.TypeTriggerFired, triggerPayload(applied.Advance))
				}
			}
		case step.Interactions != nil:
			for _, adv := range step.Interactions.Advances {
				res := adv.Result
				add(event.TypeClockAdvanced, advancePayload(&res, false))
				if res.TriggerFired {
					add(event.TypeTriggerFired, triggerPayload(&res))
				}
			}
			for _, spawn := range step.Interactions.Spawns {
				max := 0
				if cl := c.Clock(spawn.Clock); cl != nil {
					max = cl.MaxProgress
				}
				add(event.TypeClockSpawned, event.ClockSpawnedPayload{
					Clock: spawn.Clock,
					Max:   max,
					Rule:  spawn.Rule,
				})
			}
		}
	}

	add(event.TypeDayCompleted, event.DayCompletedPayload{
		Date:     report.Date,
		Zone:     c.PCZone,
		Season:   season,
		Steps:    stepNames,
		Requests: len(report.Requests),
		Warnings: report.Warnings,
	})
	return events
}

// runEvents flattens a multi-day run into one journal batch.
func runEvents(c *state.Campaign, reports []*dayloop.Report) []event.Event {
	var events []event.Event
	for _, report := range reports {
		events = append(events, dayEvents(c, report)...)
	}
	return events
}

func engineEvents(c *state.Campaign, date string, rep *runner.Report) []event.Event {
	var events []event.Event
	add := func(typ event.Type, payload any) {
		events = append(events, event.Event{
			Type:        typ,
			SessionID:   c.SessionID,
			Day:         date,
			PayloadJSON: payloadJSON(payload),
		})
	}

	for _, eff := range rep.ClockEffects {
		if eff.Advance != nil {
			add(event.TypeClockAdvanced, advancePayload(eff.Advance, false))
			if eff.Advance.TriggerFired {
				add(event.TypeTriggerFired, triggerPayload(eff.Advance))
			}
		}
		if eff.Reduce != nil {
			add(event.TypeClockAdvanced, event.ClockAdvancedPayload{
				Clock:  eff.Reduce.Clock,
				Action: eff.Reduce.Action,
				Old:    eff.Reduce.Old,
				New:    eff.Reduce.New,
				Reason: eff.Reduce.Reason,
			})
		}
	}
	if rep.ClockAdvance != nil {
		add(event.TypeClockAdvanced, advancePayload(rep.ClockAdvance, false))
		if rep.ClockAdvance.TriggerFired {
			add(event.TypeTriggerFired, triggerPayload(rep.ClockAdvance))
		}
	}
	return events
}

// creativeEvents journals one creative.applied entry per response in the
// apply log. The log carries a header entry per response followed by one
// entry per state change; successful changes are counted per response.
func creativeEvents(c *state.Campaign, entries []creative.ApplyEntry) []event.Event {
	kinds := make(map[string]string)
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		if _, seen := kinds[e.ID]; !seen {
			kinds[e.ID] = e.Type
			order = append(order, e.ID)
		}
		if e.Applied != "" && e.Error == "" {
			counts[e.ID]++
		}
	}

	var events []event.Event
	for _, id := range order {
		events = append(events, event.Event{
			Type:      event.TypeCreativeApplied,
			SessionID: c.SessionID,
			Day:       c.InGameDate,
			PayloadJSON: payloadJSON(event.CreativeAppliedPayload{
				RequestID:    id,
				Kind:         kinds[id],
				StateChanges: counts[id],
			}),
		})
	}
	return events
}

func advancePayload(res *state.AdvanceResult, cadence bool) event.ClockAdvancedPayload {
	return event.ClockAdvancedPayload{
		Clock:   res.Clock,
		Action:  res.Action,
		Old:     res.Old,
		New:     res.New,
		Max:     res.Max,
		Reason:  res.Reason,
		Cadence: cadence,
	}
}

func triggerPayload(res *state.AdvanceResult) event.TriggerFiredPayload {
	return event.TriggerFiredPayload{Clock: res.Clock, Trigger: res.TriggerText}
}

// payloadJSON marshals an event payload. The payload structs are plain
// data, so a marshal failure is not a reachable state.
func payloadJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
