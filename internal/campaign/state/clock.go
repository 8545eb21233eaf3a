package state

import (
	"fmt"

	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// ClockStatus describes the lifecycle stage of a clock.
type ClockStatus string

const (
	// ClockActive indicates a clock that accumulates progress normally.
	ClockActive ClockStatus = "active"
	// ClockHalted indicates a clock frozen by a halt condition.
	ClockHalted ClockStatus = "halted"
	// ClockRetired indicates a clock removed from play without firing.
	ClockRetired ClockStatus = "retired"
	// ClockTriggerFired indicates a clock that reached max progress.
	ClockTriggerFired ClockStatus = "trigger_fired"
)

// ErrClockCannotAdvance indicates an advance attempt on a clock whose
// status, progress, or daily guard forbids it.
var ErrClockCannotAdvance = apperrors.New(apperrors.CodeClockCannotAdvance, "clock cannot advance")

// Clock is a progress track owned by a faction, NPC, or the environment.
// It advances at most once per in-game day and fires its trigger when
// progress reaches the maximum.
type Clock struct {
	Name        string      `json:"name"`
	Owner       string      `json:"owner"`
	Progress    int         `json:"progress"`
	MaxProgress int         `json:"max_progress"`
	Status      ClockStatus `json:"status"`

	AdvanceBullets      []string `json:"advance_bullets,omitempty"`
	HaltConditions      []string `json:"halt_conditions,omitempty"`
	ReduceConditions    []string `json:"reduce_conditions,omitempty"`
	TriggerOnCompletion string   `json:"trigger_on_completion,omitempty"`

	AdvancedThisSession bool   `json:"advanced_this_session"`
	AdvancedThisDay     bool   `json:"advanced_this_day"`
	TriggerFired        bool   `json:"trigger_fired"`
	TriggerFiredText    string `json:"trigger_fired_text,omitempty"`

	Visibility          string `json:"visibility,omitempty"`
	Notes               string `json:"notes,omitempty"`
	CreatedSession      int    `json:"created_session"`
	LastAdvancedSession int    `json:"last_advanced_session"`
	LastAdvancedDate    string `json:"last_advanced_date,omitempty"`

	IsCadence     bool   `json:"is_cadence"`
	CadenceBullet string `json:"cadence_bullet,omitempty"`
}

// AdvanceResult records a single advance tick on a clock.
type AdvanceResult struct {
	Clock        string `json:"clock"`
	Action       string `json:"action"`
	Old          int    `json:"old"`
	New          int    `json:"new"`
	Max          int    `json:"max"`
	Reason       string `json:"reason"`
	Date         string `json:"date"`
	TriggerFired bool   `json:"trigger_fired,omitempty"`
	TriggerText  string `json:"trigger_text,omitempty"`
}

// ReduceResult records a reduction of clock progress.
type ReduceResult struct {
	Clock  string `json:"clock"`
	Action string `json:"action"`
	Old    int    `json:"old"`
	New    int    `json:"new"`
	Reason string `json:"reason"`
}

// HaltResult records a clock being frozen by a halt condition.
type HaltResult struct {
	Clock     string      `json:"clock"`
	Action    string      `json:"action"`
	OldStatus ClockStatus `json:"old_status"`
	Reason    string      `json:"reason"`
}

// CanAdvance reports whether the clock may take an advance tick today.
func (c *Clock) CanAdvance() bool {
	switch c.Status {
	case ClockRetired, ClockTriggerFired, ClockHalted:
		return false
	}
	if c.Progress >= c.MaxProgress {
		return false
	}
	if c.AdvancedThisDay {
		return false
	}
	return true
}

// Advance ticks the clock forward by one segment, stamping the reason,
// date, and session. Reaching max progress fires the completion trigger
// and moves the clock to ClockTriggerFired.
func (c *Clock) Advance(reason, date string, session int) (AdvanceResult, error) {
	if !c.CanAdvance() {
		return AdvanceResult{}, apperrors.WrapWithMetadata(
			apperrors.CodeClockCannotAdvance,
			fmt.Sprintf("cannot advance %s: status=%s, progress=%d/%d, advanced_today=%t",
				c.Name, c.Status, c.Progress, c.MaxProgress, c.AdvancedThisDay),
			map[string]string{
				"clock":    c.Name,
				"status":   string(c.Status),
				"progress": fmt.Sprintf("%d/%d", c.Progress, c.MaxProgress),
			},
			ErrClockCannotAdvance,
		)
	}

	old := c.Progress
	c.Progress++
	c.AdvancedThisDay = true
	c.AdvancedThisSession = true
	c.LastAdvancedSession = session
	c.LastAdvancedDate = date

	result := AdvanceResult{
		Clock:  c.Name,
		Action: "advance",
		Old:    old,
		New:    c.Progress,
		Max:    c.MaxProgress,
		Reason: reason,
		Date:   date,
	}

	if c.Progress >= c.MaxProgress {
		c.TriggerFired = true
		c.TriggerFiredText = c.TriggerOnCompletion
		c.Status = ClockTriggerFired
		result.TriggerFired = true
		result.TriggerText = c.TriggerOnCompletion
	}

	return result, nil
}

// Reduce lowers progress by amount, flooring at zero. Reductions are
// always legal, regardless of status or the daily advance guard.
func (c *Clock) Reduce(reason string, amount int) ReduceResult {
	old := c.Progress
	c.Progress -= amount
	if c.Progress < 0 {
		c.Progress = 0
	}
	return ReduceResult{
		Clock:  c.Name,
		Action: "reduce",
		Old:    old,
		New:    c.Progress,
		Reason: reason,
	}
}

// Halt freezes the clock, recording the status it held before.
func (c *Clock) Halt(reason string) HaltResult {
	old := c.Status
	c.Status = ClockHalted
	return HaltResult{
		Clock:     c.Name,
		Action:    "halt",
		OldStatus: old,
		Reason:    reason,
	}
}

// ResetDay clears the once-per-day advance guard.
func (c *Clock) ResetDay() {
	c.AdvancedThisDay = false
}

// ResetSession clears the per-session advance marker.
func (c *Clock) ResetSession() {
	c.AdvancedThisSession = false
}
