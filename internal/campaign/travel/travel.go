// Package travel routes the PC between zones along crossing points. A
// crossing point's tag sets the cost: unmarked is one day, "slow" is
// two, and "eventful" is one day plus a forced encounter check.
package travel

import (
	"fmt"
	"strings"

	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// Option is one crossing point out of the PC's current zone, ready for
// presentation as a travel choice.
type Option struct {
	Destination string `json:"destination"`
	Name        string `json:"name"`
	Tag         string `json:"tag,omitempty"`
	TimeDays    int    `json:"time_days"`
	Label       string `json:"label"`
}

// Result records an executed zone transition.
type Result struct {
	OldZone      string `json:"old_zone"`
	NewZone      string `json:"new_zone"`
	CPName       string `json:"cp_name"`
	CPTag        string `json:"cp_tag,omitempty"`
	DaysTraveled int    `json:"days_traveled"`
	Eventful     bool   `json:"is_eventful"`
}

// Days converts a crossing point tag to travel days.
func Days(tag string) int {
	if tag == "slow" {
		return 2
	}
	return 1
}

// Options returns the crossing points out of the PC's current zone.
// Entries without a destination are dropped.
func Options(c *state.Campaign) []Option {
	zone := c.Zone(c.PCZone)
	if zone == nil {
		return nil
	}

	var opts []Option
	for _, cp := range zone.CrossingPoints {
		if cp.To == "" {
			continue
		}
		name := cp.Name
		if name == "" {
			name = cp.To
		}
		days := Days(cp.Tag)
		opts = append(opts, Option{
			Destination: cp.To,
			Name:        name,
			Tag:         cp.Tag,
			TimeDays:    days,
			Label:       label(name, cp.To, cp.Tag, days),
		})
	}
	return opts
}

func label(name, destination, tag string, days int) string {
	route := name + " -> " + destination
	switch tag {
	case "slow":
		return fmt.Sprintf("%s (%dd, slow)", route, days)
	case "eventful":
		return fmt.Sprintf("%s (%dd, eventful)", route, days)
	default:
		return fmt.Sprintf("%s (%dd)", route, days)
	}
}

// Validate checks that destination is reachable from the PC's current
// zone and returns the matching crossing point. Matching is
// case-insensitive.
func Validate(c *state.Campaign, destination string) (*state.CrossingPoint, error) {
	zone := c.Zone(c.PCZone)
	if zone == nil {
		return nil, apperrors.New(apperrors.CodeTravelZoneNotFound,
			fmt.Sprintf("Current zone '%s' not found in state", c.PCZone))
	}

	for i := range zone.CrossingPoints {
		if strings.EqualFold(zone.CrossingPoints[i].To, destination) {
			return &zone.CrossingPoints[i], nil
		}
	}

	available := make([]string, 0, len(zone.CrossingPoints))
	for _, cp := range zone.CrossingPoints {
		if cp.To == "" {
			available = append(available, "?")
			continue
		}
		available = append(available, cp.To)
	}
	return nil, apperrors.WithMetadata(apperrors.CodeTravelNoCrossingPoint,
		fmt.Sprintf("'%s' is not reachable from %s. Available: %s",
			destination, c.PCZone, strings.Join(available, ", ")),
		map[string]string{"destination": destination, "zone": c.PCZone})
}

// Execute moves the PC to destination, establishing the travel fact and
// the adjudication log entry. The destination is canonicalized to the
// crossing point's zone name. Running the travel days through the day
// loop is the caller's job.
func Execute(c *state.Campaign, destination string) (*Result, error) {
	cp, err := Validate(c, destination)
	if err != nil {
		return nil, err
	}

	oldZone := c.PCZone
	days := Days(cp.Tag)

	factName := cp.Name
	if factName == "" {
		factName = "?"
	}

	c.PCZone = cp.To
	c.AddFact(fmt.Sprintf("Traveled from %s to %s via %s", oldZone, cp.To, factName))
	c.Log(state.LogEntry{
		Type:   "TRAVEL",
		Detail: fmt.Sprintf("%s -> %s via %s (%dd)", oldZone, cp.To, factName, days),
		Payload: map[string]any{
			"old_zone": oldZone,
			"new_zone": cp.To,
			"cp_name":  cp.Name,
			"cp_tag":   cp.Tag,
			"days":     days,
		},
	})

	return &Result{
		OldZone:      oldZone,
		NewZone:      cp.To,
		CPName:       cp.Name,
		CPTag:        cp.Tag,
		DaysTraveled: days,
		Eventful:     cp.Tag == "eventful",
	}, nil
}
