// Package calendar implements the Nurrian calendar: fifteen ordered months
// (three of them intercalary), per-month day counts, and the season wheel
// with its seasonal pressure notes.
package calendar

import "fmt"

// Season names a quarter of the Nurrian year.
type Season string

const (
	SeasonWinter  Season = "Winter"
	SeasonSpring  Season = "Spring"
	SeasonSummer  Season = "Summer"
	SeasonAutumn  Season = "Autumn"
	SeasonUnknown Season = "Unknown"
)

// Months lists the Nurrian months in canonical order: twelve full months
// plus the intercalary Day of Awakening (1d), Day of the Moot (1d), and
// The Stand (7d).
var Months = []string{
	"Day of Awakening",
	"Demes", "Fasting", "Tryphor",
	"Day of the Moot",
	"Ilrym", "Evernew",
	"Jestrim",
	"The Stand",
	"Rannifer", "Reapmere",
	"Grismere", "Aphistri", "Frithium",
	"Revini",
}

var monthDays = map[string]int{
	"Day of Awakening": 1,
	"Demes":            30,
	"Fasting":          28,
	"Tryphor":          30,
	"Day of the Moot":  1,
	"Ilrym":            30,
	"Evernew":          31,
	"Jestrim":          23,
	"The Stand":        7,
	"Rannifer":         31,
	"Reapmere":         30,
	"Grismere":         30,
	"Aphistri":         31,
	"Frithium":         30,
	"Revini":           31,
}

var seasons = map[string]Season{
	"Day of Awakening": SeasonWinter,
	"Demes":            SeasonWinter,
	"Fasting":          SeasonWinter,
	"Tryphor":          SeasonSpring,
	"Day of the Moot":  SeasonSpring,
	"Ilrym":            SeasonSpring,
	"Evernew":          SeasonSpring,
	"Jestrim":          SeasonSummer,
	"The Stand":        SeasonSummer,
	"Rannifer":         SeasonSummer,
	"Reapmere":         SeasonSummer,
	"Grismere":         SeasonAutumn,
	"Aphistri":         SeasonAutumn,
	"Frithium":         SeasonAutumn,
	"Revini":           SeasonWinter,
}

var seasonalPressure = map[Season]string{
	SeasonSpring: "Feed & Seed — food stores depleted; planting season critical",
	SeasonSummer: "Raw Materials — construction, repairs, military production peak",
	SeasonAutumn: "Harvest — success/failure determines winter survival",
	SeasonWinter: "Firewood & Pitch — survival essentials; cold is lethal",
}

// Date is a day inside a Nurrian month.
type Date struct {
	Day   int
	Month string
}

// String renders the date the way session logs record it, e.g. "23 Ilrym".
func (d Date) String() string {
	return fmt.Sprintf("%d %s", d.Day, d.Month)
}

// DaysIn reports how many days the named month has. Unknown months report 31
// so a malformed date still rolls over instead of sticking forever.
func DaysIn(month string) int {
	if days, ok := monthDays[month]; ok {
		return days
	}
	return 31
}

// SeasonOf reports the season the named month belongs to.
func SeasonOf(month string) Season {
	if season, ok := seasons[month]; ok {
		return season
	}
	return SeasonUnknown
}

// Pressure reports the seasonal pressure note for a season. The note names
// the resource the settlements are squeezed on that quarter.
func Pressure(season Season) string {
	return seasonalPressure[season]
}

// Change describes one day of calendar movement.
type Change struct {
	Old           Date
	New           Date
	OldSeason     Season
	NewSeason     Season
	SeasonChanged bool
	Pressure      string
}

// AdvanceDate moves the date forward one day, rolling over month boundaries
// and wrapping the year after Revini. The returned Change carries the new
// season and its pressure note so the caller can record the transition.
func AdvanceDate(d Date) Change {
	change := Change{Old: d, OldSeason: SeasonOf(d.Month)}

	d.Day++
	if d.Day > DaysIn(d.Month) {
		d.Day = 1
		idx := 0
		for i, name := range Months {
			if name == d.Month {
				idx = i
				break
			}
		}
		d.Month = Months[(idx+1)%len(Months)]
	}

	change.New = d
	change.NewSeason = SeasonOf(d.Month)
	change.SeasonChanged = change.OldSeason != change.NewSeason
	change.Pressure = Pressure(change.NewSeason)
	return change
}
