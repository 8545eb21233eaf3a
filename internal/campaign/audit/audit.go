// Package audit implements the deterministic keyword matcher behind the
// daily clock audit and the halt-condition sweep. The matcher is pure:
// it reads clocks, zones, and today's facts and reports findings; the
// day loop applies the resulting mutations.
package audit

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/logarium/macros-engine/internal/campaign/state"
)

// Thresholds for keyword-ratio classification. A bullet at or above the
// auto threshold advances without review; between ambiguous and auto it
// goes to creative review; below ambiguous it is ignored.
const (
	AutoThreshold      = 0.8
	AmbiguousThreshold = 0.4
	HaltThreshold      = 0.6
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"has": {}, "have": {}, "or": {}, "and": {}, "in": {}, "of": {}, "to": {},
	"for": {}, "with": {}, "that": {}, "this": {}, "day": {}, "passes": {},
	"while": {}, "when": {}, "if": {}, "not": {}, "no": {}, "any": {},
}

// Confidence classifies how strongly a bullet matched today's facts.
type Confidence string

const (
	// ConfidenceAuto marks a match strong enough to advance without review.
	ConfidenceAuto Confidence = "auto"
	// ConfidenceAmbiguous marks a partial match that needs adjudication.
	ConfidenceAmbiguous Confidence = "ambiguous"
)

// BulletMatch is one advance bullet scored against today's facts.
type BulletMatch struct {
	Bullet       string     `json:"bullet"`
	Confidence   Confidence `json:"confidence"`
	KeywordRatio float64    `json:"keyword_ratio"`
}

// AutoAdvance names a clock the audit found unambiguously satisfied.
type AutoAdvance struct {
	Clock  string  `json:"clock"`
	Bullet string  `json:"bullet"`
	Ratio  float64 `json:"ratio"`
}

// Reason renders the advance reason recorded on the clock.
func (a AutoAdvance) Reason() string {
	return fmt.Sprintf("Clock audit: ADV bullet '%s' satisfied (auto, confidence=%.0f%%)",
		a.Bullet, a.Ratio*100)
}

// Review asks the creative actor to adjudicate ambiguous bullets.
type Review struct {
	Clock      string        `json:"clock"`
	Progress   string        `json:"progress"`
	Bullets    []BulletMatch `json:"ambiguous_bullets"`
	DailyFacts []string      `json:"daily_facts"`
}

// SkippedClock records a clock the audit could not consider.
type SkippedClock struct {
	Clock  string `json:"clock"`
	Reason string `json:"reason"`
}

// Report is the outcome of one day's clock audit.
type Report struct {
	AutoAdvance []AutoAdvance  `json:"auto_advanced,omitempty"`
	NeedsReview []Review       `json:"needs_review,omitempty"`
	Skipped     []SkippedClock `json:"skipped,omitempty"`
	NoMatch     []string       `json:"no_match,omitempty"`
}

// keywords returns the significant lowercase words of a phrase.
func keywords(phrase string) map[string]struct{} {
	words := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(phrase)) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

// factWords returns the whole-word set of today's facts.
func factWords(facts []string) map[string]struct{} {
	joined := strings.ToLower(strings.Join(facts, " | "))
	words := map[string]struct{}{}
	for _, w := range strings.Fields(joined) {
		words[w] = struct{}{}
	}
	return words
}

// matchRatio reports the fraction of condition keywords present in the
// fact word set.
func matchRatio(condition map[string]struct{}, facts map[string]struct{}) float64 {
	if len(condition) == 0 {
		return 0
	}
	hits := 0
	for w := range condition {
		if _, ok := facts[w]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(condition))
}

// LocalZones returns the lowercased names of the PC's zone and every
// zone one crossing point away.
func LocalZones(c *state.Campaign) map[string]struct{} {
	local := map[string]struct{}{strings.ToLower(c.PCZone): {}}
	if zone := c.Zone(c.PCZone); zone != nil {
		for _, cp := range zone.CrossingPoints {
			if cp.To != "" {
				local[strings.ToLower(cp.To)] = struct{}{}
			}
		}
	}
	return local
}

type zonePattern struct {
	name string
	re   *regexp.Regexp
}

// zonePatterns compiles word-boundary matchers for every zone name,
// longest first so "Eastern Scarps" matches before "Scarps".
func zonePatterns(c *state.Campaign) []zonePattern {
	names := make([]string, 0, len(c.Zones))
	for _, z := range c.Zones {
		names = append(names, strings.ToLower(z.Name))
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	patterns := make([]zonePattern, 0, len(names))
	for _, name := range names {
		patterns = append(patterns, zonePattern{
			name: name,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}
	return patterns
}

// remoteZoneRef reports the first zone name a bullet mentions when that
// zone is not local. A bullet naming a local zone, or no zone at all,
// returns "".
func remoteZoneRef(bulletLower string, patterns []zonePattern, local map[string]struct{}) string {
	for _, p := range patterns {
		if p.re.MatchString(bulletLower) {
			if _, ok := local[p.name]; ok {
				return ""
			}
			return p.name
		}
	}
	return ""
}

// AuditClocks scans every clock's advance bullets against today's
// facts. Bullets that name a zone the PC is not in or adjacent to are
// filtered out before scoring. The report lists clocks to advance,
// clocks needing creative review, and clocks that could not tick.
func AuditClocks(c *state.Campaign) Report {
	var report Report

	facts := factWords(c.DailyFacts)
	local := LocalZones(c)
	patterns := zonePatterns(c)

	for _, clock := range c.Clocks {
		if !clock.CanAdvance() {
			report.Skipped = append(report.Skipped, SkippedClock{
				Clock: clock.Name,
				Reason: fmt.Sprintf("status=%s, advanced_today=%t, progress=%d/%d",
					clock.Status, clock.AdvancedThisDay, clock.Progress, clock.MaxProgress),
			})
			continue
		}

		var matched, ambiguous []BulletMatch
		for _, bullet := range clock.AdvanceBullets {
			bulletLower := strings.ToLower(bullet)
			if remoteZoneRef(bulletLower, patterns, local) != "" {
				continue
			}

			words := keywords(bulletLower)
			if len(words) < 2 {
				// A single significant keyword is never enough to
				// auto-advance; hand it to review if present at all.
				if len(words) == 1 {
					ambiguous = append(ambiguous, BulletMatch{
						Bullet:     bullet,
						Confidence: ConfidenceAmbiguous,
					})
				}
				continue
			}

			ratio := matchRatio(words, facts)
			switch {
			case ratio >= AutoThreshold:
				matched = append(matched, BulletMatch{
					Bullet:       bullet,
					Confidence:   ConfidenceAuto,
					KeywordRatio: ratio,
				})
			case ratio >= AmbiguousThreshold:
				ambiguous = append(ambiguous, BulletMatch{
					Bullet:       bullet,
					Confidence:   ConfidenceAmbiguous,
					KeywordRatio: ratio,
				})
			}
		}

		switch {
		case len(matched) > 0:
			best := matched[0]
			report.AutoAdvance = append(report.AutoAdvance, AutoAdvance{
				Clock:  clock.Name,
				Bullet: best.Bullet,
				Ratio:  best.KeywordRatio,
			})
		case len(ambiguous) > 0:
			report.NeedsReview = append(report.NeedsReview, Review{
				Clock:      clock.Name,
				Progress:   fmt.Sprintf("%d/%d", clock.Progress, clock.MaxProgress),
				Bullets:    ambiguous,
				DailyFacts: append([]string(nil), c.DailyFacts...),
			})
		default:
			report.NoMatch = append(report.NoMatch, clock.Name)
		}
	}

	return report
}
