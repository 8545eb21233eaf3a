package state

// CrossingPoint is a named route out of a zone. An empty tag means one
// day of standard travel, "slow" means two days, and "eventful" means
// one day plus a forced encounter check on arrival.
type CrossingPoint struct {
	To   string `json:"to"`
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

// Zone is a region of the campaign map.
type Zone struct {
	Name               string          `json:"name"`
	Intensity          string          `json:"intensity"`
	ControllingFaction string          `json:"controlling_faction,omitempty"`
	CrossingPoints     []CrossingPoint `json:"crossing_points,omitempty"`
}

// EncounterEntry is a single row in a zone encounter table. BXPlug holds
// the optional combat hook (type, skill, save_damage, hostile_action,
// stats) and is passed through to narration untouched.
type EncounterEntry struct {
	Range  string         `json:"range"`
	Prompt string         `json:"prompt"`
	UACue  bool           `json:"ua_cue"`
	BXPlug map[string]any `json:"bx_plug,omitempty"`
}

// EncounterList is a zone's encounter table with its randomizer die.
type EncounterList struct {
	Zone             string           `json:"zone"`
	Randomizer       string           `json:"randomizer"`
	FallbackPriority int              `json:"fallback_priority"`
	AdjacencyNotes   string           `json:"adjacency_notes,omitempty"`
	Entries          []EncounterEntry `json:"entries"`
}
