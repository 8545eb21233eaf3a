package state

// NPC is a named non-player character. Only the fields the day loop
// reads are tracked: zone presence feeds the zone gap check, and the
// agency fields feed NPC agency resolution.
type NPC struct {
	Name    string `json:"name"`
	Zone    string `json:"zone,omitempty"`
	Status  string `json:"status"`
	Role    string `json:"role,omitempty"`
	Faction string `json:"faction,omitempty"`

	Objective  string `json:"objective,omitempty"`
	NextAction string `json:"next_action,omitempty"`

	WithPC      bool `json:"with_pc"`
	IsCompanion bool `json:"is_companion"`

	CreatedSession int `json:"created_session"`
}
