package state

import (
	"encoding/json"
	"fmt"
)

// Marshal serializes the campaign aggregate as indented JSON. The
// output is deterministic for a given state, so saving twice without
// mutation produces identical bytes.
func Marshal(c *Campaign) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal campaign state: %w", err)
	}
	return data, nil
}

// Unmarshal restores a campaign aggregate from its JSON form. Day-scoped
// guards are cleared on load: a reload may represent a different day, so a
// stale advanced-today flag or run counter cannot be trusted. Session
// guards survive because the session id is part of the save.
func Unmarshal(data []byte) (*Campaign, error) {
	var c Campaign
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal campaign state: %w", err)
	}
	c.ResetDayGuards()
	return &c, nil
}
