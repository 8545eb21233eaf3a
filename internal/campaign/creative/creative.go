// Package creative manages the deferred-mutation boundary between the
// mechanical day loop and an out-of-band creative collaborator. Engine runs
// and gates emit typed requests, the queue batches them for hand-off, and
// responses come back as state changes that are applied in a single,
// auditable pass. Only clock_advance, clock_reduce, and fact are applied
// mechanically; every other state-change kind is preserved in the apply log
// for manual handling.
package creative

import "encoding/json"

// Request type identifiers for queued creative work.
const (
	TypeClockAudit      = "CLOCK_AUDIT"
	TypeNPAG            = "NPAG"
	TypeNarrEncounter   = "NARR_ENCOUNTER"
	TypeNarrTimePassage = "NARR_TIME_PASSAGE"
	TypeNarrArrival     = "NARR_ARRIVAL"
	TypeSessionSummary  = "SESSION_SUMMARY"
	TypeNPCForge        = "NPC_FORGE"
	TypeELForge         = "EL_FORGE"
	TypeUAForge         = "UA_FORGE"
)

// Raw request types emitted by engine runs and day-loop gates. The game loop
// converts these into the typed requests above before queueing.
const (
	RawClockAuditReview = "CLOCK_AUDIT_REVIEW"
	RawCanForgeAuto     = "CAN-FORGE-AUTO"
)

// stateChangeKinds is the recognized response vocabulary. Kinds outside this
// set are flagged at submit time so a malformed response is visible before
// anything is applied.
var stateChangeKinds = map[string]bool{
	"clock_advance":    true,
	"clock_reduce":     true,
	"fact":             true,
	"npc_update":       true,
	"session_meta":     true,
	"npc_create":       true,
	"el_create":        true,
	"faction_create":   true,
	"faction_update":   true,
	"clock_create":     true,
	"companion_create": true,
	"pe_create":        true,
	"ua_create":        true,
	"discovery_create": true,
	"thread_create":    true,
	"zone_create":      true,
	"zone_update":      true,
}

// Request is one unit of creative work queued for the collaborator.
type Request struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Context     map[string]any `json:"context"`
	Constraints map[string]any `json:"constraints"`
}

// Response is the collaborator's answer to one request.
type Response struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Content      string        `json:"content"`
	StateChanges []StateChange `json:"state_changes,omitempty"`
	Warnings     []string      `json:"warnings,omitempty"`
}

// StateChange is one mutation proposed by a response. Fields beyond the
// mechanically applied ones survive the round trip in Extra so forge payloads
// stay intact for manual review.
type StateChange struct {
	Kind   string
	Clock  string
	Reason string
	Text   string
	Extra  map[string]any
}

// UnmarshalJSON keeps unrecognized keys instead of dropping them.
func (sc *StateChange) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	sc.Kind, _ = raw["type"].(string)
	sc.Clock, _ = raw["clock"].(string)
	sc.Reason, _ = raw["reason"].(string)
	sc.Text, _ = raw["text"].(string)
	delete(raw, "type")
	delete(raw, "clock")
	delete(raw, "reason")
	delete(raw, "text")
	if len(raw) > 0 {
		sc.Extra = raw
	} else {
		sc.Extra = nil
	}
	return nil
}

// MarshalJSON emits the flat wire shape the collaborator produced.
func (sc StateChange) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(sc.Extra)+4)
	for k, v := range sc.Extra {
		out[k] = v
	}
	if sc.Kind != "" {
		out["type"] = sc.Kind
	}
	if sc.Clock != "" {
		out["clock"] = sc.Clock
	}
	if sc.Reason != "" {
		out["reason"] = sc.Reason
	}
	if sc.Text != "" {
		out["text"] = sc.Text
	}
	return json.Marshal(out)
}

// defaultConstraints returns the base narration constraints with a per-request
// word cap and instruction layered on top.
func defaultConstraints(maxWords int, instruction string) map[string]any {
	return map[string]any{
		"max_words":   maxWords,
		"tone":        "sword_and_sorcery",
		"style":       "Compressed prose. Inspirations: Elric, Conan, Dark Crystal, Krull, Willow, LotR.",
		"voice":       "Second person present tense. The player IS the character. 'You stand at the gate' not 'Thoron stood at the gate'. Never use the PC name as subject.",
		"instruction": instruction,
	}
}
