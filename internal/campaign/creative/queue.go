package creative

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/logarium/macros-engine/internal/campaign/state"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// Queue holds pending creative requests and received responses for one
// campaign. It owns the request counter, so every queued request gets a
// stable id that survives save and load.
type Queue struct {
	Pending   []Request  `json:"pending,omitempty"`
	Completed []Response `json:"completed,omitempty"`
	CallCount int        `json:"call_count"`
	Counter   int        `json:"request_counter"`
}

// Batch is the hand-off payload covering all pending requests.
type Batch struct {
	BatchID      string    `json:"batch_id"`
	RequestCount int       `json:"request_count"`
	Requests     []Request `json:"requests"`
}

// ApplyEntry is one line of the apply log produced when responses are
// folded into campaign state.
type ApplyEntry struct {
	ID             string               `json:"id"`
	Type           string               `json:"type,omitempty"`
	ContentPreview string               `json:"content_preview,omitempty"`
	Applied        string               `json:"applied,omitempty"`
	Clock          string               `json:"clock,omitempty"`
	Text           string               `json:"text,omitempty"`
	Warning        string               `json:"warning,omitempty"`
	Error          string               `json:"error,omitempty"`
	Advance        *state.AdvanceResult `json:"result,omitempty"`
	Reduce         *state.ReduceResult  `json:"reduce_result,omitempty"`
}

// Enqueue assigns the next request id and queues the request.
func (q *Queue) Enqueue(req Request) Request {
	q.Counter++
	req.ID = fmt.Sprintf("cr_%03d", q.Counter)
	q.Pending = append(q.Pending, req)
	return req
}

// EnqueueMany queues requests in order and returns them with ids assigned.
func (q *Queue) EnqueueMany(reqs []Request) []Request {
	out := make([]Request, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, q.Enqueue(r))
	}
	return out
}

// IsEmpty reports whether no requests are pending.
func (q *Queue) IsEmpty() bool {
	return len(q.Pending) == 0
}

// PendingCount returns the number of pending requests.
func (q *Queue) PendingCount() int {
	return len(q.Pending)
}

// PendingTypes returns the types of pending requests in queue order.
func (q *Queue) PendingTypes() []string {
	types := make([]string, 0, len(q.Pending))
	for _, r := range q.Pending {
		types = append(types, r.Type)
	}
	return types
}

// PendingBatch serializes all pending requests for hand-off.
func (q *Queue) PendingBatch() Batch {
	return Batch{
		BatchID:      time.Now().Format("20060102_150405"),
		RequestCount: len(q.Pending),
		Requests:     q.Pending,
	}
}

// PendingBatchJSON renders the pending batch as indented JSON.
func (q *Queue) PendingBatchJSON() (string, error) {
	b, err := json.MarshalIndent(q.PendingBatch(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal pending batch: %w", err)
	}
	return string(b), nil
}

// SubmitResponses parses a batch response and records it as completed.
// Matching is permissive: responses whose ids do not line up with pending
// requests are accepted anyway, and unrecognized state-change kinds are
// flagged as warnings rather than rejected.
func (q *Queue) SubmitResponses(text string) ([]Response, error) {
	var batch struct {
		Responses []Response `json:"responses"`
	}
	if err := json.Unmarshal([]byte(extractJSON(text)), &batch); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "parse creative response batch", err)
	}
	for i := range batch.Responses {
		resp := &batch.Responses[i]
		for _, sc := range resp.StateChanges {
			if sc.Kind != "" && !stateChangeKinds[sc.Kind] {
				resp.Warnings = append(resp.Warnings,
					fmt.Sprintf("Unknown state_change type: %s", sc.Kind))
			}
		}
	}
	q.Completed = batch.Responses
	q.CallCount++
	return batch.Responses, nil
}

// Apply folds all completed responses into campaign state and returns the
// apply log. Skipped and unapplied changes are recorded, not dropped.
func (q *Queue) Apply(c *state.Campaign) []ApplyEntry {
	var entries []ApplyEntry
	for i := range q.Completed {
		resp := &q.Completed[i]
		entries = append(entries, ApplyEntry{
			ID:             resp.ID,
			Type:           resp.Type,
			ContentPreview: preview(resp.Content),
		})

		// UA.CREATE ANCHOR rule: a ua_create must arrive with a discovery,
		// thread, or clock in the same response.
		kinds := make(map[string]bool, len(resp.StateChanges))
		for _, sc := range resp.StateChanges {
			kinds[sc.Kind] = true
		}
		if kinds["ua_create"] && !kinds["discovery_create"] && !kinds["thread_create"] && !kinds["clock_create"] {
			entries = append(entries, ApplyEntry{
				ID:   resp.ID,
				Type: resp.Type,
				Warning: "UA anchor violation: ua_create without " +
					"discovery_create/thread_create/clock_create. " +
					"Skipping ua_create per UA-FORGE §2.1 HARD.",
			})
			kept := resp.StateChanges[:0]
			for _, sc := range resp.StateChanges {
				if sc.Kind != "ua_create" {
					kept = append(kept, sc)
				}
			}
			resp.StateChanges = kept
		}

		for _, sc := range resp.StateChanges {
			if e := applyStateChange(c, resp.ID, sc); e != nil {
				entries = append(entries, *e)
			}
		}
	}
	return entries
}

// Clear drops both pending and completed queues.
func (q *Queue) Clear() {
	q.Pending = nil
	q.Completed = nil
}

// ClearPending drops the pending queue once responses are in.
func (q *Queue) ClearPending() {
	q.Pending = nil
}

func applyStateChange(c *state.Campaign, reqID string, sc StateChange) *ApplyEntry {
	switch sc.Kind {
	case "clock_advance":
		cl := c.Clock(sc.Clock)
		if cl == nil {
			return &ApplyEntry{ID: reqID, Applied: "clock_advance",
				Error: "Clock not found: " + sc.Clock}
		}
		reason := fmt.Sprintf("Creative (%s): %s", reqID, sc.Reason)
		res, err := cl.Advance(reason, c.InGameDate, c.SessionID)
		if err != nil {
			return &ApplyEntry{ID: reqID, Applied: "clock_advance", Clock: sc.Clock,
				Warning: "not applied: " + err.Error()}
		}
		return &ApplyEntry{ID: reqID, Applied: "clock_advance", Clock: sc.Clock, Advance: &res}

	case "clock_reduce":
		cl := c.Clock(sc.Clock)
		if cl == nil {
			return &ApplyEntry{ID: reqID, Applied: "clock_reduce",
				Error: "Clock not found: " + sc.Clock}
		}
		res := cl.Reduce(fmt.Sprintf("Creative (%s): %s", reqID, sc.Reason), 1)
		return &ApplyEntry{ID: reqID, Applied: "clock_reduce", Clock: sc.Clock, Reduce: &res}

	case "fact":
		if sc.Text == "" {
			return nil
		}
		c.AddFact(sc.Text)
		return &ApplyEntry{ID: reqID, Applied: "fact", Text: sc.Text}

	case "":
		return nil

	default:
		return &ApplyEntry{ID: reqID,
			Warning: fmt.Sprintf("State change '%s' recorded but not auto-applied", sc.Kind)}
	}
}

func preview(content string) string {
	r := []rune(content)
	if len(r) > 100 {
		return string(r[:100]) + "..."
	}
	return content
}

// extractJSON pulls a JSON object out of surrounding prose or markdown
// code fences.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "```") {
		for _, part := range strings.Split(text, "```") {
			part = strings.TrimSpace(part)
			part = strings.TrimSpace(strings.TrimPrefix(part, "json"))
			if strings.HasPrefix(part, "{") {
				text = part
				break
			}
		}
	}
	if !strings.HasPrefix(text, "{") {
		if start := strings.Index(text, "{"); start >= 0 {
			depth := 0
			for i := start; i < len(text); i++ {
				switch text[i] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						return text[start : i+1]
					}
				}
			}
		}
	}
	return text
}
