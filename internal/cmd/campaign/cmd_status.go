package campaign

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/logarium/macros-engine/internal/campaign/event"
)

func (a *app) cmdStatus(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("status", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	l, err := a.loadLoop(ctx)
	if err != nil {
		return fail("status", err)
	}
	status := l.CurrentStatus()

	if *jsonOut {
		printJSON(status)
		return 0
	}

	fmt.Printf("session %d  %s  %s  [%s]\n", status.SessionID, status.Date, status.Zone, status.Phase)
	fmt.Printf("season: %s", status.Season)
	if status.SeasonalPressure != "" {
		fmt.Printf(" — %s", status.SeasonalPressure)
	}
	fmt.Println()

	if len(status.ActiveClocks) > 0 {
		fmt.Println("clocks:")
		for _, cl := range status.ActiveClocks {
			marker := ""
			if cl.Cadence {
				marker = " (cadence)"
			}
			fmt.Printf("  %-48s %s%s\n", cl.Name, cl.Progress, marker)
		}
	} else {
		fmt.Println("clocks: none active")
	}

	if len(status.TravelOptions) > 0 {
		fmt.Println("travel:")
		for _, opt := range status.TravelOptions {
			fmt.Printf("  %s\n", opt.Label)
		}
	}

	if status.CreativePending > 0 {
		fmt.Printf("creative pending: %d %v\n", status.CreativePending, status.PendingTypes)
	}
	return 0
}

func (a *app) cmdSaves(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("saves", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	saves, err := a.store.ListSnapshots(ctx, a.cfg.CampaignID)
	if err != nil {
		return fail("saves", err)
	}

	if *jsonOut {
		printJSON(saves)
		return 0
	}
	if len(saves) == 0 {
		fmt.Println("no saves")
		return 0
	}
	for _, s := range saves {
		fmt.Printf("%s  (saved %s)\n", s.Name, s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return 0
}

// journalRow is the journal listing shape: the event envelope with its
// payload inlined as JSON rather than raw bytes.
type journalRow struct {
	Seq       uint64          `json:"seq"`
	Timestamp time.Time       `json:"timestamp"`
	Type      event.Type      `json:"type"`
	Session   int             `json:"session"`
	Day       string          `json:"day"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

func (a *app) cmdJournal(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("journal", flag.ContinueOnError)
	after := flags.Uint64("after", 0, "list events with sequence greater than this")
	limit := flags.Int("limit", 50, "maximum events to list")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	events, err := a.store.ListEvents(ctx, a.cfg.CampaignID, *after, *limit)
	if err != nil {
		return fail("journal", err)
	}

	rows := make([]journalRow, 0, len(events))
	for _, evt := range events {
		rows = append(rows, journalRow{
			Seq:       evt.Seq,
			Timestamp: evt.Timestamp,
			Type:      evt.Type,
			Session:   evt.SessionID,
			Day:       evt.Day,
			Payload:   json.RawMessage(evt.PayloadJSON),
		})
	}
	printJSON(rows)
	return 0
}
