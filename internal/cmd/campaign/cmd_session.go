package campaign

import (
	"context"
	"flag"

	"github.com/logarium/macros-engine/internal/campaign/event"
)

func (a *app) cmdEndSession(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("end-session", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return 1
	}

	l, err := a.loadLoop(ctx)
	if err != nil {
		return fail("end-session", err)
	}
	result, err := l.EndSession()
	if err != nil {
		return fail("end-session", err)
	}
	if err := a.autosave(ctx, l); err != nil {
		return fail("end-session", err)
	}

	evt := event.Event{
		Type:      event.TypeSessionEnded,
		SessionID: result.EndedSession,
		Day:       l.Campaign.InGameDate,
		PayloadJSON: payloadJSON(event.SessionEndedPayload{
			SessionID: result.EndedSession,
			Date:      l.Campaign.InGameDate,
			Zone:      l.Campaign.PCZone,
		}),
	}
	if err := a.appendEvents(ctx, []event.Event{evt}); err != nil {
		return fail("end-session", err)
	}

	printJSON(result)
	return 0
}
