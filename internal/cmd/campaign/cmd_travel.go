package campaign

import (
	"context"
	"flag"
	"fmt"

	"github.com/logarium/macros-engine/internal/campaign/event"
)

func (a *app) cmdTravel(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("travel", flag.ContinueOnError)
	to := flags.String("to", "", "destination zone (must share a crossing point)")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *to == "" {
		return fail("travel", fmt.Errorf("destination is required: pass -to ZONE"))
	}

	l, err := a.loadLoop(ctx)
	if err != nil {
		return fail("travel", err)
	}
	result, err := l.TravelTo(*to)
	if err != nil {
		return fail("travel", err)
	}
	if err := a.autosave(ctx, l); err != nil {
		return fail("travel", err)
	}

	events := []event.Event{{
		Type:      event.TypeTravelExecuted,
		SessionID: l.Campaign.SessionID,
		Day:       l.Campaign.InGameDate,
		PayloadJSON: payloadJSON(event.TravelExecutedPayload{
			From:     result.Travel.OldZone,
			To:       result.Travel.NewZone,
			Crossing: result.Travel.CPName,
			Tag:      result.Travel.CPTag,
			Days:     result.Travel.DaysTraveled,
		}),
	}}
	events = append(events, runEvents(l.Campaign, result.Reports)...)
	if err := a.appendEvents(ctx, events); err != nil {
		return fail("travel", err)
	}

	printJSON(result)
	return 0
}
