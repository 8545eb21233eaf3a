package campaign

import (
	"context"
	"flag"
)

func (a *app) cmdRun(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	days := flags.Int("days", 1, "number of days to run (1-30)")
	skipZoneGap := flags.Bool("skip-zone-gap", false, "suppress the daily zone content-gap check")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	l, err := a.loadLoop(ctx)
	if err != nil {
		return fail("run", err)
	}
	result, err := l.RestDays(*days, *skipZoneGap)
	if err != nil {
		return fail("run", err)
	}
	if err := a.autosave(ctx, l); err != nil {
		return fail("run", err)
	}
	if err := a.appendEvents(ctx, runEvents(l.Campaign, result.Reports)); err != nil {
		return fail("run", err)
	}

	printJSON(result)
	return 0
}
