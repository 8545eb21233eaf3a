package campaign

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/logarium/macros-engine/internal/campaign/gammaria"
	"github.com/logarium/macros-engine/internal/campaign/loop"
	"github.com/logarium/macros-engine/internal/campaign/state"
	"github.com/logarium/macros-engine/internal/storage"
)

func (a *app) cmdNew(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("new", flag.ContinueOnError)
	fresh := flags.Bool("fresh", false, "start an empty campaign instead of seeded Gammaria")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	// Refuse to clobber an existing campaign under the same key.
	if _, err := a.store.LatestSnapshot(ctx, a.cfg.CampaignID); err == nil {
		fmt.Fprintf(os.Stderr, "campaign: new: campaign %q already exists in %q\n",
			a.cfg.CampaignID, a.cfg.DBPath)
		return 1
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fail("new", err)
	}

	var (
		c   *state.Campaign
		err error
	)
	if *fresh {
		c, err = gammaria.Fresh()
	} else {
		c, err = gammaria.Seed()
	}
	if err != nil {
		return fail("new", err)
	}
	c.CampaignID = a.cfg.CampaignID

	l := loop.New(c, a.roller)
	if err := a.autosave(ctx, l); err != nil {
		return fail("new", err)
	}

	if *fresh {
		fmt.Printf("campaign %q started fresh: session %d, no content seeded\n",
			a.cfg.CampaignID, c.SessionID)
	} else {
		fmt.Printf("campaign %q started: session %d, %s, %s\n",
			a.cfg.CampaignID, c.SessionID, c.InGameDate, c.PCZone)
	}
	return 0
}
