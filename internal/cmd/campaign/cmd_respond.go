package campaign

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/logarium/macros-engine/internal/campaign/creative"
)

func (a *app) cmdRespond(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("respond", flag.ContinueOnError)
	file := flags.String("file", "", "JSON response batch; use - for stdin")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *file == "" {
		return fail("respond", fmt.Errorf("response batch is required: pass -file FILE or -file -"))
	}

	var (
		data []byte
		err  error
	)
	if *file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*file)
	}
	if err != nil {
		return fail("respond", err)
	}

	l, err := a.loadLoop(ctx)
	if err != nil {
		return fail("respond", err)
	}
	result, err := l.SubmitResponses(string(data))
	if err != nil {
		return fail("respond", err)
	}
	if err := a.autosave(ctx, l); err != nil {
		return fail("respond", err)
	}
	if err := a.appendEvents(ctx, creativeEvents(l.Campaign, result.Entries)); err != nil {
		return fail("respond", err)
	}

	printJSON(result)
	return 0
}

func (a *app) cmdRequests(ctx context.Context, args []string) int {
	flags := flag.NewFlagSet("requests", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return 1
	}

	l, err := a.loadLoop(ctx)
	if err != nil {
		return fail("requests", err)
	}
	pending := l.Queue.Pending
	if pending == nil {
		pending = []creative.Request{}
	}
	printJSON(pending)
	return 0
}
