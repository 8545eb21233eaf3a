// Package campaign parses campaign CLI verbs and drives the game loop.
//
// Every verb is one complete interaction: load the latest save, execute
// through the loop, autosave under the canonical name, and append what
// happened to the journal. State lives entirely in the SQLite file, so
// a campaign can be resumed from any shell.
package campaign

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/logarium/macros-engine/internal/cmd/campaign")

// Config holds campaign CLI configuration. Tags resolve against the
// MACROS_ENGINE_ prefix, so DB_PATH reads MACROS_ENGINE_DB_PATH.
type Config struct {
	DBPath     string `env:"DB_PATH" envDefault:"gammaria.db"`
	CampaignID string `env:"CAMPAIGN" envDefault:"gammaria"`
	Seed       int64  `env:"SEED"`
}

// Run dispatches a CLI verb and returns the process exit code. Each verb
// executes inside one trace span named after it; with tracing off the
// global provider is a no-op and the span costs nothing.
func Run(ctx context.Context, cfg Config, args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	verb := args[0]
	switch verb {
	case "--help", "-h", "help":
		printUsage()
		return 0
	}

	ctx, span := tracer.Start(ctx, "campaign."+verb,
		trace.WithAttributes(attribute.String("campaign.id", cfg.CampaignID)))
	defer span.End()

	code := dispatch(ctx, cfg, verb, args[1:])
	span.SetAttributes(attribute.Int("campaign.exit_code", code))
	if code != 0 {
		span.SetStatus(otelcodes.Error, "exit "+strconv.Itoa(code))
	}
	return code
}

func dispatch(ctx context.Context, cfg Config, verb string, args []string) int {
	a, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "campaign: %v\n", err)
		return 1
	}
	defer a.Close()

	switch verb {
	case "new":
		return a.cmdNew(ctx, args)
	case "status":
		return a.cmdStatus(ctx, args)
	case "run":
		return a.cmdRun(ctx, args)
	case "travel":
		return a.cmdTravel(ctx, args)
	case "requests":
		return a.cmdRequests(ctx, args)
	case "respond":
		return a.cmdRespond(ctx, args)
	case "end-session":
		return a.cmdEndSession(ctx, args)
	case "saves":
		return a.cmdSaves(ctx, args)
	case "journal":
		return a.cmdJournal(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "campaign: unknown command %q\n", verb)
		fmt.Fprintln(os.Stderr, "Run 'campaign help' for usage.")
		return 1
	}
}

func printUsage() {
	fmt.Print(`campaign — solo campaign day-loop assistant

Runs in-world days against the campaign clocks, engines, and zones,
queues creative requests for out-of-band resolution, and journals
everything that happened.

Usage:
  campaign <command> [flags]

Commands:
  new [-fresh]               Start a campaign (seeded Gammaria by default)
  status                     Show phase, date, zone, clocks, travel options
  run -days N                Rest in place for N days (1-30)
  travel -to ZONE            Travel to an adjacent zone, then run the road days
  requests                   List pending creative requests as JSON
  respond -file FILE         Apply a JSON response batch (use - for stdin)
  end-session                Close the session and queue its summary request
  saves                      List saves, newest first
  journal [-after N] [-limit N]  List journal events as JSON

Environment:
  MACROS_ENGINE_DB_PATH     SQLite database path (default: gammaria.db)
  MACROS_ENGINE_CAMPAIGN    Campaign key inside the database (default: gammaria)
  MACROS_ENGINE_SEED        Dice seed; 0 draws a fresh random seed

Exit codes:
  0  success
  1  error or unmet precondition (wrong phase, bad day count, unset zone)
`)
}
