package campaign

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/logarium/macros-engine/internal/campaign/dice"
	"github.com/logarium/macros-engine/internal/campaign/event"
	"github.com/logarium/macros-engine/internal/campaign/loop"
	"github.com/logarium/macros-engine/internal/storage"
	"github.com/logarium/macros-engine/internal/storage/sqlite"
)

// app holds shared state for all CLI verbs.
type app struct {
	store  storage.Store
	cfg    Config
	roller *dice.Roller
}

// newApp opens the database and seeds the dice roller.
func newApp(cfg Config) (*app, error) {
	s, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", cfg.DBPath, err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed, err = dice.NewSeed()
		if err != nil {
			s.Close()
			return nil, err
		}
	}
	return &app{
		store:  s,
		cfg:    cfg,
		roller: dice.NewRoller(seed),
	}, nil
}

// Close releases the database connection.
func (a *app) Close() { a.store.Close() }

// loadLoop resumes the loop from the latest save.
func (a *app) loadLoop(ctx context.Context) (*loop.Loop, error) {
	rec, err := a.store.LatestSnapshot(ctx, a.cfg.CampaignID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("no campaign found in %q; run 'campaign new' first", a.cfg.DBPath)
		}
		return nil, err
	}
	l, err := loop.Resume(rec.Data, a.roller)
	if err != nil {
		return nil, fmt.Errorf("resume save %q: %w", rec.Name, err)
	}
	return l, nil
}

// autosave persists the loop under its canonical save name.
func (a *app) autosave(ctx context.Context, l *loop.Loop) error {
	data, err := l.Marshal()
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}
	rec := storage.SnapshotRecord{
		CampaignID: a.cfg.CampaignID,
		Name:       l.SaveName(),
		SessionID:  l.Campaign.SessionID,
		Day:        l.Campaign.InGameDate,
		Zone:       l.Campaign.PCZone,
		Data:       data,
	}
	if err := a.store.SaveSnapshot(ctx, rec); err != nil {
		return fmt.Errorf("autosave %q: %w", rec.Name, err)
	}
	return nil
}

// appendEvents journals a batch in order. Events carry the campaign key
// from configuration so saves and journal rows stay joined.
func (a *app) appendEvents(ctx context.Context, events []event.Event) error {
	for _, evt := range events {
		evt.CampaignID = a.cfg.CampaignID
		if _, err := a.store.AppendEvent(ctx, evt); err != nil {
			return fmt.Errorf("append %s: %w", evt.Type, err)
		}
	}
	return nil
}

// fail prints an error for a verb and returns its exit code.
func fail(verb string, err error) int {
	fmt.Fprintf(os.Stderr, "campaign: %s: %v\n", verb, err)
	return 1
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
