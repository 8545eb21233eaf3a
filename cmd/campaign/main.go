package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	campaigncmd "github.com/logarium/macros-engine/internal/cmd/campaign"
	entrypoint "github.com/logarium/macros-engine/internal/platform/cmd"
	"github.com/logarium/macros-engine/internal/platform/config"
)

func main() {
	log.SetPrefix("[CAMPAIGN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg campaigncmd.Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		config.Exitf("parse config: %v", err)
	}

	code, err := entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCampaign, func(ctx context.Context) int {
		return campaigncmd.Run(ctx, cfg, os.Args[1:])
	})
	if err != nil {
		config.Exitf("startup: %v", err)
	}
	os.Exit(code)
}
