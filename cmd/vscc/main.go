// Command vscc compares the current VSCC rating formula against the
// proposed performance-weighted formulas over recorded end-of-game supply
// center counts.
//
// Usage:
//
//	vscc compare testdata/a2.tsv
//	vscc import testdata/a2.tsv --source sqlite://vscc.db --set a2
//	vscc compare --source sqlite://vscc.db --set a2 --format markdown
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Error().Err(err).Msg("vscc failed")
		os.Exit(1)
	}
}
