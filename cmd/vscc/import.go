package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/freeeve/vscc-rating/internal/logger"
	"github.com/freeeve/vscc-rating/internal/model"
	"github.com/freeeve/vscc-rating/internal/repository"
	"github.com/freeeve/vscc-rating/internal/scenario"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a scenario file as a named set",
	Long: `Import validates every scenario in the file and stores the well-formed ones
under --set, replacing any set with the same name. Malformed lines are
logged and skipped; they keep their position so labels stay stable.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	f := importCmd.Flags()
	f.String("source", "", "scenario store URL (postgres://, sqlite://, redis://)")
	f.String("set", "", "name of the set to write")
	f.String("prefix", "", "label prefix")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Source == "" {
		return errors.New("import: --source or VSCC_SOURCE is required")
	}
	ctx := logger.WithRunID(cmd.Context(), logger.NewRunID())
	l := logger.ForRun(ctx)

	recs, err := readScenarioFile(args[0], cfg.LabelPrefix, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	valid, skipped := canonicalize(recs, cfg.Set)
	for _, s := range skipped {
		l.Warn().Err(s.err).Str("label", s.rec.Label).Msg("Skipping malformed scenario")
	}
	if len(valid) == 0 {
		return fmt.Errorf("import: no valid scenarios in %s", args[0])
	}

	repo, err := repository.Open(ctx, cfg.Source)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer repo.Close()

	if err := repo.Put(ctx, cfg.Set, valid); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	l.Info().
		Str("set", cfg.Set).
		Str("imported", humanize.Comma(int64(len(valid)))).
		Int("skipped", len(skipped)).
		Msg("Import complete")
	return nil
}

type skippedRecord struct {
	rec model.ScenarioRecord
	err error
}

// canonicalize validates recs, rewrites their counts in canonical form and
// assigns them to set.
func canonicalize(recs []model.ScenarioRecord, set string) ([]model.ScenarioRecord, []skippedRecord) {
	valid := make([]model.ScenarioRecord, 0, len(recs))
	var skipped []skippedRecord
	for _, rec := range recs {
		sc, err := scenario.Parse(rec)
		if err != nil {
			skipped = append(skipped, skippedRecord{rec: rec, err: err})
			continue
		}
		rec.Set = set
		rec.Counts = scenario.FormatCounts(sc.Counts)
		valid = append(valid, rec)
	}
	return valid, skipped
}
