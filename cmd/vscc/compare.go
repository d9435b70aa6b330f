package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/freeeve/vscc-rating/internal/config"
	"github.com/freeeve/vscc-rating/internal/logger"
	"github.com/freeeve/vscc-rating/internal/model"
	"github.com/freeeve/vscc-rating/internal/report"
	"github.com/freeeve/vscc-rating/internal/repository"
	"github.com/freeeve/vscc-rating/internal/runner"
	"github.com/freeeve/vscc-rating/internal/scenario"
)

var compareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Score scenarios under every configured strategy",
	Long: `Compare evaluates each scenario and prints every faction's rating change
under each strategy.

Read scenarios from a file, one line of 25 counts per scenario ("-" reads stdin):
  vscc compare testdata/a2.tsv

Read a set previously stored with "vscc import":
  vscc compare --source sqlite://vscc.db --set a2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.String("source", "", "scenario store URL (postgres://, sqlite://, redis://)")
	f.String("set", "", "scenario set to read from the store")
	f.String("prefix", "", "label prefix for scenarios read from a file")
	f.Int("workers", 1, "scenarios evaluated in parallel")
	f.String("format", "", "output format (text|json|markdown)")
	f.String("normalization", "", "ratio normalization (distance|share)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := logger.WithRunID(cmd.Context(), logger.NewRunID())
	l := logger.ForRun(ctx)

	var recs []model.ScenarioRecord
	switch {
	case len(args) == 1:
		recs, err = readScenarioFile(args[0], cfg.LabelPrefix, cmd.InOrStdin())
	case cfg.Source != "":
		recs, err = listStored(ctx, cfg)
	default:
		return errors.New("compare: provide a scenario file or --source")
	}
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	evaluator, err := cfg.Evaluator()
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	formatter, err := report.ForFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	l.Info().
		Int("scenarios", len(recs)).
		Strs("strategies", evaluator.StrategyNames()).
		Str("normalization", evaluator.Normalization.String()).
		Int("workers", cfg.Workers).
		Msg("Evaluating scenarios")

	start := time.Now()
	results, err := runner.New(evaluator, cfg.Workers).Run(ctx, recs)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	if err := formatter.Format(cmd.OutOrStdout(), evaluator.StrategyNames(), results); err != nil {
		return fmt.Errorf("compare: write report: %w", err)
	}

	l.Info().Dur("elapsed", time.Since(start)).Msg(report.SummaryLine(runner.Summarize(results)))
	return nil
}

func readScenarioFile(path, prefix string, stdin io.Reader) ([]model.ScenarioRecord, error) {
	if path == "-" {
		return scenario.Read(stdin, prefix)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scenario.Read(f, prefix)
}

func listStored(ctx context.Context, cfg *config.Config) ([]model.ScenarioRecord, error) {
	repo, err := repository.Open(ctx, cfg.Source)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	recs, err := repo.List(ctx, cfg.Set)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("set %q is empty or missing", cfg.Set)
	}
	return recs, nil
}
