// Package runner evaluates batches of recorded scenarios concurrently.
package runner

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/freeeve/vscc-rating/internal/logger"
	"github.com/freeeve/vscc-rating/internal/model"
	"github.com/freeeve/vscc-rating/internal/scenario"
	"github.com/freeeve/vscc-rating/pkg/scoring"
)

// Result is the evaluation of one record. Exactly one of Outcome and Err is set.
type Result struct {
	Position int
	Label    string
	Outcome  *scoring.Outcome
	Err      error
}

// Runner fans scenario evaluation out over a bounded number of workers.
type Runner struct {
	Evaluator *scoring.Evaluator
	Workers   int
}

// New returns a runner with at least one worker.
func New(e *scoring.Evaluator, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{Evaluator: e, Workers: workers}
}

// Run evaluates every record and returns results in input order. A
// malformed or degenerate scenario is reported in its Result and does not
// stop the batch; only context cancellation does.
func (r *Runner) Run(ctx context.Context, recs []model.ScenarioRecord) ([]Result, error) {
	l := logger.ForRun(ctx)
	results := make([]Result, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))

	for i, rec := range recs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := Result{Position: rec.Position, Label: rec.Label}
			sc, err := scenario.Parse(rec)
			if err == nil {
				res.Outcome, err = r.Evaluator.Evaluate(sc.Counts)
			}
			if err != nil {
				res.Err = err
				l.Warn().Err(err).Str("label", rec.Label).Int("position", rec.Position).Msg("Scenario skipped")
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.Debug().Int("scenarios", len(recs)).Int("workers", r.Workers).Msg("Batch evaluated")
	return results, nil
}

// Summary counts how a batch turned out.
type Summary struct {
	Total      int `json:"total"`
	Evaluated  int `json:"evaluated"`
	Malformed  int `json:"malformed"`
	Degenerate int `json:"degenerate"`
	Failed     int `json:"failed"`
}

// Summarize tallies results by outcome.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err == nil:
			s.Evaluated++
		case errors.Is(r.Err, scoring.ErrMalformedScenario):
			s.Malformed++
		case errors.Is(r.Err, scoring.ErrDegenerateScenario):
			s.Degenerate++
		default:
			s.Failed++
		}
	}
	return s
}
