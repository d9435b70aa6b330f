package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/freeeve/vscc-rating/internal/runner"
	"github.com/freeeve/vscc-rating/pkg/faction"
)

// Markdown writes one table per scenario, followed by a summary line.
type Markdown struct{}

func (Markdown) Format(w io.Writer, strategies []string, results []runner.Result) error {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "## %s\n\n", r.Label)
		if r.Err != nil {
			fmt.Fprintf(&b, "Skipped: %v\n\n", r.Err)
			continue
		}

		b.WriteString("| Faction | Ratio |")
		for _, s := range strategies {
			fmt.Fprintf(&b, " %s |", s)
		}
		b.WriteString("\n|---|---:|")
		b.WriteString(strings.Repeat("---:|", len(strategies)))
		b.WriteByte('\n')

		for _, f := range faction.All() {
			fmt.Fprintf(&b, "| %s | %.3f |", f, r.Outcome.Ratios[f])
			for _, sr := range r.Outcome.Results {
				fmt.Fprintf(&b, " %+.0f |", Round(sr.Changes[f]))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	b.WriteString(SummaryLine(runner.Summarize(results)))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
