// Package report renders evaluated scenarios for the console or for other
// tools.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/freeeve/vscc-rating/internal/runner"
	"github.com/freeeve/vscc-rating/pkg/faction"
)

// Formatter writes a batch of results. strategies names the columns of
// every outcome in order.
type Formatter interface {
	Format(w io.Writer, strategies []string, results []runner.Result) error
}

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "markdown"}

// ForFormat returns the formatter registered under name. Names are
// case-insensitive and "md" is accepted for markdown.
func ForFormat(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return Text{}, nil
	case "json":
		return JSON{Indent: "  "}, nil
	case "markdown", "md":
		return Markdown{}, nil
	}
	return nil, fmt.Errorf("unknown report format %q (want one of %s)", name, strings.Join(Formats, ", "))
}

// Round rounds half away from zero and never yields negative zero.
func Round(v float64) float64 {
	r := math.Round(v)
	if r == 0 {
		return 0
	}
	return r
}

// SummaryLine describes how many scenarios of a batch were evaluated.
func SummaryLine(s runner.Summary) string {
	line := fmt.Sprintf("%s of %s scenarios evaluated", humanize.Comma(int64(s.Evaluated)), humanize.Comma(int64(s.Total)))
	skipped := s.Total - s.Evaluated
	if skipped == 0 {
		return line
	}
	return fmt.Sprintf("%s (%s malformed, %s degenerate, %s failed)", line,
		humanize.Comma(int64(s.Malformed)), humanize.Comma(int64(s.Degenerate)), humanize.Comma(int64(s.Failed)))
}

// Text is the console layout: a blank line, the label, then one row per
// faction with each strategy's rounded change.
type Text struct{}

func (Text) Format(w io.Writer, strategies []string, results []runner.Result) error {
	var b strings.Builder
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "\n%s: skipped (%v)\n", r.Label, r.Err)
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", r.Label)
		for _, f := range faction.All() {
			fmt.Fprintf(&b, "%-16s", f)
			for j, sr := range r.Outcome.Results {
				if j > 0 {
					b.WriteByte('\t')
				}
				fmt.Fprintf(&b, "%.0f", Round(sr.Changes[f]))
			}
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
