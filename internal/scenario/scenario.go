// Package scenario parses recorded end-of-game supply center counts.
package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/freeeve/vscc-rating/internal/model"
	"github.com/freeeve/vscc-rating/pkg/faction"
	"github.com/freeeve/vscc-rating/pkg/scoring"
)

// DefaultLabelPrefix matches the naming of the recorded data sets (A2A, A2B, ...).
const DefaultLabelPrefix = "A2"

// Scenario is a parsed, positionally aligned set of final counts.
type Scenario struct {
	Position int
	Label    string
	Counts   scoring.Counts
}

// ParseCounts parses exactly 25 non-negative integers separated by tabs,
// commas or spaces.
func ParseCounts(text string) (scoring.Counts, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\t' || r == ',' || r == ' ' || r == '\r'
	})
	var c scoring.Counts
	if len(fields) != faction.Count {
		return c, fmt.Errorf("%d fields, want %d: %w", len(fields), faction.Count, scoring.ErrMalformedScenario)
	}
	for i, s := range fields {
		n, err := strconv.Atoi(s)
		if err != nil {
			return c, fmt.Errorf("%s: %q is not an integer: %w", faction.Faction(i), s, scoring.ErrMalformedScenario)
		}
		if n < 0 {
			return c, fmt.Errorf("%s: negative count %d: %w", faction.Faction(i), n, scoring.ErrMalformedScenario)
		}
		c[i] = n
	}
	return c, nil
}

// FormatCounts renders counts in the canonical tab-separated form.
func FormatCounts(c scoring.Counts) string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "\t")
}

// Parse converts a stored record into a scenario.
func Parse(rec model.ScenarioRecord) (Scenario, error) {
	c, err := ParseCounts(rec.Counts)
	if err != nil {
		return Scenario{}, err
	}
	return Scenario{Position: rec.Position, Label: rec.Label, Counts: c}, nil
}

// Label names the i-th scenario of a set: prefix followed by spreadsheet
// style column letters (A..Z, AA, AB, ...).
func Label(prefix string, i int) string {
	var b []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return prefix + string(b)
}

// Read splits a scenario file into records, one per line. Blank lines and
// lines starting with '#' are skipped and do not consume a label.
func Read(r io.Reader, prefix string) ([]model.ScenarioRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var recs []model.ScenarioRecord
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pos := len(recs)
		recs = append(recs, model.ScenarioRecord{
			Position: pos,
			Label:    Label(prefix, pos),
			Counts:   line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	return recs, nil
}
