package scenario

import (
	"errors"
	"strings"
	"testing"

	"github.com/freeeve/vscc-rating/internal/model"
	"github.com/freeeve/vscc-rating/pkg/faction"
	"github.com/freeeve/vscc-rating/pkg/scoring"
)

func seq(sep string) string {
	parts := make([]string, faction.Count)
	for i := range parts {
		parts[i] = string(rune('0' + i%10))
	}
	return strings.Join(parts, sep)
}

func TestParseCountsSeparators(t *testing.T) {
	for _, sep := range []string{"\t", ",", " ", ", ", "\t\t"} {
		c, err := ParseCounts(seq(sep))
		if err != nil {
			t.Errorf("ParseCounts(sep %q): %v", sep, err)
			continue
		}
		for i, v := range c {
			if v != i%10 {
				t.Errorf("sep %q: count[%d] = %d, want %d", sep, i, v, i%10)
			}
		}
	}
}

func TestParseCountsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too few", "1\t2\t3"},
		{"too many", seq("\t") + "\t4"},
		{"not a number", strings.Replace(seq("\t"), "3", "x", 1)},
		{"negative", strings.Replace(seq("\t"), "3", "-3", 1)},
		{"float", strings.Replace(seq("\t"), "3", "3.5", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCounts(tt.in); !errors.Is(err, scoring.ErrMalformedScenario) {
				t.Errorf("err = %v, want ErrMalformedScenario", err)
			}
		})
	}
}

func TestFormatCountsRoundTrip(t *testing.T) {
	var c scoring.Counts
	for i := range c {
		c[i] = i * 3
	}
	got, err := ParseCounts(FormatCounts(c))
	if err != nil {
		t.Fatalf("ParseCounts: %v", err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		prefix string
		i      int
		want   string
	}{
		{"A2", 0, "A2A"},
		{"A2", 1, "A2B"},
		{"A2", 25, "A2Z"},
		{"A2", 26, "A2AA"},
		{"A2", 27, "A2AB"},
		{"", 51, "AZ"},
		{"", 52, "BA"},
	}
	for _, tt := range tests {
		if got := Label(tt.prefix, tt.i); got != tt.want {
			t.Errorf("Label(%q, %d) = %q, want %q", tt.prefix, tt.i, got, tt.want)
		}
	}
}

func TestRead(t *testing.T) {
	in := "# header comment\n" + seq("\t") + "\n\n" + "bad line\n" + seq(",") + "\r\n"
	recs, err := Read(strings.NewReader(in), "A2")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	wantLabels := []string{"A2A", "A2B", "A2C"}
	for i, r := range recs {
		if r.Position != i || r.Label != wantLabels[i] {
			t.Errorf("record %d = %+v", i, r)
		}
	}
	if _, err := Parse(recs[1]); !errors.Is(err, scoring.ErrMalformedScenario) {
		t.Errorf("Parse(bad line) err = %v", err)
	}
	s, err := Parse(recs[2])
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Label != "A2C" || s.Counts[faction.Kongo] != 0 || s.Counts[faction.Inuit] != 8 {
		t.Errorf("scenario = %+v", s)
	}
}

func TestParseRecord(t *testing.T) {
	rec := model.ScenarioRecord{Set: "a2", Position: 4, Label: "A2E", Counts: seq("\t")}
	s, err := Parse(rec)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Position != 4 || s.Label != "A2E" {
		t.Errorf("scenario = %+v", s)
	}
}
