package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/freeeve/vscc-rating/internal/model"
	"github.com/freeeve/vscc-rating/internal/scenario"
	"github.com/freeeve/vscc-rating/pkg/faction"
	"github.com/freeeve/vscc-rating/pkg/scoring"
)

const soloLine = "64 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0"

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("vscc %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func writeScenarios(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.tsv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write scenarios: %v", err)
	}
	return path
}

func TestCanonicalize(t *testing.T) {
	recs := []model.ScenarioRecord{
		{Position: 0, Label: "A2A", Counts: "64,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0"},
		{Position: 1, Label: "A2B", Counts: "1 2 3"},
		{Position: 2, Label: "A2C", Counts: soloLine},
	}
	valid, skipped := canonicalize(recs, "a2")
	if len(valid) != 2 || len(skipped) != 1 {
		t.Fatalf("valid=%d skipped=%d, want 2 and 1", len(valid), len(skipped))
	}
	if skipped[0].rec.Label != "A2B" {
		t.Errorf("skipped %s, want A2B", skipped[0].rec.Label)
	}
	var c scoring.Counts
	c[faction.Portugal] = 64
	for _, r := range valid {
		if r.Set != "a2" || r.Counts != scenario.FormatCounts(c) {
			t.Errorf("record %s = %+v", r.Label, r)
		}
	}
	if valid[1].Position != 2 || valid[1].Label != "A2C" {
		t.Errorf("positions not preserved: %+v", valid[1])
	}
}

func TestCompareFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeScenarios(t, "# solo", soloLine)

	out := execute(t, "compare", path)
	if !strings.Contains(out, "\nA2A:\nportugal        2520\t2520\t2520\n") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestImportThenCompare(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeScenarios(t, soloLine, "not counts", soloLine)
	source := "sqlite://" + filepath.Join(dir, "vscc.db")

	execute(t, "import", path, "--source", source, "--set", "a2")

	sets := execute(t, "sets", "--source", source)
	if strings.TrimSpace(sets) != "a2" {
		t.Errorf("sets = %q, want a2", sets)
	}

	out := execute(t, "compare", "--source", source, "--set", "a2", "--format", "markdown", "--workers", "2")
	for _, want := range []string{"## A2A\n", "## A2C\n", "2 of 2 scenarios evaluated"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "A2B") {
		t.Errorf("malformed scenario should not have been stored:\n%s", out)
	}
}

func TestFactions(t *testing.T) {
	out := execute(t, "factions")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != faction.Count+1 {
		t.Fatalf("got %d lines, want %d", len(lines), faction.Count+1)
	}
	if !strings.Contains(lines[1], "portugal") || !strings.Contains(lines[1], "64") {
		t.Errorf("first row = %q", lines[1])
	}
}
