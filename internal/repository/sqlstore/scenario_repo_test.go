package sqlstore

import (
	"context"
	"testing"

	"github.com/freeeve/vscc-rating/internal/model"
)

func setupSQLite(t *testing.T) *ScenarioRepo {
	t.Helper()
	repo, err := Open(context.Background(), "sqlite://:memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sampleRecords(n int) []model.ScenarioRecord {
	recs := make([]model.ScenarioRecord, n)
	for i := range recs {
		recs[i] = model.ScenarioRecord{
			Position: i,
			Label:    string(rune('A' + i)),
			Counts:   "counts-" + string(rune('a'+i)),
		}
	}
	return recs
}

func TestSplitURL(t *testing.T) {
	tests := []struct {
		in, driver, dsn string
		wantErr         bool
	}{
		{"postgres://u:p@localhost/db", "postgres", "postgres://u:p@localhost/db", false},
		{"postgresql://localhost/db", "postgres", "postgresql://localhost/db", false},
		{"sqlite://:memory:", "sqlite", ":memory:", false},
		{"sqlite://data/vscc.db", "sqlite", "data/vscc.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", false},
		{"sqlite://", "", "", true},
		{"mysql://localhost/db", "", "", true},
	}
	for _, tt := range tests {
		driver, dsn, err := splitURL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("splitURL(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if driver != tt.driver || dsn != tt.dsn {
			t.Errorf("splitURL(%q) = (%q, %q), want (%q, %q)", tt.in, driver, dsn, tt.driver, tt.dsn)
		}
	}
}

func TestPutAndList(t *testing.T) {
	repo := setupSQLite(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "a2", sampleRecords(3)); err != nil {
		t.Fatalf("put: %v", err)
	}
	recs, err := repo.List(ctx, "a2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i, r := range recs {
		if r.Set != "a2" || r.Position != i || r.Label != string(rune('A'+i)) {
			t.Errorf("record %d = %+v", i, r)
		}
	}
}

func TestPutReplacesSet(t *testing.T) {
	repo := setupSQLite(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "a2", sampleRecords(5)); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := repo.Put(ctx, "a2", sampleRecords(2)); err != nil {
		t.Fatalf("second put: %v", err)
	}
	recs, err := repo.List(ctx, "a2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 records after replace, got %d", len(recs))
	}
}

func TestSets(t *testing.T) {
	repo := setupSQLite(t)
	ctx := context.Background()

	for _, set := range []string{"b1", "a2"} {
		if err := repo.Put(ctx, set, sampleRecords(1)); err != nil {
			t.Fatalf("put %s: %v", set, err)
		}
	}
	sets, err := repo.Sets(ctx)
	if err != nil {
		t.Fatalf("sets: %v", err)
	}
	if len(sets) != 2 || sets[0] != "a2" || sets[1] != "b1" {
		t.Errorf("sets = %v, want [a2 b1]", sets)
	}

	empty, err := repo.List(ctx, "missing")
	if err != nil {
		t.Fatalf("list missing: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no records, got %d", len(empty))
	}
}
