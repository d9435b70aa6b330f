//go:build integration

package redis

import (
	"context"
	"testing"

	"github.com/freeeve/vscc-rating/internal/model"
	"github.com/freeeve/vscc-rating/internal/testutil"
)

func setup(t *testing.T) *Client {
	t.Helper()
	rdb := testutil.SetupRedis(t)
	testutil.CleanupRedis(t, rdb)
	return NewClientFromPool(rdb)
}

func records(labels ...string) []model.ScenarioRecord {
	recs := make([]model.ScenarioRecord, len(labels))
	for i, l := range labels {
		recs[i] = model.ScenarioRecord{Position: i, Label: l, Counts: "0\t1\t2"}
	}
	return recs
}

func TestScenarioRoundTrip(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	if err := c.Put(ctx, "a2", records("A2A", "A2B", "A2C")); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := c.List(ctx, "a2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, r := range got {
		if r.Set != "a2" || r.Position != i || r.Counts != "0\t1\t2" {
			t.Errorf("record %d = %+v", i, r)
		}
	}
	if got[2].Label != "A2C" {
		t.Errorf("expected A2C last, got %s", got[2].Label)
	}
}

func TestScenarioPutReplaces(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	if err := c.Put(ctx, "a2", records("A", "B", "C")); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := c.Put(ctx, "a2", records("X")); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, err := c.List(ctx, "a2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Label != "X" {
		t.Errorf("expected only X, got %+v", got)
	}
}

func TestScenarioSets(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	for _, set := range []string{"b1", "a2"} {
		if err := c.Put(ctx, set, records("A")); err != nil {
			t.Fatalf("put %s: %v", set, err)
		}
	}
	sets, err := c.Sets(ctx)
	if err != nil {
		t.Fatalf("sets: %v", err)
	}
	if len(sets) != 2 || sets[0] != "a2" || sets[1] != "b1" {
		t.Errorf("sets = %v, want [a2 b1]", sets)
	}
}

func TestScenarioListMissing(t *testing.T) {
	c := setup(t)
	got, err := c.List(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
}
