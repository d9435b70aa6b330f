package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/freeeve/vscc-rating/internal/model"
)

// Key patterns for stored scenario sets.
const setsKey = "scenario_sets"

func scenariosKey(set string) string { return "scenarios:" + set }

// Put replaces the set's list atomically and registers the set name.
func (c *Client) Put(ctx context.Context, set string, recs []model.ScenarioRecord) error {
	values := make([]any, 0, len(recs))
	for _, rec := range recs {
		rec.Set = set
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal scenario %s: %w", rec.Label, err)
		}
		values = append(values, data)
	}

	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, scenariosKey(set))
	if len(values) > 0 {
		pipe.RPush(ctx, scenariosKey(set), values...)
	}
	pipe.SAdd(ctx, setsKey, set)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put scenarios: %w", err)
	}
	return nil
}

// List returns the set's records in list order.
func (c *Client) List(ctx context.Context, set string) ([]model.ScenarioRecord, error) {
	items, err := c.rdb.LRange(ctx, scenariosKey(set), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	recs := make([]model.ScenarioRecord, 0, len(items))
	for i, item := range items {
		var rec model.ScenarioRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode scenario %d of %s: %w", i, set, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Sets returns every registered set name in alphabetical order.
func (c *Client) Sets(ctx context.Context) ([]string, error) {
	sets, err := c.rdb.SMembers(ctx, setsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	sort.Strings(sets)
	return sets, nil
}
