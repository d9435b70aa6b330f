package repository

import (
	"context"

	"github.com/freeeve/vscc-rating/internal/model"
)

// ScenarioRepository stores named sets of scenario inputs. Evaluation
// results are never written back.
type ScenarioRepository interface {
	// Put replaces the named set with recs.
	Put(ctx context.Context, set string, recs []model.ScenarioRecord) error
	// List returns the set's records ordered by position.
	List(ctx context.Context, set string) ([]model.ScenarioRecord, error)
	// Sets returns the names of all stored sets.
	Sets(ctx context.Context) ([]string, error)
	Close() error
}
