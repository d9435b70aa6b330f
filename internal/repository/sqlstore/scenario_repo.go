package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/freeeve/vscc-rating/internal/model"
)

// ScenarioRepo handles scenario set database operations.
type ScenarioRepo struct {
	db *sqlx.DB
}

// NewScenarioRepo creates a ScenarioRepo.
func NewScenarioRepo(db *sqlx.DB) *ScenarioRepo {
	return &ScenarioRepo{db: db}
}

// Open connects to databaseURL and returns a repo that owns the connection.
func Open(ctx context.Context, databaseURL string) (*ScenarioRepo, error) {
	db, err := Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return NewScenarioRepo(db), nil
}

// Put replaces every record of the set in one transaction.
func (r *ScenarioRepo) Put(ctx context.Context, set string, recs []model.ScenarioRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put scenarios: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM scenarios WHERE set_name = ?`), set); err != nil {
		return fmt.Errorf("clear set %s: %w", set, err)
	}
	for _, rec := range recs {
		rec.Set = set
		_, err := tx.NamedExecContext(ctx,
			`INSERT INTO scenarios (set_name, position, label, counts)
			 VALUES (:set_name, :position, :label, :counts)`, rec)
		if err != nil {
			return fmt.Errorf("insert scenario %s: %w", rec.Label, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put scenarios: %w", err)
	}
	return nil
}

// List returns the set's records ordered by position.
func (r *ScenarioRepo) List(ctx context.Context, set string) ([]model.ScenarioRecord, error) {
	var recs []model.ScenarioRecord
	err := r.db.SelectContext(ctx, &recs, r.db.Rebind(
		`SELECT set_name, position, label, counts FROM scenarios
		 WHERE set_name = ? ORDER BY position`), set)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	return recs, nil
}

// Sets returns all stored set names in alphabetical order.
func (r *ScenarioRepo) Sets(ctx context.Context) ([]string, error) {
	var sets []string
	if err := r.db.SelectContext(ctx, &sets, `SELECT DISTINCT set_name FROM scenarios ORDER BY set_name`); err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return sets, nil
}

// Close closes the database connection.
func (r *ScenarioRepo) Close() error {
	return r.db.Close()
}
