package report

import (
	"encoding/json"
	"io"

	"github.com/freeeve/vscc-rating/internal/runner"
	"github.com/freeeve/vscc-rating/pkg/faction"
)

// JSON writes one document holding every scenario.
type JSON struct {
	Indent string
}

type jsonScenario struct {
	Position int                                    `json:"position"`
	Label    string                                 `json:"label"`
	Ratios   map[faction.Faction]float64            `json:"ratios,omitempty"`
	Changes  map[faction.Faction]map[string]float64 `json:"changes,omitempty"`
	Error    string                                 `json:"error,omitempty"`
}

type jsonReport struct {
	Strategies []string       `json:"strategies"`
	Scenarios  []jsonScenario `json:"scenarios"`
	Summary    runner.Summary `json:"summary"`
}

func (j JSON) Format(w io.Writer, strategies []string, results []runner.Result) error {
	doc := jsonReport{
		Strategies: strategies,
		Scenarios:  make([]jsonScenario, len(results)),
		Summary:    runner.Summarize(results),
	}
	for i, r := range results {
		s := jsonScenario{Position: r.Position, Label: r.Label}
		if r.Err != nil {
			s.Error = r.Err.Error()
			doc.Scenarios[i] = s
			continue
		}
		s.Ratios = make(map[faction.Faction]float64, faction.Count)
		s.Changes = make(map[faction.Faction]map[string]float64, faction.Count)
		for _, f := range faction.All() {
			s.Ratios[f] = r.Outcome.Ratios[f]
			row := make(map[string]float64, len(r.Outcome.Results))
			for _, sr := range r.Outcome.Results {
				row[sr.Name] = Round(sr.Changes[f])
			}
			s.Changes[f] = row
		}
		doc.Scenarios[i] = s
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	return enc.Encode(doc)
}
