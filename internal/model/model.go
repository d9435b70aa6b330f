package model

// ScenarioRecord is one stored scenario input: an ordered set name, a display
// label and the raw supply center counts as text. Counts are parsed and
// validated only when the scenario is evaluated.
type ScenarioRecord struct {
	Set      string `db:"set_name" json:"set"`
	Position int    `db:"position" json:"position"`
	Label    string `db:"label" json:"label"`
	Counts   string `db:"counts" json:"counts"`
}
