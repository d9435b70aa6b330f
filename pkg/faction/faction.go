// Package faction is the static registry of the 25 playable factions:
// display names, aliases, starting supply centers and victory thresholds.
package faction

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFaction       = errors.New("unknown faction")
	ErrInvalidStartingCount = errors.New("invalid starting supply center count")
)

// Faction identifies one of the playable factions. The numeric value is the
// faction's position in scenario records, so the declaration order is fixed.
type Faction uint8

const (
	Portugal Faction = iota
	Spain
	Netherlands
	England
	France
	Ottoman
	Russia
	Poland
	Inuit
	Ming
	Mughal
	Qing
	Safavid
	UteShoshone
	Abyssinia
	Ajuuraan
	Athapasca
	Austria
	Aymara
	Ayutthaya
	Kongo
	Mali
	Mapuche
	Sweden
	Tokugawa
)

// Count is the number of factions in every scenario.
const Count = 25

type info struct {
	name    string
	start   int
	aliases []string
}

var registry = [Count]info{
	Portugal:    {"portugal", 16, []string{"por"}},
	Spain:       {"spain", 16, nil},
	Netherlands: {"netherlands", 14, []string{"dutch"}},
	England:     {"england", 14, []string{"eng"}},
	France:      {"france", 14, nil},
	Ottoman:     {"ottoman", 10, []string{"ottomans"}},
	Russia:      {"russia", 10, nil},
	Poland:      {"poland", 7, []string{"poland-lithuania"}},
	Inuit:       {"inuit", 5, nil},
	Ming:        {"ming", 5, nil},
	Mughal:      {"mughal", 5, nil},
	Qing:        {"qing", 5, nil},
	Safavid:     {"safavid", 5, nil},
	UteShoshone: {"ute-shoshone", 5, []string{"ute", "shoshone"}},
	Abyssinia:   {"abyssinia", 4, []string{"aby"}},
	Ajuuraan:    {"ajuuraan", 4, []string{"aju"}},
	Athapasca:   {"athapasca", 4, []string{"atha"}},
	Austria:     {"austria", 4, nil},
	Aymara:      {"aymara", 4, nil},
	Ayutthaya:   {"ayutthaya", 4, []string{"ayu"}},
	Kongo:       {"kongo", 4, nil},
	Mali:        {"mali", 4, nil},
	Mapuche:     {"mapuche", 4, nil},
	Sweden:      {"sweden", 4, nil},
	Tokugawa:    {"tokugawa", 4, []string{"toku"}},
}

// victoryCounts maps a starting supply center count to the count that
// completes the faction's victory condition.
var victoryCounts = map[int]int{
	4:  32,
	5:  36,
	7:  42,
	10: 48,
	14: 56,
	16: 64,
}

var (
	byAlias    = make(map[string]Faction)
	thresholds [Count]int
)

func init() {
	for i, fi := range registry {
		f := Faction(i)
		v, err := VictoryCount(fi.start)
		if err != nil {
			panic(fmt.Sprintf("faction registry: %s: %v", fi.name, err))
		}
		thresholds[i] = v
		byAlias[fi.name] = f
		for _, a := range fi.aliases {
			byAlias[a] = f
		}
	}
}

// All returns every faction in registry order.
func All() []Faction {
	all := make([]Faction, Count)
	for i := range all {
		all[i] = Faction(i)
	}
	return all
}

// Valid reports whether f is one of the registered factions.
func (f Faction) Valid() bool {
	return int(f) < Count
}

func (f Faction) String() string {
	if !f.Valid() {
		return fmt.Sprintf("faction(%d)", uint8(f))
	}
	return registry[f].name
}

// StartingCount returns the number of supply centers the faction starts with.
func (f Faction) StartingCount() int {
	return registry[f].start
}

// VictoryThreshold returns the supply center count at which the faction
// completes its victory condition.
func (f Faction) VictoryThreshold() int {
	return thresholds[f]
}

// Aliases returns the alternate spellings accepted by Parse, not including
// the display name.
func (f Faction) Aliases() []string {
	out := make([]string, len(registry[f].aliases))
	copy(out, registry[f].aliases)
	return out
}

// VictoryCount resolves a starting supply center count to its victory threshold.
func VictoryCount(start int) (int, error) {
	v, ok := victoryCounts[start]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStartingCount, start)
	}
	return v, nil
}

// Parse resolves a case-insensitive name or alias to a faction.
func Parse(s string) (Faction, error) {
	f, ok := byAlias[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFaction, s)
	}
	return f, nil
}

// MarshalText encodes the faction as its display name.
func (f Faction) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("marshal faction %d: out of range", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts any name or alias understood by Parse.
func (f *Faction) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = p
	return nil
}
