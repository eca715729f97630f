package difficulty

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tier names one of the difficulty levels a puzzle can be generated or
// solved at.
type Tier string

const (
	Easy   Tier = "easy"
	Normal Tier = "normal"
	Tricky Tier = "tricky"
	Hard   Tier = "hard"
)

// WallsPreset configures how aggressively the Walls generator thins border
// walls.
type WallsPreset struct {
	Tier Tier `yaml:"tier"`
	// BorderReduceFraction bounds, as a fraction of removable border walls,
	// how many are randomly chosen for removal (random_upto(rs, bordernum*fraction)).
	BorderReduceFraction float64 `yaml:"border_reduce_fraction"`
	// FullBorderRemoval forces every removable border wall to be attempted,
	// matching DIFF_HARD's deterministic borderreduce = bordernum.
	FullBorderRemoval bool `yaml:"full_border_removal"`
}

// AlcazarPreset configures the Alcazar generator's border-wall removal
// cap. BorderRemovalCap is exposed per tier so a future solver-strength
// difference has somewhere to live, but every tier currently defaults to
// the same cap.
type AlcazarPreset struct {
	Tier             Tier `yaml:"tier"`
	BorderRemovalCap int  `yaml:"border_removal_cap"`
}

// StellarPreset configures which search strategies a tier's solver may
// rely on: normal is restricted to the sequential sweeps, hard may fall
// through to the recursive search.
type StellarPreset struct {
	Tier                 Tier `yaml:"tier"`
	AllowRecursiveSearch bool `yaml:"allow_recursive_search"`
}

// Table is the full set of presets for every variant and tier.
type Table struct {
	Walls   map[Tier]WallsPreset   `yaml:"walls"`
	Alcazar map[Tier]AlcazarPreset `yaml:"alcazar"`
	Stellar map[Tier]StellarPreset `yaml:"stellar"`
}

// Default returns the built-in preset table.
func Default() *Table {
	return &Table{
		Walls: map[Tier]WallsPreset{
			Easy:   {Tier: Easy, BorderReduceFraction: 0.25},
			Normal: {Tier: Normal, BorderReduceFraction: 0.5},
			Tricky: {Tier: Tricky, BorderReduceFraction: 1.0},
			Hard:   {Tier: Hard, FullBorderRemoval: true},
		},
		Alcazar: map[Tier]AlcazarPreset{
			Easy:   {Tier: Easy, BorderRemovalCap: 200},
			Normal: {Tier: Normal, BorderRemovalCap: 200},
			Hard:   {Tier: Hard, BorderRemovalCap: 200},
		},
		Stellar: map[Tier]StellarPreset{
			Normal: {Tier: Normal, AllowRecursiveSearch: false},
			Hard:   {Tier: Hard, AllowRecursiveSearch: true},
		},
	}
}

// LoadFromFile reads a preset table from a YAML file, falling back to
// Default's entries for any tier the file omits.
func LoadFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading difficulty file: %w", err)
	}

	table := Default()
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("parsing difficulty YAML: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks every configured preset for internally consistent values.
func (t *Table) Validate() error {
	for tier, p := range t.Walls {
		if p.BorderReduceFraction < 0 || p.BorderReduceFraction > 1 {
			return fmt.Errorf("difficulty: walls tier %q: border_reduce_fraction must be in [0,1]", tier)
		}
	}
	for tier, p := range t.Alcazar {
		if p.BorderRemovalCap < 0 {
			return fmt.Errorf("difficulty: alcazar tier %q: border_removal_cap must be non-negative", tier)
		}
	}
	if len(t.Stellar) == 0 {
		return fmt.Errorf("difficulty: stellar table must not be empty")
	}
	return nil
}
