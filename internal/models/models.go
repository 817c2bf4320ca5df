package models

import (
	"fmt"
	"strings"
)

// PersonTag is one detected person in one photo, already normalized onto the
// closed taxonomies.
type PersonTag struct {
	Color      ShirtColor `yaml:"color"`
	Expression Expression `yaml:"expression"`
}

// Bucket keys the per-photo frequency count.
type Bucket struct {
	Color      ShirtColor
	Expression Expression
}

// PhotoAnalysis is the normalized result of analyzing one photo.
type PhotoAnalysis struct {
	TotalPeople int
	People      []PersonTag
}

// Normalize enforces the analysis invariants: the tag list is authoritative,
// the reported total is advisory. A zero or short total is corrected to the
// tag list's length; a negative total is clamped.
func (a *PhotoAnalysis) Normalize() {
	if a.TotalPeople < 0 {
		a.TotalPeople = 0
	}
	if a.TotalPeople < len(a.People) {
		a.TotalPeople = len(a.People)
	}
}

// CountBuckets returns the frequency of each (color, expression) pair among
// the detected people. Absent pairs read as 0 via the map's zero value.
func (a *PhotoAnalysis) CountBuckets() map[Bucket]int {
	counts := make(map[Bucket]int, len(a.People))
	for _, p := range a.People {
		counts[Bucket{p.Color, p.Expression}]++
	}
	return counts
}

// EnemyRequirement is one clause of a wave's defeat condition: at least Count
// people matching the bucket must appear in a single photo.
type EnemyRequirement struct {
	Color      ShirtColor `yaml:"color"`
	Expression Expression `yaml:"expression"`
	Count      int        `yaml:"count"`
}

// Wave is one timed sub-level.
type Wave struct {
	Name         string             `yaml:"name"`
	TimeLimitSec float64            `yaml:"time_limit_sec"`
	Enemies      []EnemyRequirement `yaml:"enemies"`
}

// TotalEnemyCount is the score gained for clearing the wave. Negative counts
// in individual clauses contribute nothing.
func (w *Wave) TotalEnemyCount() int {
	total := 0
	for _, e := range w.Enemies {
		if e.Count > 0 {
			total += e.Count
		}
	}
	return total
}

// WaveSet is the full progression config for one game run.
type WaveSet struct {
	GameClearScene string `yaml:"game_clear_scene"`
	GameOverScene  string `yaml:"game_over_scene"`
	Waves          []Wave `yaml:"waves"`
}

// HintText renders the outstanding requirements for display, e.g.
// "Target: smile×red×2, wink×aqua_blue×1".
func HintText(requires []EnemyRequirement) string {
	if len(requires) == 0 {
		return "Target: (none)"
	}
	parts := make([]string, len(requires))
	for i, r := range requires {
		parts[i] = fmt.Sprintf("%s×%s×%d", r.Expression, r.Color, r.Count)
	}
	return "Target: " + strings.Join(parts, ", ")
}
