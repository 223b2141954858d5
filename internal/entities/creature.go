// Package entities provides core data structures for geoquest.
package entities

import "sort"

// ChoiceCount is the number of answer choices every quiz carries
const ChoiceCount = 4

// Difficulty bounds for creatures
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Hit point bounds and default for creatures
const (
	MinCreatureHP     = 3
	MaxCreatureHP     = 30
	DefaultCreatureHP = 7
)

// Quiz is a single multiple-choice geography question
type Quiz struct {
	Question string              `json:"q"`
	Choices  [ChoiceCount]string `json:"c"`
	Answer   int                 `json:"a"`
	Hint     string              `json:"hint,omitempty"`
}

// Creature is a region-themed enemy as defined by the dataset. Difficulty and
// HP are already clamped into their valid ranges.
type Creature struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Image       string `json:"image"`
	Description string `json:"desc"`
	Difficulty  int    `json:"difficulty"`
	HP          int    `json:"hp"`
	Quizzes     []Quiz `json:"quizzes"`
}

// Dataset is the full set of creatures keyed by region identifier
type Dataset struct {
	Version  int                 `json:"version"`
	Monsters map[string]Creature `json:"monsters"`
}

// Creature looks up the creature for a region
func (d *Dataset) Creature(regionID string) (Creature, bool) {
	if d == nil {
		return Creature{}, false
	}
	c, ok := d.Monsters[regionID]
	return c, ok
}

// RegionIDs returns every region identifier in sorted order
func (d *Dataset) RegionIDs() []string {
	if d == nil {
		return nil
	}
	ids := make([]string, 0, len(d.Monsters))
	for id := range d.Monsters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy of the creature so a battle can hold its own
// snapshot
func (c Creature) Clone() Creature {
	out := c
	if c.Quizzes != nil {
		out.Quizzes = make([]Quiz, len(c.Quizzes))
		copy(out.Quizzes, c.Quizzes)
	}
	return out
}

// ClampDifficulty forces a difficulty into [MinDifficulty, MaxDifficulty]
func ClampDifficulty(d int) int {
	return clamp(d, MinDifficulty, MaxDifficulty)
}

// ClampCreatureHP forces a hit point value into [MinCreatureHP, MaxCreatureHP]
func ClampCreatureHP(hp int) int {
	return clamp(hp, MinCreatureHP, MaxCreatureHP)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
