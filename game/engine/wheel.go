package engine

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"
)

// SpinnerLayout maps each section to the weight of each movement token
type SpinnerLayout map[string]map[string]int

// SpinResult is the outcome of one spin
type SpinResult struct {
	Section string `json:"section"`
	Moves   string `json:"moves"`
}

// Chance is one movement token of a section with its weight
type Chance struct {
	Token  string `json:"token"`
	Weight int    `json:"weight"`
}

// WheelLayout is the ordered set of spinner sections
type WheelLayout struct {
	sections []WheelSection
}

// NewWheelLayout copies the given sections into a layout
func NewWheelLayout(sections []WheelSection) *WheelLayout {
	layout := &WheelLayout{sections: make([]WheelSection, 0, len(sections))}
	for _, s := range sections {
		layout.sections = append(layout.sections, WheelSection{Name: s.Name, Chances: maps.Clone(s.Chances)})
	}
	return layout
}

// DefaultWheelSections is the spinner used when a config does not supply one
func DefaultWheelSections() []WheelSection {
	return []WheelSection{
		{Name: DolphinType, Chances: map[string]int{"1": 1, "2": 1, "3": 2, DiveMove: 1}},
		{Name: SharkType, Chances: map[string]int{"1": 1, "2": 2, "3": 1}},
		{Name: KrakenType, Chances: map[string]int{"1": 2, "2": 1, DiveMove: 1}},
		{Name: SeamunsterType, Chances: map[string]int{"1": 2, "2": 1, "3": 1}},
	}
}

// Sections returns the section names in layout order
func (w *WheelLayout) Sections() []string {
	names := make([]string, 0, len(w.sections))
	for _, s := range w.sections {
		names = append(names, s.Name)
	}
	return names
}

// ChancesFor returns the chances of a section ordered by token. An unknown
// section has no chances.
func (w *WheelLayout) ChancesFor(section string) []Chance {
	var chances []Chance
	for _, s := range w.sections {
		if s.Name != section {
			continue
		}
		for _, token := range slices.Sorted(maps.Keys(s.Chances)) {
			chances = append(chances, Chance{Token: token, Weight: s.Chances[token]})
		}
	}
	return chances
}

// SpinnerLayout returns the layout in map form for display
func (w *WheelLayout) SpinnerLayout() SpinnerLayout {
	layout := make(SpinnerLayout, len(w.sections))
	for _, s := range w.sections {
		if layout[s.Name] == nil {
			layout[s.Name] = make(map[string]int)
		}
		maps.Copy(layout[s.Name], s.Chances)
	}
	return layout
}

// spin picks a section uniformly, then a token with probability proportional
// to its weight
func (w *WheelLayout) spin(rng *rand.Rand) (SpinResult, error) {
	if len(w.sections) == 0 {
		return SpinResult{}, fmt.Errorf("%w: spinner layout is empty", ErrGame)
	}
	section := w.sections[rng.Intn(len(w.sections))].Name

	var options []string
	for _, c := range w.ChancesFor(section) {
		for range c.Weight {
			options = append(options, c.Token)
		}
	}
	if len(options) == 0 {
		return SpinResult{}, fmt.Errorf("%w: section %q has no chances", ErrGame, section)
	}
	return SpinResult{Section: section, Moves: options[rng.Intn(len(options))]}, nil
}
