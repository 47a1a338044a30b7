package core

import (
	"fmt"
	"sort"
	"strings"
)

// LoadCombination is a factored superposition of named load cases,
// e.g. 1.35 G + 1.5 Q
type LoadCombination struct {
	Name    string
	Factors map[string]float64 // load factor per load case name
}

// Description renders the combination as "1.35 G + 1.50 Q", cases ordered by name
func (c LoadCombination) Description() string {
	names := make([]string, 0, len(c.Factors))
	for name := range c.Factors {
		names = append(names, name)
	}
	sort.Strings(names)

	terms := make([]string, 0, len(names))
	for _, name := range names {
		terms = append(terms, fmt.Sprintf("%.2f %s", c.Factors[name], name))
	}
	return strings.Join(terms, " + ")
}

// Apply builds a new load case holding the factored sum of the referenced
// cases. Loads on the same element are summed per end; elements keep the
// order in which they first appear. The new case gets the given id.
func (c LoadCombination) Apply(id int, cases []*LoadCase) (*LoadCase, error) {
	byName := make(map[string]*LoadCase, len(cases))
	for _, lc := range cases {
		byName[lc.Name] = lc
	}

	names := make([]string, 0, len(c.Factors))
	for name := range c.Factors {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("combination %q: %w %q", c.Name, ErrUnknownLoadCase, name)
		}
		names = append(names, name)
	}
	// map order is random; sorted names keep the element order reproducible
	sort.Strings(names)

	combined := &LoadCase{ID: id, Name: c.Name}
	index := make(map[*Element]int)
	for _, name := range names {
		factor := c.Factors[name]
		for _, l := range byName[name].LoadsPerLines {
			i, ok := index[l.Element]
			if !ok {
				i = len(combined.LoadsPerLines)
				index[l.Element] = i
				combined.LoadsPerLines = append(combined.LoadsPerLines, LoadsPerLine{Element: l.Element})
			}
			acc := &combined.LoadsPerLines[i]
			acc.StartLoad = acc.StartLoad.Add(l.StartLoad.Scale(factor))
			acc.EndLoad = acc.EndLoad.Add(l.EndLoad.Scale(factor))
		}
	}
	return combined, nil
}
