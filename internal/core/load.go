package core

// Force is the internal force pair at one end of an element as exported by
// the analysis model
type Force struct {
	N  float64 // axial force (kN), tension positive
	My float64 // bending moment about local y (kNm)
}

// Add returns the component-wise sum
func (f Force) Add(g Force) Force {
	return Force{N: f.N + g.N, My: f.My + g.My}
}

// Scale multiplies both components by a load factor
func (f Force) Scale(factor float64) Force {
	return Force{N: f.N * factor, My: f.My * factor}
}

// LoadsPerLine is the demand on one element under one load case
type LoadsPerLine struct {
	Element   *Element
	StartLoad Force
	EndLoad   Force
}

// At returns the start load when atStart is set, else the end load
func (l LoadsPerLine) At(atStart bool) Force {
	if atStart {
		return l.StartLoad
	}
	return l.EndLoad
}

// LoadCase is a named set of element demands
type LoadCase struct {
	ID            int
	Name          string
	LoadsPerLines []LoadsPerLine
}

// LoadsFor returns the records of the load case that reference el. Matching
// is by identity; an equal copy of el does not match.
func (lc *LoadCase) LoadsFor(el *Element) []LoadsPerLine {
	var out []LoadsPerLine
	for _, l := range lc.LoadsPerLines {
		if l.Element == el {
			out = append(out, l)
		}
	}
	return out
}
