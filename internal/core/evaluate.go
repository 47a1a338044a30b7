package core

import "math"

// Unit conversions from the exported analysis units to N and mm
const (
	kNToN    = 1e3
	kNmToNmm = 1e6
)

// AxialLoadsByCase returns |N| at the member's joint end for every load
// record that references the member's element, in load case order
func (m *Member) AxialLoadsByCase(cases []*LoadCase) []float64 {
	var out []float64
	for _, lc := range cases {
		for _, l := range lc.LoadsFor(m.Element) {
			out = append(out, math.Abs(l.At(m.IsStartPoint).N))
		}
	}
	return out
}

// MaxAxialLoad returns the largest absolute axial force (kN) at the joint end
// of the member over all given load cases
func (m *Member) MaxAxialLoad(cases []*LoadCase) (float64, error) {
	loads := m.AxialLoadsByCase(cases)
	if len(loads) == 0 {
		return 0, &EmptyResultError{Quantity: "max axial load", ElementID: m.Element.ID}
	}
	peak := loads[0]
	for _, n := range loads[1:] {
		peak = math.Max(peak, n)
	}
	return peak, nil
}

// MaxStress returns the largest extreme fibre stress (N/mm²) at the joint end
// of the member over all given load cases, N/A ± My/W. Only bending about the
// local y axis is taken into account.
func (m *Member) MaxStress(cases []*LoadCase) (float64, error) {
	cs := m.Element.CrossSection
	if cs == nil {
		return 0, &MissingCrossSectionError{ElementID: m.Element.ID}
	}
	area, modulus := cs.Area(), cs.MomentOfResistance()

	found := false
	var peak float64
	for _, lc := range cases {
		for _, l := range lc.LoadsFor(m.Element) {
			f := l.At(m.IsStartPoint)
			n := f.N * kNToN
			my := f.My * kNmToNmm

			sigma1 := n/area + my/modulus
			sigma2 := n/area - my/modulus
			sigma := math.Max(math.Abs(sigma1), math.Abs(sigma2))
			if !found || sigma > peak {
				peak = sigma
				found = true
			}
		}
	}
	if !found {
		return 0, &EmptyResultError{Quantity: "max stress", ElementID: m.Element.ID}
	}
	return peak, nil
}
