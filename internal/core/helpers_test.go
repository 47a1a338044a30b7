package core

import (
	"testing"

	"github.com/Gintarich/KarambaIDEA/internal/crosssection"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
	"github.com/stretchr/testify/require"
)

func newTestElement(t *testing.T, id int, cs *crosssection.CrossSection, start, end geometry.Point) *Element {
	t.Helper()
	el, err := NewElement(id, "", cs, geometry.Line{Start: start, End: end})
	require.NoError(t, err)
	return el
}

func iSection() *crosssection.CrossSection {
	return &crosssection.CrossSection{Name: "IPE300", Shape: crosssection.ISection, Width: 150, Height: 300, FlangeThickness: 10.7, WebThickness: 7.1}
}

func chs() *crosssection.CrossSection {
	return &crosssection.CrossSection{Name: "CHS200x8", Shape: crosssection.CHSsection, Width: 200, Height: 200, Thickness: 8}
}

func rhs() *crosssection.CrossSection {
	return &crosssection.CrossSection{Name: "RHS200x100x6", Shape: crosssection.RHSsection, Width: 100, Height: 200, Thickness: 6}
}

func plate() *crosssection.CrossSection {
	return &crosssection.CrossSection{Name: "FL100x20", Shape: crosssection.Rectangular, Width: 20, Height: 100}
}
