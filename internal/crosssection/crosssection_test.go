package crosssection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
	}{
		{"ISection", ISection},
		{"i", ISection},
		{" chs ", CHSsection},
		{"CHSsection", CHSsection},
		{"SHS", RHSsection},
		{"rhsSection", RHSsection},
		{"rect", Rectangular},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseShape("LSection")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRectangularProperties(t *testing.T) {
	c := &CrossSection{Name: "FL", Shape: Rectangular, Width: 20, Height: 100}
	require.NoError(t, c.Validate())

	assert.InDelta(t, 2000, c.Area(), 1e-9)
	assert.InDelta(t, 20*100*100/6.0, c.MomentOfResistance(), 1e-9)
}

func TestISectionProperties(t *testing.T) {
	// HEA200 nominal plates, root radii ignored
	c := &CrossSection{Name: "HEA200", Shape: ISection, Width: 200, Height: 190, FlangeThickness: 10, WebThickness: 6.5}
	require.NoError(t, c.Validate())

	wantA := 2*200*10.0 + 170*6.5
	wantI := (200*math.Pow(190, 3) - 193.5*math.Pow(170, 3)) / 12
	assert.InDelta(t, wantA, c.Area(), 1e-9)
	assert.InDelta(t, wantI, c.SecondMomentOfArea(), 1e-6)
	assert.InDelta(t, 2*wantI/190, c.MomentOfResistance(), 1e-6)
}

func TestRHSProperties(t *testing.T) {
	c := &CrossSection{Name: "RHS200x100x8", Shape: RHSsection, Width: 100, Height: 200, Thickness: 8}
	require.NoError(t, c.Validate())

	wantA := 100*200.0 - 84*184
	wantI := (100*math.Pow(200, 3) - 84*math.Pow(184, 3)) / 12
	assert.InDelta(t, wantA, c.Area(), 1e-9)
	assert.InDelta(t, 2*wantI/200, c.MomentOfResistance(), 1e-6)
}

func TestCHSProperties(t *testing.T) {
	c := &CrossSection{Name: "CHS200x10", Shape: CHSsection, Width: 200, Height: 200, Thickness: 10}
	require.NoError(t, c.Validate())

	assert.InDelta(t, 100, c.Radius(), 1e-12)
	assert.InDelta(t, math.Pi*(100*100-90*90), c.Area(), 1e-9)
	wantI := math.Pi * (math.Pow(100, 4) - math.Pow(90, 4)) / 4
	assert.InDelta(t, wantI/100, c.MomentOfResistance(), 1e-6)
}

func TestSolidFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		cs    CrossSection
		wantA float64
		wantW float64
	}{
		{"I without plates", CrossSection{Shape: ISection, Width: 100, Height: 200}, 20000, 100 * 200 * 200 / 6.0},
		{"RHS without wall", CrossSection{Shape: RHSsection, Width: 100, Height: 200}, 20000, 100 * 200 * 200 / 6.0},
		{"CHS without wall", CrossSection{Shape: CHSsection, Width: 100, Height: 100}, math.Pi * 2500, math.Pi * 50 * 50 * 50 / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantA, tt.cs.Area(), 1e-6)
			assert.InDelta(t, tt.wantW, tt.cs.MomentOfResistance(), 1e-6)
		})
	}
}

func TestTabulatedValuesTakePrecedence(t *testing.T) {
	c := &CrossSection{Shape: Rectangular, Width: 10, Height: 10, TabulatedArea: 2000, TabulatedModulus: 50000}

	assert.Equal(t, 2000.0, c.Area())
	assert.Equal(t, 50000.0, c.MomentOfResistance())
}

func TestPropertiesAreDeterministic(t *testing.T) {
	c := &CrossSection{Shape: ISection, Width: 150, Height: 300, FlangeThickness: 10.7, WebThickness: 7.1}
	a1, w1 := c.Area(), c.MomentOfResistance()
	a2, w2 := c.Area(), c.MomentOfResistance()

	assert.Equal(t, a1, a2)
	assert.Equal(t, w1, w2)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cs   CrossSection
	}{
		{"unknown shape", CrossSection{Shape: "LSection", Width: 1, Height: 1}},
		{"zero width", CrossSection{Shape: Rectangular, Height: 1}},
		{"negative height", CrossSection{Shape: Rectangular, Width: 1, Height: -1}},
		{"negative thickness", CrossSection{Shape: RHSsection, Width: 10, Height: 10, Thickness: -1}},
		{"negative tabulated", CrossSection{Shape: Rectangular, Width: 1, Height: 1, TabulatedArea: -5}},
		{"flanges too thick", CrossSection{Shape: ISection, Width: 100, Height: 20, FlangeThickness: 10, WebThickness: 5}},
		{"web too wide", CrossSection{Shape: ISection, Width: 10, Height: 200, FlangeThickness: 10, WebThickness: 12}},
		{"RHS closed", CrossSection{Shape: RHSsection, Width: 10, Height: 100, Thickness: 5}},
		{"CHS closed", CrossSection{Shape: CHSsection, Width: 100, Height: 100, Thickness: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cs.Validate()
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}
