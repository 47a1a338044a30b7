package core

import (
	"testing"

	"github.com/Gintarich/KarambaIDEA/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalEccentricity(t *testing.T) {
	tests := []struct {
		name string
		c, a geometry.Point
		dir  geometry.Vector
		want float64
	}{
		{"on the line", geometry.Point{X: 250, Y: 250, Z: 250}, geometry.Point{}, geometry.Vector{X: 1, Y: 1, Z: 1}, 0},
		{"at the reference point", geometry.Point{X: 3}, geometry.Point{X: 3}, geometry.Vector{Y: 2}, 0},
		{"offset in y", geometry.Point{X: 500, Y: 80}, geometry.Point{}, geometry.Vector{X: 1}, 80},
		{"offset in z", geometry.Point{X: -20, Z: -35}, geometry.Point{X: 100}, geometry.Vector{X: 3}, 35},
		{"3-4-5", geometry.Point{Y: 3, Z: 4}, geometry.Point{X: 7}, geometry.Vector{X: -1}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalEccentricity(tt.c, tt.a, tt.dir)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLocalEccentricityScaleInvariant(t *testing.T) {
	c := geometry.Point{X: 120, Y: -45, Z: 300}
	a := geometry.Point{X: 10, Y: 5, Z: -2}
	dir := geometry.Vector{X: 0.3, Y: 1.7, Z: -0.4}

	want, err := LocalEccentricity(c, a, dir)
	require.NoError(t, err)
	for _, s := range []float64{1e-3, 0.5, 2, -1, -250, 1e4} {
		got, err := LocalEccentricity(c, a, dir.Scale(s))
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9*want, "scale %g", s)
	}
}

func TestLocalEccentricityDegenerate(t *testing.T) {
	_, err := LocalEccentricity(geometry.Point{X: 1}, geometry.Point{}, geometry.Vector{})
	require.ErrorIs(t, err, ErrDegenerateGeometry)

	var degenerate *DegenerateGeometryError
	assert.ErrorAs(t, err, &degenerate)
}
