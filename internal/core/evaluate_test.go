package core

import (
	"math/rand"
	"testing"

	"github.com/Gintarich/KarambaIDEA/internal/crosssection"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxAxialLoadSingleRecord(t *testing.T) {
	el := newTestElement(t, 1, iSection(), geometry.Point{}, geometry.Point{X: 3000})
	cases := []*LoadCase{
		{Name: "LC1", LoadsPerLines: []LoadsPerLine{{Element: el, StartLoad: Force{N: -142.5}, EndLoad: Force{N: 10}}}},
	}

	m := &Member{Element: el, IsStartPoint: true}
	got, err := m.MaxAxialLoad(cases)
	require.NoError(t, err)
	assert.Equal(t, 142.5, got)

	m.IsStartPoint = false
	got, err = m.MaxAxialLoad(cases)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestMaxAxialLoadAcrossCases(t *testing.T) {
	el := newTestElement(t, 1, iSection(), geometry.Point{}, geometry.Point{X: 3000})
	other := newTestElement(t, 2, iSection(), geometry.Point{}, geometry.Point{Y: 3000})
	cases := []*LoadCase{
		{Name: "G", LoadsPerLines: []LoadsPerLine{
			{Element: el, StartLoad: Force{N: 50}},
			{Element: other, StartLoad: Force{N: 900}},
		}},
		{Name: "Q", LoadsPerLines: []LoadsPerLine{
			{Element: el, StartLoad: Force{N: -120}},
		}},
		{Name: "W", LoadsPerLines: []LoadsPerLine{
			{Element: el, StartLoad: Force{N: 80}},
		}},
	}

	m := &Member{Element: el, IsStartPoint: true}
	got, err := m.MaxAxialLoad(cases)
	require.NoError(t, err)
	assert.Equal(t, 120.0, got)
	assert.Equal(t, []float64{50, 120, 80}, m.AxialLoadsByCase(cases))
}

func TestMaxAxialLoadMatchesByIdentity(t *testing.T) {
	el := newTestElement(t, 1, iSection(), geometry.Point{}, geometry.Point{X: 3000})
	twin := *el
	cases := []*LoadCase{
		{Name: "LC1", LoadsPerLines: []LoadsPerLine{{Element: &twin, StartLoad: Force{N: 10}}}},
	}

	m := &Member{Element: el, IsStartPoint: true}
	_, err := m.MaxAxialLoad(cases)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestEmptyResult(t *testing.T) {
	el := newTestElement(t, 7, iSection(), geometry.Point{}, geometry.Point{X: 3000})
	m := &Member{Element: el, IsStartPoint: true}

	for _, cases := range [][]*LoadCase{nil, {{Name: "empty"}}} {
		_, err := m.MaxAxialLoad(cases)
		require.ErrorIs(t, err, ErrEmptyResult)

		var empty *EmptyResultError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, 7, empty.ElementID)

		_, err = m.MaxStress(cases)
		assert.ErrorIs(t, err, ErrEmptyResult)
	}
}

func TestMaxStressEndToEnd(t *testing.T) {
	cs := &crosssection.CrossSection{Name: "solid", Shape: crosssection.Rectangular, Width: 10, Height: 10, TabulatedArea: 2000, TabulatedModulus: 50000}
	el := newTestElement(t, 1, cs, geometry.Point{}, geometry.Point{X: 1000})
	cases := []*LoadCase{
		{Name: "LC1", LoadsPerLines: []LoadsPerLine{{Element: el, StartLoad: Force{N: 100, My: 10}}}},
	}

	m := &Member{Element: el, IsStartPoint: true}
	got, err := m.MaxStress(cases)
	require.NoError(t, err)
	// σ1 = 50 + 200, σ2 = 50 − 200
	assert.InDelta(t, 250, got, 1e-9)
}

func TestMaxStressUsesCompressionFibre(t *testing.T) {
	cs := &crosssection.CrossSection{Shape: crosssection.Rectangular, Width: 10, Height: 10, TabulatedArea: 1000, TabulatedModulus: 10000}
	el := newTestElement(t, 1, cs, geometry.Point{}, geometry.Point{X: 1000})
	cases := []*LoadCase{
		{Name: "LC1", LoadsPerLines: []LoadsPerLine{{Element: el, EndLoad: Force{N: -100, My: 1}}}},
		{Name: "LC2", LoadsPerLines: []LoadsPerLine{{Element: el, EndLoad: Force{N: 20, My: 0}}}},
	}

	m := &Member{Element: el, IsStartPoint: false}
	got, err := m.MaxStress(cases)
	require.NoError(t, err)
	// LC1: −100 − 100 = −200 → 200
	assert.InDelta(t, 200, got, 1e-9)
}

func TestAggregationIsOrderIndependent(t *testing.T) {
	el := newTestElement(t, 1, iSection(), geometry.Point{}, geometry.Point{X: 3000})
	other := newTestElement(t, 2, rhs(), geometry.Point{}, geometry.Point{Y: 3000})

	rng := rand.New(rand.NewSource(42))
	var cases []*LoadCase
	for i := 0; i < 6; i++ {
		lc := &LoadCase{ID: i}
		for k := 0; k < 4; k++ {
			target := el
			if k%2 == 1 {
				target = other
			}
			lc.LoadsPerLines = append(lc.LoadsPerLines, LoadsPerLine{
				Element:   target,
				StartLoad: Force{N: rng.Float64()*400 - 200, My: rng.Float64()*60 - 30},
				EndLoad:   Force{N: rng.Float64()*400 - 200, My: rng.Float64()*60 - 30},
			})
		}
		cases = append(cases, lc)
	}

	m := &Member{Element: el, IsStartPoint: true}
	wantN, err := m.MaxAxialLoad(cases)
	require.NoError(t, err)
	wantS, err := m.MaxStress(cases)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		shuffled := make([]*LoadCase, len(cases))
		for j, lc := range cases {
			copied := &LoadCase{ID: lc.ID, LoadsPerLines: append([]LoadsPerLine(nil), lc.LoadsPerLines...)}
			rng.Shuffle(len(copied.LoadsPerLines), func(a, b int) {
				copied.LoadsPerLines[a], copied.LoadsPerLines[b] = copied.LoadsPerLines[b], copied.LoadsPerLines[a]
			})
			shuffled[j] = copied
		}
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		gotN, err := m.MaxAxialLoad(shuffled)
		require.NoError(t, err)
		gotS, err := m.MaxStress(shuffled)
		require.NoError(t, err)
		assert.Equal(t, wantN, gotN)
		assert.Equal(t, wantS, gotS)
	}
}

func TestNewElementRequiresCrossSection(t *testing.T) {
	_, err := NewElement(7, "", nil, geometry.Line{End: geometry.Point{X: 1000}})
	require.ErrorIs(t, err, ErrMissingCrossSection)

	var missing *MissingCrossSectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 7, missing.ElementID)
}

func TestMaxStressWithoutCrossSection(t *testing.T) {
	// elements built as literals bypass NewElement
	el := &Element{ID: 3, Line: geometry.Line{End: geometry.Point{X: 1000}}}
	cases := []*LoadCase{
		{Name: "LC1", LoadsPerLines: []LoadsPerLine{{Element: el, StartLoad: Force{N: 100, My: 10}}}},
	}

	m := &Member{Element: el, IsStartPoint: true}
	got, err := m.MaxStress(cases)
	assert.Zero(t, got)
	assert.ErrorIs(t, err, ErrMissingCrossSection)

	// axial load needs no section
	n, err := m.MaxAxialLoad(cases)
	require.NoError(t, err)
	assert.Equal(t, 100.0, n)
}
