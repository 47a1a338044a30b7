package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResultsSummary(t *testing.T) {
	checks := []CheckSummary{
		{Name: "Analysis", CheckValue: 100, UnityCheckMessage: "100.0%"},
		{Name: "Plates", CheckValue: 0.42, UnityCheckMessage: "OK"},
		{Name: "Welds", CheckValue: 0.87, UnityCheckMessage: "OK"},
		{Name: "Buckling", CheckValue: 12.3, UnityCheckMessage: "Not calculated"},
	}
	r := NewResultsSummary(checks)

	require.NotNil(t, r.Analysis)
	assert.Equal(t, 100.0, *r.Analysis)
	require.NotNil(t, r.Plates)
	assert.Equal(t, 0.42, *r.Plates)
	assert.Nil(t, r.Bolts, "bolts were not reported")
	assert.Equal(t, "Analysis: 100.0% Plates: OK Welds: OK Buckling: Not calculated", r.Summary)

	peak, ok := r.MaxCheck()
	require.True(t, ok)
	assert.Equal(t, 12.3, peak)
}

func TestLookupCheck(t *testing.T) {
	checks := []CheckSummary{{Name: "Bolts", CheckValue: 0.5}, {Name: "Bolts", CheckValue: 0.9}}

	v, ok := LookupCheck(checks, "Bolts")
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = LookupCheck(checks, "Welds")
	assert.False(t, ok)
}

func TestMaxCheckEmpty(t *testing.T) {
	r := NewResultsSummary(nil)
	_, ok := r.MaxCheck()
	assert.False(t, ok)
	assert.Empty(t, r.Summary)
}
