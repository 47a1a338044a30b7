package core

import (
	"testing"

	"github.com/Gintarich/KarambaIDEA/internal/crosssection"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
	"github.com/stretchr/testify/assert"
)

func TestDefaultWeldType(t *testing.T) {
	tests := []struct {
		name string
		cs   *crosssection.CrossSection
		want WeldType
	}{
		{"I-section", iSection(), WeldDoubleFillet},
		{"CHS", chs(), WeldFillet},
		{"RHS", rhs(), WeldFillet},
		{"other shape", plate(), WeldFillet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := newTestElement(t, 1, tt.cs, geometry.Point{}, geometry.Point{X: 1000})
			con := NewConnectingMember(el, geometry.Vector{}, true, el.Line, 0)

			assert.Equal(t, tt.want, con.FlangeWeld.Type)
			assert.Equal(t, tt.want, con.WebWeld.Type)

			// re-deriving overwrites whatever was set in between
			con.FlangeWeld = Weld{Type: WeldDoubleFillet, Size: 4}
			con.WebWeld = Weld{Type: WeldFillet, Size: 3}
			con.SetDefaultWeldType()
			con.SetDefaultWeldType()
			assert.Equal(t, tt.want, con.FlangeWeld.Type)
			assert.Equal(t, tt.want, con.WebWeld.Type)
			assert.Equal(t, 4.0, con.FlangeWeld.Size, "sizes are kept")
			assert.Equal(t, 3.0, con.WebWeld.Size, "sizes are kept")
		})
	}
}

func TestMemberDefaults(t *testing.T) {
	el := newTestElement(t, 3, rhs(), geometry.Point{X: 10}, geometry.Point{X: 1000})
	dist := geometry.Vector{X: 10}

	b := NewBearingMember(el, dist, true, el.Line, PlateCountUnknown)
	assert.True(t, b.PlateFailure)
	assert.Equal(t, PlateCountUnknown, b.Plates)
	assert.Equal(t, el.Line.Start, b.ConnectionPoint())

	c := NewConnectingMember(el, dist, false, el.Line.Reverse(), 12.5)
	assert.True(t, c.PlateFailure)
	assert.Equal(t, 12.5, c.LocalEccentricity)
	assert.Equal(t, el.Line.End, c.ConnectionPoint())
}

func TestAttachedMemberVariants(t *testing.T) {
	el := newTestElement(t, 1, iSection(), geometry.Point{}, geometry.Point{X: 1000})
	members := []AttachedMember{
		NewBearingMember(el, geometry.Vector{}, true, el.Line, PlateCountDouble),
		NewConnectingMember(el, geometry.Vector{}, true, el.Line, 0),
	}

	var kinds []string
	for _, m := range members {
		switch v := m.(type) {
		case *BearingMember:
			kinds = append(kinds, "bearing/"+v.Plates.String())
		case *ConnectingMember:
			kinds = append(kinds, "connecting/"+v.WebWeld.Type.String())
		}
		assert.Same(t, el, m.Attachment().Element)
	}
	assert.Equal(t, []string{"bearing/double", "connecting/DoubleFillet"}, kinds)
}

func TestPlateCountString(t *testing.T) {
	assert.Equal(t, "unknown", PlateCountUnknown.String())
	assert.Equal(t, "single", PlateCountSingle.String())
	assert.Equal(t, "double", PlateCountDouble.String())
}

func TestParsePlateCount(t *testing.T) {
	for in, want := range map[string]PlateCount{"": PlateCountUnknown, "Unknown": PlateCountUnknown, "single": PlateCountSingle, " DOUBLE ": PlateCountDouble} {
		got, err := ParsePlateCount(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePlateCount("triple")
	assert.Error(t, err)
}

func TestParseWeldType(t *testing.T) {
	for in, want := range map[string]WeldType{"": "", "fillet": WeldFillet, "DoubleFillet": WeldDoubleFillet, "double_fillet": WeldDoubleFillet} {
		got, err := ParseWeldType(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseWeldType("butt")
	assert.Error(t, err)
}
