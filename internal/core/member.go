package core

import (
	"fmt"
	"strings"

	"github.com/Gintarich/KarambaIDEA/internal/crosssection"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
)

// AttachedMember is the role an element plays at a joint. The set of
// implementations is closed: *BearingMember and *ConnectingMember. Use a
// type switch to tell them apart.
type AttachedMember interface {
	Attachment() *Member
	attached()
}

// Member holds the fields shared by every attached member
type Member struct {
	Element *Element

	// IsStartPoint selects the element end that lies in the joint
	IsStartPoint bool

	// IdeaLine is the construction line handed to the connection model and
	// IdeaOperationID the workshop operation it belongs to
	IdeaLine        geometry.Line
	IdeaOperationID int

	// DistanceVector points from the joint's central node to the member's
	// connection point
	DistanceVector geometry.Vector

	// PlateFailure enables the end-plate failure mode for this member
	PlateFailure bool
}

// Attachment returns the shared member fields
func (m *Member) Attachment() *Member { return m }

// ConnectionPoint is the element end lying in the joint
func (m *Member) ConnectionPoint() geometry.Point {
	return m.Element.EndPoint(m.IsStartPoint)
}

// PlateCount says whether a bearing member carries a single or double plate.
// The zero value means it has not been decided.
type PlateCount int

const (
	PlateCountUnknown PlateCount = iota
	PlateCountSingle
	PlateCountDouble
)

// String returns the string representation of the plate count.
func (c PlateCount) String() string {
	switch c {
	case PlateCountSingle:
		return "single"
	case PlateCountDouble:
		return "double"
	default:
		return "unknown"
	}
}

// ParsePlateCount accepts "single", "double" and "unknown" (or empty)
func ParsePlateCount(name string) (PlateCount, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unknown":
		return PlateCountUnknown, nil
	case "single":
		return PlateCountSingle, nil
	case "double":
		return PlateCountDouble, nil
	}
	return PlateCountUnknown, fmt.Errorf("unknown plate count %q", name)
}

// BearingMember is a supporting member the other members connect to
type BearingMember struct {
	Member
	Plates PlateCount
}

func (*BearingMember) attached() {}

// NewBearingMember creates a bearing member with plate failure enabled
func NewBearingMember(el *Element, distance geometry.Vector, isStartPoint bool, ideaLine geometry.Line, plates PlateCount) *BearingMember {
	return &BearingMember{
		Member: Member{
			Element:        el,
			DistanceVector: distance,
			IsStartPoint:   isStartPoint,
			IdeaLine:       ideaLine,
			PlateFailure:   true,
		},
		Plates: plates,
	}
}

// ConnectingMember is a member welded into the joint
type ConnectingMember struct {
	Member
	FlangeWeld Weld
	WebWeld    Weld

	// LocalEccentricity is the offset (mm) of the connection point from the
	// bearing member axis
	LocalEccentricity float64

	// AngleWithBear is the angle (degrees) between this member's axis and the
	// bearing member's axis
	AngleWithBear float64
}

func (*ConnectingMember) attached() {}

// NewConnectingMember creates a connecting member and assigns the default
// weld types for its cross-section
func NewConnectingMember(el *Element, distance geometry.Vector, isStartPoint bool, ideaLine geometry.Line, localEccentricity float64) *ConnectingMember {
	con := &ConnectingMember{
		Member: Member{
			Element:        el,
			DistanceVector: distance,
			IsStartPoint:   isStartPoint,
			IdeaLine:       ideaLine,
			PlateFailure:   true,
		},
		LocalEccentricity: localEccentricity,
	}
	con.SetDefaultWeldType()
	return con
}

// SetDefaultWeldType assigns double fillet welds to I-sections and fillet
// welds to every other shape. Weld sizes are left untouched.
func (c *ConnectingMember) SetDefaultWeldType() {
	t := WeldFillet
	if c.Element.CrossSection != nil && c.Element.CrossSection.Shape == crosssection.ISection {
		t = WeldDoubleFillet
	}
	c.FlangeWeld.Type = t
	c.WebWeld.Type = t
}
