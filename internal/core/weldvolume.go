package core

import (
	"math"

	"github.com/Gintarich/KarambaIDEA/internal/crosssection"
)

// CalculateWeldVolumeSimplified estimates the weld volume of a connecting
// member as weld throat squared times the welded perimeter:
//
//	CHS:      2πr · a_web²              r = h/2
//	RHS:      (2b + 2h) · a_web²
//	I:        2h · a_web² + 4b · a_flange²
//
// This is not a weld path integral. For any other shape the volume is 0 and
// an *UnsupportedShapeCondition is returned so callers can tell "no weld"
// from "no formula"; the condition is not a failure. An element without a
// cross section is a failure.
func CalculateWeldVolumeSimplified(con *ConnectingMember) (float64, error) {
	cross := con.Element.CrossSection
	if cross == nil {
		return 0, &MissingCrossSectionError{ElementID: con.Element.ID}
	}
	web := con.WebWeld.Size * con.WebWeld.Size
	flange := con.FlangeWeld.Size * con.FlangeWeld.Size

	switch cross.Shape {
	case crosssection.CHSsection:
		perimeter := 2 * math.Pi * cross.Radius()
		return perimeter * web, nil
	case crosssection.RHSsection:
		perimeter := 2*cross.Width + 2*cross.Height
		return perimeter * web, nil
	case crosssection.ISection:
		return 2*cross.Height*web + 4*cross.Width*flange, nil
	default:
		return 0, &UnsupportedShapeCondition{Quantity: "weld volume", Shape: cross.Shape}
	}
}
