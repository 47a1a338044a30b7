package core

import (
	"github.com/Gintarich/KarambaIDEA/internal/crosssection"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
)

// Element is a structural member (beam, column, brace). Once an element is
// part of a joint its line must not change: attached members store distance
// vectors derived from it.
type Element struct {
	ID           int
	Name         string
	CrossSection *crosssection.CrossSection
	Line         geometry.Line
	LCS          geometry.CoordSystem
}

// NewElement creates an element with the default local axes for its line
func NewElement(id int, name string, cs *crosssection.CrossSection, line geometry.Line) (*Element, error) {
	if cs == nil {
		return nil, &MissingCrossSectionError{ElementID: id}
	}
	lcs, err := geometry.CoordSystemFromLine(line)
	if err != nil {
		return nil, &DegenerateGeometryError{Op: "element " + name}
	}
	return &Element{ID: id, Name: name, CrossSection: cs, Line: line, LCS: lcs}, nil
}

// EndPoint returns the start point when atStart is set, else the end point
func (e *Element) EndPoint(atStart bool) geometry.Point {
	if atStart {
		return e.Line.Start
	}
	return e.Line.End
}
