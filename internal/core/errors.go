package core

import (
	"errors"
	"fmt"

	"github.com/Gintarich/KarambaIDEA/internal/crosssection"
)

var (
	// ErrEmptyResult is returned when an aggregation has nothing to aggregate,
	// typically an element that no load case references.
	ErrEmptyResult = errors.New("empty result")

	// ErrDegenerateGeometry is returned when a geometric computation receives
	// a zero-length direction.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrUnsupportedShape marks a cross-section outside the set a quantity is
	// defined for. It is a recoverable condition, not a failure.
	ErrUnsupportedShape = errors.New("unsupported cross-section shape")

	ErrUnknownElement   = errors.New("unknown element")
	ErrUnknownLoadCase  = errors.New("unknown load case")
	ErrNoBearingMember  = errors.New("joint has no bearing member")
	ErrDuplicateElement = errors.New("duplicate element")

	// ErrMissingCrossSection is returned for an element without a profile
	ErrMissingCrossSection = errors.New("element has no cross section")
)

// EmptyResultError reports which quantity could not be aggregated for which
// element
type EmptyResultError struct {
	Quantity  string
	ElementID int
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s: no load case references element %d", e.Quantity, e.ElementID)
}

func (e *EmptyResultError) Unwrap() error { return ErrEmptyResult }

// DegenerateGeometryError names the operation that received degenerate input
type DegenerateGeometryError struct {
	Op string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%s: zero-length direction vector", e.Op)
}

func (e *DegenerateGeometryError) Unwrap() error { return ErrDegenerateGeometry }

// UnsupportedShapeCondition is reported instead of a value when a
// cross-section shape has no formula for the requested quantity
type UnsupportedShapeCondition struct {
	Quantity string
	Shape    crosssection.Shape
}

func (e *UnsupportedShapeCondition) Error() string {
	return fmt.Sprintf("%s: cross-section shape %q not recognized", e.Quantity, e.Shape)
}

func (e *UnsupportedShapeCondition) Unwrap() error { return ErrUnsupportedShape }

// MissingCrossSectionError names the element that has no cross section
type MissingCrossSectionError struct {
	ElementID int
}

func (e *MissingCrossSectionError) Error() string {
	return fmt.Sprintf("element %d: %s", e.ElementID, ErrMissingCrossSection)
}

func (e *MissingCrossSectionError) Unwrap() error { return ErrMissingCrossSection }
