package geometry

import (
	"fmt"
	"math"
)

// orthoTolerance bounds the dot products and norm deviations accepted for a
// coordinate system built from user input.
const orthoTolerance = 1e-6

// CoordSystem is an orthonormal right-handed triad. For elements X runs along
// the member axis, Y and Z are the section axes (bending "My" acts about Y).
type CoordSystem struct {
	X Vector `json:"x" yaml:"x"`
	Y Vector `json:"y" yaml:"y"`
	Z Vector `json:"z" yaml:"z"`
}

// NewCoordSystem builds a triad from an x axis and an approximate y axis.
// y is re-orthogonalised against x and z is taken as x × y.
func NewCoordSystem(x, y Vector) (CoordSystem, error) {
	ux, err := x.Unit()
	if err != nil {
		return CoordSystem{}, fmt.Errorf("local x axis: %w", err)
	}
	yPerp := y.Sub(ux.Scale(y.Dot(ux)))
	uy, err := yPerp.Unit()
	if err != nil {
		return CoordSystem{}, fmt.Errorf("local y axis parallel to x: %w", err)
	}
	cs := CoordSystem{X: ux, Y: uy, Z: ux.Cross(uy)}
	if err := cs.Validate(); err != nil {
		return CoordSystem{}, err
	}
	return cs, nil
}

// CoordSystemFromLine returns the default local axes of a member: x along the
// line, y horizontal (global Z × x) and z = x × y. Vertical members take the
// global Y axis as local y.
func CoordSystemFromLine(l Line) (CoordSystem, error) {
	ux, err := l.Vector().Unit()
	if err != nil {
		return CoordSystem{}, fmt.Errorf("element line: %w", err)
	}
	y := UnitZ.Cross(ux)
	if y.Length() < orthoTolerance {
		y = UnitY
	}
	return NewCoordSystem(ux, y)
}

// Validate checks the triad is orthonormal and right-handed
func (c CoordSystem) Validate() error {
	for name, v := range map[string]Vector{"x": c.X, "y": c.Y, "z": c.Z} {
		if math.Abs(v.Length()-1) > orthoTolerance {
			return fmt.Errorf("local %s axis is not unit length (%.6f)", name, v.Length())
		}
	}
	if math.Abs(c.X.Dot(c.Y)) > orthoTolerance ||
		math.Abs(c.Y.Dot(c.Z)) > orthoTolerance ||
		math.Abs(c.Z.Dot(c.X)) > orthoTolerance {
		return fmt.Errorf("local axes are not orthogonal")
	}
	if c.X.Cross(c.Y).Dot(c.Z) < 0 {
		return fmt.Errorf("local axes are left-handed")
	}
	return nil
}
