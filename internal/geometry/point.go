package geometry

import (
	"errors"
	"math"
)

// ErrZeroLength is returned when an operation needs a direction but the
// vector has no length.
var ErrZeroLength = errors.New("zero-length vector")

// Point is a location in global coordinates (mm)
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Sub returns the vector pointing from q to p
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add translates the point by v
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// DistanceTo returns the euclidean distance between two points
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// MoveByVectorAndLength moves the point a given length along the direction of v.
// The length of v itself is ignored.
func (p Point) MoveByVectorAndLength(v Vector, length float64) (Point, error) {
	u, err := v.Unit()
	if err != nil {
		return p, err
	}
	return p.Add(u.Scale(length)), nil
}

// IsFinite reports whether all coordinates are finite numbers
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
