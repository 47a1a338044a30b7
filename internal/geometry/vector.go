package geometry

import "math"

// Vector is a free vector in global coordinates
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Global axes
var (
	UnitX = Vector{X: 1}
	UnitY = Vector{Y: 1}
	UnitZ = Vector{Z: 1}
)

func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector) Reverse() Vector {
	return v.Scale(-1)
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the euclidean norm
func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// IsZero reports whether all components are exactly zero
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Unit returns the vector scaled to length one
func (v Vector) Unit() (Vector, error) {
	l := v.Length()
	if l == 0 {
		return Vector{}, ErrZeroLength
	}
	return v.Scale(1 / l), nil
}

// AngleTo returns the angle between v and w in radians, in [0, π]
func (v Vector) AngleTo(w Vector) (float64, error) {
	lv, lw := v.Length(), w.Length()
	if lv == 0 || lw == 0 {
		return 0, ErrZeroLength
	}
	cos := v.Dot(w) / (lv * lw)
	// rounding can push |cos| slightly past 1 for parallel vectors
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos), nil
}
