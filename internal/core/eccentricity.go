package core

import (
	"math"

	"github.com/Gintarich/KarambaIDEA/internal/geometry"
)

// LocalEccentricity transforms a global eccentricity to a local one: the
// shortest distance from the connection point c to the line through a with
// direction dir, |(c − a) × dir| / |dir|.
func LocalEccentricity(c, a geometry.Point, dir geometry.Vector) (float64, error) {
	length := dir.Length()
	if length == 0 {
		return 0, &DegenerateGeometryError{Op: "local eccentricity"}
	}
	cross := c.Sub(a).Cross(dir)
	return cross.Length() / length, nil
}

// angleBetween returns the angle in degrees between two member axes
func angleBetween(u, v geometry.Vector) (float64, error) {
	rad, err := u.AngleTo(v)
	if err != nil {
		return 0, &DegenerateGeometryError{Op: "member angle"}
	}
	return rad * 180 / math.Pi, nil
}
