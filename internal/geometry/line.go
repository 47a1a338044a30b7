package geometry

// Line is a straight segment between two points
type Line struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// Vector returns the direction from Start to End, not normalized
func (l Line) Vector() Vector {
	return l.End.Sub(l.Start)
}

func (l Line) Length() float64 {
	return l.Vector().Length()
}

// Reverse swaps start and end
func (l Line) Reverse() Line {
	return Line{Start: l.End, End: l.Start}
}

func (l Line) Midpoint() Point {
	return l.Start.Add(l.Vector().Scale(0.5))
}
