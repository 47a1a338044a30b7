package crosssection

import "math"

// Area returns the gross cross-sectional area in mm²
func (c *CrossSection) Area() float64 {
	if c.TabulatedArea > 0 {
		return c.TabulatedArea
	}

	b, h := c.Width, c.Height
	switch c.Shape {
	case ISection:
		tf, tw := c.FlangeThickness, c.WebThickness
		if tf == 0 || tw == 0 {
			return b * h
		}
		return 2*b*tf + (h-2*tf)*tw
	case RHSsection:
		t := c.Thickness
		if t == 0 {
			return b * h
		}
		return b*h - (b-2*t)*(h-2*t)
	case CHSsection:
		r := c.Radius()
		ri := innerRadius(r, c.Thickness)
		return math.Pi * (r*r - ri*ri)
	default:
		return b * h
	}
}

// SecondMomentOfArea returns the second moment of area about the local y
// (major) axis in mm⁴
func (c *CrossSection) SecondMomentOfArea() float64 {
	b, h := c.Width, c.Height
	switch c.Shape {
	case ISection:
		tf, tw := c.FlangeThickness, c.WebThickness
		if tf == 0 || tw == 0 {
			return b * h * h * h / 12
		}
		hw := h - 2*tf
		return (b*h*h*h - (b-tw)*hw*hw*hw) / 12
	case RHSsection:
		t := c.Thickness
		if t == 0 {
			return b * h * h * h / 12
		}
		bi, hi := b-2*t, h-2*t
		return (b*h*h*h - bi*hi*hi*hi) / 12
	case CHSsection:
		r := c.Radius()
		ri := innerRadius(r, c.Thickness)
		return math.Pi * (r*r*r*r - ri*ri*ri*ri) / 4
	default:
		return b * h * h * h / 12
	}
}

// MomentOfResistance returns the elastic section modulus W about the local y
// axis in mm³
func (c *CrossSection) MomentOfResistance() float64 {
	if c.TabulatedModulus > 0 {
		return c.TabulatedModulus
	}

	switch c.Shape {
	case CHSsection:
		return c.SecondMomentOfArea() / c.Radius()
	default:
		return 2 * c.SecondMomentOfArea() / c.Height
	}
}

// innerRadius of a hollow circle; a zero wall means a solid bar
func innerRadius(r, t float64) float64 {
	if t == 0 {
		return 0
	}
	return r - t
}
