package crosssection

import (
	"fmt"
	"strings"
)

// Shape identifies the family of a steel profile
type Shape string

const (
	ISection    Shape = "ISection"
	CHSsection  Shape = "CHSsection"  // circular hollow section
	RHSsection  Shape = "RHSsection"  // rectangular hollow section
	Rectangular Shape = "Rectangular" // solid rectangle (plates, flats)
)

// String returns the string representation of the Shape.
func (s Shape) String() string {
	return string(s)
}

// ParseShape maps user input to a Shape. Matching is case-insensitive and
// accepts the short names used in profile catalogues.
func ParseShape(name string) (Shape, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ISECTION", "I", "I-SECTION":
		return ISection, nil
	case "CHSSECTION", "CHS":
		return CHSsection, nil
	case "RHSSECTION", "RHS", "SHS":
		return RHSsection, nil
	case "RECTANGULAR", "RECT", "RECTANGLE":
		return Rectangular, nil
	}
	return "", &ValidationError{msg: fmt.Sprintf("unknown cross-section shape %q", name)}
}

// CrossSection describes a member profile. Dimensions are in mm.
//
// Hollow and I shapes fall back to the solid closed forms when their wall
// thicknesses are left at zero. Tabulated values, when set, take precedence
// over the closed forms.
type CrossSection struct {
	Name     string `json:"name" yaml:"name"`
	Shape    Shape  `json:"shape" yaml:"shape"`
	Material string `json:"material,omitempty" yaml:"material,omitempty"` // steel grade, e.g. "S355"

	Height float64 `json:"height" yaml:"height"` // h, for CHS the outer diameter
	Width  float64 `json:"width" yaml:"width"`   // b

	FlangeThickness float64 `json:"flange_thickness,omitempty" yaml:"flange_thickness,omitempty"` // tf (I)
	WebThickness    float64 `json:"web_thickness,omitempty" yaml:"web_thickness,omitempty"`       // tw (I)
	Thickness       float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`               // t (CHS, RHS)

	// Catalogue values (mm², mm³)
	TabulatedArea    float64 `json:"area,omitempty" yaml:"area,omitempty"`
	TabulatedModulus float64 `json:"w_y,omitempty" yaml:"w_y,omitempty"`
}

// Radius returns the outer radius implied by the height
func (c *CrossSection) Radius() float64 {
	return 0.5 * c.Height
}

// Validate checks if the cross-section definition is valid
func (c *CrossSection) Validate() error {
	switch c.Shape {
	case ISection, CHSsection, RHSsection, Rectangular:
	default:
		return &ValidationError{msg: fmt.Sprintf("cross-section %q: unknown shape %q", c.Name, c.Shape)}
	}
	if c.Width <= 0 {
		return &ValidationError{msg: fmt.Sprintf("cross-section %q: width must be positive", c.Name)}
	}
	if c.Height <= 0 {
		return &ValidationError{msg: fmt.Sprintf("cross-section %q: height must be positive", c.Name)}
	}
	if c.FlangeThickness < 0 || c.WebThickness < 0 || c.Thickness < 0 {
		return &ValidationError{msg: fmt.Sprintf("cross-section %q: thicknesses must not be negative", c.Name)}
	}
	if c.TabulatedArea < 0 || c.TabulatedModulus < 0 {
		return &ValidationError{msg: fmt.Sprintf("cross-section %q: tabulated values must not be negative", c.Name)}
	}

	switch c.Shape {
	case ISection:
		if 2*c.FlangeThickness >= c.Height {
			return &ValidationError{msg: fmt.Sprintf("cross-section %q: flanges exceed the section height", c.Name)}
		}
		if c.WebThickness > c.Width {
			return &ValidationError{msg: fmt.Sprintf("cross-section %q: web is wider than the flange", c.Name)}
		}
	case RHSsection:
		if 2*c.Thickness >= c.Width || 2*c.Thickness >= c.Height {
			return &ValidationError{msg: fmt.Sprintf("cross-section %q: wall thickness closes the section", c.Name)}
		}
	case CHSsection:
		if 2*c.Thickness >= c.Height {
			return &ValidationError{msg: fmt.Sprintf("cross-section %q: wall thickness closes the section", c.Name)}
		}
	}
	return nil
}

// ValidationError represents a cross-section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
