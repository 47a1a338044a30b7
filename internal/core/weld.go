package core

import (
	"fmt"
	"strings"
)

// WeldType is the weld detail used on a member face
type WeldType string

const (
	WeldFillet       WeldType = "Fillet"
	WeldDoubleFillet WeldType = "DoubleFillet"
)

// String returns the string representation of the WeldType.
func (t WeldType) String() string {
	return string(t)
}

// Weld describes a weld by type and throat size (mm)
type Weld struct {
	Type WeldType
	Size float64
}

// ParseWeldType is case-insensitive; an empty name returns the empty type,
// meaning "use the section default"
func ParseWeldType(name string) (WeldType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case "fillet":
		return WeldFillet, nil
	case "doublefillet", "double_fillet", "double-fillet":
		return WeldDoubleFillet, nil
	}
	return "", fmt.Errorf("unknown weld type %q", name)
}
