package material

import (
	"fmt"
	"strings"
)

// EN 1993-1-1 / EN 1993-1-8 constants

const (
	// Modulus of elasticity for structural steel (Section 3.2.6)
	Es = 210000.0 // MPa

	// Partial factors (Section 6.1, EN 1993-1-8 Table 2.1)
	GammaM0 = 1.00 // resistance of cross-sections
	GammaM1 = 1.00 // resistance of members to instability
	GammaM2 = 1.25 // resistance of welds, bolts and net sections
)

// Grade holds the nominal strengths of a structural steel grade
// for element thickness t <= 40 mm (EN 1993-1-1 Table 3.1)
type Grade struct {
	Name string
	Fy   float64 // yield strength (MPa)
	Fu   float64 // ultimate tensile strength (MPa)

	// Correlation factor for fillet welds (EN 1993-1-8 Table 4.1)
	BetaW float64
}

var grades = map[string]Grade{
	"S235": {Name: "S235", Fy: 235, Fu: 360, BetaW: 0.80},
	"S275": {Name: "S275", Fy: 275, Fu: 430, BetaW: 0.85},
	"S355": {Name: "S355", Fy: 355, Fu: 490, BetaW: 0.90},
	"S420": {Name: "S420", Fy: 420, Fu: 520, BetaW: 1.00},
	"S460": {Name: "S460", Fy: 460, Fu: 540, BetaW: 1.00},
}

// Lookup finds a grade by name. Suffixes such as "S355J2" resolve to the
// base grade.
func Lookup(name string) (Grade, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if len(key) > 4 {
		key = key[:4]
	}
	g, ok := grades[key]
	if !ok {
		return Grade{}, fmt.Errorf("unknown steel grade %q", name)
	}
	return g, nil
}

// DesignYield returns fy / γM0
func (g Grade) DesignYield() float64 {
	return g.Fy / GammaM0
}

// UnityCheck returns the ratio of an elastic stress (MPa) to the design
// yield strength
func (g Grade) UnityCheck(stress float64) float64 {
	return stress / g.DesignYield()
}

// FilletWeldStrength returns the design shear strength of a fillet weld
// by the simplified method, fu / (√3 βw γM2) in MPa
func (g Grade) FilletWeldStrength() float64 {
	return g.Fu / (sqrt3 * g.BetaW * GammaM2)
}

const sqrt3 = 1.7320508075688772
