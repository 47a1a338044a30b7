package evaluator

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Gintarich/KarambaIDEA/internal/core"
)

// Report is the outcome of one batch evaluation
type Report struct {
	ID       string        `json:"id" yaml:"id"`
	Project  string        `json:"project" yaml:"project"`
	Joints   []JointResult `json:"joints" yaml:"joints"`
	Warnings []Warning     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Failed returns the joints whose evaluation was skipped because of an error
func (r *Report) Failed() []JointResult {
	var out []JointResult
	for _, j := range r.Joints {
		if j.Err != nil {
			out = append(out, j)
		}
	}
	return out
}

// Warning is a non-fatal condition met while evaluating a member
type Warning struct {
	JointID   int    `json:"joint_id" yaml:"joint_id"`
	JointName string `json:"joint_name" yaml:"joint_name"`
	ElementID int    `json:"element_id" yaml:"element_id"`
	Message   string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("joint %d (%s), element %d: %s", w.JointID, w.JointName, w.ElementID, w.Message)
}

type WeldResult struct {
	Type string  `json:"type" yaml:"type"`
	Size float64 `json:"size" yaml:"size"`
}

func weldResult(w core.Weld) *WeldResult {
	return &WeldResult{Type: w.Type.String(), Size: w.Size}
}

// MemberResult holds the derived quantities of one attached member. Values
// that could not be derived (no matching loads) are nil.
type MemberResult struct {
	ElementID    int       `json:"element_id" yaml:"element_id"`
	ElementName  string    `json:"element_name" yaml:"element_name"`
	CrossSection string    `json:"cross_section" yaml:"cross_section"`
	Role         core.Role `json:"role" yaml:"role"`
	IsStartPoint bool      `json:"is_start_point" yaml:"is_start_point"`

	MaxAxialLoad *float64  `json:"max_axial_load,omitempty" yaml:"max_axial_load,omitempty"` // kN
	MaxStress    *float64  `json:"max_stress,omitempty" yaml:"max_stress,omitempty"`         // N/mm²
	StressRatio  *float64  `json:"stress_ratio,omitempty" yaml:"stress_ratio,omitempty"`
	AxialSeries  []float64 `json:"axial_series,omitempty" yaml:"axial_series,omitempty"`

	// Connecting members only
	FlangeWeld          *WeldResult `json:"flange_weld,omitempty" yaml:"flange_weld,omitempty"`
	WebWeld             *WeldResult `json:"web_weld,omitempty" yaml:"web_weld,omitempty"`
	WeldVolume          float64     `json:"weld_volume" yaml:"weld_volume"` // mm³
	WeldVolumeSupported bool        `json:"weld_volume_supported" yaml:"weld_volume_supported"`
	LocalEccentricity   float64     `json:"local_eccentricity" yaml:"local_eccentricity"`
	AngleWithBear       float64     `json:"angle_with_bear" yaml:"angle_with_bear"`

	// Bearing members only
	Plates string `json:"plates,omitempty" yaml:"plates,omitempty"`

	PlateFailure bool `json:"plate_failure" yaml:"plate_failure"`
}

// Checks mirrors core.ResultsSummary for serialization
type Checks struct {
	Analysis *float64 `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Plates   *float64 `json:"plates,omitempty" yaml:"plates,omitempty"`
	Bolts    *float64 `json:"bolts,omitempty" yaml:"bolts,omitempty"`
	Welds    *float64 `json:"welds,omitempty" yaml:"welds,omitempty"`
	Buckling *float64 `json:"buckling,omitempty" yaml:"buckling,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Summary  string   `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func checks(r *core.ResultsSummary) *Checks {
	if r == nil {
		return nil
	}
	c := &Checks{
		Analysis: r.Analysis,
		Plates:   r.Plates,
		Bolts:    r.Bolts,
		Welds:    r.Welds,
		Buckling: r.Buckling,
		Summary:  r.Summary,
	}
	if v, ok := r.MaxCheck(); ok {
		c.Max = &v
	}
	return c
}

// JointResult collects the member results of one joint
type JointResult struct {
	ID              int                    `json:"id" yaml:"id"`
	Name            string                 `json:"name" yaml:"name"`
	Template        core.WorkshopOperation `json:"template" yaml:"template"`
	Members         []MemberResult         `json:"members" yaml:"members"`
	TotalWeldVolume float64                `json:"total_weld_volume" yaml:"total_weld_volume"` // mm³
	Results         *Checks                `json:"results,omitempty" yaml:"results,omitempty"`

	Err   error  `json:"-" yaml:"-"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// WriteJSON writes the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
