package projectfile

import "github.com/Gintarich/KarambaIDEA/internal/crosssection"

// Document is the on-disk layout of a project. Points are [x, y, z] in mm,
// forces in kN and moments in kNm.
type Document struct {
	Name          string                      `json:"name" yaml:"name"`
	MinThroat     float64                     `json:"min_throat,omitempty" yaml:"min_throat,omitempty"`
	CrossSections []crosssection.CrossSection `json:"cross_sections" yaml:"cross_sections"`
	Elements      []ElementDoc                `json:"elements" yaml:"elements"`
	LoadCases     []LoadCaseDoc               `json:"load_cases" yaml:"load_cases"`
	Combinations  []CombinationDoc            `json:"combinations,omitempty" yaml:"combinations,omitempty"`
	Joints        []JointDoc                  `json:"joints,omitempty" yaml:"joints,omitempty"`
}

type ElementDoc struct {
	ID           int       `json:"id" yaml:"id"`
	Name         string    `json:"name,omitempty" yaml:"name,omitempty"`
	CrossSection string    `json:"cross_section" yaml:"cross_section"`
	Start        []float64 `json:"start" yaml:"start"`
	End          []float64 `json:"end" yaml:"end"`

	// Optional approximate local y axis; defaults to the horizontal axis
	LocalY []float64 `json:"local_y,omitempty" yaml:"local_y,omitempty"`
}

type ForceDoc struct {
	N  float64 `json:"n" yaml:"n"`
	My float64 `json:"my" yaml:"my"`
}

type LoadDoc struct {
	Element int      `json:"element" yaml:"element"`
	Start   ForceDoc `json:"start" yaml:"start"`
	End     ForceDoc `json:"end" yaml:"end"`
}

type LoadCaseDoc struct {
	ID    int       `json:"id" yaml:"id"`
	Name  string    `json:"name" yaml:"name"`
	Loads []LoadDoc `json:"loads" yaml:"loads"`
}

type CombinationDoc struct {
	Name    string             `json:"name" yaml:"name"`
	Factors map[string]float64 `json:"factors" yaml:"factors"`
}

type WeldDoc struct {
	Type string  `json:"type,omitempty" yaml:"type,omitempty"`
	Size float64 `json:"size,omitempty" yaml:"size,omitempty"`
}

type MemberDoc struct {
	Element      int      `json:"element" yaml:"element"`
	Role         string   `json:"role" yaml:"role"`
	Plates       string   `json:"plates,omitempty" yaml:"plates,omitempty"`
	Operation    int      `json:"operation,omitempty" yaml:"operation,omitempty"`
	FlangeWeld   *WeldDoc `json:"flange_weld,omitempty" yaml:"flange_weld,omitempty"`
	WebWeld      *WeldDoc `json:"web_weld,omitempty" yaml:"web_weld,omitempty"`
	PlateFailure *bool    `json:"plate_failure,omitempty" yaml:"plate_failure,omitempty"`
}

// CheckDoc is a check result written back by the connection design engine
type CheckDoc struct {
	Name    string  `json:"name" yaml:"name"`
	Value   float64 `json:"value" yaml:"value"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
}

type JointDoc struct {
	Name     string      `json:"name" yaml:"name"`
	Centre   []float64   `json:"centre" yaml:"centre"`
	Template string      `json:"template,omitempty" yaml:"template,omitempty"`
	Members  []MemberDoc `json:"members" yaml:"members"`
	Checks   []CheckDoc  `json:"checks,omitempty" yaml:"checks,omitempty"`
}
