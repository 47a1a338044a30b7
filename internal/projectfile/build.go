package projectfile

import (
	"fmt"

	"github.com/Gintarich/KarambaIDEA/internal/core"
	"github.com/Gintarich/KarambaIDEA/internal/crosssection"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
)

// ValidationError is returned when a document is well-formed but describes an
// inconsistent project
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Build turns a decoded document into a validated project. Combinations are
// expanded into additional load cases numbered after the highest case id.
func Build(doc *Document) (*core.Project, error) {
	if doc.Name == "" {
		return nil, invalid("project name is required")
	}
	if doc.MinThroat < 0 {
		return nil, invalid("min_throat must be non-negative")
	}

	p := core.NewProject(doc.Name)
	p.MinThroat = doc.MinThroat

	sections, err := buildSections(doc.CrossSections)
	if err != nil {
		return nil, err
	}
	for _, ed := range doc.Elements {
		if err := addElement(p, ed, sections); err != nil {
			return nil, err
		}
	}

	maxID := -1
	caseNames := make(map[string]bool, len(doc.LoadCases))
	caseIDs := make(map[int]bool, len(doc.LoadCases))
	for _, lcd := range doc.LoadCases {
		lc, err := buildLoadCase(p, lcd)
		if err != nil {
			return nil, err
		}
		if caseNames[lc.Name] {
			return nil, invalid("load case %q is defined twice", lc.Name)
		}
		if caseIDs[lc.ID] {
			return nil, invalid("load case id %d is defined twice", lc.ID)
		}
		caseNames[lc.Name] = true
		caseIDs[lc.ID] = true
		if err := p.AddLoadCase(lc); err != nil {
			return nil, fmt.Errorf("load case %q: %w", lc.Name, err)
		}
		maxID = max(maxID, lc.ID)
	}

	// Combinations only reference the primary cases
	primary := append([]*core.LoadCase(nil), p.LoadCases...)
	for i, cd := range doc.Combinations {
		if caseNames[cd.Name] {
			return nil, invalid("combination %q clashes with a load case name", cd.Name)
		}
		caseNames[cd.Name] = true
		combo := core.LoadCombination{Name: cd.Name, Factors: cd.Factors}
		lc, err := combo.Apply(maxID+1+i, primary)
		if err != nil {
			return nil, fmt.Errorf("combination %q: %w", cd.Name, err)
		}
		if err := p.AddLoadCase(lc); err != nil {
			return nil, fmt.Errorf("combination %q: %w", cd.Name, err)
		}
	}

	for _, jd := range doc.Joints {
		if err := addJoint(p, jd); err != nil {
			return nil, err
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func buildSections(docs []crosssection.CrossSection) (map[string]*crosssection.CrossSection, error) {
	sections := make(map[string]*crosssection.CrossSection, len(docs))
	for i := range docs {
		cs := docs[i]
		shape, err := crosssection.ParseShape(string(cs.Shape))
		if err != nil {
			return nil, fmt.Errorf("cross section %q: %w", cs.Name, err)
		}
		cs.Shape = shape
		if err := cs.Validate(); err != nil {
			return nil, fmt.Errorf("cross section %q: %w", cs.Name, err)
		}
		if _, ok := sections[cs.Name]; ok {
			return nil, invalid("cross section %q is defined twice", cs.Name)
		}
		sections[cs.Name] = &cs
	}
	return sections, nil
}

func addElement(p *core.Project, ed ElementDoc, sections map[string]*crosssection.CrossSection) error {
	cs, ok := sections[ed.CrossSection]
	if !ok {
		return invalid("element %d: unknown cross section %q", ed.ID, ed.CrossSection)
	}
	start, err := point(ed.Start)
	if err != nil {
		return fmt.Errorf("element %d start: %w", ed.ID, err)
	}
	end, err := point(ed.End)
	if err != nil {
		return fmt.Errorf("element %d end: %w", ed.ID, err)
	}

	name := ed.Name
	if name == "" {
		name = fmt.Sprintf("E%d", ed.ID)
	}
	el, err := core.NewElement(ed.ID, name, cs, geometry.Line{Start: start, End: end})
	if err != nil {
		return err
	}

	if len(ed.LocalY) > 0 {
		y, err := point(ed.LocalY)
		if err != nil {
			return fmt.Errorf("element %d local_y: %w", ed.ID, err)
		}
		lcs, err := geometry.NewCoordSystem(el.Line.Vector(), y.Sub(geometry.Point{}))
		if err != nil {
			return fmt.Errorf("element %d local_y: %w", ed.ID, err)
		}
		el.LCS = lcs
	}

	return p.AddElement(el)
}

func buildLoadCase(p *core.Project, lcd LoadCaseDoc) (*core.LoadCase, error) {
	if lcd.Name == "" {
		return nil, invalid("load case %d: name is required", lcd.ID)
	}
	lc := &core.LoadCase{ID: lcd.ID, Name: lcd.Name}
	for _, ld := range lcd.Loads {
		el, ok := p.ElementByID(ld.Element)
		if !ok {
			return nil, fmt.Errorf("load case %q: element %d: %w", lcd.Name, ld.Element, core.ErrUnknownElement)
		}
		lc.LoadsPerLines = append(lc.LoadsPerLines, core.LoadsPerLine{
			Element:   el,
			StartLoad: core.Force{N: ld.Start.N, My: ld.Start.My},
			EndLoad:   core.Force{N: ld.End.N, My: ld.End.My},
		})
	}
	return lc, nil
}

func addJoint(p *core.Project, jd JointDoc) error {
	centre, err := point(jd.Centre)
	if err != nil {
		return fmt.Errorf("joint %q centre: %w", jd.Name, err)
	}

	specs := make([]core.MemberSpec, 0, len(jd.Members))
	for _, md := range jd.Members {
		spec, err := memberSpec(p, md)
		if err != nil {
			return fmt.Errorf("joint %q: %w", jd.Name, err)
		}
		specs = append(specs, spec)
	}

	j, err := p.AssembleJoint(jd.Name, centre, specs)
	if err != nil {
		return err
	}

	if j.Template, err = core.ParseWorkshopOperation(jd.Template); err != nil {
		return fmt.Errorf("joint %q: %w", jd.Name, err)
	}
	if len(jd.Checks) > 0 {
		checks := make([]core.CheckSummary, len(jd.Checks))
		for i, c := range jd.Checks {
			checks[i] = core.CheckSummary{Name: c.Name, CheckValue: c.Value, UnityCheckMessage: c.Message}
		}
		j.Results = core.NewResultsSummary(checks)
	}
	return nil
}

func memberSpec(p *core.Project, md MemberDoc) (core.MemberSpec, error) {
	el, ok := p.ElementByID(md.Element)
	if !ok {
		return core.MemberSpec{}, fmt.Errorf("element %d: %w", md.Element, core.ErrUnknownElement)
	}
	role, err := core.ParseRole(md.Role)
	if err != nil {
		return core.MemberSpec{}, fmt.Errorf("element %d: %w", md.Element, err)
	}
	plates, err := core.ParsePlateCount(md.Plates)
	if err != nil {
		return core.MemberSpec{}, fmt.Errorf("element %d: %w", md.Element, err)
	}
	flange, err := weld(md.FlangeWeld)
	if err != nil {
		return core.MemberSpec{}, fmt.Errorf("element %d flange weld: %w", md.Element, err)
	}
	web, err := weld(md.WebWeld)
	if err != nil {
		return core.MemberSpec{}, fmt.Errorf("element %d web weld: %w", md.Element, err)
	}
	return core.MemberSpec{
		Element:      el,
		Role:         role,
		Plates:       plates,
		OperationID:  md.Operation,
		FlangeWeld:   flange,
		WebWeld:      web,
		PlateFailure: md.PlateFailure,
	}, nil
}

func weld(wd *WeldDoc) (core.Weld, error) {
	if wd == nil {
		return core.Weld{}, nil
	}
	if wd.Size < 0 {
		return core.Weld{}, invalid("weld size must be non-negative")
	}
	t, err := core.ParseWeldType(wd.Type)
	if err != nil {
		return core.Weld{}, err
	}
	return core.Weld{Type: t, Size: wd.Size}, nil
}

func point(c []float64) (geometry.Point, error) {
	if len(c) != 3 {
		return geometry.Point{}, invalid("expected 3 coordinates, got %d", len(c))
	}
	pt := geometry.Point{X: c[0], Y: c[1], Z: c[2]}
	if !pt.IsFinite() {
		return geometry.Point{}, invalid("coordinates must be finite")
	}
	return pt, nil
}
