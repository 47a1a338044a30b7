package core

import "fmt"

// Project owns the elements, load cases and joints of one structure
type Project struct {
	Name      string
	Elements  []*Element
	LoadCases []*LoadCase
	Joints    []*Joint

	// MinThroat is the weld throat (mm) given to welds without an explicit size
	MinThroat float64

	byID map[int]*Element
}

// NewProject creates an empty project
func NewProject(name string) *Project {
	return &Project{Name: name, byID: make(map[int]*Element)}
}

// AddElement registers an element. Element ids are unique within a project.
func (p *Project) AddElement(el *Element) error {
	if p.byID == nil {
		p.byID = make(map[int]*Element)
	}
	if _, ok := p.byID[el.ID]; ok {
		return fmt.Errorf("element %d: %w", el.ID, ErrDuplicateElement)
	}
	p.byID[el.ID] = el
	p.Elements = append(p.Elements, el)
	return nil
}

// ElementByID looks up an element owned by the project
func (p *Project) ElementByID(id int) (*Element, bool) {
	el, ok := p.byID[id]
	return el, ok
}

// AddLoadCase appends a load case after checking that every record refers to
// an element of this project
func (p *Project) AddLoadCase(lc *LoadCase) error {
	if err := p.checkLoadCase(lc); err != nil {
		return err
	}
	p.LoadCases = append(p.LoadCases, lc)
	return nil
}

// AddJoint appends an assembled joint
func (p *Project) AddJoint(j *Joint) {
	p.Joints = append(p.Joints, j)
}

// Validate checks referential integrity: every load record and every attached
// member must point at an element owned by the project
func (p *Project) Validate() error {
	for _, lc := range p.LoadCases {
		if err := p.checkLoadCase(lc); err != nil {
			return err
		}
	}
	for _, j := range p.Joints {
		for _, m := range j.Members {
			el := m.Attachment().Element
			if el == nil || p.byID[el.ID] != el {
				return fmt.Errorf("joint %q: %w", j.Name, ErrUnknownElement)
			}
		}
	}
	return nil
}

func (p *Project) checkLoadCase(lc *LoadCase) error {
	for i, l := range lc.LoadsPerLines {
		if l.Element == nil || p.byID[l.Element.ID] != l.Element {
			return fmt.Errorf("load case %q record %d: %w", lc.Name, i, ErrUnknownElement)
		}
	}
	return nil
}

// SelectJoints resolves user supplied joint indexes. Indexes wrap around the
// number of joints, duplicates are dropped and the first occurrence wins.
func (p *Project) SelectJoints(indexes []int) []*Joint {
	n := len(p.Joints)
	if n == 0 {
		return nil
	}
	seen := make(map[int]bool, len(indexes))
	var out []*Joint
	for _, i := range indexes {
		i %= n
		if i < 0 {
			i += n
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, p.Joints[i])
	}
	return out
}
