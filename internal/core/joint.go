package core

import (
	"fmt"
	"strings"

	"github.com/Gintarich/KarambaIDEA/internal/geometry"
)

// WorkshopOperation selects the template the connection model is built with
type WorkshopOperation string

const (
	NoOperation              WorkshopOperation = "NoOperation"
	TemplateByFile           WorkshopOperation = "TemplateByFile"
	BoltedEndPlateConnection WorkshopOperation = "BoltedEndPlateConnection"
	BoltedEndplateOptimizer  WorkshopOperation = "BoltedEndplateOptimizer"
	WeldAllMembers           WorkshopOperation = "WeldAllMembers"
)

// String returns the string representation of the WorkshopOperation.
func (w WorkshopOperation) String() string {
	return string(w)
}

// ParseWorkshopOperation is case-insensitive; an empty name means NoOperation
func ParseWorkshopOperation(name string) (WorkshopOperation, error) {
	if strings.TrimSpace(name) == "" {
		return NoOperation, nil
	}
	for _, op := range []WorkshopOperation{NoOperation, TemplateByFile, BoltedEndPlateConnection, BoltedEndplateOptimizer, WeldAllMembers} {
		if strings.EqualFold(name, string(op)) {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown workshop operation %q", name)
}

// Role tells whether an element bears the joint or connects into it
type Role string

const (
	RoleBearing    Role = "bearing"
	RoleConnecting Role = "connecting"
)

// ParseRole is case-insensitive
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bearing", "bear":
		return RoleBearing, nil
	case "connecting", "con":
		return RoleConnecting, nil
	}
	return "", fmt.Errorf("unknown member role %q", name)
}

// Joint is a connection point where several elements meet
type Joint struct {
	ID          int
	Name        string
	CentralNode geometry.Point
	Members     []AttachedMember
	Template    WorkshopOperation

	// Results is written back by the external connection design run
	Results *ResultsSummary
}

// Bearing returns the bearing members in joint order
func (j *Joint) Bearing() []*BearingMember {
	var out []*BearingMember
	for _, m := range j.Members {
		if b, ok := m.(*BearingMember); ok {
			out = append(out, b)
		}
	}
	return out
}

// Connecting returns the connecting members in joint order
func (j *Joint) Connecting() []*ConnectingMember {
	var out []*ConnectingMember
	for _, m := range j.Members {
		if c, ok := m.(*ConnectingMember); ok {
			out = append(out, c)
		}
	}
	return out
}

// ElementIDs lists the ids of the joint's elements in joint order
func (j *Joint) ElementIDs() []int {
	ids := make([]int, 0, len(j.Members))
	for _, m := range j.Members {
		ids = append(ids, m.Attachment().Element.ID)
	}
	return ids
}

// MemberSpec describes one element taking part in a joint. Zero weld sizes
// fall back to the project's minimum throat, empty weld types to the
// section default.
type MemberSpec struct {
	Element     *Element
	Role        Role
	Plates      PlateCount
	OperationID int

	FlangeWeld Weld
	WebWeld    Weld

	// PlateFailure overrides the default (enabled) when set
	PlateFailure *bool
}

// AssembleJoint builds a joint around centre from the given members and adds
// it to the project.
//
// Each member is evaluated at the element end nearest to centre. Connecting
// members are measured against the first bearing member: the local
// eccentricity is the distance of the connection point to the bearing axis
// and the angle is taken between the outward member axis and the bearing axis.
func (p *Project) AssembleJoint(name string, centre geometry.Point, specs []MemberSpec) (*Joint, error) {
	var bearing *Element
	seen := make(map[*Element]bool, len(specs))
	for _, s := range specs {
		if s.Element == nil || p.byID[s.Element.ID] != s.Element {
			return nil, fmt.Errorf("joint %q: %w", name, ErrUnknownElement)
		}
		if seen[s.Element] {
			return nil, fmt.Errorf("joint %q: element %d: %w", name, s.Element.ID, ErrDuplicateElement)
		}
		seen[s.Element] = true
		if s.Role == RoleBearing && bearing == nil {
			bearing = s.Element
		}
	}

	j := &Joint{ID: len(p.Joints), Name: name, CentralNode: centre, Template: NoOperation}
	for _, s := range specs {
		el := s.Element
		isStart := centre.DistanceTo(el.Line.Start) <= centre.DistanceTo(el.Line.End)
		ideaLine := el.Line
		if !isStart {
			ideaLine = el.Line.Reverse()
		}
		distance := el.EndPoint(isStart).Sub(centre)

		switch s.Role {
		case RoleBearing:
			b := NewBearingMember(el, distance, isStart, ideaLine, s.Plates)
			b.IdeaOperationID = s.OperationID
			if s.PlateFailure != nil {
				b.PlateFailure = *s.PlateFailure
			}
			j.Members = append(j.Members, b)

		case RoleConnecting:
			if bearing == nil {
				return nil, fmt.Errorf("joint %q: element %d: %w", name, el.ID, ErrNoBearingMember)
			}
			ecc, err := LocalEccentricity(el.EndPoint(isStart), bearing.Line.Start, bearing.Line.Vector())
			if err != nil {
				return nil, fmt.Errorf("joint %q: element %d: %w", name, el.ID, err)
			}
			angle, err := angleBetween(ideaLine.Vector(), bearing.Line.Vector())
			if err != nil {
				return nil, fmt.Errorf("joint %q: element %d: %w", name, el.ID, err)
			}

			c := NewConnectingMember(el, distance, isStart, ideaLine, ecc)
			c.IdeaOperationID = s.OperationID
			c.AngleWithBear = angle
			c.FlangeWeld = p.resolveWeld(s.FlangeWeld, c.FlangeWeld.Type)
			c.WebWeld = p.resolveWeld(s.WebWeld, c.WebWeld.Type)
			if s.PlateFailure != nil {
				c.PlateFailure = *s.PlateFailure
			}
			j.Members = append(j.Members, c)

		default:
			return nil, fmt.Errorf("joint %q: element %d: unknown role %q", name, el.ID, s.Role)
		}
	}

	p.AddJoint(j)
	return j, nil
}

func (p *Project) resolveWeld(w Weld, defaultType WeldType) Weld {
	if w.Type == "" {
		w.Type = defaultType
	}
	if w.Size == 0 {
		w.Size = p.MinThroat
	}
	return w
}
