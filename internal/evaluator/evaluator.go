// Package evaluator runs the member evaluations of many joints and collects
// them into a report.
package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Gintarich/KarambaIDEA/internal/core"
	"github.com/Gintarich/KarambaIDEA/internal/material"
)

// Evaluator evaluates joints of a project. It holds no per-run state and is
// safe for concurrent use.
type Evaluator struct {
	logger     *slog.Logger
	workers    int
	skipFailed bool
}

// New creates an evaluator
func New(opts ...Option) *Evaluator {
	o := options{workers: defaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.workers < 1 {
		o.workers = defaultWorkers
	}
	return &Evaluator{logger: o.logger, workers: o.workers, skipFailed: o.skipFailed}
}

// Evaluate evaluates the given joints of p against all of its load cases. A
// nil joints slice means every joint of the project. Results keep the order
// of joints.
//
// The first failing joint aborts the batch unless skip-failed is set.
// Unsupported shapes and members without loads only produce warnings.
func (e *Evaluator) Evaluate(ctx context.Context, p *core.Project, joints []*core.Joint) (*Report, error) {
	if joints == nil {
		joints = p.Joints
	}

	report := &Report{ID: uuid.NewString(), Project: p.Name}
	results := make([]JointResult, len(joints))
	warnings := make([][]Warning, len(joints))

	e.logger.Info("evaluating joints", "report", report.ID, "project", p.Name, "joints", len(joints), "workers", e.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, j := range joints {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, warn, err := e.evaluateJoint(j, p.LoadCases)
			warnings[i] = warn
			if err != nil {
				if !e.skipFailed {
					return err
				}
				e.logger.Warn("skipping joint", "joint", j.ID, "name", j.Name, "error", err)
				res.Err = err
				res.Error = err.Error()
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Joints = results
	for _, w := range warnings {
		report.Warnings = append(report.Warnings, w...)
	}
	e.logger.Info("evaluation finished", "report", report.ID, "warnings", len(report.Warnings), "failed", len(report.Failed()))
	return report, nil
}

func (e *Evaluator) evaluateJoint(j *core.Joint, cases []*core.LoadCase) (JointResult, []Warning, error) {
	e.logger.Debug("joint started", "joint", j.ID, "name", j.Name, "members", len(j.Members))

	res := JointResult{ID: j.ID, Name: j.Name, Template: j.Template, Results: checks(j.Results)}
	var warnings []Warning
	warn := func(elementID int, msg string) {
		w := Warning{JointID: j.ID, JointName: j.Name, ElementID: elementID, Message: msg}
		e.logger.Warn(msg, "joint", j.ID, "name", j.Name, "element", elementID)
		warnings = append(warnings, w)
	}

	for _, am := range j.Members {
		m := am.Attachment()
		if m.Element == nil {
			return res, warnings, fmt.Errorf("joint %d (%s): member without element", j.ID, j.Name)
		}
		if m.Element.CrossSection == nil {
			return res, warnings, fmt.Errorf("joint %d (%s): %w", j.ID, j.Name, &core.MissingCrossSectionError{ElementID: m.Element.ID})
		}

		mr, err := evaluateMember(m, cases, warn)
		if err != nil {
			return res, warnings, fmt.Errorf("joint %d (%s), element %d: %w", j.ID, j.Name, m.Element.ID, err)
		}

		switch v := am.(type) {
		case *core.BearingMember:
			mr.Role = core.RoleBearing
			mr.Plates = v.Plates.String()
		case *core.ConnectingMember:
			mr.Role = core.RoleConnecting
			mr.FlangeWeld = weldResult(v.FlangeWeld)
			mr.WebWeld = weldResult(v.WebWeld)
			mr.LocalEccentricity = v.LocalEccentricity
			mr.AngleWithBear = v.AngleWithBear

			vol, err := core.CalculateWeldVolumeSimplified(v)
			var unsupported *core.UnsupportedShapeCondition
			switch {
			case errors.As(err, &unsupported):
				warn(m.Element.ID, unsupported.Error())
			case err != nil:
				return res, warnings, fmt.Errorf("joint %d (%s), element %d: %w", j.ID, j.Name, m.Element.ID, err)
			default:
				mr.WeldVolumeSupported = true
			}
			mr.WeldVolume = vol
			res.TotalWeldVolume += vol
		}
		res.Members = append(res.Members, mr)
	}

	e.logger.Debug("joint finished", "joint", j.ID, "name", j.Name, "weld_volume", res.TotalWeldVolume)
	return res, warnings, nil
}

// evaluateMember derives the load dependent quantities of m. A member without
// any load record is reported through warn and left without values.
func evaluateMember(m *core.Member, cases []*core.LoadCase, warn func(int, string)) (MemberResult, error) {
	el := m.Element
	mr := MemberResult{
		ElementID:    el.ID,
		ElementName:  el.Name,
		CrossSection: el.CrossSection.Name,
		IsStartPoint: m.IsStartPoint,
		PlateFailure: m.PlateFailure,
		AxialSeries:  m.AxialLoadsByCase(cases),
	}

	n, err := m.MaxAxialLoad(cases)
	if errors.Is(err, core.ErrEmptyResult) {
		warn(el.ID, err.Error())
		return mr, nil
	}
	if err != nil {
		return mr, err
	}
	mr.MaxAxialLoad = &n

	s, err := m.MaxStress(cases)
	if err != nil {
		return mr, err
	}
	mr.MaxStress = &s

	if grade, err := material.Lookup(el.CrossSection.Material); err == nil {
		ratio := grade.UnityCheck(s)
		mr.StressRatio = &ratio
	}
	return mr, nil
}
