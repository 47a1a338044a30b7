package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gintarich/KarambaIDEA/internal/core"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
	"github.com/Gintarich/KarambaIDEA/internal/projectfile"
)

const rule = "───────────────────────────────────────────────────────────────"

func loadProject(path string) (*core.Project, error) {
	p, err := projectfile.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("project loaded", "file", path, "elements", len(p.Elements), "load_cases", len(p.LoadCases), "joints", len(p.Joints))
	return p, nil
}

// selectJoints returns every joint when all is set or no index is given
func selectJoints(p *core.Project, indexes []int, all bool) ([]*core.Joint, error) {
	if len(p.Joints) == 0 {
		return nil, fmt.Errorf("project %q has no joints", p.Name)
	}
	if all || len(indexes) == 0 {
		return p.Joints, nil
	}
	return p.SelectJoints(indexes), nil
}

func parsePoint(flag string, values []float64) (geometry.Point, error) {
	if len(values) != 3 {
		return geometry.Point{}, fmt.Errorf("--%s needs three comma separated values x,y,z", flag)
	}
	return geometry.Point{X: values[0], Y: values[1], Z: values[2]}, nil
}

func optional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func joinInts(ids []int) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.Itoa(id)
	}
	return strings.Join(s, ",")
}
