package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Gintarich/KarambaIDEA/internal/core"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
)

// MemberLine is one element drawn in a joint diagram
type MemberLine struct {
	Label   string
	Line    geometry.Line
	Bearing bool
}

// JointDiagramData holds data for drawing a joint
type JointDiagramData struct {
	Title   string
	Centre  geometry.Point
	Members []MemberLine
}

// DrawLength is the longest stretch of a member drawn in a joint diagram,
// measured from the joint (mm)
const DrawLength = 1500.0

// NewJointDiagramData collects the member lines of j, oriented away from the
// central node. Members longer than DrawLength are cut back to it.
func NewJointDiagramData(j *core.Joint) (JointDiagramData, error) {
	data := JointDiagramData{
		Title:  fmt.Sprintf("Joint %d: %s", j.ID, j.Name),
		Centre: j.CentralNode,
	}
	for _, am := range j.Members {
		m := am.Attachment()
		_, bearing := am.(*core.BearingMember)
		label := fmt.Sprintf("E%d", m.Element.ID)
		if m.Element.CrossSection != nil {
			label += " " + m.Element.CrossSection.Name
		}

		line := m.IdeaLine
		if line.Length() > DrawLength {
			end, err := line.Start.MoveByVectorAndLength(line.Vector(), DrawLength)
			if err != nil {
				return JointDiagramData{}, fmt.Errorf("element %d: %w", m.Element.ID, err)
			}
			line.End = end
		}
		data.Members = append(data.Members, MemberLine{Label: label, Line: line, Bearing: bearing})
	}
	return data, nil
}

var axisNames = [3]string{"X", "Y", "Z"}

func coord(p geometry.Point, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	return p.Z
}

// projectionAxes picks the two global axes with the largest spread of the
// member end points, kept in X, Y, Z order. A plane truss in XZ is drawn in
// XZ, a floor grid in XY.
func projectionAxes(data JointDiagramData) (int, int) {
	lo := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	points := []geometry.Point{data.Centre}
	for _, m := range data.Members {
		points = append(points, m.Line.Start, m.Line.End)
	}
	for _, p := range points {
		for a := range 3 {
			lo[a] = math.Min(lo[a], coord(p, a))
			hi[a] = math.Max(hi[a], coord(p, a))
		}
	}

	drop := 2
	for a := 1; a >= 0; a-- {
		if hi[a]-lo[a] < hi[drop]-lo[drop] {
			drop = a
		}
	}
	switch drop {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	}
	return 0, 1
}

// ExportJointDiagram exports a joint diagram to an image file. Bearing
// members are drawn thick and black, connecting members in blue. The format
// follows the extension (png, svg, pdf); anything else is saved as png.
func ExportJointDiagram(data JointDiagramData, filename string) error {
	u, v := projectionAxes(data)

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = axisNames[u] + " (mm)"
	p.Y.Label.Text = axisNames[v] + " (mm)"

	xy := func(pt geometry.Point) plotter.XY {
		return plotter.XY{X: coord(pt, u), Y: coord(pt, v)}
	}

	var labelXYs []plotter.XY
	var labels []string
	for _, m := range data.Members {
		line, err := plotter.NewLine(plotter.XYs{xy(m.Line.Start), xy(m.Line.End)})
		if err != nil {
			return err
		}
		if m.Bearing {
			line.LineStyle.Width = vg.Points(4)
			line.LineStyle.Color = color.Black
		} else {
			line.LineStyle.Width = vg.Points(2)
			line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		}
		p.Add(line)

		labelXYs = append(labelXYs, xy(m.Line.Midpoint()))
		labels = append(labels, m.Label)
	}

	node, err := plotter.NewScatter(plotter.XYs{xy(data.Centre)})
	if err != nil {
		return err
	}
	node.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	node.GlyphStyle.Radius = vg.Points(5)
	node.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(node)

	if len(labels) > 0 {
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
