package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Gintarich/KarambaIDEA/internal/core"
	"github.com/Gintarich/KarambaIDEA/internal/diagram"
	"github.com/Gintarich/KarambaIDEA/internal/material"
)

var (
	weldsFile        string
	weldsJoints      []int
	weldsAll         bool
	weldsShowDiagram bool
)

var jointWeldsCmd = &cobra.Command{
	Use:   "welds",
	Short: "List welds of connecting members",
	Long: `List the flange and web welds of every connecting member of the
selected joints with the simplified weld volume:

  CHS:  2πr · a²
  RHS:  (2b + 2h) · a²
  I:    2h · a_web² + 4b · a_flange²

Welds without an explicit size use the project's minimum throat. The
design strength fw,d = fu / (√3 βw γM2) is shown for sections with a
known steel grade.

Examples:
  kidea joint welds -f truss.yaml --all
  kidea joint welds -f truss.yaml -j 1 --diagram`,
	RunE: runJointWelds,
}

func init() {
	jointCmd.AddCommand(jointWeldsCmd)

	jointWeldsCmd.Flags().StringVarP(&weldsFile, "file", "f", "", "Project file (.json, .yaml) [required]")
	jointWeldsCmd.Flags().IntSliceVarP(&weldsJoints, "joint", "j", nil, "Joint index (repeatable)")
	jointWeldsCmd.Flags().BoolVar(&weldsAll, "all", false, "List all joints")
	jointWeldsCmd.Flags().BoolVar(&weldsShowDiagram, "diagram", false, "Show weld volume bar chart")
	jointWeldsCmd.MarkFlagRequired("file")
}

func runJointWelds(cmd *cobra.Command, args []string) error {
	p, err := loadProject(weldsFile)
	if err != nil {
		return err
	}
	joints, err := selectJoints(p, weldsJoints, weldsAll)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     WELDS - %s\n", p.Name)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	grand := 0.0
	for _, j := range joints {
		fmt.Fprintf(out, "JOINT %d: %s\n", j.ID, j.Name)
		fmt.Fprintln(out, rule)

		con := j.Connecting()
		if len(con) == 0 {
			fmt.Fprintln(out, "  No connecting members.")
			fmt.Fprintln(out)
			continue
		}

		var bars []diagram.Bar
		var notes []string
		total := 0.0
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Element\tSection\tShape\tFlange weld\tWeb weld\tfw,d (N/mm²)\tVolume (mm³)")
		for _, c := range con {
			cs := c.Element.CrossSection
			fwd := "-"
			if g, err := material.Lookup(cs.Material); err == nil {
				fwd = fmt.Sprintf("%.1f", g.FilletWeldStrength())
			}

			vol, err := core.CalculateWeldVolumeSimplified(c)
			volume := fmt.Sprintf("%.0f", vol)
			bar := diagram.Bar{Label: fmt.Sprintf("E%d", c.Element.ID), Value: vol}
			var unsupported *core.UnsupportedShapeCondition
			switch {
			case errors.As(err, &unsupported):
				volume = "n/a"
				bar.Note = "no formula"
				notes = append(notes, fmt.Sprintf("E%d: %s", c.Element.ID, unsupported))
			case err != nil:
				return fmt.Errorf("joint %d, element %d: %w", j.ID, c.Element.ID, err)
			}
			total += vol
			bars = append(bars, bar)

			fmt.Fprintf(w, "  %d\t%s\t%s\t%s %.1f\t%s %.1f\t%s\t%s\n",
				c.Element.ID, cs.Name, cs.Shape,
				c.FlangeWeld.Type, c.FlangeWeld.Size, c.WebWeld.Type, c.WebWeld.Size,
				fwd, volume)
		}
		w.Flush()
		fmt.Fprintf(out, "\n  Total weld volume: %.0f mm³\n", total)
		for _, n := range notes {
			fmt.Fprintf(out, "  ⚠ %s\n", n)
		}
		fmt.Fprintln(out)

		if weldsShowDiagram {
			fmt.Fprintln(out, diagram.DrawBars(fmt.Sprintf("Weld volume, joint %d (mm³)", j.ID), bars))
		}
		grand += total
	}

	if len(joints) > 1 {
		fmt.Fprintf(out, "  Weld volume of %d joints: %.0f mm³\n\n", len(joints), grand)
	}
	return nil
}
