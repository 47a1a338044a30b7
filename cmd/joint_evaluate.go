package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Gintarich/KarambaIDEA/internal/core"
	"github.com/Gintarich/KarambaIDEA/internal/diagram"
	"github.com/Gintarich/KarambaIDEA/internal/evaluator"
)

var (
	evalFile       string
	evalJoints     []int
	evalAll        bool
	evalFormat     string
	evalWorkers    int
	evalSkipFailed bool

	// Diagram options
	evalShowDiagram bool
	evalExportFile  string
)

var jointEvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate members of selected joints",
	Long: `Evaluate every member of the selected joints over all load cases of
the project:

  - maximum |N| at the member end attached to the joint (kN)
  - maximum extreme fibre stress |N/A ± My/W| (N/mm²) and its ratio to fy
  - weld volume of connecting members (simplified, mm³)

A failing joint stops the run unless --skip-failed is given. Members
without loads and shapes without a weld formula are reported as warnings.

Examples:
  # Evaluate all joints
  kidea joint evaluate -f truss.yaml

  # Evaluate joints 0 and 2 as JSON
  kidea joint evaluate -f truss.yaml --joint 0 --joint 2 --format json

  # Show axial load charts and export a drawing of each joint
  kidea joint evaluate -f truss.yaml --diagram -o out/joint.png`,
	RunE: runJointEvaluate,
}

func init() {
	jointCmd.AddCommand(jointEvaluateCmd)

	jointEvaluateCmd.Flags().StringVarP(&evalFile, "file", "f", "", "Project file (.json, .yaml) [required]")
	jointEvaluateCmd.Flags().IntSliceVarP(&evalJoints, "joint", "j", nil, "Joint index (repeatable)")
	jointEvaluateCmd.Flags().BoolVar(&evalAll, "all", false, "Evaluate all joints")
	jointEvaluateCmd.Flags().StringVar(&evalFormat, "format", "", "Output format: table, json, yaml [env KIDEA_OUTPUT_FORMAT]")
	jointEvaluateCmd.Flags().IntVar(&evalWorkers, "workers", 0, "Joints evaluated in parallel [env KIDEA_WORKERS]")
	jointEvaluateCmd.Flags().BoolVar(&evalSkipFailed, "skip-failed", false, "Record failing joints and continue")
	jointEvaluateCmd.MarkFlagRequired("file")

	// Diagram options
	jointEvaluateCmd.Flags().BoolVar(&evalShowDiagram, "diagram", false, "Show ASCII axial load charts")
	jointEvaluateCmd.Flags().StringVarP(&evalExportFile, "output", "o", "", "Export joint drawings to file (png, svg, pdf)")
}

func runJointEvaluate(cmd *cobra.Command, args []string) error {
	format := cfg.OutputFormat
	if cmd.Flags().Changed("format") {
		format = evalFormat
	}
	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = evalWorkers
	}

	p, err := loadProject(evalFile)
	if err != nil {
		return err
	}
	joints, err := selectJoints(p, evalJoints, evalAll)
	if err != nil {
		return err
	}

	ev := evaluator.New(
		evaluator.WithLogger(logger),
		evaluator.WithWorkers(workers),
		evaluator.WithSkipFailed(evalSkipFailed),
	)
	report, err := ev.Evaluate(cmd.Context(), p, joints)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = report.WriteJSON(out)
	case "yaml":
		err = report.WriteYAML(out)
	case "table":
		printReport(out, report)
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
	if err != nil {
		return err
	}

	if evalExportFile != "" {
		for _, j := range joints {
			name := exportName(evalExportFile, j.ID, len(joints) > 1)
			data, err := diagram.NewJointDiagramData(j)
			if err != nil {
				return fmt.Errorf("joint %d: %w", j.ID, err)
			}
			if err := diagram.ExportJointDiagram(data, name); err != nil {
				return fmt.Errorf("exporting joint %d: %w", j.ID, err)
			}
			logger.Info("diagram exported", "joint", j.ID, "file", name)
		}
	}
	return nil
}

// exportName adds the joint id before the extension when several joints are
// exported
func exportName(filename string, id int, many bool) string {
	if !many {
		return filename
	}
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(filename, ext), id, ext)
}

func printReport(out io.Writer, report *evaluator.Report) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     JOINT EVALUATION - %s\n", report.Project)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "  Report: %s\n", report.ID)
	fmt.Fprintln(out)

	for _, jr := range report.Joints {
		lines := []string{
			fmt.Sprintf("Template:    %s", jr.Template),
			fmt.Sprintf("Members:     %d", len(jr.Members)),
			fmt.Sprintf("Weld volume: %.0f mm³", jr.TotalWeldVolume),
		}
		if jr.Results != nil {
			lines = append(lines, fmt.Sprintf("Max check:   %s", optional(jr.Results.Max, "%.2f")))
		}
		if jr.Err != nil {
			lines = append(lines, "FAILED: "+jr.Error)
		}
		fmt.Fprint(out, diagram.DrawSummaryBox(fmt.Sprintf("JOINT %d: %s", jr.ID, jr.Name), lines))
		fmt.Fprintln(out)

		if jr.Err != nil {
			continue
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Element\tRole\tSection\tEnd\tmax|N| (kN)\tmax σ (N/mm²)\tσ/fy\te (mm)\tAngle (°)\tWeld (mm³)")
		for _, m := range jr.Members {
			end := "end"
			if m.IsStartPoint {
				end = "start"
			}
			// eccentricity, angle and weld are measured on connecting members only
			ecc, angle, weld := "-", "-", "-"
			if m.Role == core.RoleConnecting {
				ecc = fmt.Sprintf("%.1f", m.LocalEccentricity)
				angle = fmt.Sprintf("%.1f", m.AngleWithBear)
			}
			if m.FlangeWeld != nil {
				weld = fmt.Sprintf("%.0f", m.WeldVolume)
				if !m.WeldVolumeSupported {
					weld = "n/a"
				}
			}
			fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				m.ElementID, m.Role, m.CrossSection, end,
				optional(m.MaxAxialLoad, "%.2f"), optional(m.MaxStress, "%.2f"), optional(m.StressRatio, "%.3f"),
				ecc, angle, weld)
		}
		w.Flush()
		fmt.Fprintln(out)

		if evalShowDiagram {
			for _, m := range jr.Members {
				chart := diagram.DrawAxialEnvelope(fmt.Sprintf("E%d |N| per load case (kN)", m.ElementID), m.AxialSeries)
				if chart != "" {
					fmt.Fprintln(out, chart)
				}
			}
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintln(out, "WARNINGS:")
		fmt.Fprintln(out, rule)
		for _, w := range report.Warnings {
			fmt.Fprintf(out, "  ⚠ %s\n", w)
		}
		fmt.Fprintln(out)
	}
}
