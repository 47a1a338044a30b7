package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Gintarich/KarambaIDEA/internal/core"
	"github.com/Gintarich/KarambaIDEA/internal/geometry"
)

var (
	eccPoint []float64
	eccRef   []float64
	eccDir   []float64
)

var eccentricityCmd = &cobra.Command{
	Use:   "eccentricity",
	Short: "Distance of a point to a line",
	Long: `Calculate the perpendicular distance of a point to the line through a
reference point with the given direction:

  e = |(c − a) × d| / |d|

This is the local eccentricity of a connecting member, with the connection
point as c and the bearing member's start point and axis as a and d.

Examples:
  kidea eccentricity --point 3000,0,50 --ref 0,0,0 --dir 1,0,0`,
	RunE: runEccentricity,
}

func init() {
	rootCmd.AddCommand(eccentricityCmd)

	eccentricityCmd.Flags().Float64SliceVar(&eccPoint, "point", nil, "Connection point x,y,z (mm) [required]")
	eccentricityCmd.Flags().Float64SliceVar(&eccRef, "ref", nil, "Point on the reference line x,y,z (mm) [required]")
	eccentricityCmd.Flags().Float64SliceVar(&eccDir, "dir", nil, "Direction of the reference line x,y,z [required]")
	eccentricityCmd.MarkFlagRequired("point")
	eccentricityCmd.MarkFlagRequired("ref")
	eccentricityCmd.MarkFlagRequired("dir")
}

func runEccentricity(cmd *cobra.Command, args []string) error {
	c, err := parsePoint("point", eccPoint)
	if err != nil {
		return err
	}
	a, err := parsePoint("ref", eccRef)
	if err != nil {
		return err
	}
	d, err := parsePoint("dir", eccDir)
	if err != nil {
		return err
	}
	dir := d.Sub(geometry.Point{})

	e, err := core.LocalEccentricity(c, a, dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Point (c):\t(%.1f, %.1f, %.1f)\n", c.X, c.Y, c.Z)
	fmt.Fprintf(w, "  Reference (a):\t(%.1f, %.1f, %.1f)\n", a.X, a.Y, a.Z)
	fmt.Fprintf(w, "  Direction (d):\t(%.3f, %.3f, %.3f)\n", dir.X, dir.Y, dir.Z)
	fmt.Fprintf(w, "  Eccentricity (e):\t%.2f mm\n", e)
	w.Flush()
	return nil
}
