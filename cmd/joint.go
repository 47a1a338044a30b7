package cmd

import (
	"github.com/spf13/cobra"
)

var jointCmd = &cobra.Command{
	Use:   "joint",
	Short: "Evaluate the joints of a project",
	Long: `Evaluate the joints defined in a project file.

Joints are selected by index with --joint (repeatable, wraps around the
number of joints) or all at once with --all. Without a selection every
joint is evaluated.

Subcommands:
  evaluate - Governing axial load, stress and weld volume per member
  welds    - Weld types, sizes and volumes of connecting members`,
}

func init() {
	rootCmd.AddCommand(jointCmd)
}
