package cmd

import (
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Inspect project files",
	Long: `Load and inspect project files.

A project file (.json, .yaml or .yml) holds cross sections, elements,
load cases, load combinations and joints.

Subcommands:
  check   - Validate a project and list its contents
  combine - Print factored loads of a load combination`,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}
