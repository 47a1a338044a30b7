package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gintarich/KarambaIDEA/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kidea",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "kidea v%s\n", version.Version)
		fmt.Fprintf(out, "Build time: %s\n", version.BuildTime)
		fmt.Fprintf(out, "Git commit: %s\n", version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
