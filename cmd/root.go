package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Gintarich/KarambaIDEA/internal/config"
	"github.com/Gintarich/KarambaIDEA/internal/version"
)

var (
	logLevel  string
	logFormat string

	// set by the root pre-run for every subcommand
	cfg    = &config.Config{LogLevel: "info", LogFormat: "text", Workers: 4, OutputFormat: "table"}
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "kidea",
	Short: "Steel joint evaluation tool",
	Long: `kidea - structural steel joint evaluation

A CLI tool for preparing steel joints of a frame or truss model for
connection design.

This tool helps structural engineers:
  - Check project files (elements, load cases, combinations, joints)
  - Derive governing axial forces and extreme fibre stresses per member
  - Estimate weld volumes of connecting members
  - Measure member eccentricities at a joint

Forces are given in kN and moments in kNm; stresses are reported in N/mm².`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   kidea v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Steel Joint Evaluation                                  ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Project import from JSON or YAML with load combinations")
		fmt.Fprintln(out, "    • Maximum axial load and stress per joint member")
		fmt.Fprintln(out, "    • Simplified weld volume estimation")
		fmt.Fprintln(out, "    • Joint diagrams (ASCII charts, PNG/SVG/PDF export)")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'kidea --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// setup loads the configuration, applies the persistent flags on top and
// builds the logger
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		c.LogFormat = logFormat
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := config.NewLogger(cmd.ErrOrStderr(), c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error) [env KIDEA_LOG_LEVEL]")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json) [env KIDEA_LOG_FORMAT]")
}
