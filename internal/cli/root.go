// Package cli provides the command-line interface for themestudio.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themestudio/internal/version"
)

// NewRootCmd builds the full command tree. Every call returns an
// independent tree, so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   version.AppName,
		Short: "Compose MUI-style themes from brands, design presets and plugins",
		Long: `themestudio keeps a local store of brand configurations and turns each
one into a complete theme: a design-style preset sets the look, the brand's
tokens and component overrides are layered on top, and theme plugins finish
the result.

Brands can be seeded from a colour, an image or a text prompt, edited from
the command line, exchanged as bundles and exported as TypeScript or JSON
for a frontend project.`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/themestudio/config.yaml)")
	flags.StringVar(&a.storeDir, "store", "", "brand store directory (overrides store_path)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	flags.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "shorthand for --log-level debug")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newBrandCmd(a),
		newBuildCmd(a),
		newExportCmd(a),
		newPaletteCmd(a),
		newContrastCmd(a),
		newSeedCmd(a),
		newModeCmd(a),
		newPresetsCmd(a),
		newPluginsCmd(a),
		newTokensCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
