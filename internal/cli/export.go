package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themestudio/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		formatS string
		dir     string
		name    string
		stdout  bool
		noProbe bool
	)

	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Export a brand as code",
		Long: `Export a brand, or the active brand, as code for a frontend project.

Formats:
  theme       a createTheme() module with both colour schemes and a usage example
  typescript  the brand tokens as a typed extendTheme() module
  json        the brand tokens as JSON

Templates can be customised: run "themestudio export templates dump" and
edit the copies in the template directory.

Examples:
  themestudio export --stdout
  themestudio export brand-1718000000000 --format typescript --dir src/theme
  themestudio export --format json --name tokens.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(formatS)
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			b, err := brandArg(st, args)
			if err != nil {
				return err
			}
			s, err := a.openStudio(cmd.Context())
			if err != nil {
				return err
			}
			exp := a.newExporter(s)

			if stdout {
				content, err := exp.Generate(b, f)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}

			path, err := exp.WriteFile(dir, name, b, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", b.Name, path)

			if !noProbe {
				a.devServerHint(cmd)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatS, "format", "f", string(export.FormatTheme), "export format (theme, typescript, json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().StringVarP(&name, "name", "n", "", "output file name (default: derived from the brand name)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write to stdout instead of a file")
	cmd.Flags().BoolVar(&noProbe, "no-dev-server-check", false, "do not look for running dev servers")

	cmd.AddCommand(newExportFormatsCmd(), newExportTemplatesCmd(a))
	return cmd
}

// devServerHint tells the user when a JavaScript dev server is running,
// since it will usually hot-reload the exported file.
func (a *app) devServerHint(cmd *cobra.Command) {
	servers, err := export.DetectDevServers()
	if err != nil {
		a.logger.Debug("dev server detection failed", "error", err)
		return
	}
	if len(servers) == 0 {
		return
	}
	names := make([]string, len(servers))
	for i, s := range servers {
		names[i] = s.String()
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Dev server running: %s. It should pick up the change.\n", strings.Join(names, ", "))
}

func newExportFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List export formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := NewTable("FORMAT", "EXTENSION")
			for _, f := range export.AllFormats() {
				table.AddRow(string(f), f.Extension())
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func newExportTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage export templates",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List export templates and where each is loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := a.newLoader()
			names, err := loader.List()
			if err != nil {
				return err
			}
			table := NewTable("TEMPLATE", "SOURCE")
			for _, n := range names {
				_, custom, err := loader.Load(n)
				if err != nil {
					return err
				}
				source := "embedded"
				if custom {
					source = loader.CustomPath(n)
				}
				table.AddRow(n, source)
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	var force bool
	dump := &cobra.Command{
		Use:   "dump",
		Short: "Copy the embedded templates into the template directory for editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			written, skipped, err := a.newLoader().Dump(force)
			out := cmd.OutOrStdout()
			for _, p := range written {
				fmt.Fprintf(out, "wrote   %s\n", p)
			}
			for _, p := range skipped {
				fmt.Fprintf(out, "skipped %s (exists, use --force)\n", p)
			}
			return err
		},
	}
	dump.Flags().BoolVar(&force, "force", false, "overwrite existing templates")

	cmd.AddCommand(list, dump)
	return cmd
}
