package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themestudio/internal/config"
	"github.com/jmylchreest/themestudio/internal/plugin/builtin"
	"github.com/jmylchreest/themestudio/internal/plugin/external"
	"github.com/jmylchreest/themestudio/internal/plugin/manager"
	"github.com/jmylchreest/themestudio/internal/preset/designs"
	"github.com/jmylchreest/themestudio/internal/store"
	"github.com/jmylchreest/themestudio/internal/theme"
)

func newPresetsCmd(_ *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "presets",
		Aliases: []string{"styles"},
		Short:   "List design styles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := designs.Catalog()
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, catalog)
			}

			table := NewTable("STYLE", "NAME", "COLOURS", "DESCRIPTION")
			table.SetColumnMaxWidth(3, 60)
			for _, info := range catalog {
				colours := ""
				if info.HasColors {
					colours = "yes"
				}
				table.AddRow(string(info.Style), info.Name, colours, info.Description)
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}

func newPluginsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plugins",
		Aliases: []string{"plugin"},
		Short:   "List theme plugins and whether they run",
		Long: `List the theme plugins in run order with their enabled state.

Built-in plugins that are neither part of the default set nor named in the
config are listed as available. Enable one by giving it options under
plugins.options, or by adding it to plugins.enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			specs, err := a.pluginSpecs(cmd.Context())
			if err != nil {
				return err
			}
			plugins := make([]manager.ThemePlugin, 0, len(specs))
			for _, spec := range specs {
				plugins = append(plugins, spec.Plugin)
			}
			mgr := manager.NewBuilder().
				WithConfig(a.cfg.ManagerConfig()).
				WithPlugins(plugins...).
				Build()

			table := NewTable("NAME", "VERSION", "PRIORITY", "STATUS", "SOURCE")
			for _, p := range mgr.Sorted() {
				status := "enabled"
				if !mgr.IsEnabled(p.Name()) {
					status = "disabled"
				}
				table.AddRow(p.Name(), p.Version(), strconv.Itoa(manager.EffectivePriority(p)), status, pluginSource(p))
			}
			for _, p := range builtin.All() {
				if _, ok := mgr.Get(p.Name()); ok {
					continue
				}
				table.AddRow(p.Name(), p.Version(), strconv.Itoa(manager.EffectivePriority(p)), "available", "builtin")
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
	return cmd
}

func pluginSource(p manager.ThemePlugin) string {
	if ext, ok := p.(*external.Plugin); ok {
		return fmt.Sprintf("%s (%s)", ext.Path(), ext.Protocol())
	}
	return "builtin"
}

// tokensOutput is the design token vocabulary offered for editing.
type tokensOutput struct {
	Spacing    theme.SpacingTokens    `json:"spacing"`
	Typography theme.TypographyTokens `json:"typography"`
}

func newTokensCmd(_ *app) *cobra.Command {
	var (
		base  int
		scale string
		count int
	)

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the spacing and typography token vocabulary as JSON",
		Long: `Print the spacing scale and typography vocabulary as JSON.

With --base, --scale or --count the spacing steps are computed instead of
the defaults: linear steps are base*i and exponential steps are base^i.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := tokensOutput{
				Spacing:    theme.DefaultSpacingTokens(),
				Typography: theme.DefaultTypographyTokens(),
			}

			flags := cmd.Flags()
			if flags.Changed("base") || flags.Changed("scale") || flags.Changed("count") {
				st := theme.SpacingScaleType(scale)
				if st != theme.SpacingLinear && st != theme.SpacingExponential {
					return fmt.Errorf("unknown spacing scale %q (want linear or exponential)", scale)
				}
				if base <= 0 || count <= 0 {
					return errors.New("--base and --count must be positive")
				}
				out.Spacing = theme.SpacingTokens{
					BaseUnit:  base,
					ScaleType: st,
					Steps:     theme.SpacingScale(base, st, count),
				}
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	defaults := theme.DefaultSpacingTokens()
	cmd.Flags().IntVar(&base, "base", defaults.BaseUnit, "spacing base unit in pixels")
	cmd.Flags().StringVar(&scale, "scale", string(defaults.ScaleType), "spacing scale (linear, exponential)")
	cmd.Flags().IntVar(&count, "count", len(defaults.Steps), "number of spacing steps")
	return cmd
}

func newModeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mode [light|dark|system]",
		Short: "Show or set the preferred colour mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				mode, err := store.ParseColorMode(args[0])
				if err != nil {
					return err
				}
				if err := st.SetColorMode(mode); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.ColorMode())
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long:  `Print the configuration after the file, the environment and the global flags are applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			p := a.configPath
			if p == "" {
				p = config.DefaultPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
		},
	}

	cmd.AddCommand(show, path)
	return cmd
}
