package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themestudio/internal/plugin/manager"
	"github.com/jmylchreest/themestudio/internal/studio"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// buildOutput is what build prints with --events.
type buildOutput struct {
	Brand   string          `json:"brand"`
	Style   string          `json:"style"`
	Key     string          `json:"cacheKey"`
	Options theme.Options   `json:"options"`
	Events  []manager.Event `json:"events"`
}

func newBuildCmd(a *app) *cobra.Command {
	var (
		events bool
		stats  bool
		styleS string
	)

	cmd := &cobra.Command{
		Use:   "build [id]",
		Short: "Build a brand's theme and print its options as JSON",
		Long: `Build the theme for a brand, or the active brand, and print the final
theme options as JSON.

The design-style preset runs first, then the brand's palette, typography,
shape, spacing and component overrides, then the enabled theme plugins.

Examples:
  themestudio build
  themestudio build brand-1718000000000 --style brutalism
  themestudio build --events`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			b, err := brandArg(st, args)
			if err != nil {
				return err
			}
			if styleS != "" {
				ds, err := theme.ParseDesignStyle(styleS)
				if err != nil {
					return err
				}
				b.DesignStyle = ds
			}

			s, err := a.openStudio(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if events {
				bld := s.NewBuilder(b)
				t := bld.Build()
				return printJSON(out, buildOutput{
					Brand:   b.ID,
					Style:   string(b.Style()),
					Key:     studio.CacheKey(b),
					Options: t.Options,
					Events:  bld.PluginEvents(),
				})
			}

			t := s.BuildTheme(b)
			if err := printJSON(out, t.Options); err != nil {
				return err
			}
			if stats {
				fmt.Fprintln(cmd.ErrOrStderr(), describeStats(s.Stats()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&events, "events", false, "include plugin events and the cache key")
	cmd.Flags().BoolVar(&stats, "stats", false, "print cache statistics to stderr")
	cmd.Flags().StringVarP(&styleS, "style", "s", "", "build with this design style instead of the brand's")
	return cmd
}

// describeStats is a one-line cache summary.
func describeStats(st studio.Stats) string {
	return fmt.Sprintf("%d theme(s) and %d preset(s) cached", st.ThemeCacheSize, st.PresetCacheSize)
}
