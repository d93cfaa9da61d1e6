package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themestudio/internal/colour"
	"github.com/jmylchreest/themestudio/internal/seed"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// swatchWidth is the width of a terminal colour block.
const swatchWidth = 9

func newPaletteCmd(_ *app) *cobra.Command {
	var (
		harmony = seed.DefaultHarmony
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "palette <colour>",
		Short: "Generate a semantic palette from one colour",
		Long: `Generate the seven-scale semantic palette (primary, secondary, error,
warning, info, success, neutral) that a brand would get from a base colour.

The base is pushed into a vibrant range first. Error, success and neutral
are pinned; the other scales follow the harmony.

Examples:
  themestudio palette "#1976d2"
  themestudio palette 0f766e --harmony triad
  themestudio palette "#e91e63" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}
			palette := colour.GeneratePalette(rgb.Hex(), harmony)

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, palette)
			}
			writePalette(out, palette, isTerminal(out))
			return nil
		},
	}

	cmd.Flags().Var(&harmony, "harmony", "colour harmony")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the palette as JSON")
	return cmd
}

// writePalette prints one line per scale, with colour blocks when swatches
// is set.
func writePalette(w io.Writer, p colour.SemanticPalette, swatches bool) {
	rows := []struct {
		name  string
		scale colour.Scale
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"error", p.Error},
		{"warning", p.Warning},
		{"info", p.Info},
		{"success", p.Success},
		{"neutral", p.Neutral},
	}

	if swatches {
		for _, r := range rows {
			fmt.Fprintf(w, "%-10s %s%s%s  %s\n", r.name,
				colour.Swatch(r.scale.Light, "light", swatchWidth),
				colour.Swatch(r.scale.Main, r.scale.Main, swatchWidth),
				colour.Swatch(r.scale.Dark, "dark", swatchWidth),
				r.scale.ContrastText)
		}
		return
	}

	table := NewTable("SCALE", "MAIN", "LIGHT", "DARK", "TEXT")
	for _, r := range rows {
		table.AddRow(r.name, r.scale.Main, r.scale.Light, r.scale.Dark, r.scale.ContrastText)
	}
	fmt.Fprint(w, table.Render())
}

func newContrastCmd(a *app) *cobra.Command {
	var (
		brandID string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "contrast [foreground background]",
		Short: "Check WCAG contrast of two colours or of a brand palette",
		Long: `With two colours, print their WCAG contrast ratio and whether it passes
AA (4.5:1) and AAA (7:1) for normal text. Without arguments, check each
scale of a brand palette: its contrast text on its main colour.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var report []colour.ContrastCheck
			if len(args) == 2 {
				for _, c := range args {
					if !colour.IsHex(c) {
						return fmt.Errorf("invalid hex colour %q", c)
					}
				}
				report = []colour.ContrastCheck{colour.Check("pair", args[0], args[1])}
			} else {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				var ids []string
				if brandID != "" {
					ids = []string{brandID}
				}
				b, err := brandArg(st, ids)
				if err != nil {
					return err
				}
				report = colour.ContrastReport(semanticPalette(b.Tokens.Palette))
			}

			if asJSON {
				return printJSON(out, report)
			}
			table := NewTable("NAME", "TEXT", "BACKGROUND", "RATIO", "AA", "AAA")
			for _, c := range report {
				table.AddRow(c.Name, c.Foreground, c.Background, fmt.Sprintf("%.2f:1", c.Ratio), passFail(c.AA), passFail(c.AAA))
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&brandID, "brand", "", "brand to check (default: active brand)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

// semanticPalette resolves a brand palette into generated-palette form.
func semanticPalette(p theme.BrandPalette) colour.SemanticPalette {
	scale := func(c theme.ColorScale) colour.Scale {
		return colour.Scale(c.Resolved())
	}
	return colour.SemanticPalette{
		Primary:   scale(p.Primary),
		Secondary: scale(p.Secondary),
		Error:     scale(p.Error),
		Warning:   scale(p.Warning),
		Info:      scale(p.Info),
		Success:   scale(p.Success),
		Neutral:   scale(p.Neutral),
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
