package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themestudio/internal/store"
	"github.com/jmylchreest/themestudio/internal/theme"
)

func newBrandCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "brand",
		Aliases: []string{"brands"},
		Short:   "Manage stored brands",
		Long: `Manage the brand store: create, inspect, edit and remove brands, choose
the active one and move brands between machines as bundles.

Commands that take a brand ID use the active brand when it is omitted.`,
	}

	cmd.AddCommand(
		newBrandListCmd(a),
		newBrandNewCmd(a),
		newBrandShowCmd(a),
		newBrandUseCmd(a),
		newBrandDuplicateCmd(a),
		newBrandDeleteCmd(a),
		newBrandRenameCmd(a),
		newBrandSetStyleCmd(a),
		newBrandSetPaletteCmd(a),
		newBrandSetOverridesCmd(a),
		newBrandImportCmd(a),
		newBrandExportCmd(a),
	)
	return cmd
}

func newBrandListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List brands",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			state := st.State()
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, state.Brands)
			}

			table := NewTable("", "ID", "NAME", "STYLE", "UPDATED")
			for _, b := range state.Brands {
				marker := ""
				if b.ID == state.ActiveBrandID {
					marker = "*"
				}
				table.AddRow(marker, b.ID, b.Name, string(b.Style()), b.Metadata.UpdatedAt.Local().Format(time.DateTime))
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print brands as JSON")
	return cmd
}

func newBrandNewCmd(a *app) *cobra.Command {
	var (
		style       string
		description string
		recommended bool
		flags       seedFlags
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a brand and make it active",
		Long: `Create a brand with default tokens and make it the active brand.

The palette can be grown from a colour, an image or a prompt; otherwise the
default palette is used. With --recommended, a style that ships its own
colours replaces the primary, secondary and background.

Examples:
  themestudio brand new "Acme"
  themestudio brand new "Acme Night" --style cyberpunk --recommended
  themestudio brand new "Harbour" --from-image logo.png --style glassmorphism`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := theme.ParseDesignStyle(style)
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}

			b := theme.NewBrand(args[0], ds, time.Now())
			b.Description = description
			if flags.given() {
				s, err := flags.resolve(cmd.Context(), a.logger)
				if err != nil {
					return err
				}
				b.Tokens.Palette = theme.PaletteFrom(s.Palette())
			}
			if recommended {
				b.Tokens.Palette = theme.ApplyRecommended(b.Tokens.Palette, ds)
			}

			if err := st.Add(b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", b.ID, b.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "design style (default: minimal)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "brand description")
	cmd.Flags().BoolVar(&recommended, "recommended", false, "use the style's recommended colours")
	flags.register(cmd.Flags())
	return cmd
}

func newBrandShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a brand configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			b, err := brandArg(st, args)
			if err != nil {
				return err
			}
			return writeBrand(cmd.OutOrStdout(), b, format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format (yaml, json)")
	return cmd
}

func writeBrand(w io.Writer, b *theme.BrandConfig, format string) error {
	switch format {
	case "json":
		return printJSON(w, b)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}

func newBrandUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Make a brand the active brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			if err := st.SetActive(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active brand: %s\n", args[0])
			return nil
		},
	}
}

func newBrandDuplicateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate [id]",
		Aliases: []string{"dup", "copy"},
		Short:   "Copy a brand under a new ID and make the copy active",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			src, err := brandArg(st, args)
			if err != nil {
				return err
			}
			dup, err := st.Duplicate(src.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", dup.ID, dup.Name)
			return nil
		},
	}
}

func newBrandDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a brand",
		Long:    `Delete a brand. The last brand cannot be deleted; deleting the active brand activates the first remaining one.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			if err := st.Delete(args[0]); err != nil {
				if errors.Is(err, store.ErrLastBrand) {
					return fmt.Errorf("%w: create another brand first", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newBrandRenameCmd(a *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Change a brand's name and description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			p := store.Patch{Name: &args[1]}
			if cmd.Flags().Changed("description") {
				p.Description = &description
			}
			b, err := st.Update(args[0], p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", b.ID, b.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	return cmd
}

func newBrandSetStyleCmd(a *app) *cobra.Command {
	var recommended bool

	cmd := &cobra.Command{
		Use:   "set-style <id> <style>",
		Short: "Change a brand's design style",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := theme.ParseDesignStyle(args[1])
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			b, err := st.Brand(args[0])
			if err != nil {
				return err
			}

			p := store.Patch{DesignStyle: &ds}
			if recommended {
				palette := theme.ApplyRecommended(b.Tokens.Palette, ds)
				p.Palette = &palette
			}
			if _, err := st.Update(b.ID, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now uses %s\n", b.ID, ds.DisplayName())
			return nil
		},
	}
	cmd.Flags().BoolVar(&recommended, "recommended", false, "also apply the style's recommended colours")
	return cmd
}

func newBrandSetPaletteCmd(a *app) *cobra.Command {
	var flags seedFlags

	cmd := &cobra.Command{
		Use:   "set-palette [id]",
		Short: "Regenerate a brand palette from a colour, an image or a prompt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			b, err := brandArg(st, args)
			if err != nil {
				return err
			}
			s, err := flags.resolve(cmd.Context(), a.logger)
			if err != nil {
				return err
			}
			palette := theme.PaletteFrom(s.Palette())
			if _, err := st.Update(b.ID, store.Patch{Palette: &palette}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s palette grown from %s (%s)\n", b.ID, s.BaseColor, s.Harmony)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newBrandSetOverridesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-overrides <id> <file|->",
		Short: "Replace a brand's component overrides from a JSON file",
		Long: `Replace a brand's component overrides with the JSON object in a file, or
on stdin when the file is "-". Keys are component names; each entry holds
optional defaultProps, styleOverrides and variants. Malformed input leaves
the brand unchanged.

Example:
  echo '{"MuiButton":{"defaultProps":{"disableElevation":true}}}' | \
    themestudio brand set-overrides brand-1718000000000 -`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			b, err := st.SetComponentOverridesJSON(args[0], data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s has %d component override(s)\n", b.ID, b.Tokens.Components.Len())
			return nil
		},
	}
}

func newBrandImportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Import brands from a bundle",
		Long: `Import the brands in a bundle (json, yaml or json.xz). A brand whose ID
already exists replaces the stored one. The format follows the file
extension unless --format is given; stdin defaults to json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bundleFormat(format, args[0])
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				r = file
			}

			bundle, err := store.ReadBundle(r, f)
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			added, replaced, err := st.Import(bundle)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d brand(s): %d added, %d replaced\n", added+replaced, added, replaced)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "bundle format (json, yaml, json.xz)")
	return cmd
}

func newBrandExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [id...]",
		Short: "Write brands to a bundle",
		Long:  `Write the named brands, or every brand, to a bundle on stdout or in a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := output
			if target == "" {
				target = "-"
			}
			f, err := bundleFormat(format, target)
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			bundle, err := st.Export(args...)
			if err != nil {
				return err
			}

			if target == "-" {
				return store.WriteBundle(cmd.OutOrStdout(), bundle, f)
			}
			file, err := os.Create(target)
			if err != nil {
				return err
			}
			if err := store.WriteBundle(file, bundle, f); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d brand(s) to %s\n", len(bundle.Brands), target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "bundle format (json, yaml, json.xz)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// bundleFormat returns the explicit format, or the one implied by path.
// Stdin and stdout default to json.
func bundleFormat(explicit, path string) (store.Format, error) {
	if explicit != "" {
		return store.ParseFormat(explicit)
	}
	if path == "-" {
		return store.FormatJSON, nil
	}
	return store.FormatFromPath(path), nil
}

// readInput reads the named file, or stdin for "-".
func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
