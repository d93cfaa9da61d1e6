package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themestudio/internal/colour"
	"github.com/jmylchreest/themestudio/internal/seed"
	"github.com/jmylchreest/themestudio/internal/store"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// seedFlags selects where a brand palette starts from: a colour, an image
// or a prompt. At most one source may be given.
type seedFlags struct {
	base    string
	image   string
	prompt  string
	harmony colour.HarmonyType
	model   string
	backend string
	noCache bool
}

func (f *seedFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.base, "base", "", "base colour to grow the palette from (#rrggbb)")
	fs.StringVar(&f.image, "from-image", "", "seed from the dominant colour of an image file or HTTPS URL")
	fs.StringVar(&f.prompt, "from-prompt", "", "seed from a text prompt answered by Gemini (needs GOOGLE_API_KEY)")
	fs.Var(&f.harmony, "harmony", "colour harmony (analogous, monochromatic, triad, complementary, split-complementary, square, compound, shades, custom)")
	fs.StringVar(&f.model, "model", seed.DefaultModel, "Gemini model used with --from-prompt")
	fs.StringVar(&f.backend, "genai-backend", seed.BackendGemini, "Gen AI backend used with --from-prompt (gemini-api, vertex-ai)")
	fs.BoolVar(&f.noCache, "no-image-cache", false, "do not cache downloaded images")
}

// given reports whether any seed source was set.
func (f *seedFlags) given() bool {
	return f.base != "" || f.image != "" || f.prompt != ""
}

// resolve returns the seed for the chosen source. An explicit --harmony
// wins over whatever the source suggested.
func (f *seedFlags) resolve(ctx context.Context, logger hclog.Logger) (seed.Seed, error) {
	sources := 0
	for _, v := range []string{f.base, f.image, f.prompt} {
		if v != "" {
			sources++
		}
	}
	if sources > 1 {
		return seed.Seed{}, errors.New("use only one of --base, --from-image and --from-prompt")
	}

	var (
		s   seed.Seed
		err error
	)
	switch {
	case f.base != "":
		rgb, perr := colour.ParseHex(f.base)
		if perr != nil {
			return seed.Seed{}, fmt.Errorf("invalid base colour: %w", perr)
		}
		s = seed.Seed{BaseColor: rgb.Hex(), Harmony: seed.DefaultHarmony, Source: "colour"}

	case f.image != "":
		loader := seed.NewImageLoader().WithLogger(logger)
		if !f.noCache {
			if dir, derr := seed.DefaultCacheDir(); derr == nil {
				loader = loader.WithCacheDir(dir)
			}
		}
		s, err = loader.Seed(ctx, f.image)

	case f.prompt != "":
		s, err = seed.FromPrompt(ctx, f.prompt, seed.PromptOptions{
			Model:   f.model,
			Backend: f.backend,
			Logger:  logger,
		})

	default:
		return seed.Seed{}, errors.New("a seed source is required: --base, --from-image or --from-prompt")
	}
	if err != nil {
		return seed.Seed{}, err
	}

	if f.harmony != "" {
		s.Harmony = f.harmony
	}
	return s, nil
}

func newSeedCmd(a *app) *cobra.Command {
	var (
		flags seedFlags
		apply string
		asStr string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Derive a brand palette from a colour, an image or a prompt",
		Long: `Derive a seed colour and harmony, then print the palette grown from it.

Examples:
  # Seed from a logo
  themestudio seed --from-image logo.png

  # Seed from a description and write the palette to a brand
  themestudio seed --from-prompt "calm ocean fintech" --apply brand-1718000000000

  # Seed from a colour with a triadic harmony
  themestudio seed --base "#0f766e" --harmony triad`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.resolve(cmd.Context(), a.logger)
			if err != nil {
				return err
			}
			palette := s.Palette()

			if apply != "" {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				bp := theme.PaletteFrom(palette)
				b, err := st.Update(apply, store.Patch{Palette: &bp})
				if err != nil {
					return err
				}
				a.logger.Info("palette applied", "brand", b.ID, "base", s.BaseColor, "harmony", s.Harmony)
			}

			out := cmd.OutOrStdout()
			switch asStr {
			case "json":
				return printJSON(out, seedOutput{Seed: s, Palette: palette})
			case "yaml":
				return yaml.NewEncoder(out).Encode(seedOutput{Seed: s, Palette: palette})
			case "", "text":
				fmt.Fprintf(out, "Seed: %s (%s)", s.BaseColor, s.Harmony)
				if s.Name != "" {
					fmt.Fprintf(out, " %q", s.Name)
				}
				fmt.Fprintln(out)
				writePalette(out, palette, isTerminal(out))
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", asStr)
			}
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&apply, "apply", "", "write the palette to the brand with this ID")
	cmd.Flags().StringVarP(&asStr, "output", "o", "text", "output format (text, json, yaml)")
	return cmd
}

type seedOutput struct {
	Seed    seed.Seed              `json:"seed" yaml:"seed"`
	Palette colour.SemanticPalette `json:"palette" yaml:"palette"`
}
