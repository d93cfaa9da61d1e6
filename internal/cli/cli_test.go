package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/themestudio/internal/cli"
	"github.com/jmylchreest/themestudio/internal/colour"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// testEnv is an isolated config file and brand store.
type testEnv struct {
	dir        string
	configPath string
	storeDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, key := range []string{
		"THEMESTUDIO_STORE_PATH", "THEMESTUDIO_TEMPLATE_DIR", "THEMESTUDIO_CACHE_SIZE",
		"THEMESTUDIO_UNKNOWN_COMPONENTS", "THEMESTUDIO_LOG_LEVEL",
		"THEMESTUDIO_DISABLED_PLUGINS", "THEMESTUDIO_ENABLED_PLUGINS",
	} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	env := &testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.yaml"),
		storeDir:   filepath.Join(dir, "store"),
	}
	cfg := "template_dir: " + filepath.Join(dir, "templates") + "\ncache_size: 5\nunknown_components: warn\n"
	if err := os.WriteFile(env.configPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return env
}

// run executes one command line against env and returns stdout.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", e.configPath, "--store", e.storeDir}, args...))
	err := cmd.Execute()
	if err != nil {
		t.Logf("stderr: %s", errOut.String())
	}
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, "", args...)
	if err != nil {
		t.Fatalf("%v: error = %v", args, err)
	}
	return out
}

func (e *testEnv) brands(t *testing.T) []*theme.BrandConfig {
	t.Helper()
	var brands []*theme.BrandConfig
	if err := json.Unmarshal([]byte(e.mustRun(t, "brand", "list", "--json")), &brands); err != nil {
		t.Fatalf("brand list output is not JSON: %v", err)
	}
	return brands
}

// newBrand creates a brand and returns its ID.
func (e *testEnv) newBrand(t *testing.T, args ...string) string {
	t.Helper()
	e.mustRun(t, append([]string{"brand", "new"}, args...)...)
	brands := e.brands(t)
	return brands[len(brands)-1].ID
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "version")
	if !strings.HasPrefix(out, "themestudio ") {
		t.Errorf("version output = %q, want themestudio prefix", out)
	}
}

func TestBrandLifecycle(t *testing.T) {
	env := newTestEnv(t)

	list := env.mustRun(t, "brand", "list")
	if !strings.Contains(list, "* ") || !strings.Contains(list, theme.DefaultBrandID) {
		t.Fatalf("fresh store list = %q, want the active default brand", list)
	}

	id := env.newBrand(t, "Acme", "--style", "cyberpunk", "--recommended")
	brands := env.brands(t)
	if len(brands) != 2 {
		t.Fatalf("got %d brands, want 2", len(brands))
	}
	acme := brands[1]
	if acme.Name != "Acme" || acme.Style() != theme.StyleCyberpunk {
		t.Errorf("new brand = %s/%s, want Acme/cyberpunk", acme.Name, acme.Style())
	}
	rec, _ := theme.RecommendedPalette(theme.StyleCyberpunk)
	if acme.Tokens.Palette.Primary.Main != rec.Primary.Main {
		t.Errorf("primary = %s, want recommended %s", acme.Tokens.Palette.Primary.Main, rec.Primary.Main)
	}

	t.Run("show", func(t *testing.T) {
		out := env.mustRun(t, "brand", "show", "-o", "json")
		var b theme.BrandConfig
		if err := json.Unmarshal([]byte(out), &b); err != nil {
			t.Fatalf("show output is not JSON: %v", err)
		}
		if b.ID != id {
			t.Errorf("show without ID = %s, want active brand %s", b.ID, id)
		}
		if yamlOut := env.mustRun(t, "brand", "show", id); !strings.Contains(yamlOut, "name: Acme") {
			t.Errorf("yaml show = %q, want name: Acme", yamlOut)
		}
	})

	t.Run("rename and restyle", func(t *testing.T) {
		env.mustRun(t, "brand", "rename", id, "Acme Night", "-d", "after hours")
		env.mustRun(t, "brand", "set-style", id, "brutalism")
		b := env.brands(t)[1]
		if b.Name != "Acme Night" || b.Description != "after hours" || b.Style() != theme.StyleBrutalism {
			t.Errorf("brand = %q/%q/%s, want renamed and brutalism", b.Name, b.Description, b.Style())
		}
		if !b.Metadata.UpdatedAt.After(acme.Metadata.UpdatedAt) {
			t.Error("UpdatedAt did not move forward")
		}
	})

	t.Run("set-overrides", func(t *testing.T) {
		out, err := env.run(t, `{"MuiButton":{"defaultProps":{"disableElevation":true}}}`, "brand", "set-overrides", id, "-")
		if err != nil {
			t.Fatalf("set-overrides error = %v", err)
		}
		if !strings.Contains(out, "1 component override(s)") {
			t.Errorf("set-overrides output = %q", out)
		}
		if _, err := env.run(t, `[1,2]`, "brand", "set-overrides", id, "-"); err == nil {
			t.Error("set-overrides with an array error = nil, want error")
		}
		if got := env.brands(t)[1].Tokens.Components.Len(); got != 1 {
			t.Errorf("overrides after rejected input = %d, want 1", got)
		}
	})

	t.Run("set-palette", func(t *testing.T) {
		env.mustRun(t, "brand", "set-palette", id, "--base", "#0f766e", "--harmony", "triad")
		want := colour.GeneratePalette("#0f766e", colour.HarmonyTriad).Primary.Main
		if got := env.brands(t)[1].Tokens.Palette.Primary.Main; got != want {
			t.Errorf("primary = %s, want %s", got, want)
		}
	})

	t.Run("duplicate use delete", func(t *testing.T) {
		out := env.mustRun(t, "brand", "duplicate", id)
		if !strings.Contains(out, "(Copy)") {
			t.Errorf("duplicate output = %q", out)
		}
		if got := len(env.brands(t)); got != 3 {
			t.Fatalf("brands after duplicate = %d, want 3", got)
		}

		env.mustRun(t, "brand", "use", theme.DefaultBrandID)
		if out := env.mustRun(t, "brand", "show", "-o", "json"); !strings.Contains(out, `"id": "`+theme.DefaultBrandID+`"`) {
			t.Errorf("active brand after use = %s", out)
		}

		env.mustRun(t, "brand", "delete", id)
		for _, b := range env.brands(t) {
			if b.ID == id {
				t.Errorf("brand %s still listed after delete", id)
			}
		}
	})

	t.Run("unknown brand", func(t *testing.T) {
		if _, err := env.run(t, "", "brand", "use", "missing"); err == nil || !strings.Contains(err.Error(), "brand not found") {
			t.Errorf("use missing error = %v, want brand not found", err)
		}
	})
}

func TestBrandDeleteLast(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "brand", "delete", theme.DefaultBrandID)
	if err == nil || !strings.Contains(err.Error(), "cannot delete the last brand") {
		t.Errorf("delete last brand error = %v, want last-brand error", err)
	}
}

func TestBrandBundleRoundTrip(t *testing.T) {
	src := newTestEnv(t)
	src.newBrand(t, "Acme", "--base", "#e91e63")

	for _, name := range []string{"brands.yaml", "brands.json.xz", "brands.json"} {
		t.Run(name, func(t *testing.T) {
			bundle := filepath.Join(src.dir, name)
			src.mustRun(t, "brand", "export", "-o", bundle)

			dst := newTestEnv(t)
			out := dst.mustRun(t, "brand", "import", bundle)
			if !strings.Contains(out, "1 added, 1 replaced") {
				t.Errorf("import output = %q, want 1 added, 1 replaced", out)
			}

			want := src.brands(t)
			got := dst.brands(t)
			if len(got) != len(want) {
				t.Fatalf("imported %d brands, want %d", len(got), len(want))
			}
			if diff := cmp.Diff(want[1].Tokens.Palette, got[1].Tokens.Palette); diff != "" {
				t.Errorf("palette mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "build")
	var opts theme.Options
	if err := json.Unmarshal([]byte(out), &opts); err != nil {
		t.Fatalf("build output is not theme options: %v", err)
	}
	if opts.CSSVariables == nil || opts.CSSVariables.ColorSchemeSelector != theme.SelectorClass {
		t.Errorf("cssVariables = %+v, want class selector", opts.CSSVariables)
	}
	if got := opts.Palette.String("primary", "main"); got != theme.DefaultPrimary {
		t.Errorf("palette.primary.main = %q, want %q", got, theme.DefaultPrimary)
	}

	out = env.mustRun(t, "build", "--events", "--style", "retro")
	var withEvents struct {
		Style  string `json:"style"`
		Key    string `json:"cacheKey"`
		Events []struct {
			Kind   string `json:"kind"`
			Plugin string `json:"plugin"`
		} `json:"events"`
	}
	if err := json.Unmarshal([]byte(out), &withEvents); err != nil {
		t.Fatalf("build --events output is not JSON: %v", err)
	}
	if withEvents.Style != "retro" || !strings.HasPrefix(withEvents.Key, theme.DefaultBrandID+":retro:") {
		t.Errorf("style/key = %s/%s, want retro", withEvents.Style, withEvents.Key)
	}
	applied := map[string]bool{}
	for _, e := range withEvents.Events {
		if e.Kind == "applied" {
			applied[e.Plugin] = true
		}
	}
	if !applied["animation"] || !applied["accessibility"] {
		t.Errorf("applied plugins = %v, want animation and accessibility", applied)
	}

	if _, err := env.run(t, "", "build", "--style", "baroque"); err == nil {
		t.Error("build with unknown style error = nil, want error")
	}
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "export", "--stdout", "--format", "json")
	var tokens theme.BrandTokens
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("json export is not brand tokens: %v", err)
	}
	if tokens.Spacing != 8 {
		t.Errorf("spacing = %d, want 8", tokens.Spacing)
	}

	outDir := filepath.Join(env.dir, "src", "theme")
	out = env.mustRun(t, "export", "--dir", outDir, "--no-dev-server-check")
	matches, _ := filepath.Glob(filepath.Join(outDir, "*.theme.ts"))
	if len(matches) != 1 {
		t.Fatalf("export wrote %v, want one .theme.ts file (output %q)", matches, out)
	}
	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "createTheme(") {
		t.Errorf("theme export does not call createTheme:\n%s", content)
	}

	if _, err := env.run(t, "", "export", "--dir", outDir, "--name", "../escape.ts", "--no-dev-server-check"); err == nil {
		t.Error("export outside the directory error = nil, want error")
	}
	if _, err := env.run(t, "", "export", "--format", "scss", "--stdout"); err == nil {
		t.Error("export with unknown format error = nil, want error")
	}
}

func TestExportTemplates(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "export", "templates", "dump")
	if strings.Count(out, "wrote") != 2 {
		t.Errorf("dump output = %q, want two templates written", out)
	}
	out = env.mustRun(t, "export", "templates", "dump")
	if strings.Count(out, "skipped") != 2 {
		t.Errorf("second dump output = %q, want two skipped", out)
	}

	list := env.mustRun(t, "export", "templates", "list")
	if strings.Contains(list, "embedded") {
		t.Errorf("templates list after dump = %q, want custom sources", list)
	}

	formats := env.mustRun(t, "export", "formats")
	for _, f := range []string{"theme", "typescript", "json"} {
		if !strings.Contains(formats, f) {
			t.Errorf("formats output missing %q:\n%s", f, formats)
		}
	}
}

func TestPaletteAndContrast(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "palette", "#1976d2", "--json")
	var got colour.SemanticPalette
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("palette output is not JSON: %v", err)
	}
	if diff := cmp.Diff(colour.GeneratePalette("#1976d2", colour.HarmonyComplementary), got); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}

	if out := env.mustRun(t, "palette", "1976d2"); !strings.Contains(out, "SCALE") {
		t.Errorf("palette table = %q, want a table outside a terminal", out)
	}

	out = env.mustRun(t, "contrast", "#000000", "#ffffff")
	if !strings.Contains(out, "21.00:1") || strings.Contains(out, "fail") {
		t.Errorf("contrast output = %q, want 21:1 passing", out)
	}

	out = env.mustRun(t, "contrast", "--json")
	var report []colour.ContrastCheck
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("contrast report is not JSON: %v", err)
	}
	if len(report) != 7 {
		t.Errorf("report has %d checks, want 7", len(report))
	}

	if _, err := env.run(t, "", "contrast", "#000"); err == nil {
		t.Error("contrast with one colour error = nil, want error")
	}
	if _, err := env.run(t, "", "palette", "blue"); err == nil {
		t.Error("palette with a colour name error = nil, want error")
	}
}

func TestSeedFromColour(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "seed", "--base", "#0F766E", "--harmony", "triadic", "-o", "json")
	var got struct {
		Seed struct {
			BaseColor string `json:"baseColor"`
			Harmony   string `json:"harmony"`
		} `json:"seed"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("seed output is not JSON: %v", err)
	}
	if got.Seed.BaseColor != "#0f766e" || got.Seed.Harmony != "triad" {
		t.Errorf("seed = %+v, want #0f766e triad", got.Seed)
	}

	env.mustRun(t, "seed", "--base", "#0f766e", "--apply", theme.DefaultBrandID)
	want := colour.GeneratePalette("#0f766e", colour.HarmonyComplementary).Primary.Main
	if got := env.brands(t)[0].Tokens.Palette.Primary.Main; got != want {
		t.Errorf("applied primary = %s, want %s", got, want)
	}

	if _, err := env.run(t, "", "seed", "--base", "#fff", "--from-image", "x.png"); err == nil {
		t.Error("seed with two sources error = nil, want error")
	}
	if _, err := env.run(t, "", "seed"); err == nil {
		t.Error("seed with no source error = nil, want error")
	}
}

func TestCatalogCommands(t *testing.T) {
	env := newTestEnv(t)

	var presets []map[string]any
	if err := json.Unmarshal([]byte(env.mustRun(t, "presets", "--json")), &presets); err != nil {
		t.Fatalf("presets output is not JSON: %v", err)
	}
	if len(presets) != len(theme.AllDesignStyles()) {
		t.Errorf("presets = %d, want %d", len(presets), len(theme.AllDesignStyles()))
	}

	plugins := env.mustRun(t, "plugins")
	for _, want := range []string{"animation", "accessibility", "enabled", "available"} {
		if !strings.Contains(plugins, want) {
			t.Errorf("plugins output missing %q:\n%s", want, plugins)
		}
	}

	var tokens struct {
		Spacing theme.SpacingTokens `json:"spacing"`
	}
	out := env.mustRun(t, "tokens", "--scale", "exponential", "--base", "2", "--count", "4")
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("tokens output is not JSON: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 4, 8}, tokens.Spacing.Steps); diff != "" {
		t.Errorf("spacing steps mismatch (-want +got):\n%s", diff)
	}
	if _, err := env.run(t, "", "tokens", "--scale", "fibonacci"); err == nil {
		t.Error("tokens with unknown scale error = nil, want error")
	}
}

func TestModeAndConfig(t *testing.T) {
	env := newTestEnv(t)

	if out := env.mustRun(t, "mode"); strings.TrimSpace(out) != "light" {
		t.Errorf("default mode = %q, want light", out)
	}
	if out := env.mustRun(t, "mode", "dark"); strings.TrimSpace(out) != "dark" {
		t.Errorf("mode dark = %q", out)
	}
	if out := env.mustRun(t, "mode"); strings.TrimSpace(out) != "dark" {
		t.Errorf("mode after set = %q, want dark persisted", out)
	}
	if _, err := env.run(t, "", "mode", "sepia"); err == nil {
		t.Error("mode sepia error = nil, want error")
	}

	out := env.mustRun(t, "config", "show")
	for _, want := range []string{"cache_size: 5", "store_path: " + env.storeDir} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
	if out := env.mustRun(t, "config", "path"); strings.TrimSpace(out) != env.configPath {
		t.Errorf("config path = %q, want %q", out, env.configPath)
	}
}

func TestBadConfig(t *testing.T) {
	env := newTestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("cache_size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := env.run(t, "", "brand", "list"); err == nil {
		t.Error("brand list with invalid config error = nil, want error")
	}
}
