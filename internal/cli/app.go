package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/themestudio/internal/config"
	"github.com/jmylchreest/themestudio/internal/export"
	"github.com/jmylchreest/themestudio/internal/logging"
	"github.com/jmylchreest/themestudio/internal/plugin/builtin"
	"github.com/jmylchreest/themestudio/internal/plugin/external"
	"github.com/jmylchreest/themestudio/internal/store"
	"github.com/jmylchreest/themestudio/internal/studio"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// app carries the state shared by every command of one invocation. The
// store and studio are opened on first use so commands that need neither
// never touch the disk or start plugin processes.
type app struct {
	configPath string
	storeDir   string
	logLevel   string
	logJSON    bool
	verbose    bool

	cfg    *config.Config
	logger hclog.Logger

	store     *store.Store
	studio    *studio.Studio
	externals []*external.Plugin
}

// setup loads the config, overlays the global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.storeDir != "" {
		cfg.StorePath = a.storeDir
	}
	switch {
	case a.logLevel != "":
		cfg.LogLevel = a.logLevel
	case a.verbose:
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Output: cmd.ErrOrStderr(),
		JSON:   a.logJSON,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	logger.Debug("configuration loaded", "store", cfg.StorePath, "cache_size", cfg.CacheSize, "policy", cfg.UnknownComponents)
	return nil
}

// close stops any external plugin processes started during the run.
func (a *app) close() {
	for _, p := range a.externals {
		p.Close()
	}
	a.externals = nil
}

// openStore returns the brand store, opening it on first use.
func (a *app) openStore() (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	dir := a.cfg.StorePath
	if dir == "" {
		var err error
		if dir, err = store.DefaultDir(); err != nil {
			return nil, err
		}
	}

	s, err := store.Open(
		store.WithBackend(store.NewFileBackend(dir)),
		store.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

// openStudio returns the studio, loading external plugins on first use.
func (a *app) openStudio(ctx context.Context) (*studio.Studio, error) {
	if a.studio != nil {
		return a.studio, nil
	}

	specs, err := a.pluginSpecs(ctx)
	if err != nil {
		return nil, err
	}

	a.studio = studio.New(
		studio.WithLogger(a.logger),
		studio.WithCacheSize(a.cfg.CacheSize),
		studio.WithPolicy(a.cfg.Policy()),
		studio.WithPluginConfig(a.cfg.ManagerConfig()),
		studio.WithPlugins(specs...),
	)
	return a.studio, nil
}

// pluginSpecs is the default plugin set with configured options merged over
// the defaults, any other built-in plugin the config names, then every
// configured external plugin.
func (a *app) pluginSpecs(ctx context.Context) ([]studio.PluginSpec, error) {
	specs := studio.DefaultPlugins()
	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		name := spec.Plugin.Name()
		seen[name] = true
		if opts := a.cfg.PluginOptions(name); opts != nil {
			specs[i].Options = mergeOptions(spec.Options, opts)
		}
	}

	for _, p := range builtin.All() {
		name := p.Name()
		if seen[name] {
			continue
		}
		opts := a.cfg.PluginOptions(name)
		if opts == nil && !slices.Contains(a.cfg.Plugins.Enabled, name) {
			continue
		}
		seen[name] = true
		specs = append(specs, studio.PluginSpec{Plugin: p, Options: opts})
	}

	for _, ext := range a.cfg.Plugins.External {
		opts := []external.Option{
			external.WithName(ext.Name),
			external.WithLogger(a.logger),
			external.WithTimeout(ext.Timeout),
		}
		if ext.Priority > 0 {
			opts = append(opts, external.WithPriority(ext.Priority))
		}
		p, err := external.Load(ctx, ext.Path, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load plugin %q: %w", ext.Name, err)
		}
		a.externals = append(a.externals, p)
		specs = append(specs, studio.PluginSpec{Plugin: p, Options: ext.Options})
	}
	return specs, nil
}

// mergeOptions lays configured options over a default options map. Anything
// other than a map is replaced outright.
func mergeOptions(defaults any, configured map[string]any) any {
	base, ok := defaults.(map[string]any)
	if !ok {
		return configured
	}
	out := maps.Clone(base)
	maps.Copy(out, configured)
	return out
}

// newLoader returns the export template loader, reading overrides from the
// configured directory.
func (a *app) newLoader() *export.Loader {
	loader := export.NewLoader().WithLogger(a.logger)
	if a.cfg.TemplateDir != "" {
		loader = loader.WithCustomDir(a.cfg.TemplateDir)
	}
	return loader
}

func (a *app) newExporter(s *studio.Studio) *export.Exporter {
	return export.New(s).WithLoader(a.newLoader()).WithLogger(a.logger)
}

// brandArg returns the brand named by the first argument, or the active
// brand when there is none.
func brandArg(s *store.Store, args []string) (*theme.BrandConfig, error) {
	if len(args) > 0 && args[0] != "" {
		return s.Brand(args[0])
	}
	return s.Active()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isTerminal reports whether w is an interactive terminal, which decides
// whether colour swatches are drawn.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
