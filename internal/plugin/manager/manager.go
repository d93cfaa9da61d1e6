// Package manager registers theme plugins and folds them, in priority order,
// over a theme configuration.
package manager

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/themestudio/internal/theme"
)

// DefaultPriority is used for plugins that report a zero priority.
const DefaultPriority = 999

// Environment variables read by WithEnvConfig.
const (
	EnvDisabledPlugins = "THEMESTUDIO_DISABLED_PLUGINS"
	EnvEnabledPlugins  = "THEMESTUDIO_ENABLED_PLUGINS"
)

// ThemePlugin transforms a theme configuration.
type ThemePlugin interface {
	Name() string
	Version() string

	// Priority orders plugins ascending. Zero means DefaultPriority.
	Priority() int

	// Dependencies names plugins that should be registered alongside this
	// one. A missing dependency is reported but never blocks Apply.
	Dependencies() []string

	// Apply returns a transformed copy of opts. options is whatever the
	// caller registered for this plugin's name, possibly nil.
	Apply(opts theme.Options, options any) (theme.Options, error)
}

// EffectivePriority returns p's priority with the zero default applied.
func EffectivePriority(p ThemePlugin) int {
	if pr := p.Priority(); pr != 0 {
		return pr
	}
	return DefaultPriority
}

// Config holds plugin enable/disable state.
type Config struct {
	// DisabledPlugins lists plugin names to skip. "all" disables everything.
	DisabledPlugins []string `yaml:"disabled,omitempty" json:"disabled,omitempty"`

	// EnabledPlugins switches to whitelist mode when non-empty.
	EnabledPlugins []string `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// Outcome reports what Register did.
type Outcome int

const (
	// Registered means the plugin was added.
	Registered Outcome = iota
	// Duplicate means a plugin with the same name already existed; the
	// first registration was kept.
	Duplicate
)

func (o Outcome) String() string {
	if o == Duplicate {
		return "duplicate"
	}
	return "registered"
}

// EventKind classifies a manager event.
type EventKind string

// Event kinds.
const (
	EventRegistered        EventKind = "registered"
	EventDuplicate         EventKind = "duplicate"
	EventMissingDependency EventKind = "missing-dependency"
	EventDisabled          EventKind = "disabled"
	EventApplied           EventKind = "applied"
	EventApplyError        EventKind = "apply-error"
)

// Event is a structured record of something the manager did or refused.
type Event struct {
	Kind   EventKind `json:"kind"`
	Plugin string    `json:"plugin"`
	Detail string    `json:"detail,omitempty"`
}

func (e Event) String() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Plugin, e.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Plugin, e.Kind, e.Detail)
}

// Builder provides a fluent interface for constructing a Manager.
type Builder struct {
	config  Config
	logger  hclog.Logger
	plugins []ThemePlugin
	useEnv  bool
}

// NewBuilder creates a Manager builder with default settings.
func NewBuilder() *Builder {
	return &Builder{logger: hclog.NewNullLogger()}
}

// WithConfig sets the enable/disable configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig overlays THEMESTUDIO_DISABLED_PLUGINS and
// THEMESTUDIO_ENABLED_PLUGINS at Build time.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLogger sets the logger used for warnings.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithPlugins registers plugins, in order, when the manager is built.
func (b *Builder) WithPlugins(plugins ...ThemePlugin) *Builder {
	b.plugins = append(b.plugins, plugins...)
	return b
}

// Build constructs the Manager.
func (b *Builder) Build() *Manager {
	config := b.config
	if b.useEnv {
		if disabled := os.Getenv(EnvDisabledPlugins); disabled != "" {
			config.DisabledPlugins = parsePluginList(disabled)
		}
		if enabled := os.Getenv(EnvEnabledPlugins); enabled != "" {
			config.EnabledPlugins = parsePluginList(enabled)
		}
	}

	m := &Manager{
		config:  config,
		logger:  b.logger.Named("plugins"),
		plugins: make(map[string]ThemePlugin),
	}
	for _, p := range b.plugins {
		m.Register(p)
	}
	return m
}

// Manager owns the registered plugins. It is not safe for concurrent use.
type Manager struct {
	config  Config
	logger  hclog.Logger
	plugins map[string]ThemePlugin
	order   []string
	events  []Event
}

// New returns an empty manager with no enable/disable configuration.
func New(logger hclog.Logger) *Manager {
	return NewBuilder().WithLogger(logger).Build()
}

// Register adds p. A second plugin with an already registered name is not
// added; the first registration stays in effect.
func (m *Manager) Register(p ThemePlugin) Outcome {
	name := p.Name()
	if _, exists := m.plugins[name]; exists {
		m.logger.Warn("plugin already registered", "plugin", name)
		m.record(EventDuplicate, name, "first registration kept")
		return Duplicate
	}
	m.plugins[name] = p
	m.order = append(m.order, name)
	m.record(EventRegistered, name, p.Version())
	return Registered
}

// Get returns the plugin registered under name.
func (m *Manager) Get(name string) (ThemePlugin, bool) {
	p, ok := m.plugins[name]
	return p, ok
}

// List returns the plugins in registration order.
func (m *Manager) List() []ThemePlugin {
	out := make([]ThemePlugin, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.plugins[name])
	}
	return out
}

// Sorted returns the plugins in application order: ascending effective
// priority, ties kept in registration order.
func (m *Manager) Sorted() []ThemePlugin {
	out := m.List()
	slices.SortStableFunc(out, func(a, b ThemePlugin) int {
		return cmp.Compare(EffectivePriority(a), EffectivePriority(b))
	})
	return out
}

// Apply folds every enabled plugin over opts in priority order. Each plugin
// receives optionsByName[its name]. A plugin that fails is logged and
// skipped; the configuration it was handed carries on unchanged.
func (m *Manager) Apply(opts theme.Options, optionsByName map[string]any) theme.Options {
	result := opts
	for _, p := range m.Sorted() {
		name := p.Name()
		if !m.IsEnabled(name) {
			m.record(EventDisabled, name, "")
			continue
		}

		for _, dep := range p.Dependencies() {
			if _, ok := m.plugins[dep]; !ok {
				m.logger.Error("plugin dependency not registered", "plugin", name, "dependency", dep)
				m.record(EventMissingDependency, name, dep)
			}
		}

		next, err := p.Apply(result.Clone(), optionsByName[name])
		if err != nil {
			m.logger.Error("plugin apply failed", "plugin", name, "error", err)
			m.record(EventApplyError, name, err.Error())
			continue
		}
		m.logger.Debug("plugin applied", "plugin", name, "priority", EffectivePriority(p))
		m.record(EventApplied, name, "")
		result = next
	}
	return result
}

// Events returns a copy of the recorded events.
func (m *Manager) Events() []Event {
	return slices.Clone(m.events)
}

// ClearEvents drops all recorded events.
func (m *Manager) ClearEvents() {
	m.events = nil
}

func (m *Manager) record(kind EventKind, plugin, detail string) {
	m.events = append(m.events, Event{Kind: kind, Plugin: plugin, Detail: detail})
}

// IsEnabled determines whether the named plugin takes part in Apply.
func (m *Manager) IsEnabled(name string) bool {
	// "all" in the disabled list takes precedence over everything.
	if slices.Contains(m.config.DisabledPlugins, "all") {
		return false
	}
	if slices.Contains(m.config.DisabledPlugins, name) {
		return false
	}
	if slices.Contains(m.config.EnabledPlugins, "all") {
		return true
	}

	// Whitelist mode.
	if len(m.config.EnabledPlugins) > 0 {
		return slices.Contains(m.config.EnabledPlugins, name)
	}

	// Registering a plugin is the opt-in.
	return true
}

// GetConfig returns the current configuration.
func (m *Manager) GetConfig() Config {
	return m.config
}

// UpdateConfig replaces the enable/disable configuration.
func (m *Manager) UpdateConfig(config Config) {
	m.config = config
}

// SetDisabled disables name, removing it from the enabled list.
func (m *Manager) SetDisabled(name string) {
	m.config.EnabledPlugins = slices.DeleteFunc(m.config.EnabledPlugins, func(s string) bool { return s == name })
	if !slices.Contains(m.config.DisabledPlugins, name) {
		m.config.DisabledPlugins = append(m.config.DisabledPlugins, name)
	}
}

// SetEnabled enables name, removing it from the disabled list.
func (m *Manager) SetEnabled(name string) {
	m.config.DisabledPlugins = slices.DeleteFunc(m.config.DisabledPlugins, func(s string) bool { return s == name })
	if len(m.config.EnabledPlugins) > 0 && !slices.Contains(m.config.EnabledPlugins, name) {
		m.config.EnabledPlugins = append(m.config.EnabledPlugins, name)
	}
}

// parsePluginList splits a comma-separated list, dropping blanks.
func parsePluginList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
