package manager

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/themestudio/internal/theme"
)

// recordingPlugin appends its name to a shared trace when applied.
type recordingPlugin struct {
	name     string
	priority int
	deps     []string
	trace    *[]string
	err      error
	got      any
}

func (p *recordingPlugin) Name() string           { return p.name }
func (p *recordingPlugin) Version() string        { return "1.0.0" }
func (p *recordingPlugin) Priority() int          { return p.priority }
func (p *recordingPlugin) Dependencies() []string { return p.deps }
func (p *recordingPlugin) Apply(opts theme.Options, options any) (theme.Options, error) {
	p.got = options
	if p.trace != nil {
		*p.trace = append(*p.trace, p.name)
	}
	if p.err != nil {
		opts.Shape = theme.Style{"broken": true}
		return opts, p.err
	}
	if opts.Typography == nil {
		opts.Typography = theme.Style{}
	}
	opts.Typography[p.name] = true
	return opts, nil
}

func TestApplyOrdersByPriority(t *testing.T) {
	var trace []string
	m := New(nil)
	m.Register(&recordingPlugin{name: "responsive", priority: 15, trace: &trace})
	m.Register(&recordingPlugin{name: "accessibility", priority: 5, trace: &trace})
	m.Register(&recordingPlugin{name: "animation", priority: 10, trace: &trace})

	m.Apply(theme.Options{}, nil)

	want := []string{"accessibility", "animation", "responsive"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("apply order mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyStableForEqualPriority(t *testing.T) {
	var trace []string
	m := New(nil)
	m.Register(&recordingPlugin{name: "b", trace: &trace})
	m.Register(&recordingPlugin{name: "a", priority: 999, trace: &trace})
	m.Register(&recordingPlugin{name: "c", priority: 1000, trace: &trace})
	m.Register(&recordingPlugin{name: "first", priority: 1, trace: &trace})

	m.Apply(theme.Options{}, nil)

	want := []string{"first", "b", "a", "c"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("apply order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedExtremePriorities(t *testing.T) {
	m := New(nil)
	m.Register(&recordingPlugin{name: "last", priority: math.MaxInt})
	m.Register(&recordingPlugin{name: "default"})
	m.Register(&recordingPlugin{name: "first", priority: math.MinInt})

	var got []string
	for _, p := range m.Sorted() {
		got = append(got, p.Name())
	}
	want := []string{"first", "default", "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterDuplicateKeepsFirst(t *testing.T) {
	m := New(nil)
	first := &recordingPlugin{name: "animation", priority: 10}
	second := &recordingPlugin{name: "animation", priority: 1}

	if got := m.Register(first); got != Registered {
		t.Errorf("Register() = %v, want %v", got, Registered)
	}
	if got := m.Register(second); got != Duplicate {
		t.Errorf("Register() = %v, want %v", got, Duplicate)
	}

	p, ok := m.Get("animation")
	if !ok || p != first {
		t.Errorf("Get() returned %v, want first registration", p)
	}
	if len(m.List()) != 1 {
		t.Errorf("List() has %d plugins, want 1", len(m.List()))
	}

	events := m.Events()
	if events[len(events)-1].Kind != EventDuplicate {
		t.Errorf("last event = %v, want duplicate", events[len(events)-1])
	}
}

func TestMissingDependencyDoesNotBlock(t *testing.T) {
	var trace []string
	m := New(nil)
	m.Register(&recordingPlugin{name: "fancy", deps: []string{"missing"}, trace: &trace})

	out := m.Apply(theme.Options{}, nil)

	if diff := cmp.Diff([]string{"fancy"}, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	if out.Typography["fancy"] != true {
		t.Error("plugin with missing dependency was not applied")
	}

	var found bool
	for _, e := range m.Events() {
		if e.Kind == EventMissingDependency && e.Plugin == "fancy" && e.Detail == "missing" {
			found = true
		}
	}
	if !found {
		t.Errorf("Events() = %v, want a missing-dependency event", m.Events())
	}
}

func TestApplyErrorKeepsPreviousConfig(t *testing.T) {
	m := New(nil)
	m.Register(&recordingPlugin{name: "ok", priority: 1})
	m.Register(&recordingPlugin{name: "bad", priority: 2, err: errors.New("boom")})
	m.Register(&recordingPlugin{name: "after", priority: 3})

	out := m.Apply(theme.Options{}, nil)

	if out.Shape != nil {
		t.Errorf("Shape = %v, failing plugin output leaked", out.Shape)
	}
	want := theme.Style{"ok": true, "after": true}
	if diff := cmp.Diff(want, out.Typography); diff != "" {
		t.Errorf("Typography mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	m := New(nil)
	m.Register(&recordingPlugin{name: "p"})

	in := theme.Options{Typography: theme.Style{"fontSize": 14}}
	m.Apply(in, nil)

	if diff := cmp.Diff(theme.Style{"fontSize": 14}, in.Typography); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestApplyPassesOptionsByName(t *testing.T) {
	m := New(nil)
	p := &recordingPlugin{name: "animation"}
	m.Register(p)

	m.Apply(theme.Options{}, map[string]any{"animation": map[string]any{"duration": 250}})

	if diff := cmp.Diff(map[string]any{"duration": 250}, p.got); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestDisabledPluginsAreSkipped(t *testing.T) {
	var trace []string
	m := NewBuilder().
		WithConfig(Config{DisabledPlugins: []string{"animation"}}).
		WithPlugins(
			&recordingPlugin{name: "animation", trace: &trace},
			&recordingPlugin{name: "responsive", trace: &trace},
		).
		Build()

	m.Apply(theme.Options{}, nil)

	if diff := cmp.Diff([]string{"responsive"}, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderWithEnvConfig(t *testing.T) {
	t.Setenv(EnvDisabledPlugins, "animation, responsive")
	t.Setenv(EnvEnabledPlugins, "accessibility")

	m := NewBuilder().WithEnvConfig().Build()

	want := Config{
		DisabledPlugins: []string{"animation", "responsive"},
		EnabledPlugins:  []string{"accessibility"},
	}
	if diff := cmp.Diff(want, m.GetConfig()); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		plugin string
		want   bool
	}{
		{"no config", Config{}, "animation", true},
		{"disabled", Config{DisabledPlugins: []string{"animation"}}, "animation", false},
		{"other disabled", Config{DisabledPlugins: []string{"responsive"}}, "animation", true},
		{"disable all", Config{DisabledPlugins: []string{"all"}, EnabledPlugins: []string{"animation"}}, "animation", false},
		{"whitelist hit", Config{EnabledPlugins: []string{"animation"}}, "animation", true},
		{"whitelist miss", Config{EnabledPlugins: []string{"responsive"}}, "animation", false},
		{"enable all", Config{EnabledPlugins: []string{"all"}}, "animation", true},
		{"disabled beats enabled", Config{DisabledPlugins: []string{"animation"}, EnabledPlugins: []string{"all"}}, "animation", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBuilder().WithConfig(tt.config).Build()
			if got := m.IsEnabled(tt.plugin); got != tt.want {
				t.Errorf("IsEnabled(%q) = %v, want %v", tt.plugin, got, tt.want)
			}
		})
	}
}

func TestSetEnabledRemovesFromDisabled(t *testing.T) {
	m := NewBuilder().WithConfig(Config{DisabledPlugins: []string{"animation"}}).Build()

	m.SetEnabled("animation")
	if !m.IsEnabled("animation") {
		t.Error("animation should be enabled after SetEnabled")
	}

	m.SetDisabled("animation")
	if m.IsEnabled("animation") {
		t.Error("animation should be disabled after SetDisabled")
	}
}

func TestClearEvents(t *testing.T) {
	m := New(nil)
	m.Register(&recordingPlugin{name: "p"})
	if len(m.Events()) == 0 {
		t.Fatal("expected a registration event")
	}
	m.ClearEvents()
	if len(m.Events()) != 0 {
		t.Errorf("Events() = %v after ClearEvents", m.Events())
	}
}

func TestParsePluginList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single plugin", "animation", []string{"animation"}},
		{"multiple plugins", "animation,responsive,accessibility", []string{"animation", "responsive", "accessibility"}},
		{"with spaces", " animation , responsive ", []string{"animation", "responsive"}},
		{"empty string", "", []string{}},
		{"trailing comma", "animation,responsive,", []string{"animation", "responsive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parsePluginList(tt.input)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("parsePluginList(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
