// Package preset composes per-category style rules into component overrides.
//
// A Builder collects rules in order. Each rule targets one or more component
// categories with a style generator and optional per-component overrides.
// Build expands every rule over its categories and layers the results onto
// each component's root style, so later rules win on conflicting properties.
package preset

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/themestudio/internal/theme"
)

// ErrUnknownComponent is recorded when a component-specific rule names a
// component outside the category map under PolicyError.
var ErrUnknownComponent = errors.New("unknown component")

// UnknownComponentPolicy controls ApplyToComponent for unmapped names.
type UnknownComponentPolicy int

// Policies.
const (
	// PolicyWarn drops the rule, logs a warning and records an event.
	PolicyWarn UnknownComponentPolicy = iota
	// PolicyIgnore drops the rule silently.
	PolicyIgnore
	// PolicyError drops the rule and records ErrUnknownComponent.
	PolicyError
)

// ParsePolicy parses "ignore", "warn" or "error".
func ParsePolicy(s string) (UnknownComponentPolicy, error) {
	switch s {
	case "", "warn":
		return PolicyWarn, nil
	case "ignore":
		return PolicyIgnore, nil
	case "error":
		return PolicyError, nil
	default:
		return PolicyWarn, fmt.Errorf("unknown component policy %q (want ignore, warn or error)", s)
	}
}

func (p UnknownComponentPolicy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicyError:
		return "error"
	default:
		return "warn"
	}
}

// Rule applies a style generator to every component in its categories.
type Rule struct {
	Categories []theme.Category
	Generator  StyleSource
	Options    RuleOptions
	Overrides  map[theme.Component]StyleSource
}

// Metadata names a preset.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Event records a dropped or rejected rule.
type Event struct {
	Component theme.Component
	Policy    UnknownComponentPolicy
	Message   string
}

// Builder accumulates preset rules over a base theme configuration.
type Builder struct {
	base     theme.Options
	rules    []Rule
	metadata Metadata

	policy  UnknownComponentPolicy
	logger  hclog.Logger
	unknown []theme.Component

	// mu guards the policy fields. reported is set once the unknown names
	// have been logged under the current policy and logger.
	mu       sync.Mutex
	reported bool
}

// New creates a builder over base. The base is shared by clones and never
// modified.
func New(base theme.Options) *Builder {
	return &Builder{
		base:   base,
		logger: hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used for policy warnings. It may be called
// after rules were added; warnings are written on the next Build, Events or
// Err.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.mu.Lock()
		b.logger = logger.Named("preset")
		b.reported = false
		b.mu.Unlock()
	}
	return b
}

// WithPolicy sets the unknown component policy. It applies to every unknown
// name seen so far, not only to rules added afterwards.
func (b *Builder) WithPolicy(p UnknownComponentPolicy) *Builder {
	b.mu.Lock()
	b.policy = p
	b.reported = false
	b.mu.Unlock()
	return b
}

// SetMetadata sets the preset name and description.
func (b *Builder) SetMetadata(name, description string) *Builder {
	b.metadata = Metadata{Name: name, Description: description}
	return b
}

// ApplyToCategories appends a rule. Categories may repeat; each occurrence
// is processed.
func (b *Builder) ApplyToCategories(cats []theme.Category, gen StyleSource, opts RuleOptions, overrides map[theme.Component]StyleSource) *Builder {
	b.rules = append(b.rules, Rule{
		Categories: slices.Clone(cats),
		Generator:  gen,
		Options:    opts,
		Overrides:  overrides,
	})
	return b
}

// ApplySurfaceStyle applies gen to surface components.
func (b *Builder) ApplySurfaceStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories([]theme.Category{theme.CategorySurfaces}, gen, nil, nil)
}

// ApplyActionStyle applies gen to action components.
func (b *Builder) ApplyActionStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories([]theme.Category{theme.CategoryActions}, gen, nil, nil)
}

// ApplyInputStyle applies gen to input components.
func (b *Builder) ApplyInputStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories([]theme.Category{theme.CategoryInputs}, gen, nil, nil)
}

// ApplySelectionStyle applies gen to selection controls.
func (b *Builder) ApplySelectionStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories([]theme.Category{theme.CategorySelections}, gen, nil, nil)
}

// ApplySliderStyle applies gen to sliders.
func (b *Builder) ApplySliderStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories([]theme.Category{theme.CategorySliders}, gen, nil, nil)
}

// ApplyDataDisplayStyle applies gen to data display components.
func (b *Builder) ApplyDataDisplayStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories([]theme.Category{theme.CategoryDataDisplay}, gen, nil, nil)
}

// ApplyFeedbackStyle applies gen to feedback components.
func (b *Builder) ApplyFeedbackStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories([]theme.Category{theme.CategoryFeedback}, gen, nil, nil)
}

// ApplyNavigationStyle applies gen to navigation components.
func (b *Builder) ApplyNavigationStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories([]theme.Category{theme.CategoryNavigation}, gen, nil, nil)
}

// ApplyGlobalStyle applies gen to every category.
func (b *Builder) ApplyGlobalStyle(gen StyleSource) *Builder {
	return b.ApplyToCategories(theme.AllCategories(), gen, nil, nil)
}

// ApplyToComponent targets one component. Names outside the category map
// never produce a rule; they are kept and handled by the builder's policy
// when it is built or inspected.
func (b *Builder) ApplyToComponent(name theme.Component, src StyleSource) *Builder {
	cat, ok := theme.CategoryOf(name)
	if !ok {
		b.mu.Lock()
		b.unknown = append(b.unknown, name)
		b.reported = false
		b.mu.Unlock()
		return b
	}
	b.rules = append(b.rules, Rule{
		Categories: []theme.Category{cat},
		Generator:  Static(nil),
		Overrides:  map[theme.Component]StyleSource{name: src},
	})
	return b
}

// report logs the unknown names once under the current policy and logger.
func (b *Builder) report() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.reported {
		return
	}
	b.reported = true
	for _, name := range b.unknown {
		switch b.policy {
		case PolicyIgnore:
		case PolicyError:
			b.logger.Error("rejected component rule", "component", name, "preset", b.metadata.Name)
		default:
			b.logger.Warn("dropped component rule", "component", name, "preset", b.metadata.Name)
		}
	}
}

// Build evaluates the rules against t and returns the base options with the
// generated components. Each component's root becomes the previous root,
// then the generated style, then the component's specific override, spread
// in that order. Other style slots are kept.
func (b *Builder) Build(t *theme.Theme) theme.Options {
	b.report()
	components := make(theme.Components)

	for _, rule := range b.rules {
		for _, cat := range rule.Categories {
			for _, name := range theme.ComponentsIn(cat) {
				generated := rule.Generator.Resolve(t, rule.Options)

				var override theme.Style
				if src, ok := rule.Overrides[name]; ok {
					override = src.Resolve(t, nil)
				}

				components.SetRoot(name, theme.Merge(components.Root(name), generated, override))
			}
		}
	}

	out := b.base.Clone()
	out.Components = components
	return out
}

// Clone returns an independent builder with the same rules, metadata,
// policy and unknown component names. The base options are shared.
func (b *Builder) Clone() *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &Builder{
		base:     b.base,
		rules:    b.Rules(),
		metadata: b.metadata,
		policy:   b.policy,
		logger:   b.logger,
		unknown:  slices.Clone(b.unknown),
	}
}

// Base returns a copy of the base options.
func (b *Builder) Base() theme.Options {
	return b.base.Clone()
}

// Rules returns a copy of the rules.
func (b *Builder) Rules() []Rule {
	out := make([]Rule, len(b.rules))
	for i, r := range b.rules {
		out[i] = Rule{
			Categories: slices.Clone(r.Categories),
			Generator:  r.Generator,
			Options:    maps.Clone(r.Options),
			Overrides:  maps.Clone(r.Overrides),
		}
	}
	return out
}

// Metadata returns the preset name and description.
func (b *Builder) Metadata() Metadata {
	return b.metadata
}

// Events returns one event per unknown component name under the current
// policy. PolicyIgnore records none.
func (b *Builder) Events() []Event {
	b.report()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.policy == PolicyIgnore {
		return nil
	}
	events := make([]Event, 0, len(b.unknown))
	for _, name := range b.unknown {
		events = append(events, Event{
			Component: name,
			Policy:    b.policy,
			Message:   fmt.Sprintf("component %s is not in any category; rule dropped", name),
		})
	}
	return events
}

// Err returns the joined ErrUnknownComponent errors under PolicyError, or
// nil.
func (b *Builder) Err() error {
	b.report()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.policy != PolicyError {
		return nil
	}
	var err error
	for _, name := range b.unknown {
		err = errors.Join(err, fmt.Errorf("%w: %s", ErrUnknownComponent, name))
	}
	return err
}
