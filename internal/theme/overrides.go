package theme

import (
	"encoding/json"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// ComponentOverrides is the per-brand component customisation. Entries for
// components in the category map are typed; anything else is kept verbatim
// in Raw so hand-written configuration is never lost.
//
// It encodes as a single flat object keyed by component name.
type ComponentOverrides struct {
	Known map[Component]ComponentOptions
	Raw   map[string]any
}

// IsZero reports whether there are no overrides.
func (co ComponentOverrides) IsZero() bool {
	return len(co.Known) == 0 && len(co.Raw) == 0
}

// Len returns the number of overridden components.
func (co ComponentOverrides) Len() int {
	return len(co.Known) + len(co.Raw)
}

// Set stores opts for name, routing it to Known or Raw.
func (co *ComponentOverrides) Set(name string, opts ComponentOptions) {
	c := Component(name)
	if c.Known() {
		if co.Known == nil {
			co.Known = make(map[Component]ComponentOptions)
		}
		co.Known[c] = opts
		return
	}
	if co.Raw == nil {
		co.Raw = make(map[string]any)
	}
	co.Raw[name] = componentOptionsMap(opts)
}

// Clone deep-copies the overrides.
func (co ComponentOverrides) Clone() ComponentOverrides {
	out := ComponentOverrides{}
	if co.Known != nil {
		out.Known = make(map[Component]ComponentOptions, len(co.Known))
		for c, opts := range co.Known {
			out.Known[c] = opts.clone()
		}
	}
	if co.Raw != nil {
		out.Raw = Style(co.Raw).Clone()
	}
	return out
}

// Components converts the overrides into theme components. Raw entries are
// included when they have the component options shape; other raw values are
// skipped.
func (co ComponentOverrides) Components() Components {
	if co.IsZero() {
		return nil
	}
	out := make(Components, co.Len())
	for c, opts := range co.Known {
		out[c] = opts.clone()
	}
	for name, v := range co.Raw {
		m, ok := asMap(v)
		if !ok {
			continue
		}
		if opts, ok := componentOptionsFrom(m); ok {
			out[Component(name)] = opts
		}
	}
	return out
}

// FromMap builds overrides from a decoded object.
func FromMap(m map[string]any) (ComponentOverrides, error) {
	var co ComponentOverrides
	for name, v := range m {
		c := Component(name)
		if !c.Known() {
			if co.Raw == nil {
				co.Raw = make(map[string]any)
			}
			co.Raw[name] = cloneValue(v)
			continue
		}
		entry, ok := asMap(v)
		if !ok {
			return ComponentOverrides{}, fmt.Errorf("component %s: expected an object, got %T", name, v)
		}
		opts, ok := componentOptionsFrom(entry)
		if !ok {
			return ComponentOverrides{}, fmt.Errorf("component %s: expected defaultProps or styleOverrides", name)
		}
		if co.Known == nil {
			co.Known = make(map[Component]ComponentOptions)
		}
		co.Known[c] = opts
	}
	return co, nil
}

// Map returns the flat object form.
func (co ComponentOverrides) Map() map[string]any {
	out := make(map[string]any, co.Len())
	maps.Copy(out, Style(co.Raw).Clone())
	for c, opts := range co.Known {
		out[string(c)] = componentOptionsMap(opts)
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (co ComponentOverrides) MarshalJSON() ([]byte, error) {
	return json.Marshal(co.Map())
}

// UnmarshalJSON implements json.Unmarshaler.
func (co *ComponentOverrides) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := FromMap(m)
	if err != nil {
		return err
	}
	*co = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (co ComponentOverrides) MarshalYAML() (any, error) {
	if co.IsZero() {
		return nil, nil
	}
	return co.Map(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (co *ComponentOverrides) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return err
	}
	parsed, err := FromMap(m)
	if err != nil {
		return err
	}
	*co = parsed
	return nil
}

func componentOptionsFrom(m map[string]any) (ComponentOptions, bool) {
	var opts ComponentOptions
	found := false
	if v, ok := m["defaultProps"]; ok {
		dp, ok := asMap(v)
		if !ok {
			return ComponentOptions{}, false
		}
		opts.DefaultProps = Style(dp).Clone()
		found = true
	}
	if v, ok := m["styleOverrides"]; ok {
		so, ok := asMap(v)
		if !ok {
			return ComponentOptions{}, false
		}
		opts.StyleOverrides = make(map[string]Style, len(so))
		for slot, sv := range so {
			s, ok := asMap(sv)
			if !ok {
				return ComponentOptions{}, false
			}
			opts.StyleOverrides[slot] = Style(s).Clone()
		}
		found = true
	}
	return opts, found || len(m) == 0
}

func componentOptionsMap(opts ComponentOptions) map[string]any {
	out := map[string]any{}
	if opts.DefaultProps != nil {
		out["defaultProps"] = map[string]any(opts.DefaultProps.Clone())
	}
	if opts.StyleOverrides != nil {
		so := make(map[string]any, len(opts.StyleOverrides))
		for slot, s := range opts.StyleOverrides {
			so[slot] = map[string]any(s.Clone())
		}
		out["styleOverrides"] = so
	}
	return out
}
