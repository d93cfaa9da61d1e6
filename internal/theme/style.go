// Package theme holds the data model shared by the preset, plugin and builder
// packages: style trees, theme options, the resolved theme handed to style
// generators, and the brand configuration edited by users.
package theme

import (
	"maps"
	"slices"
)

// Style is a CSS property bag. Nested selectors are nested Styles.
type Style map[string]any

// asMap returns v as a plain map when it is a Style or a map[string]any.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Style:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of s. Nested maps and slices are copied.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if m, ok := asMap(v); ok {
		return Style(m).Clone()
	}
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

// Merge spreads each style over the previous one, left to right. Only the top
// level is combined; a later nested selector replaces an earlier one.
func Merge(styles ...Style) Style {
	out := Style{}
	for _, s := range styles {
		maps.Copy(out, s)
	}
	return out
}

// DeepMerge combines a and b key-wise. Nested maps are merged recursively;
// slices and scalars from b replace those in a. Neither input is modified.
func DeepMerge(a, b Style) Style {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := a.Clone()
	if out == nil {
		out = Style{}
	}
	for k, bv := range b {
		bm, bIsMap := asMap(bv)
		am, aIsMap := asMap(out[k])
		if bIsMap && aIsMap {
			out[k] = DeepMerge(Style(am), Style(bm))
			continue
		}
		out[k] = cloneValue(bv)
	}
	return out
}

// Get walks a dotted path of nested maps and returns the value found.
func (s Style) Get(path ...string) (any, bool) {
	var cur any = s
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path, or "" when absent or not a string.
func (s Style) String(path ...string) string {
	v, ok := s.Get(path...)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// Keys returns the style's keys in sorted order.
func (s Style) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}
