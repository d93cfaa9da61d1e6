// Package builtin provides the theme plugins shipped with themestudio:
// accessibility, animation and responsive.
package builtin

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/jmylchreest/themestudio/internal/plugin/manager"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// All returns a fresh instance of every built-in plugin.
func All() []manager.ThemePlugin {
	return []manager.ThemePlugin{
		NewAccessibility(),
		NewAnimation(),
		NewResponsive(),
	}
}

// decodeOptions turns a plugin's raw options into T.
//
// nil yields defaults. A T or *T is used as given. Anything else is decoded
// with mapstructure over a copy of defaults, so keys absent from a map keep
// their default value and a present key always wins.
func decodeOptions[T any](raw any, defaults T) (T, error) {
	switch v := raw.(type) {
	case nil:
		return defaults, nil
	case T:
		return v, nil
	case *T:
		if v == nil {
			return defaults, nil
		}
		return *v, nil
	}

	out := defaults
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return defaults, err
	}
	if err := dec.Decode(raw); err != nil {
		return defaults, fmt.Errorf("decoding options: %w", err)
	}
	return out, nil
}

// setRootProps spreads props over the root override of c.
func setRootProps(cs theme.Components, c theme.Component, props theme.Style) {
	cs.SetRoot(c, theme.Merge(cs.Root(c), props))
}

// info is the static identity shared by the built-in plugins.
type info struct {
	name     string
	version  string
	priority int
}

func (i info) Name() string           { return i.name }
func (i info) Version() string        { return i.version }
func (i info) Priority() int          { return i.priority }
func (i info) Dependencies() []string { return nil }
