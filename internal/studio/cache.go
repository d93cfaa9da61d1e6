package studio

import (
	"slices"
	"sync"

	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// DefaultThemeCacheSize bounds the built-theme cache when no size is given.
const DefaultThemeCacheSize = 10

// PresetCache keeps one preset builder per design style for the life of
// the cache. Entries are only dropped by Clear.
type PresetCache struct {
	mu      sync.RWMutex
	presets map[theme.DesignStyle]*preset.Builder
	factory func(theme.DesignStyle) *preset.Builder
}

// NewPresetCache returns an empty cache that creates missing presets with
// factory.
func NewPresetCache(factory func(theme.DesignStyle) *preset.Builder) *PresetCache {
	return &PresetCache{
		presets: make(map[theme.DesignStyle]*preset.Builder),
		factory: factory,
	}
}

// Get returns the cached preset for ds, creating it on first use. The empty
// style is treated as minimal.
func (c *PresetCache) Get(ds theme.DesignStyle) *preset.Builder {
	ds = ds.OrDefault()

	c.mu.RLock()
	p, ok := c.presets[ds]
	c.mu.RUnlock()
	if ok {
		return p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.presets[ds]; ok {
		return p
	}
	p = c.factory(ds)
	c.presets[ds] = p
	return p
}

// Len returns the number of cached presets.
func (c *PresetCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.presets)
}

// Clear drops every cached preset.
func (c *PresetCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.presets = make(map[theme.DesignStyle]*preset.Builder)
}

// ThemeCache holds built themes up to a maximum size. When full, the
// entries inserted first are evicted first; reads do not refresh an entry.
type ThemeCache struct {
	mu      sync.RWMutex
	max     int
	order   []string
	entries map[string]*theme.Theme
}

// NewThemeCache returns a cache holding at most size themes. A size below
// one selects DefaultThemeCacheSize.
func NewThemeCache(size int) *ThemeCache {
	if size < 1 {
		size = DefaultThemeCacheSize
	}
	return &ThemeCache{
		max:     size,
		entries: make(map[string]*theme.Theme),
	}
}

// Get returns the theme stored under key.
func (c *ThemeCache) Get(key string) (*theme.Theme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.entries[key]
	return t, ok
}

// Put stores t under key and prunes the cache. Replacing an existing key
// keeps its original insertion position.
func (c *ThemeCache) Put(key string, t *theme.Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = t
	c.prune()
}

// Prune evicts the oldest entries beyond the maximum size and returns how
// many were removed.
func (c *ThemeCache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prune()
}

func (c *ThemeCache) prune() int {
	excess := len(c.order) - c.max
	if excess <= 0 {
		return 0
	}
	for _, key := range c.order[:excess] {
		delete(c.entries, key)
	}
	c.order = slices.Clone(c.order[excess:])
	return excess
}

// Clear drops every cached theme.
func (c *ThemeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = nil
	c.entries = make(map[string]*theme.Theme)
}

// Len returns the number of cached themes.
func (c *ThemeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns the cache keys, oldest first.
func (c *ThemeCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

// Max returns the maximum number of cached themes.
func (c *ThemeCache) Max() int {
	return c.max
}
