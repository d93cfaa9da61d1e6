// Package store keeps the user's brands, the active brand and the preferred
// colour mode, and persists them through a Backend.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/themestudio/internal/theme"
)

// Errors returned by store operations.
var (
	ErrNotFound         = errors.New("brand not found")
	ErrExists           = errors.New("brand already exists")
	ErrLastBrand        = errors.New("cannot delete the last brand")
	ErrInvalidOverrides = errors.New("invalid component overrides")
)

// ColorMode is the preferred colour scheme.
type ColorMode string

// Colour modes.
const (
	ColorModeLight  ColorMode = "light"
	ColorModeDark   ColorMode = "dark"
	ColorModeSystem ColorMode = "system"
)

// ParseColorMode validates s.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorModeLight, ColorModeDark, ColorModeSystem:
		return m, nil
	default:
		return "", fmt.Errorf("unknown colour mode %q (want light, dark or system)", s)
	}
}

// State is everything the store persists.
type State struct {
	Brands        []*theme.BrandConfig `json:"brands" yaml:"brands"`
	ActiveBrandID string               `json:"activeBrandId" yaml:"activeBrandId"`
	ColorMode     ColorMode            `json:"colorMode" yaml:"colorMode"`
}

func (s State) clone() State {
	out := s
	out.Brands = make([]*theme.BrandConfig, len(s.Brands))
	for i, b := range s.Brands {
		out.Brands[i] = b.Clone()
	}
	return out
}

// Patch is a partial brand update. Nil fields are left alone.
type Patch struct {
	Name        *string
	Description *string
	DesignStyle *theme.DesignStyle
	Tokens      *theme.BrandTokens
	Palette     *theme.BrandPalette
	Typography  *theme.Typography
	Components  *theme.ComponentOverrides
}

func (p Patch) apply(b *theme.BrandConfig) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.DesignStyle != nil {
		b.DesignStyle = *p.DesignStyle
	}
	if p.Tokens != nil {
		b.Tokens = p.Tokens.Clone()
	}
	if p.Palette != nil {
		b.Tokens.Palette = *p.Palette
	}
	if p.Typography != nil {
		b.Tokens.Typography = p.Typography.Clone()
	}
	if p.Components != nil {
		b.Tokens.Components = p.Components.Clone()
	}
}

// Store holds the brands. It is safe for concurrent use; every mutation is
// written to the backend before it returns.
type Store struct {
	mu      sync.Mutex
	state   State
	backend Backend
	now     func() time.Time
	logger  hclog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithBackend persists the store through b. Without one the store lives in
// memory only.
func WithBackend(b Backend) Option {
	return func(s *Store) { s.backend = b }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open loads the store from its backend. A missing or empty state is
// seeded with the default brand.
func Open(opts ...Option) (*Store, error) {
	s := &Store{
		now:    time.Now,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("store")

	if s.backend != nil {
		state, err := s.backend.Load()
		switch {
		case errors.Is(err, ErrNoState):
			s.logger.Debug("no saved state, seeding default brand")
		case err != nil:
			return nil, fmt.Errorf("failed to load store: %w", err)
		default:
			s.state = *state
		}
	}

	if len(s.state.Brands) == 0 {
		def := theme.DefaultBrand(s.now())
		s.state.Brands = []*theme.BrandConfig{def}
		s.state.ActiveBrandID = def.ID
	}
	if s.state.ColorMode == "" {
		s.state.ColorMode = ColorModeLight
	}
	if s.index(s.state.ActiveBrandID) < 0 {
		s.state.ActiveBrandID = s.state.Brands[0].ID
	}
	return s, nil
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Brands returns copies of all brands in insertion order.
func (s *Store) Brands() []*theme.BrandConfig {
	return s.State().Brands
}

// Brand returns a copy of the brand with the given ID.
func (s *Store) Brand(id string) (*theme.BrandConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.state.Brands[i].Clone(), nil
}

// Active returns a copy of the active brand.
func (s *Store) Active() (*theme.BrandConfig, error) {
	s.mu.Lock()
	id := s.state.ActiveBrandID
	s.mu.Unlock()
	return s.Brand(id)
}

// ColorMode returns the preferred colour mode.
func (s *Store) ColorMode() ColorMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ColorMode
}

// Add validates b, appends it and makes it the active brand.
func (s *Store) Add(b *theme.BrandConfig) error {
	if err := theme.ValidateBrand(b); err != nil {
		return err
	}
	return s.mutate(func(st *State) error {
		if s.index(b.ID) >= 0 {
			return fmt.Errorf("%w: %s", ErrExists, b.ID)
		}
		st.Brands = append(st.Brands, b.Clone())
		st.ActiveBrandID = b.ID
		return nil
	})
}

// Update applies p to the brand with the given ID and moves its UpdatedAt
// forward. The result must validate; otherwise the brand is unchanged.
func (s *Store) Update(id string, p Patch) (*theme.BrandConfig, error) {
	var updated *theme.BrandConfig
	err := s.mutate(func(st *State) error {
		i := s.index(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		b := st.Brands[i].Clone()
		p.apply(b)
		b.Metadata.UpdatedAt = s.bump(b.Metadata.UpdatedAt)
		if err := theme.ValidateBrand(b); err != nil {
			return err
		}
		st.Brands[i] = b
		updated = b.Clone()
		return nil
	})
	return updated, err
}

// Delete removes a brand. The last brand cannot be deleted. Deleting the
// active brand activates the first remaining one.
func (s *Store) Delete(id string) error {
	return s.mutate(func(st *State) error {
		i := s.index(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if len(st.Brands) == 1 {
			return ErrLastBrand
		}
		st.Brands = slices.Delete(st.Brands, i, i+1)
		if st.ActiveBrandID == id {
			st.ActiveBrandID = st.Brands[0].ID
		}
		return nil
	})
}

// SetActive makes the brand with the given ID active.
func (s *Store) SetActive(id string) error {
	return s.mutate(func(st *State) error {
		if s.index(id) < 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		st.ActiveBrandID = id
		return nil
	})
}

// Duplicate copies a brand under a new ID and name, adds it and makes it
// active.
func (s *Store) Duplicate(id string) (*theme.BrandConfig, error) {
	var dup *theme.BrandConfig
	err := s.mutate(func(st *State) error {
		i := s.index(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		now := s.now()
		dup = st.Brands[i].Clone()
		dup.ID = fmt.Sprintf("%s-copy-%d", id, now.UnixMilli())
		for s.index(dup.ID) >= 0 {
			now = now.Add(time.Millisecond)
			dup.ID = fmt.Sprintf("%s-copy-%d", id, now.UnixMilli())
		}
		dup.Name += " (Copy)"
		dup.Metadata.CreatedAt = now
		dup.Metadata.UpdatedAt = now
		st.Brands = append(st.Brands, dup)
		st.ActiveBrandID = dup.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dup.Clone(), nil
}

// SetColorMode sets the preferred colour mode.
func (s *Store) SetColorMode(mode ColorMode) error {
	if _, err := ParseColorMode(string(mode)); err != nil {
		return err
	}
	return s.mutate(func(st *State) error {
		st.ColorMode = mode
		return nil
	})
}

// SetComponentOverridesJSON replaces a brand's component overrides with the
// object in data. Input that is not a JSON object of component entries is
// rejected with ErrInvalidOverrides and the brand keeps its overrides.
func (s *Store) SetComponentOverridesJSON(id string, data []byte) (*theme.BrandConfig, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOverrides, err)
	}
	co, err := theme.FromMap(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOverrides, err)
	}
	return s.Update(id, Patch{Components: &co})
}

// Import adds the bundle's brands. A brand whose ID already exists replaces
// the stored one and has its UpdatedAt moved forward. It returns how many
// brands were added and replaced.
func (s *Store) Import(bundle *Bundle) (added, replaced int, err error) {
	for _, b := range bundle.Brands {
		if err := theme.ValidateBrand(b); err != nil {
			return 0, 0, fmt.Errorf("brand %q: %w", b.ID, err)
		}
	}
	err = s.mutate(func(st *State) error {
		for _, b := range bundle.Brands {
			b = b.Clone()
			if i := s.index(b.ID); i >= 0 {
				b.Metadata.UpdatedAt = s.bump(st.Brands[i].Metadata.UpdatedAt)
				st.Brands[i] = b
				replaced++
				continue
			}
			st.Brands = append(st.Brands, b)
			added++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return added, replaced, nil
}

// Export returns a bundle of the brands with the given IDs, or of every
// brand when none are given.
func (s *Store) Export(ids ...string) (*Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle := &Bundle{Version: BundleVersion, ExportedAt: s.now().UTC()}
	if len(ids) == 0 {
		for _, b := range s.state.Brands {
			bundle.Brands = append(bundle.Brands, b.Clone())
		}
		return bundle, nil
	}
	for _, id := range ids {
		i := s.index(id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		bundle.Brands = append(bundle.Brands, s.state.Brands[i].Clone())
	}
	return bundle, nil
}

// mutate runs fn on a working copy of the state and commits it once fn
// succeeds and the backend has saved it.
func (s *Store) mutate(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	work := s.state.clone()
	s.state = work
	if err := fn(&s.state); err != nil {
		s.state = prev
		return err
	}
	if s.backend != nil {
		if err := s.backend.Save(&s.state); err != nil {
			s.state = prev
			return fmt.Errorf("failed to save store: %w", err)
		}
	}
	return nil
}

// bump returns a time after prev: the current time, or prev plus a
// nanosecond when the clock has not moved past it.
func (s *Store) bump(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

// index must be called with mu held.
func (s *Store) index(id string) int {
	return slices.IndexFunc(s.state.Brands, func(b *theme.BrandConfig) bool {
		return b.ID == id
	})
}
