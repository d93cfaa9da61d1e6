package store

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/themestudio/internal/theme"
)

// fakeClock returns t0 and advances by step on every call.
func fakeClock(t0 time.Time, step time.Duration) func() time.Time {
	now := t0
	return func() time.Time {
		cur := now
		now = now.Add(step)
		return cur
	}
}

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func openMemory(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(append([]Option{WithClock(fakeClock(t0, time.Second))}, opts...)...)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func TestOpenSeedsDefaultBrand(t *testing.T) {
	s := openMemory(t)

	st := s.State()
	if len(st.Brands) != 1 || st.Brands[0].ID != theme.DefaultBrandID {
		t.Fatalf("Brands = %v, want the default brand", st.Brands)
	}
	if st.ActiveBrandID != theme.DefaultBrandID {
		t.Errorf("ActiveBrandID = %q, want %q", st.ActiveBrandID, theme.DefaultBrandID)
	}
	if st.ColorMode != ColorModeLight {
		t.Errorf("ColorMode = %q, want light", st.ColorMode)
	}
}

func TestAddMakesBrandActive(t *testing.T) {
	s := openMemory(t)
	b := theme.NewBrand("Acme", theme.StyleRetro, t0)

	if err := s.Add(b); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	active, err := s.Active()
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if active.ID != b.ID {
		t.Errorf("Active().ID = %q, want %q", active.ID, b.ID)
	}

	if err := s.Add(b); !errors.Is(err, ErrExists) {
		t.Errorf("Add() duplicate error = %v, want ErrExists", err)
	}
}

func TestAddRejectsInvalidBrand(t *testing.T) {
	s := openMemory(t)
	b := theme.NewBrand("Bad", theme.StyleMinimal, t0)
	b.Tokens.Palette.Primary.Main = "not-a-colour"

	var verr *theme.ValidationError
	if err := s.Add(b); !errors.As(err, &verr) {
		t.Fatalf("Add() error = %v, want ValidationError", err)
	}
	if n := len(s.Brands()); n != 1 {
		t.Errorf("len(Brands()) = %d, want 1", n)
	}
}

func TestUpdateBumpsUpdatedAt(t *testing.T) {
	// A stopped clock still has to move UpdatedAt forward.
	s, err := Open(WithClock(func() time.Time { return t0 }))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	name := "Renamed"
	style := theme.StyleNeumorphism
	first, err := s.Update(theme.DefaultBrandID, Patch{Name: &name, DesignStyle: &style})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	second, err := s.Update(theme.DefaultBrandID, Patch{})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if first.Name != "Renamed" || first.DesignStyle != theme.StyleNeumorphism {
		t.Errorf("Update() = %q/%q, want patched name and style", first.Name, first.DesignStyle)
	}
	if !first.Metadata.UpdatedAt.After(t0) {
		t.Errorf("first UpdatedAt = %v, want after %v", first.Metadata.UpdatedAt, t0)
	}
	if !second.Metadata.UpdatedAt.After(first.Metadata.UpdatedAt) {
		t.Errorf("second UpdatedAt = %v, want after %v", second.Metadata.UpdatedAt, first.Metadata.UpdatedAt)
	}
	if first.Metadata.CreatedAt != t0 {
		t.Errorf("CreatedAt = %v, want unchanged", first.Metadata.CreatedAt)
	}
}

func TestUpdatePartialPalette(t *testing.T) {
	s := openMemory(t)
	palette := theme.DefaultPalette()
	palette.Primary = theme.ColorScale{Main: "#ff5722"}

	got, err := s.Update(theme.DefaultBrandID, Patch{Palette: &palette})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Tokens.Palette.Primary.Main != "#ff5722" {
		t.Errorf("primary = %q, want #ff5722", got.Tokens.Palette.Primary.Main)
	}
	if got.Tokens.Typography.FontFamily != theme.DefaultFontFamily {
		t.Errorf("typography changed by a palette patch: %q", got.Tokens.Typography.FontFamily)
	}
}

func TestUpdateInvalidKeepsBrand(t *testing.T) {
	s := openMemory(t)
	before, _ := s.Brand(theme.DefaultBrandID)

	empty := ""
	if _, err := s.Update(theme.DefaultBrandID, Patch{Name: &empty}); err == nil {
		t.Fatal("Update() error = nil, want validation error")
	}

	after, _ := s.Brand(theme.DefaultBrandID)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("brand changed after failed update (-before +after):\n%s", diff)
	}
}

func TestUpdateUnknownBrand(t *testing.T) {
	s := openMemory(t)
	if _, err := s.Update("nope", Patch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := openMemory(t)

	if err := s.Delete(theme.DefaultBrandID); !errors.Is(err, ErrLastBrand) {
		t.Fatalf("Delete() last brand error = %v, want ErrLastBrand", err)
	}

	b := theme.NewBrand("Second", theme.StyleMinimal, t0)
	if err := s.Add(b); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Delete(b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := s.State().ActiveBrandID; got != theme.DefaultBrandID {
		t.Errorf("ActiveBrandID = %q, want fallback to %q", got, theme.DefaultBrandID)
	}
	if err := s.Delete(b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() again error = %v, want ErrNotFound", err)
	}
}

func TestDuplicate(t *testing.T) {
	s := openMemory(t)

	dup, err := s.Duplicate(theme.DefaultBrandID)
	if err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}

	orig, _ := s.Brand(theme.DefaultBrandID)
	if dup.Name != orig.Name+" (Copy)" {
		t.Errorf("Name = %q, want %q", dup.Name, orig.Name+" (Copy)")
	}
	wantPrefix := theme.DefaultBrandID + "-copy-"
	if len(dup.ID) <= len(wantPrefix) || dup.ID[:len(wantPrefix)] != wantPrefix {
		t.Errorf("ID = %q, want prefix %q", dup.ID, wantPrefix)
	}
	if s.State().ActiveBrandID != dup.ID {
		t.Errorf("ActiveBrandID = %q, want the copy", s.State().ActiveBrandID)
	}
	if !dup.Metadata.CreatedAt.After(orig.Metadata.CreatedAt) {
		t.Errorf("copy CreatedAt = %v, want a fresh timestamp", dup.Metadata.CreatedAt)
	}
	if diff := cmp.Diff(orig.Tokens, dup.Tokens); diff != "" {
		t.Errorf("copy tokens differ (-orig +copy):\n%s", diff)
	}

	again, err := s.Duplicate(theme.DefaultBrandID)
	if err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}
	if again.ID == dup.ID {
		t.Errorf("second copy reused ID %q", dup.ID)
	}
}

func TestSetActiveAndColorMode(t *testing.T) {
	s := openMemory(t)

	if err := s.SetActive("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetActive() error = %v, want ErrNotFound", err)
	}
	if err := s.SetColorMode(ColorModeSystem); err != nil {
		t.Fatalf("SetColorMode() error = %v", err)
	}
	if s.ColorMode() != ColorModeSystem {
		t.Errorf("ColorMode() = %q, want system", s.ColorMode())
	}
	if err := s.SetColorMode("sepia"); err == nil {
		t.Error("SetColorMode(sepia) error = nil, want error")
	}
}

func TestSetComponentOverridesJSON(t *testing.T) {
	s := openMemory(t)

	got, err := s.SetComponentOverridesJSON(theme.DefaultBrandID, []byte(`{
		"MuiButton": {"styleOverrides": {"root": {"textTransform": "none"}}},
		"MyWidget": {"anything": [1, 2]}
	}`))
	if err != nil {
		t.Fatalf("SetComponentOverridesJSON() error = %v", err)
	}
	if got.Tokens.Components.Len() != 2 {
		t.Fatalf("Components.Len() = %d, want 2", got.Tokens.Components.Len())
	}
	root := got.Tokens.Components.Known[theme.MuiButton].StyleOverrides["root"]
	if root["textTransform"] != "none" {
		t.Errorf("MuiButton root = %v", root)
	}

	tests := []struct {
		name string
		data string
	}{
		{"syntax error", `{"MuiButton": `},
		{"not an object", `[1, 2, 3]`},
		{"bad known entry", `{"MuiButton": "red"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SetComponentOverridesJSON(theme.DefaultBrandID, []byte(tt.data))
			if !errors.Is(err, ErrInvalidOverrides) {
				t.Fatalf("error = %v, want ErrInvalidOverrides", err)
			}
			b, _ := s.Brand(theme.DefaultBrandID)
			if b.Tokens.Components.Len() != 2 {
				t.Errorf("overrides changed after rejected input: %v", b.Tokens.Components.Map())
			}
		})
	}
}

func TestFileBackendPersists(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir)

	s := openMemory(t, WithBackend(backend))
	if _, err := os.Stat(backend.Path()); !os.IsNotExist(err) {
		t.Fatalf("state file written before any change: %v", err)
	}

	b := theme.NewBrand("Persisted", theme.StyleCyberpunk, t0)
	if err := s.Add(b); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.SetColorMode(ColorModeDark); err != nil {
		t.Fatalf("SetColorMode() error = %v", err)
	}

	reopened, err := Open(WithBackend(NewFileBackend(dir)))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if diff := cmp.Diff(s.State(), reopened.State()); diff != "" {
		t.Errorf("reloaded state mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestFileBackendCorrupt(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir)
	if err := os.WriteFile(backend.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(WithBackend(backend)); err == nil {
		t.Error("Open() error = nil, want parse error")
	}
}

type failingBackend struct{ err error }

func (f failingBackend) Load() (*State, error) { return nil, ErrNoState }
func (f failingBackend) Save(*State) error     { return f.err }

func TestSaveFailureRollsBack(t *testing.T) {
	s := openMemory(t, WithBackend(failingBackend{err: errors.New("disk full")}))

	if err := s.SetColorMode(ColorModeDark); err == nil {
		t.Fatal("SetColorMode() error = nil, want save error")
	}
	if s.ColorMode() != ColorModeLight {
		t.Errorf("ColorMode() = %q, want the previous light mode", s.ColorMode())
	}
}
