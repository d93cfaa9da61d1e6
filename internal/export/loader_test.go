package export

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoaderList(t *testing.T) {
	names, err := NewLoader().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	slices.Sort(names)
	if diff := cmp.Diff([]string{"theme.ts.tmpl", "typescript.ts.tmpl"}, names); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderPrefersCustom(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader().WithCustomDir(dir)

	_, custom, err := l.Load("theme.ts.tmpl")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if custom {
		t.Error("Load() custom = true with an empty directory")
	}

	if err := os.WriteFile(filepath.Join(dir, "theme.ts.tmpl"), []byte("mine"), 0o644); err != nil {
		t.Fatal(err)
	}
	content, custom, err := l.Load("theme.ts.tmpl")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !custom || string(content) != "mine" {
		t.Errorf("Load() = %q, custom %v, want the override", content, custom)
	}
}

func TestLoaderMissing(t *testing.T) {
	if _, _, err := NewLoader().WithCustomDir(t.TempDir()).Load("nope.tmpl"); err == nil {
		t.Error("Load() error = nil, want not found")
	}
}

func TestLoaderDump(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader().WithCustomDir(dir)

	existing := filepath.Join(dir, "theme.ts.tmpl")
	if err := os.WriteFile(existing, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	written, skipped, err := l.Dump(false)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if diff := cmp.Diff([]string{filepath.Join(dir, "typescript.ts.tmpl")}, written); diff != "" {
		t.Errorf("written mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{existing}, skipped); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}
	if data, _ := os.ReadFile(existing); string(data) != "keep" {
		t.Errorf("existing template overwritten: %q", data)
	}

	written, skipped, err = l.Dump(true)
	if err != nil {
		t.Fatalf("Dump(force) error = %v", err)
	}
	if len(written) != 2 || len(skipped) != 0 {
		t.Errorf("Dump(force) wrote %d, skipped %d; want 2, 0", len(written), len(skipped))
	}
	if data, _ := os.ReadFile(existing); string(data) == "keep" {
		t.Error("Dump(force) did not overwrite")
	}
}
