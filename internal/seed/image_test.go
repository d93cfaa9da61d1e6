package seed

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jmylchreest/themestudio/internal/colour"
)

// stripes returns a 10x10 image filled row by row with counts[i] pixels of
// colours[i].
func stripes(colours []color.Color, counts []int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	i, left := 0, counts[0]
	for y := range 10 {
		for x := range 10 {
			for left == 0 && i < len(counts)-1 {
				i++
				left = counts[i]
			}
			img.Set(x, y, colours[i])
			left--
		}
	}
	return img
}

var (
	grey = color.RGBA{0x80, 0x80, 0x80, 0xff}
	red  = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	blue = color.RGBA{0x1e, 0x88, 0xe5, 0xff}
)

func TestDominant(t *testing.T) {
	tests := []struct {
		name    string
		img     image.Image
		want    string
		wantErr error
	}{
		{
			name: "vivid beats common grey",
			img:  stripes([]color.Color{grey, red, blue}, []int{60, 30, 10}),
			want: "#e53935",
		},
		{
			name: "larger vivid area wins",
			img:  stripes([]color.Color{red, blue}, []int{20, 80}),
			want: "#1e88e5",
		},
		{
			name: "greyscale falls back to most common",
			img:  stripes([]color.Color{color.White, grey}, []int{30, 70}),
			want: "#808080",
		},
		{
			name:    "transparent",
			img:     image.NewRGBA(image.Rect(0, 0, 4, 4)),
			wantErr: ErrNoColour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dominant(tt.img)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Dominant() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Dominant() = %q, want %q", got, tt.want)
			}
		})
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestFromImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	writePNG(t, path, stripes([]color.Color{color.White, red}, []int{50, 50}))

	s, err := FromImage(context.Background(), path)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if s.BaseColor != "#e53935" || s.Harmony != DefaultHarmony || s.Source != path {
		t.Errorf("FromImage() = %+v", s)
	}
	if s.Palette().Primary.Main == "" {
		t.Error("Palette() has no primary")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notImage, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"empty", "", "cannot be empty"},
		{"missing", filepath.Join(dir, "nope.png"), "not found"},
		{"directory", dir, "directory"},
		{"not an image", notImage, "failed to decode"},
		{"plain http", "http://example.com/logo.png", "HTTPS"},
		{"private host", "https://192.168.1.10/logo.png", "private"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageLoader().Load(context.Background(), tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load(%q) error = %v, want mention of %q", tt.src, err, tt.wantMsg)
			}
		})
	}
}

func TestLoadRemoteCached(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "themestudio/") {
			t.Errorf("User-Agent = %q", ua)
		}
		if err := png.Encode(w, stripes([]color.Color{blue}, []int{100})); err != nil {
			t.Error(err)
		}
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	l := NewImageLoader().WithCacheDir(cacheDir).WithClient(srv.Client())
	l.validateURL = func(string) error { return nil }

	url := srv.URL + "/brand/logo.png?v=2"
	for range 2 {
		s, err := l.Seed(context.Background(), url)
		if err != nil {
			t.Fatalf("Seed() error = %v", err)
		}
		if s.BaseColor != "#1e88e5" {
			t.Errorf("Seed() colour = %q, want #1e88e5", s.BaseColor)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1 (second load from cache)", n)
	}
	if _, err := os.Stat(filepath.Join(cacheDir, cacheName(url))); err != nil {
		t.Errorf("cached file missing: %v", err)
	}
}

func TestLoadRemoteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(make([]byte, 2048))
	}))
	defer srv.Close()

	l := NewImageLoader().WithClient(srv.Client())
	l.validateURL = func(string) error { return nil }
	l.maxBytes = 1024

	if _, err := l.Load(context.Background(), srv.URL+"/missing"); err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Load(404) error = %v", err)
	}
	if _, err := l.Load(context.Background(), srv.URL+"/huge"); err == nil || !strings.Contains(err.Error(), "size limit") {
		t.Errorf("Load(oversized) error = %v", err)
	}
}

func TestCacheName(t *testing.T) {
	tests := []struct {
		url     string
		wantExt string
	}{
		{"https://example.com/a.PNG", ".png"},
		{"https://example.com/a.webp?x=1", ".webp"},
		{"https://example.com/logo", ".img"},
		{"https://example.com/file.svg", ".img"},
	}
	for _, tt := range tests {
		got := cacheName(tt.url)
		if !strings.HasSuffix(got, tt.wantExt) || len(got) != 32+len(tt.wantExt) {
			t.Errorf("cacheName(%q) = %q, want 32 hex chars + %s", tt.url, got, tt.wantExt)
		}
	}
	if cacheName("https://a/x.png") == cacheName("https://b/x.png") {
		t.Error("cacheName() collides for different URLs")
	}
}

func TestChroma(t *testing.T) {
	if got := chroma(colour.RGB{R: 255}); got != 1 {
		t.Errorf("chroma(red) = %v, want 1", got)
	}
	if got := chroma(colour.RGB{R: 9, G: 9, B: 9}); got != 0 {
		t.Errorf("chroma(grey) = %v, want 0", got)
	}
}
