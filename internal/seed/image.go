package seed

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/themestudio/internal/colour"
	"github.com/jmylchreest/themestudio/internal/security"
	"github.com/jmylchreest/themestudio/internal/version"
)

const (
	// DefaultTimeout bounds a remote image download.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxImageBytes caps a remote image download.
	DefaultMaxImageBytes = 16 << 20

	// sampleEdge is the longest side, in pixels, that Dominant samples.
	sampleEdge = 256

	// minChroma separates vivid pixels from greys.
	minChroma = 0.2
)

// ErrNoColour is returned for images without a single opaque pixel.
var ErrNoColour = errors.New("image has no opaque pixels")

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// ImageLoader loads images from local files and HTTPS URLs. Downloads can
// be kept in a cache directory keyed by URL.
type ImageLoader struct {
	client      *http.Client
	cacheDir    string
	maxBytes    int64
	validateURL func(string) error
	logger      hclog.Logger
}

// NewImageLoader returns a loader with no download cache.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		client:      &http.Client{Timeout: DefaultTimeout},
		maxBytes:    DefaultMaxImageBytes,
		validateURL: security.ValidateHTTPURL,
		logger:      hclog.NewNullLogger(),
	}
}

// DefaultCacheDir returns ~/.cache/themestudio/images.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", version.AppName, "images"), nil
	}
	return filepath.Join(cacheDir, version.AppName, "images"), nil
}

// WithCacheDir keeps downloaded images in dir. Empty disables caching.
func (l *ImageLoader) WithCacheDir(dir string) *ImageLoader {
	l.cacheDir = dir
	return l
}

// WithClient replaces the HTTP client.
func (l *ImageLoader) WithClient(c *http.Client) *ImageLoader {
	if c != nil {
		l.client = c
	}
	return l
}

// WithLogger sets the logger.
func (l *ImageLoader) WithLogger(logger hclog.Logger) *ImageLoader {
	if logger != nil {
		l.logger = logger.Named("seed")
	}
	return l
}

// Load decodes the image at src, a file path or an HTTPS URL.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *ImageLoader) Load(ctx context.Context, src string) (image.Image, error) {
	if src == "" {
		return nil, errors.New("image path cannot be empty")
	}
	if isURL(src) {
		data, err := l.fetch(ctx, src)
		if err != nil {
			return nil, err
		}
		return decode(bytes.NewReader(data))
	}
	return loadFile(src)
}

// Seed loads src and seeds from its dominant vivid colour.
func (l *ImageLoader) Seed(ctx context.Context, src string) (Seed, error) {
	img, err := l.Load(ctx, src)
	if err != nil {
		return Seed{}, err
	}
	hex, err := Dominant(img)
	if err != nil {
		return Seed{}, fmt.Errorf("%s: %w", src, err)
	}
	l.logger.Debug("image seed", "source", src, "colour", hex)
	return Seed{BaseColor: hex, Harmony: DefaultHarmony, Source: src}, nil
}

// FromImage seeds from the dominant vivid colour of the image at src.
func FromImage(ctx context.Context, src string) (Seed, error) {
	return NewImageLoader().Seed(ctx, src)
}

func loadFile(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return decode(file)
}

func decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

func (l *ImageLoader) fetch(ctx context.Context, url string) ([]byte, error) {
	if err := l.validateURL(url); err != nil {
		return nil, err
	}

	var cached string
	if l.cacheDir != "" {
		cached = filepath.Join(l.cacheDir, cacheName(url))
		if data, err := os.ReadFile(cached); err == nil {
			l.logger.Debug("using cached image", "url", url, "path", cached)
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(security.NewLimitedReader(resp.Body, l.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image from %s: %w", url, err)
	}

	if cached != "" {
		if err := os.MkdirAll(l.cacheDir, 0o755); err != nil {
			l.logger.Warn("failed to create image cache", "dir", l.cacheDir, "error", err)
		} else if err := os.WriteFile(cached, data, 0o644); err != nil {
			l.logger.Warn("failed to cache image", "path", cached, "error", err)
		}
	}
	return data, nil
}

// cacheName is a hash of url plus its extension, .img when it has none
// worth keeping.
func cacheName(url string) string {
	sum := sha256.Sum256([]byte(url))
	ext := strings.ToLower(filepath.Ext(url))
	if i := strings.IndexByte(ext, '?'); i != -1 {
		ext = ext[:i]
	}
	if !slices.Contains(SupportedImageExtensions(), ext) {
		ext = ".img"
	}
	return fmt.Sprintf("%x%s", sum[:16], ext)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

type bucket struct {
	r, g, b float64
	count   int
	chroma  float64
}

// Dominant returns the most prominent vivid colour of img as hex. Pixels are
// grouped into 4-bit-per-channel buckets and each bucket is scored by its
// size times its mean chroma. Images with no vivid pixels fall back to their
// most common bucket. Translucent pixels are ignored.
func Dominant(img image.Image) (string, error) {
	bounds := img.Bounds()
	step := max(1, max(bounds.Dx(), bounds.Dy())/sampleEdge)

	buckets := make(map[int]*bucket)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a < 0x8000 {
				continue
			}
			rgb := colour.ToRGB(c)
			key := int(rgb.R>>4)<<8 | int(rgb.G>>4)<<4 | int(rgb.B>>4)
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.r += float64(rgb.R)
			bk.g += float64(rgb.G)
			bk.b += float64(rgb.B)
			bk.chroma += chroma(rgb)
			bk.count++
		}
	}
	if len(buckets) == 0 {
		return "", ErrNoColour
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var vivid, common *bucket
	var vividScore float64
	for _, k := range keys {
		bk := buckets[k]
		if common == nil || bk.count > common.count {
			common = bk
		}
		mean := bk.chroma / float64(bk.count)
		if mean < minChroma {
			continue
		}
		if score := float64(bk.count) * mean; score > vividScore {
			vivid, vividScore = bk, score
		}
	}

	pick := vivid
	if pick == nil {
		pick = common
	}
	n := float64(pick.count)
	return colour.RGB{
		R: uint8(pick.r/n + 0.5),
		G: uint8(pick.g/n + 0.5),
		B: uint8(pick.b/n + 0.5),
	}.Hex(), nil
}

// chroma is max minus min channel, in [0,1].
func chroma(c colour.RGB) float64 {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	return float64(hi-lo) / 255
}
