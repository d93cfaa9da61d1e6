package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themestudio/internal/security"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// BundleVersion is written into every exported bundle.
const BundleVersion = "1"

// maxBundleSize bounds decompressed bundle input.
const maxBundleSize = 32 * 1024 * 1024

// Format is a bundle file encoding.
type Format string

// Bundle formats.
const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatJSONXZ Format = "json.xz"
)

// FormatFromPath picks the format from a file name, defaulting to JSON.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json.xz"), strings.HasSuffix(lower, ".xz"):
		return FormatJSONXZ
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatJSONXZ:
		return f, nil
	default:
		return "", fmt.Errorf("unknown bundle format %q (want json, yaml or json.xz)", s)
	}
}

// Bundle is a portable set of brands.
type Bundle struct {
	Version    string               `json:"version" yaml:"version"`
	ExportedAt time.Time            `json:"exportedAt" yaml:"exportedAt"`
	Brands     []*theme.BrandConfig `json:"brands" yaml:"brands"`
}

// WriteBundle encodes b to w.
func WriteBundle(w io.Writer, b *Bundle, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("failed to encode bundle: %w", err)
		}
		return enc.Close()

	case FormatJSONXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
		if err := json.NewEncoder(xw).Encode(b); err != nil {
			_ = xw.Close()
			return fmt.Errorf("failed to encode bundle: %w", err)
		}
		return xw.Close()

	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("failed to encode bundle: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown bundle format %q", format)
	}
}

// ReadBundle decodes a bundle from r.
func ReadBundle(r io.Reader, format Format) (*Bundle, error) {
	var src io.Reader = r
	if format == FormatJSONXZ {
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		src = xr
		format = FormatJSON
	}

	data, err := io.ReadAll(security.NewLimitedReader(src, maxBundleSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}

	var b Bundle
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &b)
	case FormatJSON, "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&b)
	default:
		return nil, fmt.Errorf("unknown bundle format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}
	if len(b.Brands) == 0 {
		return nil, fmt.Errorf("bundle contains no brands")
	}
	return &b, nil
}
