package security

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestLimitedReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int64
		wantErr error
	}{
		{"under limit", "hello", 10, nil},
		{"exactly at limit", "hello", 5, nil},
		{"over limit", "hello world", 5, ErrLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(NewLimitedReader(strings.NewReader(tt.input), tt.limit))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadAll() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && string(got) != tt.input {
				t.Errorf("ReadAll() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestValidatePathWithin(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"file in base", filepath.Join(base, "theme.ts"), false},
		{"nested", filepath.Join(base, "src", "theme", "index.ts"), false},
		{"base itself", base, false},
		{"traversal", filepath.Join(base, "..", "escape.ts"), true},
		{"sibling prefix", base + "-other/theme.ts", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathWithin(tt.path, base)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePathWithin(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com/logo.png", false},
		{"http://example.com/logo.png", true},
		{"https://localhost/logo.png", true},
		{"https://127.0.0.1/logo.png", true},
		{"https://10.0.0.8/logo.png", true},
		{"https://192.168.1.2/logo.png", true},
		{"https://[::1]/logo.png", true},
		{"https://169.254.169.254/latest", true},
		{"ftp://example.com/logo.png", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateHTTPURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
