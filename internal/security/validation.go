// Package security holds the input checks applied to files and URLs that
// come from users: size-limited decompression, path containment and remote
// image URLs.
package security

import (
	"errors"
	"fmt"
	"io"
	"net/netip"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrLimitExceeded is returned once a LimitedReader has handed out its
// byte budget.
var ErrLimitExceeded = errors.New("size limit exceeded")

// LimitedReader fails with ErrLimitExceeded instead of silently truncating,
// so oversized decompressed input is rejected rather than half-parsed.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader allows at most maxBytes to be read from r.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{R: r, Remaining: maxBytes}
}

// Read implements io.Reader.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Only an exhausted source is acceptable at the limit.
		var probe [1]byte
		if n, _ := l.R.Read(probe[:]); n > 0 {
			return 0, ErrLimitExceeded
		}
		return 0, io.EOF
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// ValidatePathWithin checks that path resolves inside baseDir.
func ValidatePathWithin(path, baseDir string) error {
	if path == "" {
		return errors.New("empty path")
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	absBase, err := filepath.Abs(filepath.Clean(baseDir))
	if err != nil {
		return fmt.Errorf("invalid base directory: %w", err)
	}

	if absPath != absBase && !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return fmt.Errorf("path %s escapes %s", path, baseDir)
	}
	return nil
}

// ValidateHTTPURL accepts HTTPS URLs whose host is not local or private.
func ValidateHTTPURL(raw string) error {
	if raw == "" {
		return errors.New("empty URL")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if !strings.EqualFold(parsed.Scheme, "https") {
		return fmt.Errorf("only HTTPS URLs are allowed (got %q)", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("URL must have a hostname")
	}

	host := strings.ToLower(parsed.Hostname())
	if isLocalOrPrivateHost(host) {
		return fmt.Errorf("URL cannot point to local or private hosts: %s", host)
	}
	return nil
}

func isLocalOrPrivateHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	return addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() || addr.IsUnspecified()
}
