package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Loader reads export templates, preferring a user's copy in the custom
// directory over the embedded default.
type Loader struct {
	embedded  fs.FS
	customDir string
	logger    hclog.Logger
}

// NewLoader returns a loader over the embedded templates with the custom
// directory at DefaultTemplateDir.
func NewLoader() *Loader {
	return &Loader{
		embedded:  embeddedTemplates(),
		customDir: DefaultTemplateDir(),
		logger:    hclog.NewNullLogger(),
	}
}

// DefaultTemplateDir is ~/.config/themestudio/templates/export, or a
// relative path when the home directory is unknown.
func DefaultTemplateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = ".config"
	}
	return filepath.Join(dir, "themestudio", "templates", "export")
}

// WithCustomDir sets the directory searched for overrides.
func (l *Loader) WithCustomDir(dir string) *Loader {
	l.customDir = dir
	return l
}

// WithLogger sets the logger.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load returns the named template and whether it came from the custom
// directory.
func (l *Loader) Load(name string) (content []byte, custom bool, err error) {
	if l.customDir != "" {
		p := l.CustomPath(name)
		content, err := os.ReadFile(p)
		if err == nil {
			l.logger.Debug("using custom template", "path", p)
			return content, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("failed to read custom template %s: %w", p, err)
		}
	}

	content, err = fs.ReadFile(l.embedded, name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", name, err)
	}
	return content, false, nil
}

// CustomPath returns where an override for name would live.
func (l *Loader) CustomPath(name string) string {
	return filepath.Join(l.customDir, filepath.FromSlash(name))
}

// List returns the embedded template names.
func (l *Loader) List() ([]string, error) {
	var names []string
	err := fs.WalkDir(l.embedded, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	return names, nil
}

// Dump copies every embedded template into the custom directory so it can
// be edited. Existing files are skipped unless force is set; the skipped
// paths are returned alongside the written ones.
func (l *Loader) Dump(force bool) (written, skipped []string, err error) {
	names, err := l.List()
	if err != nil {
		return nil, nil, err
	}

	for _, name := range names {
		dst := l.CustomPath(name)
		if !force {
			if _, err := os.Stat(dst); err == nil {
				skipped = append(skipped, dst)
				continue
			}
		}

		content, err := fs.ReadFile(l.embedded, name)
		if err != nil {
			return written, skipped, fmt.Errorf("failed to read embedded template %q: %w", name, err)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return written, skipped, fmt.Errorf("failed to create directory for %s: %w", dst, err)
		}
		if err := os.WriteFile(dst, content, 0o644); err != nil {
			return written, skipped, fmt.Errorf("failed to write template to %s: %w", dst, err)
		}
		written = append(written, dst)
	}
	return written, skipped, nil
}
