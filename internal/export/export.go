// Package export renders brands as code a UI project can import: a full
// theme module built through the studio, a token-only TypeScript module,
// or the raw tokens as JSON.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/themestudio/internal/builder"
	"github.com/jmylchreest/themestudio/internal/security"
	"github.com/jmylchreest/themestudio/internal/studio"
	"github.com/jmylchreest/themestudio/internal/theme"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

func embeddedTemplates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Format is an export format.
type Format string

// Export formats.
const (
	// FormatTheme is the built theme as a createTheme module.
	FormatTheme Format = "theme"
	// FormatTypeScript is the brand tokens as an extendTheme module.
	FormatTypeScript Format = "typescript"
	// FormatJSON is the brand tokens as JSON.
	FormatJSON Format = "json"
)

// AllFormats lists the formats in display order.
func AllFormats() []Format {
	return []Format{FormatTheme, FormatTypeScript, FormatJSON}
}

// ParseFormat validates s. "theme-library" is accepted for FormatTheme.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "theme", "theme-library":
		return FormatTheme, nil
	case "typescript", "ts":
		return FormatTypeScript, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want theme, typescript or json)", s)
	}
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	if f == FormatJSON {
		return "json"
	}
	return "ts"
}

func (f Format) template() string {
	switch f {
	case FormatTheme:
		return "theme.ts.tmpl"
	case FormatTypeScript:
		return "typescript.ts.tmpl"
	default:
		return ""
	}
}

// paletteKeys are the palette entries copied into exported colour schemes.
var paletteKeys = []string{"primary", "secondary", "error", "warning", "info", "success", "background", "text"}

// themeData feeds the theme template.
type themeData struct {
	Name         string
	Style        theme.DesignStyle
	GeneratedAt  string
	Selector     string
	CSSVarPrefix string
	Light        theme.Style
	Dark         theme.Style
	Typography   theme.Style
	Shape        theme.Style
	Spacing      int
	Transitions  theme.Style
	Breakpoints  theme.Style
	Components   theme.Components
}

// tokensData feeds the token templates.
type tokensData struct {
	Name        string
	GeneratedAt string
	Tokens      theme.BrandTokens
}

// Exporter renders brands.
type Exporter struct {
	studio *studio.Studio
	loader *Loader
	now    func() time.Time
	logger hclog.Logger
}

// New returns an exporter that builds themes with s.
func New(s *studio.Studio) *Exporter {
	return &Exporter{
		studio: s,
		loader: NewLoader(),
		now:    time.Now,
		logger: hclog.NewNullLogger(),
	}
}

// WithLoader replaces the template loader.
func (e *Exporter) WithLoader(l *Loader) *Exporter {
	e.loader = l
	return e
}

// WithClock replaces time.Now for the generated-at header.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// WithLogger sets the logger.
func (e *Exporter) WithLogger(l hclog.Logger) *Exporter {
	if l != nil {
		e.logger = l.Named("export")
		e.loader.WithLogger(e.logger)
	}
	return e
}

// Generate renders b in format f.
func (e *Exporter) Generate(b *theme.BrandConfig, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(b.Tokens, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode tokens: %w", err)
		}
		return append(data, '\n'), nil

	case FormatTheme:
		return e.render(f, e.themeData(b))

	case FormatTypeScript:
		return e.render(f, tokensData{
			Name:        b.Name,
			GeneratedAt: e.generatedAt(),
			Tokens:      b.Tokens,
		})

	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

// FileName returns the default file name for b in format f.
func FileName(b *theme.BrandConfig, f Format) string {
	base := strings.ToLower(identifier(b.Name))
	if f == FormatJSON {
		return base + ".tokens.json"
	}
	return base + ".theme.ts"
}

// WriteFile renders b into dir/name, where name defaults to FileName. The
// target must stay inside dir.
func (e *Exporter) WriteFile(dir, name string, b *theme.BrandConfig, f Format) (string, error) {
	if name == "" {
		name = FileName(b, f)
	}
	target := filepath.Join(dir, name)
	if err := security.ValidatePathWithin(target, dir); err != nil {
		return "", err
	}

	content, err := e.Generate(b, f)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	e.logger.Info("exported theme", "brand", b.ID, "format", f, "path", target)
	return target, nil
}

func (e *Exporter) render(f Format, data any) ([]byte, error) {
	name := f.template()
	content, custom, err := e.loader.Load(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s (custom: %t): %w", name, custom, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) themeData(b *theme.BrandConfig) themeData {
	t := e.studio.BuildTheme(b)
	o := t.Options

	light := pick(o.SchemePalette(theme.SchemeLight))
	if light == nil {
		light = pick(o.Palette)
	}
	dark := pick(o.SchemePalette(theme.SchemeDark))
	if dark == nil {
		dark = light
	}

	data := themeData{
		Name:         b.Name,
		Style:        b.Style(),
		GeneratedAt:  e.generatedAt(),
		Selector:     theme.SelectorClass,
		CSSVarPrefix: builder.CSSVarPrefix,
		Light:        light,
		Dark:         dark,
		Typography:   o.Typography,
		Shape:        theme.Style{"borderRadius": t.BorderRadius},
		Spacing:      t.SpacingUnit,
		Transitions:  o.Transitions,
		Breakpoints:  o.Breakpoints,
		Components:   o.Components,
	}
	if o.CSSVariables != nil {
		data.Selector = o.CSSVariables.ColorSchemeSelector
		data.CSSVarPrefix = o.CSSVariables.CSSVarPrefix
	}
	return data
}

func (e *Exporter) generatedAt() string {
	return e.now().UTC().Format(time.RFC3339)
}

// pick returns the exported palette entries of p, or nil if it has none.
func pick(p theme.Style) theme.Style {
	out := theme.Style{}
	for _, k := range paletteKeys {
		if v, ok := p[k]; ok {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
