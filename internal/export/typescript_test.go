package export

import (
	"testing"

	"github.com/jmylchreest/themestudio/internal/theme"
)

func TestTSLiteral(t *testing.T) {
	tests := []struct {
		name   string
		indent int
		in     any
		want   string
	}{
		{"string", 0, "it's", `'it\'s'`},
		{"number", 0, 1.5, "1.5"},
		{"bool", 0, true, "true"},
		{"nil", 0, nil, "null"},
		{"empty map", 0, theme.Style{}, "{}"},
		{"empty list", 0, []int{}, "[]"},
		{
			"sorted keys",
			0,
			theme.Style{"b": 2, "a": "x", "font-size": 12},
			"{\n  a: 'x',\n  b: 2,\n  'font-size': 12\n}",
		},
		{
			"nested indent",
			2,
			theme.Style{"root": theme.Style{"padding": 8}},
			"{\n    root: {\n      padding: 8\n    }\n  }",
		},
		{"list", 0, []string{"a", "b"}, "[\n  'a',\n  'b'\n]"},
		{"struct tags", 0, theme.Shape{BorderRadius: 6}, "{\n  borderRadius: 6\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tsLiteral(tt.indent, tt.in)
			if err != nil {
				t.Fatalf("tsLiteral() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("tsLiteral() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTSLiteralUnencodable(t *testing.T) {
	if _, err := tsLiteral(0, func() {}); err == nil {
		t.Error("tsLiteral(func) error = nil, want encode error")
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme", "Acme"},
		{"Acme Corp", "AcmeCorp"},
		{"my-brand (v2)", "mybrandv2"},
		{"2077", "Brand2077"},
		{"!!!", "Brand"},
		{"", "Brand"},
		{"$snake_case", "$snake_case"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := identifier(tt.in); got != tt.want {
				t.Errorf("identifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTSString(t *testing.T) {
	if got, want := tsString("a\\b\n'c'"), `'a\\b\n\'c\''`; got != want {
		t.Errorf("tsString() = %q, want %q", got, want)
	}
}
