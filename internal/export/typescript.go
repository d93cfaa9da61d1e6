package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"text/template"
	"unicode"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$]*$`)

// templateFuncs are available to every export template.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"ts":         tsLiteral,
		"identifier": identifier,
		"quote":      tsString,
	}
}

// tsLiteral renders v as a TypeScript object literal. Nested lines are
// indented by indent spaces plus two per level. Map keys are sorted.
func tsLiteral(indent int, v any) (string, error) {
	generic, err := toGeneric(v)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	writeTS(&b, generic, indent)
	return b.String(), nil
}

// toGeneric turns typed values into maps, slices and json.Number through
// their JSON encoding, so tags and custom marshalers are honoured.
func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}
	return out, nil
}

func writeTS(b *strings.Builder, v any, indent int) {
	pad := strings.Repeat(" ", indent)
	inner := strings.Repeat(" ", indent+2)

	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		b.WriteString(tsString(val))
	case bool:
		fmt.Fprint(b, val)
	case json.Number:
		b.WriteString(val.String())
	case []any:
		if len(val) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, item := range val {
			b.WriteString(inner)
			writeTS(b, item, indent+2)
			if i < len(val)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(pad + "]")
	case map[string]any:
		if len(val) == 0 {
			b.WriteString("{}")
			return
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		b.WriteString("{\n")
		for i, k := range keys {
			b.WriteString(inner + tsKey(k) + ": ")
			writeTS(b, val[k], indent+2)
			if i < len(keys)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(pad + "}")
	default:
		b.WriteString("undefined")
	}
}

func tsKey(k string) string {
	if identPattern.MatchString(k) {
		return k
	}
	return tsString(k)
}

// tsString quotes s as a single-quoted TypeScript string.
func tsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

// identifier turns a brand name into a TypeScript identifier: whitespace
// and punctuation are dropped, and a leading digit is prefixed.
func identifier(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return "Brand"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "Brand" + out
	}
	return out
}
