package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/themestudio/pkg/plugin"
)

func TestHandleStdio(t *testing.T) {
	in := strings.NewReader(`{"options":{"components":{"MuiPaper":{"defaultProps":{"square":true}}}},"plugin_options":{"level":0}}`)
	var out bytes.Buffer
	if err := plugin.HandleStdio(context.Background(), &ElevationPlugin{}, in, &out); err != nil {
		t.Fatalf("HandleStdio() error = %v", err)
	}

	var resp plugin.ThemeResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(resp.Options, &got); err != nil {
		t.Fatalf("options are not JSON: %v", err)
	}

	components := got["components"].(map[string]any)
	wantPaper := map[string]any{"defaultProps": map[string]any{"square": true, "elevation": 0.0}}
	if diff := cmp.Diff(wantPaper, components["MuiPaper"]); diff != "" {
		t.Errorf("MuiPaper mismatch (-want +got):\n%s", diff)
	}
	wantButton := map[string]any{"defaultProps": map[string]any{"disableElevation": true}}
	if diff := cmp.Diff(wantButton, components["MuiButton"]); diff != "" {
		t.Errorf("MuiButton mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformLevelRange(t *testing.T) {
	for _, opts := range []string{`{"level":-1}`, `{"level":25}`} {
		req := plugin.ThemeRequest{Options: json.RawMessage(`{}`), PluginOptions: json.RawMessage(opts)}
		if _, err := (&ElevationPlugin{}).Transform(context.Background(), req); err == nil {
			t.Errorf("Transform(%s) error = nil, want range error", opts)
		}
	}
}

func TestDefaultLevelKeepsButtonElevation(t *testing.T) {
	resp, err := (&ElevationPlugin{}).Transform(context.Background(), plugin.ThemeRequest{Options: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if strings.Contains(string(resp.Options), "disableElevation") {
		t.Errorf("options = %s, want buttons untouched at level 1", resp.Options)
	}
}
