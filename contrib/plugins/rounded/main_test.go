package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/themestudio/pkg/plugin"
)

func transform(t *testing.T, opts, pluginOpts string) map[string]any {
	t.Helper()
	req := plugin.ThemeRequest{Options: json.RawMessage(opts)}
	if pluginOpts != "" {
		req.PluginOptions = json.RawMessage(pluginOpts)
	}
	resp, err := (&RoundedPlugin{}).Transform(context.Background(), req)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(resp.Options, &got); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return got
}

func TestTransformDefaults(t *testing.T) {
	got := transform(t, `{"spacing":8,"shape":{"borderRadius":4}}`, "")

	if got["spacing"] != 8.0 {
		t.Errorf("spacing = %v, want 8 kept", got["spacing"])
	}
	want := map[string]any{"borderRadius": 12.0}
	if diff := cmp.Diff(want, got["shape"]); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
	card := got["components"].(map[string]any)["MuiCard"]
	wantCard := map[string]any{"styleOverrides": map[string]any{"root": map[string]any{"borderRadius": 12.0}}}
	if diff := cmp.Diff(wantCard, card); diff != "" {
		t.Errorf("MuiCard mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformPillButtons(t *testing.T) {
	got := transform(t, `{}`, `{"radius":6,"pillButtons":true}`)

	button := got["components"].(map[string]any)["MuiButton"].(map[string]any)
	radius := button["styleOverrides"].(map[string]any)["root"].(map[string]any)["borderRadius"]
	if radius != 9999.0 {
		t.Errorf("MuiButton borderRadius = %v, want 9999", radius)
	}
	if r := got["shape"].(map[string]any)["borderRadius"]; r != 6.0 {
		t.Errorf("shape.borderRadius = %v, want 6", r)
	}
}

func TestTransformRejectsBadOptions(t *testing.T) {
	tests := map[string]plugin.ThemeRequest{
		"negative radius": {Options: json.RawMessage(`{}`), PluginOptions: json.RawMessage(`{"radius":-1}`)},
		"bad options":     {Options: json.RawMessage(`{}`), PluginOptions: json.RawMessage(`[1]`)},
		"bad theme":       {Options: json.RawMessage(`"x"`)},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := (&RoundedPlugin{}).Transform(context.Background(), req); err == nil {
				t.Error("Transform() error = nil, want error")
			}
		})
	}
}
