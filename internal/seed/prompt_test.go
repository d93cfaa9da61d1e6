package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"github.com/jmylchreest/themestudio/internal/colour"
)

type fakeGenerator struct {
	text   string
	err    error
	model  string
	config *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.config = model, config
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
	}}}, nil
}

func TestPrompterSeed(t *testing.T) {
	gen := &fakeGenerator{text: `{"baseColor": "#0F766E", "harmony": "triadic", "name": " Tidepool "}`}
	p := newPrompter(gen, PromptOptions{})

	got, err := p.Seed(context.Background(), "  calm coastal fintech ")
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	want := Seed{
		BaseColor: "#0f766e",
		Harmony:   colour.HarmonyTriad,
		Name:      "Tidepool",
		Source:    "prompt:calm coastal fintech",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Seed() mismatch (-want +got):\n%s", diff)
	}
	if gen.model != DefaultModel {
		t.Errorf("model = %q, want %q", gen.model, DefaultModel)
	}
	if gen.config.ResponseMIMEType != "application/json" || gen.config.ResponseSchema == nil {
		t.Errorf("config = %+v, want a JSON schema request", gen.config)
	}
}

func TestPrompterErrors(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		gen    *fakeGenerator
	}{
		{"empty prompt", " ", &fakeGenerator{}},
		{"api failure", "x", &fakeGenerator{err: errors.New("quota")}},
		{"empty answer", "x", &fakeGenerator{text: ""}},
		{"bad colour", "x", &fakeGenerator{text: `{"baseColor":"teal","harmony":"triad"}`}},
		{"bad harmony", "x", &fakeGenerator{text: `{"baseColor":"#008080","harmony":"jazzy"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrompter(tt.gen, PromptOptions{Model: "gemini-test"})
			if _, err := p.Seed(context.Background(), tt.prompt); err == nil {
				t.Error("Seed() error = nil, want error")
			}
		})
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Seed
		wantErr bool
	}{
		{
			name: "plain",
			text: `{"baseColor":"#abc","harmony":"square"}`,
			want: Seed{BaseColor: "#aabbcc", Harmony: colour.HarmonySquare},
		},
		{
			name: "fenced",
			text: "```json\n{\"baseColor\":\"#112233\"}\n```",
			want: Seed{BaseColor: "#112233", Harmony: DefaultHarmony},
		},
		{name: "not json", text: "purple!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSeed(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSeed() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseSeed() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewPrompterRequiresKey(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	if _, err := NewPrompter(context.Background(), PromptOptions{}); err == nil {
		t.Error("NewPrompter() error = nil, want missing key")
	}
	if _, err := NewPrompter(context.Background(), PromptOptions{Backend: "openai"}); err == nil {
		t.Error("NewPrompter() error = nil, want unknown backend")
	}
}
