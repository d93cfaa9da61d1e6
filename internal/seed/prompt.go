package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/jmylchreest/themestudio/internal/colour"
)

// Gemini defaults.
const (
	DefaultModel  = "gemini-2.5-flash"
	BackendGemini = "gemini-api"
	BackendVertex = "vertex-ai"
	apiKeyEnv     = "GOOGLE_API_KEY"
)

const systemInstruction = `You pick brand colours for UI themes. Answer with one JSON object:
{"baseColor": "#rrggbb", "harmony": "<harmony>", "name": "<short brand-like name>"}.
baseColor is the primary brand colour. harmony is one of: %s.`

// PromptOptions configures the Gemini client.
type PromptOptions struct {
	Model   string
	Backend string
	// APIKey defaults to $GOOGLE_API_KEY for the Gemini API backend.
	APIKey string
	Logger hclog.Logger
}

// contentGenerator is the part of the genai client a Prompter uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Prompter asks a Gemini model for a seed.
type Prompter struct {
	gen    contentGenerator
	model  string
	logger hclog.Logger
}

// NewPrompter creates a Gemini client.
func NewPrompter(ctx context.Context, opts PromptOptions) (*Prompter, error) {
	cfg := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	switch opts.Backend {
	case "", BackendGemini:
	case BackendVertex:
		cfg.Backend = genai.BackendVertexAI
	default:
		return nil, fmt.Errorf("unknown genai backend %q (want %s or %s)", opts.Backend, BackendGemini, BackendVertex)
	}

	if cfg.Backend == genai.BackendGeminiAPI {
		cfg.APIKey = opts.APIKey
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv(apiKeyEnv)
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%s environment variable is required\nGet one at: https://aistudio.google.com/api-keys", apiKeyEnv)
		}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}
	return newPrompter(client.Models, opts), nil
}

func newPrompter(gen contentGenerator, opts PromptOptions) *Prompter {
	p := &Prompter{gen: gen, model: opts.Model, logger: hclog.NewNullLogger()}
	if p.model == "" {
		p.model = DefaultModel
	}
	if opts.Logger != nil {
		p.logger = opts.Logger.Named("seed")
	}
	return p
}

// Seed asks the model for a seed matching prompt.
func (p *Prompter) Seed(ctx context.Context, prompt string) (Seed, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Seed{}, errors.New("prompt is required")
	}

	p.logger.Debug("requesting seed", "model", p.model, "prompt", prompt)
	resp, err := p.gen.GenerateContent(ctx, p.model, genai.Text(prompt), requestConfig())
	if err != nil {
		return Seed{}, fmt.Errorf("seed generation failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return Seed{}, errors.New("no text in response")
	}
	s, err := parseSeed(text)
	if err != nil {
		return Seed{}, err
	}
	s.Source = "prompt:" + prompt
	return s, nil
}

// FromPrompt asks Gemini for a seed matching prompt.
func FromPrompt(ctx context.Context, prompt string, opts PromptOptions) (Seed, error) {
	p, err := NewPrompter(ctx, opts)
	if err != nil {
		return Seed{}, err
	}
	return p.Seed(ctx, prompt)
}

func requestConfig() *genai.GenerateContentConfig {
	harmonies := make([]string, 0, len(colour.AllHarmonies()))
	for _, h := range colour.AllHarmonies() {
		harmonies = append(harmonies, string(h))
	}

	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: fmt.Sprintf(systemInstruction, strings.Join(harmonies, ", "))},
		}},
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"baseColor": {Type: genai.TypeString},
				"harmony":   {Type: genai.TypeString, Enum: harmonies},
				"name":      {Type: genai.TypeString},
			},
			Required: []string{"baseColor", "harmony"},
		},
	}
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// parseSeed decodes the model's JSON answer, tolerating a Markdown fence.
func parseSeed(text string) (Seed, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	var answer struct {
		BaseColor string `json:"baseColor"`
		Harmony   string `json:"harmony"`
		Name      string `json:"name"`
	}
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return Seed{}, fmt.Errorf("failed to parse model answer: %w", err)
	}

	rgb, err := colour.ParseHex(answer.BaseColor)
	if err != nil {
		return Seed{}, fmt.Errorf("model answer: %w", err)
	}

	harmony := DefaultHarmony
	if answer.Harmony != "" {
		if harmony, err = colour.ParseHarmony(answer.Harmony); err != nil {
			return Seed{}, fmt.Errorf("model answer: %w", err)
		}
	}

	return Seed{BaseColor: rgb.Hex(), Harmony: harmony, Name: strings.TrimSpace(answer.Name)}, nil
}
