package analyzer

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/snapwave/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/analyze_photo.txt
var analyzePhotoPrompt string

// Config holds the analyzer settings. Passed at construction; nothing here is
// process-global.
type Config struct {
	APIKey string
	Model  string // e.g. "gemini-2.0-flash"
}

// Gemini analyzes photos with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}

	name := cfg.Model
	if name == "" {
		name = "gemini-2.0-flash"
	}
	model := client.GenerativeModel(name)
	// Constrain the model to raw JSON; the prompt repeats the schema.
	model.ResponseMIMEType = "application/json"

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

// Analyze sends the photo and the classification prompt to Gemini and parses
// the structured reply. Labels in the reply pass through normalization, so
// the result only ever contains canonical categories.
func (g *Gemini) Analyze(ctx context.Context, jpeg []byte) (*models.PhotoAnalysis, error) {
	resp, err := g.model.GenerateContent(ctx,
		genai.Text(analyzePhotoPrompt),
		genai.ImageData("jpeg", jpeg),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no content returned", ErrMalformedResponse)
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected part type", ErrMalformedResponse)
	}

	return ParseAnalysis(string(text))
}

// wire shapes for the model's JSON output.
type personJSON struct {
	ShirtColor string `json:"shirt_color"`
	Emotion    string `json:"emotion"`
}

type analysisJSON struct {
	TotalPeople int          `json:"total_people"`
	People      []personJSON `json:"people"`
}

// ParseAnalysis parses the model's text output into a PhotoAnalysis. It
// tolerates Markdown code fences around the JSON and self-heals the reported
// total against the people list.
func ParseAnalysis(text string) (*models.PhotoAnalysis, error) {
	clean := stripFences(text)

	var parsed analysisJSON
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v\nOutput was: %s", ErrMalformedResponse, err, clean)
	}

	analysis := &models.PhotoAnalysis{
		TotalPeople: parsed.TotalPeople,
		People:      make([]models.PersonTag, 0, len(parsed.People)),
	}
	for _, p := range parsed.People {
		analysis.People = append(analysis.People, models.PersonTag{
			Color:      models.NormalizeColor(p.ShirtColor),
			Expression: models.NormalizeExpression(p.Emotion),
		})
	}
	analysis.Normalize()
	return analysis, nil
}

// stripFences removes a ```json ... ``` wrapper if the model added one
// despite the instructions, keeping only the outermost JSON object.
func stripFences(text string) string {
	clean := strings.TrimSpace(text)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	start := strings.IndexByte(clean, '{')
	end := strings.LastIndexByte(clean, '}')
	if start >= 0 && end > start {
		return clean[start : end+1]
	}
	return clean
}
