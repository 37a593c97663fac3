// Package extract turns raw resume text into a normalized skill list.
// It asks the LLM first and falls back to pattern matching, so callers
// always get a usable result.
package extract

import (
	"context"
	"encoding/json"

	"github.com/abhisek/pathfinder/internal/llm"
	"github.com/abhisek/pathfinder/internal/skills"
)

// Config tunes the LLM extraction call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the extraction defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.0,
	}
}

// Result carries the extracted skills and how they were obtained.
type Result struct {
	Skills []string
	// Source is "llm" or "pattern".
	Source string
}

// Extractor extracts skills from resume text.
type Extractor struct {
	provider llm.Provider
	config   Config
}

// New creates an Extractor. A nil provider forces the pattern fallback,
// which keeps extraction usable without any API key.
func New(provider llm.Provider, cfg Config) *Extractor {
	return &Extractor{provider: provider, config: cfg}
}

// skillListOutput is the raw LLM response before normalization.
type skillListOutput struct {
	Skills []string `json:"skills"`
}

// Extract returns the normalized skill list for the resume text.
// It never returns an error: any LLM failure degrades to the
// deterministic pattern extractor.
func (e *Extractor) Extract(ctx context.Context, resumeText string) Result {
	if e.provider == nil {
		return Result{Skills: skills.FallbackExtract(resumeText), Source: "pattern"}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeSkillExtract)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(resumeText)},
		},
		Schema:      SkillListSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return Result{Skills: skills.FallbackExtract(resumeText), Source: "pattern"}
	}

	var raw skillListOutput
	cleaned := llm.StripCodeFence(string(resp.Content))
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return Result{Skills: skills.FallbackExtract(resumeText), Source: "pattern"}
	}

	normalized := skills.NormalizeAll(raw.Skills)
	if len(normalized) == 0 {
		return Result{Skills: skills.FallbackExtract(resumeText), Source: "pattern"}
	}

	return Result{Skills: normalized, Source: "llm"}
}
