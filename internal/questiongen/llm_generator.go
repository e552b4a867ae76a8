package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/llm"
)

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the full 10-question response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts is how many times a retryable-invalid set is regenerated
	// before giving up.
	MaxAttempts int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
		MaxAttempts: 3,
	}
}

// LLMGenerator implements Generator using an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput mirrors one item of the raw LLM response.
type questionOutput struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// setOutput mirrors the raw LLM response envelope.
type setOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate requests a full question set and validates it against the
// contract. Sets that fail a retryable validation are regenerated up to
// Config.MaxAttempts times.
func (g *LLMGenerator) Generate(ctx context.Context) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-set")

	var lastErr error
	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		questions, err := g.generateOnce(ctx)
		if err == nil {
			return questions, nil
		}
		lastErr = err

		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return nil, err
		}
	}
	return nil, lastErr
}

func (g *LLMGenerator) generateOnce(ctx context.Context) ([]Question, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage()},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw setOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, item := range raw.Questions {
		questions = append(questions, Question{
			Prompt:       item.Prompt,
			Options:      item.Options,
			CorrectIndex: item.CorrectIndex,
			Explanation:  item.Explanation,
		})
	}

	if verr := ValidateSet(questions); verr != nil {
		return nil, verr
	}
	return questions, nil
}
