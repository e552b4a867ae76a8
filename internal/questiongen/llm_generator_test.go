package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/llm"
)

// validSetJSON builds a schema-conforming 10-question response.
func validSetJSON(t *testing.T) json.RawMessage {
	t.Helper()
	out := setOutput{Questions: make([]questionOutput, SetSize)}
	for i := range out.Questions {
		out.Questions[i] = questionOutput{
			Prompt:       fmt.Sprintf("Scenario %d: vessel on your starboard bow. Action?", i+1),
			Options:      []string{"Stand on", "Give way", "Stop", "Sound five short blasts"},
			CorrectIndex: 1,
			Explanation:  "Rule 15 makes you the give-way vessel.",
		}
	}
	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validSetJSON(t)},
	)
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != SetSize {
		t.Fatalf("got %d questions, want %d", len(questions), SetSize)
	}
	if questions[0].CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1", questions[0].CorrectIndex)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validSetJSON(t)},
	)
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSetSchema {
		t.Error("request did not carry the question-set schema")
	}
	if req.System == "" {
		t.Error("request has no system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Errorf("messages = %+v, want one user message", req.Messages)
	}
	if req.MaxTokens != DefaultConfig().MaxTokens {
		t.Errorf("MaxTokens = %d, want %d", req.MaxTokens, DefaultConfig().MaxTokens)
	}
}

func TestGenerate_RetriesInvalidSet(t *testing.T) {
	short, err := json.Marshal(setOutput{Questions: []questionOutput{{
		Prompt:       "Only one question",
		Options:      []string{"A", "B", "C", "D"},
		CorrectIndex: 0,
		Explanation:  "x",
	}}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: short},
		llm.MockResponse{Content: validSetJSON(t)},
	)
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != SetSize {
		t.Fatalf("got %d questions after retry, want %d", len(questions), SetSize)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestGenerate_GivesUpAfterMaxAttempts(t *testing.T) {
	short, err := json.Marshal(setOutput{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: short},
		llm.MockResponse{Content: short},
		llm.MockResponse{Content: short},
	)
	gen := New(mock, DefaultConfig())

	_, err = gen.Generate(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if mock.CallCount() != DefaultConfig().MaxAttempts {
		t.Errorf("CallCount = %d, want %d", mock.CallCount(), DefaultConfig().MaxAttempts)
	}
}

func TestGenerate_ProviderErrorNotRetried(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	// Transient retries belong to the provider's retry decorator, not here.
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestUnavailable(t *testing.T) {
	cause := errors.New("no API key configured")
	gen := Unavailable{Err: cause}
	_, err := gen.Generate(context.Background())
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want the configured cause", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxTokens != 4096 {
		t.Errorf("MaxTokens = %d, want 4096", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %f, want 0.7", cfg.Temperature)
	}
	if cfg.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.MaxAttempts)
	}
}
