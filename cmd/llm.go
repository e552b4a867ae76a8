package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the question generation provider",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show which LLM provider and model will be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		source := "environment (COLREG_QUIZ_* variables)"
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured.")
				fmt.Println()
				fmt.Println("Set COLREG_QUIZ_LLM_PROVIDER and its API key, or export one of:")
				fmt.Println("  GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
				return err
			}
			cfg = discovered
			source = "discovered from standard API key variables"
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", modelFor(cfg))
		fmt.Printf("Source:    %s\n", source)
		return nil
	},
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Send a minimal request to verify the provider works",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := llm.NewProviderFromEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(cmd.Context(), llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: `Reply with the JSON object {"ok": true}.`},
			},
			MaxTokens: 32,
		})
		if err != nil {
			return fmt.Errorf("probe request failed: %w", err)
		}

		fmt.Printf("Model:     %s\n", resp.Model)
		fmt.Printf("Latency:   %dms\n", time.Since(start).Milliseconds())
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Println("Provider is working.")
		return nil
	},
}

func modelFor(cfg llm.Config) string {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model
	case "openai":
		return cfg.OpenAI.Model
	case "gemini":
		return cfg.Gemini.Model
	case "openrouter":
		return cfg.OpenRouter.Model
	default:
		return ""
	}
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
	llmCmd.AddCommand(llmProbeCmd)
}
