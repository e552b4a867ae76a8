package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/app"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/llm"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/pdf"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/report"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screens/results"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	setupLogging()

	reportDir, err := resolveReportDir(cmd)
	if err != nil {
		return err
	}

	// The app still runs without a provider; generation then fails into
	// a visible error on the quiz screen instead of crashing.
	var generator questiongen.Generator
	provider, err := llm.NewProviderFromEnv(cmd.Context())
	if err != nil {
		generator = questiongen.Unavailable{Err: err}
	} else {
		generator = questiongen.New(provider, questiongen.DefaultConfig())
	}

	save := func(doc *report.Document) (string, error) {
		return report.Save(doc, pdf.New(), reportDir)
	}

	return app.Run(generator, results.SaveFunc(save))
}

// resolveReportDir returns the report output directory using the --reports
// flag, then COLREG_QUIZ_REPORT_DIR, then the working directory.
func resolveReportDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("reports")
	if dir == "" {
		dir = os.Getenv("COLREG_QUIZ_REPORT_DIR")
	}
	if dir == "" {
		return os.Getwd()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	return dir, nil
}

// setupLogging routes slog to a file when COLREG_QUIZ_LOG is set. Anything
// written to stderr would tear up the alt-screen UI, so the default is to
// discard.
func setupLogging() {
	path := os.Getenv("COLREG_QUIZ_LOG")
	if path == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
