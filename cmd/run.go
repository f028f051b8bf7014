package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/app"
	"github.com/abhisek/intervu/internal/interviewer"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/store"
)

// runApp opens the store, builds the interviewer, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n\nSet one of ANTHROPIC_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY (a .env file in the working directory also works)", err)
	}

	iv := interviewer.New(provider, eventRepo, interviewer.DefaultConfig())
	return app.Run(iv)
}
