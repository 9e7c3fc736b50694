package cmd

import (
	"fmt"
	"os"

	"github.com/ritam/preptrail/internal/app"
	"github.com/ritam/preptrail/internal/llm"
	"github.com/ritam/preptrail/internal/pipeline"
	"github.com/ritam/preptrail/internal/store"
	"github.com/ritam/preptrail/internal/topics"
	"github.com/ritam/preptrail/internal/tracker"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
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

	var opts app.Options

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		provider = nil
	} else {
		opts.Topics = topics.NewService(provider, topics.DefaultConfig())
	}

	pipe := pipeline.New(provider, st.ProfileRepo(), pipeline.DefaultConfig())
	ctrl := tracker.New(pipe, st.PlanRepo(), st.ProgressRepo())
	ctrl.RefreshStatus(ctx)
	if err := ctrl.LoadExisting(ctx); err != nil {
		return fmt.Errorf("load existing roadmap: %w", err)
	}
	opts.Controller = ctrl

	if profile, err := st.ProfileRepo().Load(ctx); err == nil && profile != nil {
		opts.UserLevel = profile.ExperienceLevel
	}

	return app.Run(opts)
}
