package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ritam/preptrail/internal/llm"
	"github.com/ritam/preptrail/internal/pipeline"
	"github.com/ritam/preptrail/internal/store"
	"github.com/ritam/preptrail/internal/tracker"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new roadmap without launching the TUI",
	Long:  "Generates a fresh roadmap from the stored profile, replacing any existing one and resetting all progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		resumePath, _ := cmd.Flags().GetString("resume")
		var resumeText string
		if resumePath != "" {
			data, err := os.ReadFile(resumePath)
			if err != nil {
				return fmt.Errorf("read resume file: %w", err)
			}
			resumeText = string(data)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		pipe := pipeline.New(provider, st.ProfileRepo(), pipeline.DefaultConfig())
		ctrl := tracker.New(pipe, st.PlanRepo(), st.ProgressRepo())
		status := ctrl.RefreshStatus(ctx)
		if !status.CanRun {
			return fmt.Errorf("cannot generate: %s", status.Reason)
		}

		fmt.Println("Generating roadmap... this can take a minute.")
		if err := ctrl.Generate(ctx, resumeText); err != nil {
			if errors.Is(err, tracker.ErrGenerationBlocked) {
				return fmt.Errorf("cannot generate: %s", status.Reason)
			}
			return err
		}

		snap := ctrl.Snapshot()
		fmt.Printf("Done. %d-week roadmap generated.\n", len(snap.Roadmap.Weeks))
		for _, w := range snap.Roadmap.Weeks {
			fmt.Printf("  Week %d: %s\n", w.WeekNumber, w.Theme)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("resume", "", "Path to a resume text file to personalize against")
}
