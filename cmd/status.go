package cmd

import (
	"fmt"
	"strings"

	"github.com/ritam/preptrail/internal/llm"
	"github.com/ritam/preptrail/internal/pipeline"
	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/store"
	"github.com/ritam/preptrail/internal/tracker"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show roadmap progress without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		// Provider errors are fine here; status only needs stored state.
		provider, _ := llm.NewProviderFromEnv(ctx, st.EventRepo())
		pipe := pipeline.New(provider, st.ProfileRepo(), pipeline.DefaultConfig())
		ctrl := tracker.New(pipe, st.PlanRepo(), st.ProgressRepo())
		ctrl.RefreshStatus(ctx)
		if err := ctrl.LoadExisting(ctx); err != nil {
			return fmt.Errorf("load roadmap: %w", err)
		}

		snap := ctrl.Snapshot()
		if snap.Roadmap == nil {
			if snap.CanRun {
				fmt.Println("No roadmap yet. Run 'preptrail generate' to create one.")
			} else {
				fmt.Println("No roadmap yet.")
				fmt.Println(snap.StatusReason)
			}
			return nil
		}

		fmt.Printf("Roadmap generated %s · %d weeks · %d%% complete\n",
			snap.Roadmap.GeneratedAt.Local().Format("2006-01-02"),
			len(snap.Roadmap.Weeks),
			snap.AverageCompletion())
		fmt.Println(strings.Repeat("─", 60))

		statuses := snap.Statuses()
		for i, w := range snap.Roadmap.Weeks {
			rec, _ := snap.RecordByWeek(w.WeekNumber)
			marker := " "
			if statuses[i].Current {
				marker = "▸"
			}
			note := ""
			if statuses[i].Locked {
				note = "  locked"
			}
			fmt.Printf("%s Week %d  %-28s  %d/%d tasks  %3d%%%s\n",
				marker, w.WeekNumber, truncate(w.Theme, 28),
				len(rec.CompletedTasks), len(w.Tasks),
				roadmap.ComputeCompletion(rec), note)
		}
		return nil
	},
}
