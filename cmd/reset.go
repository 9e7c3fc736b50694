package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ritam/preptrail/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the roadmap and all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This deletes the roadmap and all progress. The profile is kept. Continue? [y/N] ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
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

		if err := st.ProgressRepo().DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}
		if err := st.PlanRepo().Delete(ctx); err != nil {
			return fmt.Errorf("delete roadmap: %w", err)
		}

		fmt.Println("Roadmap and progress deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
