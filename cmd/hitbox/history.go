package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/platform/tui"
	"github.com/vovakirdan/hitbox/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded collision checks",
	Long: `Display the most recent checks saved with 'hitbox check --record'.

Examples:
  hitbox history
  hitbox history --limit 50`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of records to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("Error opening database: %v\n", err)
	}
	defer store.Close()

	records, err := store.RecentChecks(flagHistoryLimit)
	if err != nil {
		fatalf("Error retrieving history: %v\n", err)
	}
	if len(records) == 0 {
		fmt.Println("No checks recorded yet.")
		return
	}

	for _, rec := range records {
		outcome := tui.RenderVerdict(rec.Collides)
		if rec.Error != "" {
			outcome = tui.RenderDim(rec.Error)
		}
		fmt.Printf("  %s  %-12s  %s x %s  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.Scene, rec.First, rec.Second, outcome)
	}
}
