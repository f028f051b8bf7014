package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show interview practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")

		day := time.Now()
		if dateStr != "" {
			parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
			}
			day = parsed
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().StatsForDay(context.Background(), day)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		fmt.Printf("Interview Stats — %s\n", day.Format("2006-01-02"))
		fmt.Println(strings.Repeat("─", 44))

		if stats.TotalInterviews == 0 {
			fmt.Println("No interviews recorded for this day.")
			return nil
		}

		fmt.Printf("%-24s  %d\n", "Interviews started", stats.TotalInterviews)
		fmt.Printf("%-24s  %d\n", "Interviews completed", stats.CompletedInterviews)
		fmt.Printf("%-24s  %.0f%%\n", "Completion rate", stats.CompletionRate())
		fmt.Printf("%-24s  %d\n", "Passing evaluations", stats.SuccessCount)
		fmt.Printf("%-24s  %.0f%%\n", "Pass rate", stats.SuccessRate())

		if len(stats.PositionDistribution) > 0 {
			fmt.Println()
			fmt.Println("By Position")
			fmt.Println(strings.Repeat("─", 44))

			positions := make([]string, 0, len(stats.PositionDistribution))
			for p := range stats.PositionDistribution {
				positions = append(positions, p)
			}
			sort.Strings(positions)
			for _, p := range positions {
				fmt.Printf("%-24s  %d\n", p, stats.PositionDistribution[p])
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("date", "d", "", "Day to report on (YYYY-MM-DD, default today)")
}
