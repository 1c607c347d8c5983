package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizwoiz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved quizzes and past attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		quizzes, err := s.QuizRepo().List(ctx, limit)
		if err != nil {
			return fmt.Errorf("list quizzes: %w", err)
		}

		fmt.Println("Saved Quizzes")
		fmt.Println(strings.Repeat("─", 100))
		if len(quizzes) == 0 {
			fmt.Println("No saved quizzes.")
		} else {
			fmt.Printf("%-36s  %-32s  %-16s  %4s  %s\n", "ID", "Title", "Category", "Qs", "Created")
			for _, q := range quizzes {
				fmt.Printf("%-36s  %-32s  %-16s  %4d  %s\n",
					q.ID, truncate(q.Title, 32), truncate(q.Category, 16), len(q.Questions),
					q.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
		}

		attempts, err := s.EventRepo().QueryAttempts(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		fmt.Println()
		fmt.Println("Recent Attempts")
		fmt.Println(strings.Repeat("─", 100))
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded.")
			return nil
		}
		fmt.Printf("%-32s  %-16s  %7s  %5s  %8s  %s\n", "Title", "Category", "Score", "Pct", "Duration", "When")
		for _, a := range attempts {
			fmt.Printf("%-32s  %-16s  %4d/%-2d  %4d%%  %5dm%02ds  %s\n",
				truncate(a.Title, 32), truncate(a.Category, 16),
				a.Correct, a.Total, a.Percentage,
				a.DurationSecs/60, a.DurationSecs%60,
				a.Timestamp.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <quiz-id>",
	Short: "Delete a saved quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		deleted, err := s.QuizRepo().Delete(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("delete quiz: %w", err)
		}
		if !deleted {
			return fmt.Errorf("quiz %s not found", args[0])
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
	historyCmd.AddCommand(historyDeleteCmd)
}
