package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twistylab/twisty/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded play sessions",
	RunE:  runSessions,
}

var sessionsLimit int

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "Maximum sessions to list")
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded. Play one with: twisty play")
		return nil
	}

	movesRepo := storage.NewMoveRepository(db)

	fmt.Printf("%-10s  %-20s  %-9s  %-6s  %s\n", "ID", "STARTED", "DURATION", "MOVES", "RESULT")
	for _, s := range sessions {
		duration := "-"
		if s.EndedAt != nil {
			duration = s.EndedAt.Sub(s.StartedAt).Truncate(1e9).String()
		}

		count, err := movesRepo.Count(s.SessionID)
		if err != nil {
			return err
		}

		result := "abandoned"
		if s.Solved {
			result = "solved"
		} else if s.EndedAt == nil {
			result = "open"
		}

		fmt.Printf("%-10s  %-20s  %-9s  %-6d  %s\n",
			s.SessionID[:8],
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
			count,
			result,
		)
	}
	fmt.Println()
	fmt.Println("Replay a session with: twisty replay <id>")

	return nil
}
