// Package cli implements the command-line interface for twisty.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twistylab/twisty/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "twisty",
	Short: "Interactive 3x3x3 twisty puzzle",
	Long: `Twisty - an interactive Rubik's cube for the terminal.

Turn layers with the keyboard or by dragging faces with the mouse, watch
moves animate in an isometric view, and record sessions for later replay.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.twisty/twisty.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the session database from the --db flag or the default path
// and applies pending migrations.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".twisty", "twisty.db")
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
