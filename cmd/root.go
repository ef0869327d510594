package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursegen",
	Short: "AI course generator",
	Long:  "Coursegen — generates structured courses on any topic: outline, lessons, companion videos, and quizzes, cached locally so nothing is generated twice.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURSEGEN_DB env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "default", "Username to act as")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COURSEGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store for a command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// currentUser resolves the --user flag to a persisted user, creating it on
// first use.
func currentUser(ctx context.Context, cmd *cobra.Command, s *store.Store) (*content.User, error) {
	username, _ := cmd.Flags().GetString("user")
	u, err := s.GetOrCreateUser(ctx, username, "")
	if err != nil {
		return nil, fmt.Errorf("resolve user %q: %w", username, err)
	}
	return u, nil
}
