package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/coursegen/internal/lesson"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/progress"
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <subtopic-id>",
	Short: "Read a subtopic's lesson, generating it on first request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid subtopic id %q", args[0])
		}
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(ctx, s)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := lesson.NewService(provider, s, lesson.DefaultConfig())
		sub, created, err := svc.GetOrGenerate(ctx, id)
		if err != nil {
			return err
		}

		if created {
			fmt.Printf("# %s (generated, ~%d min read)\n\n", sub.Title, sub.ReadingMinutes)
		} else {
			fmt.Printf("# %s (~%d min read)\n\n", sub.Title, sub.ReadingMinutes)
		}
		fmt.Println(sub.Content)

		if done, _ := cmd.Flags().GetBool("done"); done {
			user, err := currentUser(ctx, cmd, s)
			if err != nil {
				return err
			}
			spent := time.Duration(sub.ReadingMinutes) * time.Minute
			if _, err := progress.NewService(s).MarkCompleted(ctx, user.ID, sub.ID, spent); err != nil {
				return err
			}
			fmt.Println("\nMarked completed.")
		}
		return nil
	},
}

func init() {
	lessonCmd.Flags().Bool("done", false, "Mark the subtopic completed after reading")
}
