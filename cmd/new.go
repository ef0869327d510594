package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/outline"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <topic>",
	Short: "Generate a course for a topic (or return the existing one)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		user, err := currentUser(ctx, cmd, s)
		if err != nil {
			return err
		}

		provider, err := llm.NewProviderFromEnv(ctx, s)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := outline.NewService(provider, s, outline.DefaultConfig())
		course, created, err := svc.GetOrCreate(ctx, user.ID, topic)
		if err != nil {
			return err
		}

		if created {
			fmt.Printf("Generated course %d: %s\n\n", course.ID, course.Title)
		} else {
			fmt.Printf("Course %d already exists for this topic: %s\n\n", course.ID, course.Title)
		}
		hasQuiz, err := s.QuizSubtopicIDs(ctx, course.ID)
		if err != nil {
			return err
		}
		printCourseTree(course, hasQuiz)
		return nil
	},
}
