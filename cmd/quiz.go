package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <subtopic-id>",
	Short: "Take a subtopic's quiz, generating it on first request",
	Long: `Prints the subtopic's quiz set, generating it first if needed.
Pass --answers to submit an attempt, e.g. --answers B,C,A,D,B. Every
submission is recorded; earlier attempts are kept.`,
	Args: cobra.ExactArgs(1),
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

		svc := quiz.NewService(provider, s, quiz.DefaultConfig())

		if answersFlag, _ := cmd.Flags().GetString("answers"); answersFlag != "" {
			user, err := currentUser(ctx, cmd, s)
			if err != nil {
				return err
			}

			answers := strings.Split(answersFlag, ",")
			timeSpent, _ := cmd.Flags().GetDuration("time-spent")
			res, _, err := svc.SubmitAttempt(ctx, user.ID, id, answers, timeSpent)
			if err != nil {
				return err
			}
			printQuizResult(res)
			return nil
		}

		qs, _, err := svc.GetOrGenerate(ctx, id)
		if err != nil {
			return err
		}

		for i, q := range qs {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			fmt.Printf("   A) %s\n   B) %s\n   C) %s\n   D) %s\n\n",
				q.OptionA, q.OptionB, q.OptionC, q.OptionD)
		}
		fmt.Println("Submit with: coursegen quiz", id, "--answers A,B,C,D,A")
		return nil
	},
}

func printQuizResult(res *quiz.Result) {
	fmt.Printf("Score: %d/%d (%.0f%%)\n", res.Correct, res.Total, res.Percent)
	fmt.Println(quiz.Feedback(res.Percent))
	fmt.Println()
	for i, r := range res.Review {
		mark := "✓"
		if !r.Correct {
			mark = "✗"
		}
		fmt.Printf("%s %d. %s\n", mark, i+1, r.Question.Question)
		if !r.Correct {
			given := r.Given
			if given == "" {
				given = "(none)"
			}
			fmt.Printf("   Your answer: %s. Correct: %s) %s\n",
				given, r.Question.CorrectAnswer, r.Question.Option(r.Question.CorrectAnswer))
			if r.Question.Explanation != "" {
				fmt.Printf("   %s\n", r.Question.Explanation)
			}
		}
	}
}

func init() {
	quizCmd.Flags().StringP("answers", "a", "", "Comma-separated answers to submit, e.g. B,C,A,D,B")
	quizCmd.Flags().Duration("time-spent", 0, "Time spent on the attempt, e.g. 3m30s")
}
