package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/coursegen/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress [course-id]",
	Short: "Show completion for a course, or full attempt history",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		svc := progress.NewService(s)

		if len(args) == 1 {
			courseID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid course id %q", args[0])
			}
			sum, err := svc.CourseSummary(ctx, user.ID, courseID)
			if err != nil {
				return err
			}
			fmt.Printf("Course %d: %d/%d subtopics completed (%.0f%%)\n",
				sum.CourseID, sum.CompletedSubtopics, sum.TotalSubtopics, sum.PercentComplete)
			return nil
		}

		rows, err := svc.History(ctx, user.ID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-9s  %-7s  %-9s  %s\n", "Time", "Subtopic", "Score", "Completed", "Spent")
		fmt.Println(strings.Repeat("─", 60))
		for _, r := range rows {
			sub := "(deleted)"
			if r.SubtopicID != nil {
				sub = strconv.Itoa(*r.SubtopicID)
			}
			score := "-"
			if r.Score != nil {
				score = fmt.Sprintf("%.0f%%", *r.Score)
			}
			fmt.Printf("%-19s  %-9s  %-7s  %-9v  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				sub, score, r.Completed, r.TimeSpent.Round(time.Second))
		}
		return nil
	},
}
