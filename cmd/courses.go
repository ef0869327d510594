package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List your courses",
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

		courses, err := s.UserCourses(ctx, user.ID)
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			fmt.Println("No courses yet. Create one with: coursegen new <topic>")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %s\n", "ID", "Created", "Title")
		fmt.Println(strings.Repeat("─", 60))
		for _, c := range courses {
			fmt.Printf("%-5d  %-19s  %s\n",
				c.ID, c.CreatedAt.Local().Format("2006-01-02 15:04:05"), c.Title)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show a course's modules and subtopics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid course id %q", args[0])
		}
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		course, err := s.GetCourse(ctx, id)
		if err != nil {
			return err
		}

		hasQuiz, err := s.QuizSubtopicIDs(ctx, course.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Course %d: %s\n\n", course.ID, course.Title)
		printCourseTree(course, hasQuiz)
		return nil
	},
}

// printCourseTree renders a course's tree with per-subtopic state markers.
// hasQuiz maps subtopic id to quiz existence; nil means no quizzes yet.
func printCourseTree(c *content.Course, hasQuiz map[int]bool) {
	for _, m := range c.Modules {
		fmt.Printf("%d. %s\n", m.OrderIndex+1, m.Title)
		for _, st := range m.Subtopics {
			fmt.Printf("   [%d] %s%s\n", st.ID, st.Title, subtopicMarkers(st, hasQuiz[st.ID]))
		}
	}
}

func subtopicMarkers(st content.Subtopic, hasQuiz bool) string {
	stage := content.StageOf(st, hasQuiz)
	if stage == content.StageEmpty {
		return ""
	}
	return fmt.Sprintf("  (%s, %dmin read)", stage, st.ReadingMinutes)
}
