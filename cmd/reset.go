package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete generated content",
	Long: `Deletes a course (--course) or all of a user's data (--all).
Course deletion removes its modules, subtopics, and quizzes. Attempt
history is kept with its content references cleared; only --all removes
history as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		courseID, _ := cmd.Flags().GetString("course")
		all, _ := cmd.Flags().GetBool("all")
		force, _ := cmd.Flags().GetBool("force")

		if courseID == "" && !all {
			return fmt.Errorf("specify --course <id> or --all")
		}
		if !force {
			return fmt.Errorf("refusing to delete without --force")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if all {
			user, err := currentUser(ctx, cmd, s)
			if err != nil {
				return err
			}
			if err := s.DeleteUser(ctx, user.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted user %q and all their data.\n", user.Username)
			return nil
		}

		id, err := strconv.Atoi(courseID)
		if err != nil {
			return fmt.Errorf("invalid course id %q", courseID)
		}
		if err := s.DeleteCourse(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted course %d.\n", id)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("course", "", "Course id to delete")
	resetCmd.Flags().Bool("all", false, "Delete the user and everything they own")
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
