package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/video"
	"github.com/spf13/cobra"
)

var videoCmd = &cobra.Command{
	Use:   "video <subtopic-id>",
	Short: "Find a companion video for a subtopic",
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

		apiKey := os.Getenv("COURSEGEN_YOUTUBE_API_KEY")
		if apiKey == "" {
			apiKey = os.Getenv("YOUTUBE_API_KEY")
		}
		searcher, err := video.NewYouTubeSearcher(ctx, apiKey)
		if err != nil {
			return fmt.Errorf("youtube not configured: %w", err)
		}

		svc := video.NewService(provider, searcher, s, video.DefaultConfig())
		sub, err := svc.Resolve(ctx, id)
		if errors.Is(err, content.ErrNoVideoFound) {
			fmt.Printf("No suitable video found for %q. The lesson and quiz are unaffected.\n", sub.Title)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s\n%s\n", sub.VideoTitle, sub.VideoURL)
		return nil
	},
}
