package video

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeSearcher implements Searcher using the YouTube Data API.
type YouTubeSearcher struct {
	svc *youtube.Service
}

// NewYouTubeSearcher creates a searcher authenticated with an API key.
func NewYouTubeSearcher(ctx context.Context, apiKey string) (*YouTubeSearcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("initializing youtube client: %w", err)
	}
	return &YouTubeSearcher{svc: svc}, nil
}

// Search returns up to max candidates for a query. The search call only
// returns snippets, so a second call fetches duration, statistics, and the
// embeddable flag for the matched ids.
func (y *YouTubeSearcher) Search(ctx context.Context, query string, max int) ([]Candidate, error) {
	search, err := y.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		VideoEmbeddable("true").
		MaxResults(int64(max)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	var ids []string
	for _, item := range search.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	details, err := y.svc.Videos.List([]string{"snippet", "contentDetails", "statistics", "status"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube video details: %w", err)
	}

	candidates := make([]Candidate, 0, len(details.Items))
	for _, v := range details.Items {
		c := Candidate{
			ID:  v.Id,
			URL: "https://www.youtube.com/watch?v=" + v.Id,
		}
		if v.Snippet != nil {
			c.Title = v.Snippet.Title
		}
		if v.Status != nil {
			c.Embeddable = v.Status.Embeddable
		}
		if v.Statistics != nil {
			c.ViewCount = v.Statistics.ViewCount
			c.LikeCount = v.Statistics.LikeCount
		}
		if v.ContentDetails != nil {
			d, err := parseISODuration(v.ContentDetails.Duration)
			if err != nil {
				// Live streams report "P0D"; skip anything unparseable.
				fmt.Fprintf(os.Stderr, "warning: skipping video %s: %v\n", v.Id, err)
				continue
			}
			c.Duration = d
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
