package video

import (
	"context"
	"time"
)

// Candidate is one search result under consideration.
type Candidate struct {
	ID         string
	Title      string
	URL        string
	Embeddable bool
	Duration   time.Duration
	ViewCount  uint64
	LikeCount  uint64
}

// Searcher finds video candidates for a query. Implementations return at
// most max results; fewer (including zero) is not an error.
type Searcher interface {
	Search(ctx context.Context, query string, max int) ([]Candidate, error)
}
