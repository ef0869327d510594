package video

import (
	"math"
	"strings"
)

// Words in a title that suggest instructional content.
var educationalTerms = []string{
	"tutorial", "course", "learn", "explained", "lecture",
	"introduction", "guide", "lesson", "how to",
}

// pickBest returns the highest-scoring qualifying candidate, or nil when
// none qualifies. Qualifying means embeddable with a duration inside the
// configured window.
func pickBest(candidates []Candidate, cfg Config) *Candidate {
	var best *Candidate
	bestScore := math.Inf(-1)

	for i := range candidates {
		c := &candidates[i]
		if !c.Embeddable {
			continue
		}
		if c.Duration < cfg.MinDuration || c.Duration > cfg.MaxDuration {
			continue
		}
		if score := scoreCandidate(c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// scoreCandidate ranks a qualifying candidate. Popularity dominates, an
// instructional-sounding title breaks ties, and a strong like ratio nudges
// between similarly popular videos.
func scoreCandidate(c *Candidate) float64 {
	var score float64

	if c.ViewCount > 0 {
		score += math.Log10(float64(c.ViewCount))
	}
	if c.ViewCount > 0 && c.LikeCount > 0 {
		score += 2 * float64(c.LikeCount) / float64(c.ViewCount)
	}

	title := strings.ToLower(c.Title)
	for _, term := range educationalTerms {
		if strings.Contains(title, term) {
			score += 2
			break
		}
	}
	return score
}
