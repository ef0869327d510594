package video

import "time"

// Config holds video resolution settings.
type Config struct {
	// MaxResults is how many search candidates to consider per subtopic.
	MaxResults int

	// MinDuration and MaxDuration bound acceptable video length. Shorts
	// and multi-hour recordings make poor lesson companions.
	MinDuration time.Duration
	MaxDuration time.Duration

	// SearchTimeout bounds a single search call. SearchRetryWait is the
	// backoff before the one retry a failed search gets.
	SearchTimeout   time.Duration
	SearchRetryWait time.Duration

	// Keyword generation settings.
	KeywordsMaxTokens   int
	KeywordsTemperature float64
}

// DefaultConfig returns sensible defaults for video resolution.
func DefaultConfig() Config {
	return Config{
		MaxResults:          10,
		MinDuration:         2 * time.Minute,
		MaxDuration:         60 * time.Minute,
		SearchTimeout:       60 * time.Second,
		SearchRetryWait:     time.Second,
		KeywordsMaxTokens:   128,
		KeywordsTemperature: 0.5,
	}
}
