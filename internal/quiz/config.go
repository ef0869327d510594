package quiz

// Config holds quiz generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// NumQuestions is the exact size of a quiz set. Generation rejects
	// responses with any other count.
	NumQuestions int
}

// DefaultConfig returns sensible defaults for quiz generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    2048,
		Temperature:  0.6,
		NumQuestions: 5,
	}
}
