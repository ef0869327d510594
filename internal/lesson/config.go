package lesson

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// TargetWords is the length the prompt asks for. MinWords is the floor
	// below which a response is rejected as degenerate.
	TargetWords int
	MinWords    int

	// WordsPerMinute is the reading speed used to estimate reading time.
	WordsPerMinute int
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      4096,
		Temperature:    0.7,
		TargetWords:    1000,
		MinWords:       150,
		WordsPerMinute: 200,
	}
}
