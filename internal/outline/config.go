package outline

// Config holds outline generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Structural bounds on the generated tree. Oversized outlines are
	// clamped; undersized ones get one regeneration attempt.
	MinModules   int
	MaxModules   int
	MinSubtopics int
	MaxSubtopics int
}

// DefaultConfig returns sensible defaults for outline generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    2048,
		Temperature:  0.7,
		MinModules:   5,
		MaxModules:   6,
		MinSubtopics: 3,
		MaxSubtopics: 6,
	}
}
