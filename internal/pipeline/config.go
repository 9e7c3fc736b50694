package pipeline

// Config controls roadmap generation.
type Config struct {
	// WeekCount is the number of weeks the plan should span.
	WeekCount int

	// MaxTokens is the token budget for the LLM response. Roadmaps are
	// large; budget generously or the response truncates mid-array.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended defaults for roadmap generation.
func DefaultConfig() Config {
	return Config{
		WeekCount:   8,
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
