package quizgen

// Config holds tunables for the LLM generator.
type Config struct {
	// MaxTokens is the response budget for one quiz. Sized for 20
	// questions with explanations.
	MaxTokens int

	// Temperature controls variety between regenerations of the same input.
	Temperature float64
}

// DefaultConfig returns the generator defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.4,
	}
}
