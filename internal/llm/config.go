// Package llm provides model configuration and a client abstraction over
// the Gemini API, shared by the chat, analyzer, and dashboard services.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short tips, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: conversational chat, structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: full resume-against-job analysis
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model selection for the application
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
