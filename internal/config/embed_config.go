package config

// EmbedConfig selects how embed documents are decoded
type EmbedConfig struct {
	// Variant is "strict" (title text and url both required) or "relaxed".
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty" validate:"omitempty,variant"`
}

// NewDefaultEmbedConfig creates default embed configuration
func NewDefaultEmbedConfig() EmbedConfig {
	return EmbedConfig{
		Variant: DefaultEmbedVariant,
	}
}
