package config

// GeneratorConfig holds team generator configuration.
type GeneratorConfig struct {
	// Seed makes shuffles reproducible when non-zero.
	Seed int64
}

// LoadGeneratorConfigFromEnv loads generator configuration from environment variables.
func LoadGeneratorConfigFromEnv() GeneratorConfig {
	return GeneratorConfig{
		Seed: GetEnvInt64("GENERATOR_SEED", 0),
	}
}

// IsSeeded reports whether a fixed seed was configured.
func (c GeneratorConfig) IsSeeded() bool {
	return c.Seed != 0
}
