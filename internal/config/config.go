package config

// Config is the root application configuration.
type Config struct {
	Dedup DedupConfig `yaml:"dedup"`
	Log   LogConfig   `yaml:"log"`
}

// DedupConfig holds duplicate-detection settings.
type DedupConfig struct {
	// Threshold is the similarity percentage at which two headwords are
	// reported as near-duplicates. Exact matches (100) are always grouped
	// separately.
	Threshold float64 `yaml:"threshold" env:"DEDUP_THRESHOLD" env-default:"85"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
