package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPrefix sets the command prefix.
func (b *ConfigBuilder) WithPrefix(prefix string) *ConfigBuilder {
	b.cfg.Prefix = prefix
	return b
}

// WithRenderFormat sets the board attachment format.
func (b *ConfigBuilder) WithRenderFormat(format string) *ConfigBuilder {
	b.cfg.Render.Format = format
	return b
}

// WithSquareSize sets the image square size in pixels.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.Render.SquareSize = size
	return b
}

// WithOutputDir sets where board images are written.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.cfg.Render.OutputDir = dir
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithDevelopmentLogging enables the human-readable development logger.
func (b *ConfigBuilder) WithDevelopmentLogging(enabled bool) *ConfigBuilder {
	b.cfg.Log.Development = enabled
	return b
}

// WithWrongCommandPhrases replaces the unknown-command replies.
func (b *ConfigBuilder) WithWrongCommandPhrases(phrases ...string) *ConfigBuilder {
	b.cfg.Phrases.WrongCommand = phrases
	return b
}
