// Package config provides configuration for the bluebot chess bot.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/joeggg/discord-bot-2/internal/errors"
)

// Render formats accepted by RenderConfig.Format.
const (
	FormatText = "text"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// Config holds all bot settings.
type Config struct {
	// Prefix starts every bot command, as in "%chess e2 e4".
	Prefix string `mapstructure:"prefix"`

	Render  RenderConfig  `mapstructure:"render"`
	Log     LogConfig     `mapstructure:"log"`
	Phrases PhrasesConfig `mapstructure:"phrases"`
}

// RenderConfig controls the board attachment sent with every reply.
type RenderConfig struct {
	// Format is one of text, svg or png.
	Format string `mapstructure:"format"`

	// SquareSize is the edge of one square in pixels for image formats.
	SquareSize int `mapstructure:"square_size"`

	// OutputDir is where the console front end writes board images.
	OutputDir string `mapstructure:"output_dir"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// PhrasesConfig holds canned replies.
type PhrasesConfig struct {
	// WrongCommand replies to an unknown command. One is picked per reply.
	WrongCommand []string `mapstructure:"wrong_command"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Prefix:  "%",
		Render:  *NewRenderConfig(),
		Log:     *NewLogConfig(),
		Phrases: *NewPhrasesConfig(),
	}
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Format:     FormatSVG,
		SquareSize: 64,
		OutputDir:  os.TempDir(),
	}
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "info"}
}

// NewPhrasesConfig creates a PhrasesConfig with default values.
func NewPhrasesConfig() *PhrasesConfig {
	return &PhrasesConfig{
		WrongCommand: []string{
			"I don't know that one",
			"That's not a command",
			"Try %help",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Prefix == "" {
		return fmt.Errorf("empty command prefix: %w", errors.ErrInvalidConfig)
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if len(c.Phrases.WrongCommand) == 0 {
		return fmt.Errorf("no wrong command phrases: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Validate checks that the render settings are usable.
func (r *RenderConfig) Validate() error {
	switch r.Format {
	case FormatText, FormatSVG, FormatPNG:
	default:
		return fmt.Errorf("render format %q: %w", r.Format, errors.ErrInvalidConfig)
	}
	if r.SquareSize < 16 || r.SquareSize > 512 {
		return fmt.Errorf("square size %d outside 16..512: %w", r.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}

// Validate checks that the log level parses.
func (l *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return nil
}
