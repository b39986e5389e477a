package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/joeggg/discord-bot-2/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. BLUEBOT_RENDER_FORMAT.
const EnvPrefix = "BLUEBOT"

// Load builds a Config from defaults, an optional config file at path, a
// .env file in the working directory and BLUEBOT_* environment variables,
// in increasing order of precedence. An empty path skips the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	v := viper.New()
	setDefaults(v, NewConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that environment variables can
// override keys absent from the config file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("prefix", cfg.Prefix)
	v.SetDefault("render.format", cfg.Render.Format)
	v.SetDefault("render.square_size", cfg.Render.SquareSize)
	v.SetDefault("render.output_dir", cfg.Render.OutputDir)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("phrases.wrong_command", cfg.Phrases.WrongCommand)
}
