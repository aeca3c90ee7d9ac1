package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/booldag/internal/telemetry"
)

// Config is the resolved set of knobs described in doc.go.
type Config struct {
	// ParserStrict mirrors dagsyntax's default: when true, whitespace
	// between tokens is rejected like any other unrecognized byte.
	// dagsyntax.Parse never reads this field; a caller that wants
	// whitespace skipped when it is false passes
	// dagsyntax.WithPermissiveWhitespace() itself.
	ParserStrict bool

	// LogLevel is a zerolog level name, or "disabled" to silence
	// logging entirely (the default).
	LogLevel string

	// LogFormat is either "json" (the default) or "console".
	LogFormat string
}

// Load resolves parser.strict, log.level and log.format from, in
// ascending priority: coded defaults, an optional YAML/TOML/JSON file
// at path (ignored if path is empty), then BOOLDAG_-prefixed
// environment variables (e.g. BOOLDAG_LOG_LEVEL).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("parser.strict", true)
	v.SetDefault("log.level", "disabled")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix("booldag")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg := &Config{
		ParserStrict: v.GetBool("parser.strict"),
		LogLevel:     v.GetString("log.level"),
		LogFormat:    v.GetString("log.format"),
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return nil, ErrInvalidLogFormat
	}

	return cfg, nil
}

// Logger builds the telemetry.Logger described by LogLevel/LogFormat,
// writing to stderr. "disabled" (the default) yields telemetry.Disabled().
func (c *Config) Logger() (telemetry.Logger, error) {
	if strings.EqualFold(c.LogLevel, "disabled") {
		return telemetry.Disabled(), nil
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return telemetry.Logger{}, fmt.Errorf("config: log.level %q: %w", c.LogLevel, err)
	}

	return telemetry.New(os.Stderr, level, c.LogFormat == "console"), nil
}
