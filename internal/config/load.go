package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmallard/lexiscreen/internal/screening"
)

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables with the LEXISCREEN_ prefix
// (e.g. LEXISCREEN_SERVER_PORT). Environment variables take precedence
// over file values, which take precedence over defaults.
// Returns a populated Config or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("assessment.score_threshold", screening.DyslexiaScoreThreshold)
	v.SetDefault("assessment.max_attempts", screening.MaxAttempts)
	v.SetDefault("assessment.similarity_threshold", screening.SimilarityThreshold)
	v.SetDefault("assessment.word_list_path", "")
	v.SetDefault("reports.dir", "static/reports")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has a default.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("LEXISCREEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
