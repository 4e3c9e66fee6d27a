package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Assessment AssessmentConfig `mapstructure:"assessment" validate:"required"`
	Reports    ReportsConfig    `mapstructure:"reports"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AssessmentConfig contains the screening parameters exposed to operators.
// The penalty weights themselves are fixed; only the classification
// threshold, the attempt bound, the similarity gate and the word source are
// configurable.
type AssessmentConfig struct {
	ScoreThreshold      float64 `mapstructure:"score_threshold"      validate:"required,gt=0"`
	MaxAttempts         int     `mapstructure:"max_attempts"         validate:"required,gt=0"`
	SimilarityThreshold float64 `mapstructure:"similarity_threshold" validate:"gte=0,lte=1"`
	// WordListPath optionally points at an external one-word-per-line
	// dictionary; when empty the embedded list is used.
	WordListPath string `mapstructure:"word_list_path"`
}

// ReportsConfig contains settings for the PDF artifact directory.
type ReportsConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}
