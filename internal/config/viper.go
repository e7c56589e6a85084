package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Translation struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		TargetLanguage string `mapstructure:"target_language" yaml:"target_language"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"translation" yaml:"translation"`

	Classifier struct {
		MinExamples    int  `mapstructure:"min_examples" yaml:"min_examples"`
		AmountFeatures bool `mapstructure:"amount_features" yaml:"amount_features"`
	} `mapstructure:"classifier" yaml:"classifier"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Catalog struct {
		File         string `mapstructure:"file" yaml:"file"`
		RegionalFile string `mapstructure:"regional_file" yaml:"regional_file"`
	} `mapstructure:"catalog" yaml:"catalog"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-ml")
	v.AddConfigPath(".expense-ml")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EXPENSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. The API key always comes from the environment, not prefixed
	if err := v.BindEnv("translation.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Translation defaults
	v.SetDefault("translation.enabled", false)
	v.SetDefault("translation.model", "gemini-2.0-flash")
	v.SetDefault("translation.timeout_seconds", 5)
	v.SetDefault("translation.target_language", "en")

	// Classifier defaults
	v.SetDefault("classifier.min_examples", 10)
	v.SetDefault("classifier.amount_features", true)

	// Data defaults
	v.SetDefault("data.directory", "data")

	// Catalog defaults
	v.SetDefault("catalog.file", "keywords.yaml")
	v.SetDefault("catalog.regional_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate translation configuration
	if config.Translation.Enabled {
		if config.Translation.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when translation is enabled")
		}

		if config.Translation.TimeoutSeconds < 1 || config.Translation.TimeoutSeconds > 60 {
			return fmt.Errorf("translation.timeout_seconds must be between 1 and 60, got: %d", config.Translation.TimeoutSeconds)
		}

		if config.Translation.TargetLanguage == "" {
			return fmt.Errorf("translation.target_language must not be empty")
		}
	}

	// Validate classifier configuration
	if config.Classifier.MinExamples < 2 {
		return fmt.Errorf("classifier.min_examples must be at least 2, got: %d", config.Classifier.MinExamples)
	}

	return nil
}
