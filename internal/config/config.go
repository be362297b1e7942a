package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/hsmedia/lessonpack/internal/media/pexels"
)

type Config struct {
	Course    CourseConfig    `mapstructure:"course"`
	Output    OutputConfig    `mapstructure:"output"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Pexels    PexelsConfig    `mapstructure:"pexels"`
	History   HistoryConfig   `mapstructure:"history"`
}

type CourseConfig struct {
	Title    string `mapstructure:"title" validate:"required"`
	Duration string `mapstructure:"duration" validate:"required,minutes"`
}

type OutputConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type TemplatesConfig struct {
	CTE string `mapstructure:"cte" validate:"omitempty,file"`
}

type PexelsConfig struct {
	APIKey        string `mapstructure:"api_key"`
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type HistoryConfig struct {
	Database string `mapstructure:"database"`
}

// HistoryDatabase returns the run history database path, defaulting to
// lessonpack.db inside the output directory.
func (cfg Config) HistoryDatabase() string {
	if cfg.History.Database != "" {
		return cfg.History.Database
	}
	return filepath.Join(cfg.Output.Directory, "lessonpack.db")
}

func Load(configFile string) (*Config, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}

	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("lessonpack")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lessonpack")
	}

	v.SetDefault("course.title", "Media Foundations")
	v.SetDefault("course.duration", "90")
	v.SetDefault("output.directory", "output")
	// Template is optional - if not specified, the embedded CTE form is used
	v.SetDefault("templates.cte", "")
	v.SetDefault("pexels.base_url", pexels.DefaultBaseURL)
	v.SetDefault("pexels.retry_attempts", 2)
	v.SetDefault("history.database", "")

	// Bind the API key and path overrides to environment variables only (not from config file)
	if err := v.BindEnv("pexels.api_key", "PEXELS_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind PEXELS_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("templates.cte", "CTE_TEMPLATE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind CTE_TEMPLATE_PATH environment variable: %w", err)
	}
	if err := v.BindEnv("output.directory", "CTE_OUTPUT_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind CTE_OUTPUT_DIR environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(trans))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
