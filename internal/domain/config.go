package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultAPIBaseURL is the public GitHub REST endpoint.
const DefaultAPIBaseURL = "https://api.github.com/"

// Config represents the complete repobrowser configuration
type Config struct {
	API APIConfig `mapstructure:"api"`
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// APIConfig holds search endpoint settings
type APIConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required,http_url"` // Override for GitHub Enterprise or tests
	UserAgent string `mapstructure:"user_agent"`                            // Sent with every request
}

// UIConfig holds UI/theme settings
type UIConfig struct {
	Theme       string `mapstructure:"theme"`                                      // Theme name (e.g., "warm", "ocean-blue")
	DefaultSort string `mapstructure:"default_sort" validate:"required,sortfield"` // One of the six sort fields
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level" validate:"loglevel"` // trace, debug, info, warn, error
	File  string `mapstructure:"file"`                      // Empty disables file logging
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   DefaultAPIBaseURL,
			UserAgent: "repobrowser",
		},
		UI: UIConfig{
			Theme:       "warm",
			DefaultSort: string(DefaultSortField),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var configValidator = newConfigValidator()

// newConfigValidator reports fields by their config key (e.g. "api.base_url").
func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})
	_ = v.RegisterValidation("sortfield", func(fl validator.FieldLevel) bool {
		return SortField(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "warning", "error":
			return true
		}
		return false
	})
	return v
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s cannot be empty", key)
	case "http_url":
		return fmt.Errorf("%s must be an absolute URL: %q", key, fe.Value())
	case "sortfield":
		return fmt.Errorf("%s: unknown sort field %q", key, fe.Value())
	case "loglevel":
		return fmt.Errorf("%s must be one of trace, debug, info, warn, error", key)
	default:
		return fmt.Errorf("%s is invalid: %s", key, fe.Tag())
	}
}

// SortField returns the configured default sort, falling back to DefaultSortField.
func (c *Config) SortField() SortField {
	f, err := ParseSortField(c.UI.DefaultSort)
	if err != nil {
		return DefaultSortField
	}
	return f
}
