package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/yourusername/repobrowser/internal/domain"
)

// EnvPrefix prefixes every environment override, e.g. REPOBROWSER_LOG_LEVEL.
const EnvPrefix = "REPOBROWSER"

// ConfigPathEnv names the variable that overrides the config file location.
const ConfigPathEnv = EnvPrefix + "_CONFIG"

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a config manager for the default location:
// $REPOBROWSER_CONFIG, or <user config dir>/repobrowser/config.toml.
func NewManager() (*Manager, error) {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return NewManagerAt(path), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	return NewManagerAt(filepath.Join(configDir, "repobrowser", "config.toml")), nil
}

// NewManagerAt creates a config manager for an explicit file.
func NewManagerAt(path string) *Manager {
	return &Manager{configPath: path}
}

// ConfigPath returns the config file path.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Exists reports whether the config file is present.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.configPath)
	return err == nil
}

// Load reads the config file and environment overrides on top of the defaults.
// A missing file is not an error.
func (m *Manager) Load() (*domain.Config, error) {
	v := m.newViper()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &domain.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	return cfg, nil
}

// Save writes cfg to disk, creating the config directory if needed.
func (m *Manager) Save(cfg *domain.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.user_agent", cfg.API.UserAgent)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.default_sort", cfg.UI.DefaultSort)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(m.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (m *Manager) newViper() *viper.Viper {
	defaults := domain.NewDefaultConfig()

	v := viper.New()
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.user_agent", defaults.API.UserAgent)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.default_sort", defaults.UI.DefaultSort)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetConfigType("toml")
	v.SetConfigFile(m.configPath)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}
