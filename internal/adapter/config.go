package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig holds the database location
type StorageConfig struct {
	Path string `mapstructure:"path"` // "" keeps everything in memory
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultTab      string  `mapstructure:"default_tab"`      // "books" or "movies"
	AnnounceSeconds float64 `mapstructure:"announce_seconds"` // Achievement toast duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "shelf.db"),
		},
		UI: UIConfig{
			DefaultTab:      string(domain.KindBooks),
			AnnounceSeconds: 3.5,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "shelf.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shelf")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "shelf")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shelf")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shelf")
	}
}

// DefaultConfigFile returns where SaveConfig writes when no path is given
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

func newViper(defaults *Config) *viper.Viper {
	v := viper.New()

	// Defaults make every key known to viper so env overrides reach Unmarshal
	v.SetDefault("storage.path", defaults.Storage.Path)
	v.SetDefault("ui.default_tab", defaults.UI.DefaultTab)
	v.SetDefault("ui.announce_seconds", defaults.UI.AnnounceSeconds)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides (SHELF_STORAGE_PATH, SHELF_UI_DEFAULT_TAB, ...)
	v.SetEnvPrefix("SHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; otherwise the default locations are searched
// and a missing file means defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Storage.Path != "" {
		p, err := ExpandPath(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		cfg.Storage.Path = p
	}

	return cfg, nil
}

// SaveConfig writes cfg as YAML to path (DefaultConfigFile when empty)
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("ui.default_tab", cfg.UI.DefaultTab)
	v.Set("ui.announce_seconds", cfg.UI.AnnounceSeconds)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultKind returns the tab to open on startup
func (c *Config) DefaultKind() domain.Kind {
	if kind, ok := domain.ParseKind(c.UI.DefaultTab); ok {
		return kind
	}
	return domain.KindBooks
}

// AnnounceDuration returns the toast window (0 means the built-in default)
func (c *Config) AnnounceDuration() time.Duration {
	if c.UI.AnnounceSeconds <= 0 {
		return 0
	}
	return time.Duration(c.UI.AnnounceSeconds * float64(time.Second))
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
