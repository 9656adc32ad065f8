package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultAPIBaseURL is used when neither the config file nor the
// environment names an API endpoint.
const DefaultAPIBaseURL = "https://api.ledgerly.app/api"

// Config holds all ledgerly configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	API        APIConfig        `toml:"api"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Unit     string `toml:"unit"`
	Sort     string `toml:"sort"`
	Language string `toml:"language,omitempty"`
}

// APIConfig holds backend API settings.
type APIConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Unit: "k",
			Sort: "name",
		},
		Appearance: AppearanceConfig{
			Theme: "ledgerly-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ledgerly")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ledgerly")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// APIBaseURL returns the API endpoint from env var, config, or the
// built-in default, in that order.
func APIBaseURL(cfg Config) string {
	if url := os.Getenv("LEDGERLY_API_URL"); url != "" {
		return url
	}
	if cfg.API.BaseURL != "" {
		return cfg.API.BaseURL
	}
	return DefaultAPIBaseURL
}

// APIToken returns a token override from the environment, if any.
// Tokens otherwise live in the local state store after login.
func APIToken() string {
	return os.Getenv("LEDGERLY_API_TOKEN")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
