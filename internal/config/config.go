package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/promptkit-dev/promptkit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known config keys.
const (
	// KeyBaseURL overrides the catalog download base URL.
	KeyBaseURL = "base_url"
	// KeyTargetDir overrides the install target directory.
	KeyTargetDir = "target_dir"
	// KeyDefaultBundle names the bundle preselected in the interactive menu.
	KeyDefaultBundle = "default_bundle"
)

// Dir returns the path to the PromptKit config directory (~/.promptkit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.promptkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// BaseURL returns the catalog base URL, checking (in order):
// 1. PROMPTKIT_BASE_URL env var (via Viper's AutomaticEnv)
// 2. config key "base_url"
// 3. branding.CatalogBaseURL() (from branding.yaml)
func BaseURL() string {
	if v := Get(KeyBaseURL); v != "" {
		return v
	}
	return branding.CatalogBaseURL()
}
