package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnoir0t/asnbuild/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyDefaultRule selects the association rule used when no --rule flag is given.
	KeyDefaultRule = "default_rule"
	// KeyOutputDir selects the directory manifests are written to by default.
	KeyOutputDir = "output_dir"
)

// Dir returns the path to the asnbuild config directory (~/.asnbuild/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.asnbuild/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// RulesDir returns the directory searched for user-defined rule files
// (~/.asnbuild/rules/).
func RulesDir() string {
	return filepath.Join(Dir(), "rules")
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

// DefaultRule returns the configured default rule, falling back to "level2".
func DefaultRule() string {
	if v := Get(KeyDefaultRule); v != "" {
		return v
	}
	return "level2"
}

// OutputDir returns the configured manifest output directory, falling back
// to the current working directory.
func OutputDir() string {
	if v := Get(KeyOutputDir); v != "" {
		return v
	}
	return "."
}
