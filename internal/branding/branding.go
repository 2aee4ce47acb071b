// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building; Go's
// //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "asnbuild",
			DisplayName: "ASNBuild",
			Description: "Association manifest builder for calibration pipeline products",
			HomeDir:     ".asnbuild",
			EnvPrefix:   "ASNBUILD",
			GoModule:    "github.com/gnoir0t/asnbuild",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "asnbuild").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "ASNBuild").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".asnbuild").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ASNBUILD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "ASNBUILD_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
