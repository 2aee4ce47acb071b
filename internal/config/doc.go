// Package config manages user-level settings stored at ~/.asnbuild/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default association rule and the manifest output directory.
package config
