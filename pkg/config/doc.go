// Package config handles configuration management for mediatidy.
// It layers the embedded defaults, a config file in the library root (TOML
// or YAML), MEDIATIDY_* environment variables and command-line flags, and
// decodes the result into a Config.
package config
