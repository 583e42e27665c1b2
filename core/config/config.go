// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and accessing
//              configuration data from TOML and YAML files with dot notation
//              keys and environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bizerror "github.com/msto63/bizcore/core/error"
	"github.com/msto63/bizcore/utils/mapx"
	"github.com/msto63/bizcore/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format (default when detection fails)
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, dot notation keys allowed
}

// Config represents a configuration instance with thread-safe access.
// Values are addressed with dot notation keys such as "calendar.year_min".
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, bizerror.New("config file path cannot be empty").
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, bizerror.Newf("config file not found: %s", filePath).
			WithCode(bizerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, bizerror.Wrap(err, "failed to read config file").
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, bizerror.Wrap(err, "failed to parse config file").
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = applyDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with the given format.
// FormatAuto falls back to TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, bizerror.Wrap(err, "failed to parse config from string").
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// WithEnvPrefix returns a copy of the configuration that resolves
// environment overrides under the given prefix
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Config{
		data:      c.data,
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: prefix,
	}
}

// FilePath returns the path the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, bizerror.Wrap(err, "TOML parse error").
				WithCode(bizerror.CodeConfigError).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, bizerror.Wrap(err, "YAML parse error").
				WithCode(bizerror.CodeConfigError).
				WithOperation("config.parseContent")
		}
	default:
		return nil, bizerror.Newf("unsupported format: %s", format).
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.parseContent")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// applyDefaults merges dot notation defaults underneath loaded data
func applyDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	merged := mapx.Flatten(mapx.Unflatten(defaults), "")
	for key, value := range mapx.Flatten(data, "") {
		merged[key] = value
	}
	return mapx.Unflatten(merged)
}

// Get returns the raw value for a dot notation key. The second result
// reports whether the key was present (in the environment or the file).
func (c *Config) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.envValue(key); ok {
		return envValue, true
	}
	return mapx.Lookup(c.data, key)
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, ok := c.Get(key)
	if !ok || value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	value, ok := c.Get(key)
	if ok {
		switch v := value.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if intVal, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return intVal
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	value, ok := c.Get(key)
	if ok {
		switch v := value.(type) {
		case bool:
			return v
		case string:
			if boolVal, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return boolVal
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a string slice configuration value with optional
// default. Environment overrides use comma separation.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	value, ok := c.Get(key)
	if ok {
		switch v := value.(type) {
		case []string:
			return v
		case []interface{}:
			result := make([]string, len(v))
			for i, item := range v {
				result[i] = fmt.Sprintf("%v", item)
			}
			return result
		case string:
			parts := strings.Split(v, ",")
			result := make([]string, 0, len(parts))
			for _, part := range parts {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					result = append(result, trimmed)
				}
			}
			return result
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// envValue resolves an environment override for a dot notation key.
// With prefix "BIZCORE", key "calendar.year_min" maps to the variable
// BIZCORE_CALENDAR_YEAR_MIN.
func (c *Config) envValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}

	name := c.envPrefix + "_" + strings.ReplaceAll(key, mapx.Separator, "_")
	name = strings.ToUpper(name)
	return os.LookupEnv(name)
}
