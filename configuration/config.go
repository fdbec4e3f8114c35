// Package configuration builds registries from JSON files, giving
// applications the same level selection surface as the command line plus
// sink and domain wiring, and can watch a file and reapply it on change.
package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// LoggerConfiguration represents the JSON configuration for dlog.
//
// The level selection fields mirror the command-line flags and resolve with
// the same precedence: Levels, then Quiet, then Verbose, then
// VerbosityLevel. VerbosityLevel and Colorize are pointers so that a field
// absent from the JSON keeps the platform default rather than reading as
// zero.
type LoggerConfiguration struct {
	Levels         []string            `json:"Levels,omitempty"`
	Quiet          bool                `json:"Quiet,omitempty"`
	Verbose        bool                `json:"Verbose,omitempty"`
	VerbosityLevel *int                `json:"VerbosityLevel,omitempty"`
	Colorize       *bool               `json:"Colorize,omitempty"`
	Domains        []string            `json:"Domains,omitempty"`
	WriteTo        []SinkConfiguration `json:"WriteTo,omitempty"`
}

// SinkConfiguration represents a sink configuration.
type SinkConfiguration struct {
	Name string         `json:"Name"`
	Args map[string]any `json:"Args,omitempty"`
}

// Configuration is the root configuration object.
type Configuration struct {
	Dlog LoggerConfiguration `json:"Dlog"`
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromJSON(data)
}

// LoadFromJSON loads configuration from JSON data.
func LoadFromJSON(data []byte) (*Configuration, error) {
	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &config, nil
}

// GetString gets a string value from configuration args.
func GetString(args map[string]any, key string, defaultValue string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetInt gets an int value from configuration args.
func GetInt(args map[string]any, key string, defaultValue int) int {
	if v, ok := args[key]; ok {
		switch val := v.(type) {
		case float64:
			return int(val)
		case int:
			return val
		case string:
			// Try to parse string as int
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				return i
			}
		}
	}
	return defaultValue
}

// GetBool gets a bool value from configuration args.
func GetBool(args map[string]any, key string, defaultValue bool) bool {
	if v, ok := args[key]; ok {
		switch val := v.(type) {
		case bool:
			return val
		case string:
			return strings.ToLower(val) == "true"
		}
	}
	return defaultValue
}

// GetDuration gets a duration value from configuration args.
// Supports formats like "100ms", "5s", "1m", etc.
func GetDuration(args map[string]any, key string, defaultValue time.Duration) time.Duration {
	if s := GetString(args, key, ""); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return defaultValue
}
