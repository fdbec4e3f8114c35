package configuration

import (
	"fmt"

	"github.com/willibrandon/dlog"
)

// NewRegistryFromFile creates a registry from a JSON configuration file.
// This is the main entry point for configuration-based registry creation.
func NewRegistryFromFile(filename string) (*dlog.Registry, error) {
	config, err := LoadFromFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return NewRegistryBuilder().Build(config)
}

// NewRegistryFromJSON creates a registry from JSON configuration data.
func NewRegistryFromJSON(jsonData []byte) (*dlog.Registry, error) {
	config, err := LoadFromJSON(jsonData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return NewRegistryBuilder().Build(config)
}
