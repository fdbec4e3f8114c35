package configuration

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// configFileName is the file name looked up inside an application's
// configuration directory.
const configFileName = "logging.json"

// DefaultPath returns the preferred location for an application's logging
// configuration file.
//
//	Linux:   ~/.config/<app>/logging.json
//	macOS:   ~/Library/Application Support/<app>/logging.json
//	Windows: %LOCALAPPDATA%\<app>\logging.json
func DefaultPath(app string) string {
	return filepath.Join(xdg.ConfigHome, app, configFileName)
}

// LoadForApp loads an application's logging configuration, searching the
// user's configuration directory and then the system-wide ones. If no file
// exists anywhere, an empty configuration is returned so the platform
// defaults apply.
func LoadForApp(app string) (*Configuration, error) {
	path, err := xdg.SearchConfigFile(filepath.Join(app, configFileName))
	if err != nil {
		return &Configuration{}, nil
	}

	return LoadFromFile(path)
}
