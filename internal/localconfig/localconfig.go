// Package localconfig reads and writes the project configuration file
// (apify.json) in a project directory.
package localconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rickgorman/apify-cli/internal/consts"
	"github.com/rickgorman/apify-cli/internal/files"
	"github.com/rickgorman/apify-cli/internal/logging"
	"github.com/rickgorman/apify-cli/internal/ui"
	"github.com/spf13/afero"
)

// ErrNotFound is returned when the project has no apify.json.
var ErrNotFound = errors.New(consts.LocalConfigName + " not found")

// Config is the project configuration. Its schema belongs to the commands
// that consume it.
type Config map[string]any

// Defaults returns the configuration written by "apify init".
func Defaults(name string) Config {
	return Config{
		"name":     name,
		"version":  "0.1",
		"buildTag": "latest",
		"env":      nil,
	}
}

// String returns the string value of key, or "".
func (c Config) String(key string) string {
	s, _ := c[key].(string)
	return s
}

// Path returns the config file location for dir, where "" means the
// current working directory.
func Path(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	return filepath.Join(dir, consts.LocalConfigName), nil
}

// Load reads the config in dir. Returns ErrNotFound when the file is absent.
func Load(fs afero.Fs, dir string) (Config, error) {
	path, err := Path(dir)
	if err != nil {
		return nil, err
	}

	if !files.Exists(fs, path) {
		return nil, ErrNotFound
	}

	var cfg Config
	if err := files.LoadJSON(fs, path, &cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Get is Load for commands: when the file is missing it prints the
// "run init" message and returns nil. Other failures are printed as well.
func Get(fs afero.Fs, dir string) Config {
	cfg, err := Load(fs, dir)
	switch {
	case errors.Is(err, ErrNotFound):
		ui.Fail(consts.MsgLocalConfigMissing)
		return nil
	case err != nil:
		ui.Fail("Failed to read %s: %v", consts.LocalConfigName, err)
		return nil
	}
	return cfg
}

// Set writes cfg to dir, replacing any existing file. An empty dir means the
// current working directory.
func Set(fs afero.Fs, cfg Config, dir string) error {
	path, err := Path(dir)
	if err != nil {
		return err
	}

	if err := files.WriteJSON(fs, path, cfg); err != nil {
		return err
	}

	logger := logging.GetLogger("localconfig")
	logger.Debug().Str("path", path).Msg("Wrote local config")
	return nil
}
