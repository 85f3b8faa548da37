package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rickgorman/apify-cli/internal/consts"
	"github.com/rickgorman/apify-cli/internal/files"
	"github.com/spf13/afero"
)

// ErrNotLoggedIn is returned when no stored credentials exist.
var ErrNotLoggedIn = errors.New("not logged in")

// Credentials are the stored login of one user.
type Credentials struct {
	UserID string `json:"userId,omitempty"`
	Token  string `json:"token"`
}

// FilePath returns the auth file location inside configDir.
func FilePath(configDir string) string {
	return filepath.Join(configDir, consts.AuthFileName)
}

// Exists reports whether both the config directory and the auth file exist.
func Exists(fs afero.Fs, configDir string) bool {
	if ok, _ := afero.DirExists(fs, configDir); !ok {
		return false
	}
	return files.Exists(fs, FilePath(configDir))
}

// Load reads the stored credentials. Returns ErrNotLoggedIn when the config
// directory or the auth file is missing.
func Load(fs afero.Fs, configDir string) (*Credentials, error) {
	if !Exists(fs, configDir) {
		return nil, ErrNotLoggedIn
	}

	var creds Credentials
	if err := files.LoadJSON(fs, FilePath(configDir), &creds); err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	return &creds, nil
}

// Save writes creds to the auth file, creating configDir when needed.
func Save(fs afero.Fs, configDir string, creds *Credentials) error {
	if _, err := files.CreateFolder(fs, configDir); err != nil {
		return err
	}
	return files.WriteJSONPrivate(fs, FilePath(configDir), creds)
}

// Remove deletes the auth file. Removing absent credentials is not an error.
func Remove(fs afero.Fs, configDir string) error {
	err := fs.Remove(FilePath(configDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}
