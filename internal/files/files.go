// Package files holds the filesystem helpers used to manage project state:
// idempotent folder creation and JSON load, save and merge.
//
// Every helper takes an afero.Fs so commands run on afero.NewOsFs() and
// tests on afero.NewMemMapFs().
package files

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rickgorman/apify-cli/internal/logging"
	"github.com/spf13/afero"
)

// Exists reports whether path exists.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// CreateFolder creates path and any missing parents. Existing folders are
// left untouched. Returns path for chaining.
func CreateFolder(fs afero.Fs, path string) (string, error) {
	if ok, _ := afero.DirExists(fs, path); ok {
		return path, nil
	}
	if err := fs.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", path, err)
	}
	logger := logging.GetLogger("files")
	logger.Debug().Str("path", path).Msg("Created folder")
	return path, nil
}

// LoadJSON decodes the JSON file at path into v.
func LoadJSON(fs afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// WriteJSON writes v to path as tab-indented JSON with a trailing newline,
// replacing any existing file.
func WriteJSON(fs afero.Fs, path string, v any) error {
	return writeJSON(fs, path, v, 0644)
}

// WriteJSONPrivate is WriteJSON for files only the owner may read.
func WriteJSONPrivate(fs afero.Fs, path string, v any) error {
	return writeJSON(fs, path, v, 0600)
}

func writeJSON(fs afero.Fs, path string, v any, perm os.FileMode) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// UpdateLocalJSON merges updates into the JSON object stored at path.
// With a nestedKey the updates go into that member object, which is created
// when missing. Keys already in the file keep their order.
func UpdateLocalJSON(fs afero.Fs, path string, updates map[string]any, nestedKey string) error {
	var doc Object
	if err := LoadJSON(fs, path, &doc); err != nil {
		return err
	}

	target := &doc
	var nested Object
	if nestedKey != "" {
		if raw, ok := doc.Get(nestedKey); ok && !isNull(raw) {
			if err := json.Unmarshal(raw, &nested); err != nil {
				return fmt.Errorf("%s in %s is not an object: %w", nestedKey, path, err)
			}
		}
		target = &nested
	}

	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := target.Set(key, updates[key]); err != nil {
			return err
		}
	}

	if nestedKey != "" {
		if err := doc.Set(nestedKey, &nested); err != nil {
			return err
		}
	}

	return WriteJSON(fs, path, &doc)
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
