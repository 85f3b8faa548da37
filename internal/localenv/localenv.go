// Package localenv scaffolds the local emulation of platform storages in a
// project directory and wires it into the project's own files.
package localenv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rickgorman/apify-cli/internal/consts"
	"github.com/rickgorman/apify-cli/internal/files"
	"github.com/rickgorman/apify-cli/internal/logging"
	"github.com/spf13/afero"
)

// Dirs returns the storage directories Setup creates under dir.
func Dirs(dir string) []string {
	root := filepath.Join(dir, consts.LocalEmulationDir)
	return []string{
		filepath.Join(root, consts.LocalDatasetsDir, consts.DefaultDatasetID),
		filepath.Join(root, consts.LocalKeyValueStoresDir, consts.DefaultKeyValueStoreID),
	}
}

// RunLocalScript returns the package.json script that starts entry with the
// local emulation environment.
func RunLocalScript(entry string) string {
	if entry == "" {
		entry = consts.DefaultEntryPoint
	}
	return strings.Join([]string{
		"APIFY_LOCAL_EMULATION_DIR=./" + consts.LocalEmulationDir,
		"APIFY_DEFAULT_KEY_VALUE_STORE_ID=" + consts.DefaultKeyValueStoreID,
		"APIFY_DEFAULT_DATASET_ID=" + consts.DefaultDatasetID,
		"node " + entry,
	}, " ")
}

// Setup creates the local emulation tree in dir, lists it in .gitignore and
// adds the run-local script to package.json. Missing project files are
// skipped. Running it again changes nothing.
func Setup(fs afero.Fs, dir string) error {
	log := logging.GetLogger("localenv")

	for _, d := range Dirs(dir) {
		if _, err := files.CreateFolder(fs, d); err != nil {
			return err
		}
	}

	gitignore := filepath.Join(dir, consts.GitignoreName)
	if files.Exists(fs, gitignore) {
		added, err := ensureIgnored(fs, gitignore, consts.LocalEmulationDir)
		if err != nil {
			return err
		}
		log.Debug().Str("path", gitignore).Bool("added", added).Msg("Checked gitignore")
	}

	manifest := filepath.Join(dir, consts.PackageJSONName)
	if files.Exists(fs, manifest) {
		entry, err := entryPoint(fs, manifest)
		if err != nil {
			return err
		}
		script := RunLocalScript(entry)
		if err := files.UpdateLocalJSON(fs, manifest, map[string]any{consts.RunLocalScript: script}, "scripts"); err != nil {
			return err
		}
		log.Debug().Str("path", manifest).Str("entry", entry).Msg("Added run-local script")
	}

	return nil
}

// ensureIgnored appends entry to the gitignore file at path unless a line
// already ignores it.
func ensureIgnored(fs afero.Fs, path, entry string) (bool, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if ignores(strings.TrimSpace(line), entry) {
			return false, nil
		}
	}

	var buf bytes.Buffer
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(entry)
	buf.WriteByte('\n')

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

func ignores(line, entry string) bool {
	line = strings.TrimPrefix(line, "/")
	line = strings.TrimSuffix(line, "/")
	return line == entry
}

// entryPoint reads the "main" field of the manifest.
func entryPoint(fs afero.Fs, manifest string) (string, error) {
	var doc files.Object
	if err := files.LoadJSON(fs, manifest, &doc); err != nil {
		return "", err
	}

	var entry string
	if raw, ok := doc.Get("main"); ok {
		// Non-string values fall back to the default.
		_ = json.Unmarshal(raw, &entry)
	}
	if entry == "" {
		return consts.DefaultEntryPoint, nil
	}
	return entry, nil
}
