// Package settings loads the global CLI settings.
//
// Values are layered, later sources winning:
//
//  1. built-in defaults
//  2. <configDir>/settings.yaml, then <configDir>/settings.toml
//  3. APIFY_* environment variables (APIFY_CONFIG_DIR, APIFY_API_BASE_URL,
//     APIFY_PROBE_TIMEOUT, APIFY_TOKEN, APIFY_USER_ID)
//
// The config directory itself can only be moved with APIFY_CONFIG_DIR, since
// it decides where the settings files are read from.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rickgorman/apify-cli/internal/consts"
)

const envPrefix = "APIFY_"

// DefaultProbeTimeout bounds the credential probe request.
const DefaultProbeTimeout = 10 * time.Second

// Settings are the global CLI settings.
type Settings struct {
	ConfigDir    string        `koanf:"config_dir"`
	APIBaseURL   string        `koanf:"api_base_url"`
	ProbeTimeout time.Duration `koanf:"probe_timeout"`

	// Token and UserID only seed "apify login"; stored credentials live in
	// the auth file.
	Token  string `koanf:"token"`
	UserID string `koanf:"user_id"`
}

// AuthFilePath returns the location of the stored credentials.
func (s *Settings) AuthFilePath() string {
	return filepath.Join(s.ConfigDir, consts.AuthFileName)
}

// Load reads settings with the config directory defaulting to ~/.apify.
func Load() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return LoadFrom(filepath.Join(homeDir, consts.GlobalConfigsFolderName))
}

// LoadFrom reads settings using defaultDir as the config directory unless
// APIFY_CONFIG_DIR overrides it.
func LoadFrom(defaultDir string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(defaultDir), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	envK := koanf.New(".")
	err := envK.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	configDir := defaultDir
	if dir := envK.String("config_dir"); dir != "" {
		configDir = dir
	}

	files := []struct {
		name   string
		parser koanf.Parser
	}{
		{"settings.yaml", yaml.Parser()},
		{"settings.toml", toml.Parser()},
	}
	for _, f := range files {
		path := filepath.Join(configDir, f.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), f.parser); err != nil {
			return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
		}
	}

	if err := k.Merge(envK); err != nil {
		return nil, fmt.Errorf("failed to merge environment: %w", err)
	}

	var s Settings
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// A settings file must not relocate the directory it was read from.
	s.ConfigDir = configDir
	s.APIBaseURL = strings.TrimRight(s.APIBaseURL, "/")
	if s.ProbeTimeout <= 0 {
		s.ProbeTimeout = DefaultProbeTimeout
	}

	return &s, nil
}

func defaults(configDir string) map[string]interface{} {
	return map[string]interface{}{
		"config_dir":    configDir,
		"api_base_url":  consts.DefaultAPIBaseURL,
		"probe_timeout": DefaultProbeTimeout,
	}
}
