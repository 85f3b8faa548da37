package auth

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rickgorman/apify-cli/internal/apify"
	"github.com/rickgorman/apify-cli/internal/settings"
	"github.com/rickgorman/apify-cli/internal/ui"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "/home/user/.apify"

func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := ui.Out
	ui.Out = &buf
	t.Cleanup(func() { ui.Out = orig })
	return &buf
}

// newAPI serves /v2/acts, accepting only the given token.
func newAPI(t *testing.T, validToken string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"total":0,"items":[]}}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSaveLoadRemove(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, configDir)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.False(t, Exists(fs, configDir))

	require.NoError(t, Save(fs, configDir, &Credentials{UserID: "u1", Token: "tok"}))
	assert.True(t, Exists(fs, configDir))

	creds, err := Load(fs, configDir)
	require.NoError(t, err)
	assert.Equal(t, &Credentials{UserID: "u1", Token: "tok"}, creds)

	info, err := fs.Stat(FilePath(configDir))
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())

	require.NoError(t, Remove(fs, configDir))
	assert.False(t, Exists(fs, configDir))
	require.NoError(t, Remove(fs, configDir), "removing twice is fine")
}

func TestLoadCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(configDir, 0755))
	require.NoError(t, afero.WriteFile(fs, FilePath(configDir), []byte("not json"), 0600))

	_, err := Load(fs, configDir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotLoggedIn)
}

func TestGetLoggedClient(t *testing.T) {
	server := newAPI(t, "good")

	tests := []struct {
		name       string
		creds      *Credentials
		baseURL    string
		wantStatus Status
	}{
		{"valid token", &Credentials{UserID: "u1", Token: "good"}, server.URL, StatusAuthenticated},
		{"rejected token", &Credentials{Token: "bad"}, server.URL, StatusUnauthenticated},
		{"empty token", &Credentials{}, server.URL, StatusUnauthenticated},
		{"nil credentials", nil, server.URL, StatusUnauthenticated},
		{"unreachable service", &Credentials{Token: "good"}, "http://127.0.0.1:1", StatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := GetLoggedClient(context.Background(), tt.creds,
				apify.WithBaseURL(tt.baseURL), apify.WithTimeout(2*time.Second))

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantStatus == StatusAuthenticated, res.OK())
			if res.OK() {
				require.NotNil(t, res.Client)
				assert.Equal(t, tt.creds.UserID, res.Client.UserID())
				_ = res.Client.Close()
			} else {
				assert.Nil(t, res.Client)
				assert.Error(t, res.Err)
			}
		})
	}
}

func TestGetLoggedClientServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	res := GetLoggedClient(context.Background(), &Credentials{Token: "good"}, apify.WithBaseURL(server.URL))
	assert.Equal(t, StatusUnavailable, res.Status)
	assert.Equal(t, "unavailable", res.Status.String())
}

func TestGetLoggedClientOrError(t *testing.T) {
	server := newAPI(t, "good")

	tests := []struct {
		name      string
		setup     func(t *testing.T, fs afero.Fs)
		wantNil   bool
		wantFails int
	}{
		{
			name:      "missing config folder",
			setup:     func(t *testing.T, fs afero.Fs) {},
			wantNil:   true,
			wantFails: 1,
		},
		{
			name: "missing auth file",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.MkdirAll(configDir, 0755))
			},
			wantNil:   true,
			wantFails: 1,
		},
		{
			name: "rejected credentials",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, Save(fs, configDir, &Credentials{Token: "expired"}))
			},
			wantNil:   true,
			wantFails: 1,
		},
		{
			name: "valid credentials",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, Save(fs, configDir, &Credentials{UserID: "u1", Token: "good"}))
			},
			wantNil:   false,
			wantFails: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureUI(t)
			fs := afero.NewMemMapFs()
			tt.setup(t, fs)

			s := &settings.Settings{ConfigDir: configDir, APIBaseURL: server.URL, ProbeTimeout: 2 * time.Second}
			client := GetLoggedClientOrError(context.Background(), fs, s)

			if tt.wantNil {
				assert.Nil(t, client)
			} else {
				require.NotNil(t, client)
				assert.Equal(t, "u1", client.UserID())
				_ = client.Close()
			}

			out := buf.String()
			assert.Equal(t, tt.wantFails, strings.Count(out, "✘"))
			if tt.wantFails > 0 {
				assert.Contains(t, out, "apify login")
			}
		})
	}
}
