package auth

import (
	"context"
	"errors"

	"github.com/rickgorman/apify-cli/internal/apify"
	"github.com/rickgorman/apify-cli/internal/consts"
	"github.com/rickgorman/apify-cli/internal/logging"
	"github.com/rickgorman/apify-cli/internal/settings"
	"github.com/rickgorman/apify-cli/internal/ui"
	"github.com/rickgorman/apify-cli/pkg/hash"
	"github.com/spf13/afero"
)

// Status is the outcome of a credential check.
type Status int

const (
	StatusUnauthenticated Status = iota
	StatusAuthenticated
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unauthenticated"
	}
}

// Result holds the outcome of GetLoggedClient.
// Client is set only when Status is StatusAuthenticated.
type Result struct {
	Status Status
	Client *apify.Client
	Err    error
}

// OK reports whether the credentials were accepted.
func (r Result) OK() bool {
	return r.Status == StatusAuthenticated
}

// GetLoggedClient builds a client from creds and proves it with one list call.
func GetLoggedClient(ctx context.Context, creds *Credentials, opts ...apify.Option) Result {
	logger := logging.GetLogger("auth")

	if creds == nil || creds.Token == "" {
		return Result{Status: StatusUnauthenticated, Err: ErrNotLoggedIn}
	}

	client := apify.NewClient(creds.Token, creds.UserID, opts...)
	done := logging.LogOperationStart(logger, "credential check")
	_, err := client.ListActors(ctx, 1)
	done()
	if err == nil {
		logger.Debug().Str("token", hash.Fingerprint(creds.Token)).Msg("Credentials accepted")
		return Result{Status: StatusAuthenticated, Client: client}
	}

	_ = client.Close()

	status := StatusUnavailable
	if errors.Is(err, apify.ErrUnauthorized) {
		status = StatusUnauthenticated
	}

	logger.Debug().
		Err(err).
		Str("token", hash.Fingerprint(creds.Token)).
		Stringer("status", status).
		Msg("Credential check failed")

	return Result{Status: status, Err: err}
}

// GetLoggedClientOrError returns a verified client for the stored
// credentials. When the user is not logged in, or the check fails, it prints
// the not-logged-in message and returns nil.
func GetLoggedClientOrError(ctx context.Context, fs afero.Fs, s *settings.Settings) *apify.Client {
	creds, err := Load(fs, s.ConfigDir)
	if err != nil {
		logger := logging.GetLogger("auth")
		logger.Debug().Err(err).Str("configDir", s.ConfigDir).Msg("No usable credentials")
		ui.Fail(consts.MsgNotLoggedIn)
		return nil
	}

	res := GetLoggedClient(ctx, creds, apify.WithBaseURL(s.APIBaseURL), apify.WithTimeout(s.ProbeTimeout))
	if !res.OK() {
		ui.Fail(consts.MsgNotLoggedIn)
		return nil
	}

	return res.Client
}
