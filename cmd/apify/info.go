package main

import (
	"context"
	"fmt"

	"github.com/rickgorman/apify-cli/internal/auth"
	"github.com/rickgorman/apify-cli/internal/cli"
	"github.com/rickgorman/apify-cli/pkg/hash"
	"github.com/spf13/cobra"
)

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE:  a.run(a.info),
	}
}

func (a *app) info(ctx context.Context, cmd *cobra.Command, _ cli.Args, _ []string) error {
	client := auth.GetLoggedClientOrError(ctx, a.fs, a.settings)
	if client == nil {
		return errReported
	}
	defer client.Close()

	creds, err := auth.Load(a.fs, a.settings.ConfigDir)
	if err != nil {
		return err
	}

	userID := client.UserID()
	if userID == "" {
		userID = "(unknown)"
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "User ID: %s\n", userID)
	_, _ = fmt.Fprintf(out, "Token:   %s\n", hash.Fingerprint(creds.Token))
	_, _ = fmt.Fprintf(out, "API:     %s\n", a.settings.APIBaseURL)
	return nil
}
