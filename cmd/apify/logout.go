package main

import (
	"context"

	"github.com/rickgorman/apify-cli/internal/auth"
	"github.com/rickgorman/apify-cli/internal/cli"
	"github.com/rickgorman/apify-cli/internal/ui"
	"github.com/spf13/cobra"
)

func (a *app) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		Args:  cobra.NoArgs,
		RunE:  a.run(a.logout),
	}
}

func (a *app) logout(_ context.Context, _ *cobra.Command, _ cli.Args, _ []string) error {
	if err := auth.Remove(a.fs, a.settings.ConfigDir); err != nil {
		return err
	}
	ui.Success("You are logged out")
	return nil
}
