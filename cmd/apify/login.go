package main

import (
	"context"

	"github.com/rickgorman/apify-cli/internal/apify"
	"github.com/rickgorman/apify-cli/internal/auth"
	"github.com/rickgorman/apify-cli/internal/cli"
	"github.com/rickgorman/apify-cli/internal/ui"
	"github.com/rickgorman/apify-cli/pkg/hash"
	"github.com/spf13/cobra"
)

func (a *app) newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store and verify your API token",
		Long: `Verifies the token against the platform and stores it in the global
configuration directory. Without --token the APIFY_TOKEN environment variable
is used, otherwise you are asked for it.`,
		Args: cobra.NoArgs,
		RunE: a.run(a.login),
	}
	cmd.Flags().StringP("token", "t", "", "API token")
	cmd.Flags().String("user-id", "", "User ID stored next to the token")
	return cmd
}

func (a *app) login(ctx context.Context, cmd *cobra.Command, args cli.Args, _ []string) error {
	token := args.String("token")
	if token == "" {
		token = a.settings.Token
	}
	if token == "" {
		token = ui.AskString("API token")
	}
	if token == "" {
		ui.Fail("No token given")
		return errReported
	}

	userID := args.String("userId")
	if userID == "" {
		userID = a.settings.UserID
	}

	creds := &auth.Credentials{UserID: userID, Token: token}
	res := auth.GetLoggedClient(ctx, creds,
		apify.WithBaseURL(a.settings.APIBaseURL),
		apify.WithTimeout(a.settings.ProbeTimeout))

	switch res.Status {
	case auth.StatusAuthenticated:
		_ = res.Client.Close()
	case auth.StatusUnauthenticated:
		ui.Fail("The token was rejected. Check it and try again.")
		return errReported
	default:
		ui.Fail("Could not verify the token: %v", res.Err)
		return errReported
	}

	if err := auth.Save(a.fs, a.settings.ConfigDir, creds); err != nil {
		return err
	}

	ui.Success("You are logged in (token %s)", ui.Dim(hash.Fingerprint(token)))
	ui.DimMsg("Credentials stored in %s", a.settings.AuthFilePath())
	return nil
}
