package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rickgorman/apify-cli/internal/cli"
	"github.com/rickgorman/apify-cli/internal/logging"
	"github.com/rickgorman/apify-cli/internal/settings"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// errReported is returned by commands that already told the user what went
// wrong.
var errReported = errors.New("reported")

// app is the state shared by all commands of one invocation.
type app struct {
	fs        afero.Fs
	settings  *settings.Settings
	verbosity int
}

// commandFunc is a command body. Flags arrive normalized to camel case,
// positional arguments separately.
type commandFunc func(ctx context.Context, cmd *cobra.Command, args cli.Args, positional []string) error

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "apify",
		Short: "Create, configure and run actors locally",
		Long: `apify manages the local side of an actor project: it stores your login,
writes the project configuration and sets up local emulation of the default
dataset and key-value store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			logger := logging.GetLogger("cli")
			logger.Debug().Str("command", cmd.Name()).Msg("Command started")

			s, err := settings.Load()
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			a.settings = s
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(
		a.newInitCmd(),
		a.newConfigCmd(),
		a.newLoginCmd(),
		a.newLogoutCmd(),
		a.newInfoCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// run adapts a commandFunc to cobra, normalizing the flags first.
func (a *app) run(fn commandFunc) func(cmd *cobra.Command, positional []string) error {
	return func(cmd *cobra.Command, positional []string) error {
		args := cli.ArgsToCamelCase(cli.CollectArgs(cmd, positional))
		logger := logging.GetLogger("cli")
		logger.Trace().Interface("flags", redact(args)).Strs("positional", positional).Msg("Dispatching")
		return fn(cmd.Context(), cmd, args, positional)
	}
}

// redact hides credentials before args are logged.
func redact(args cli.Args) cli.Args {
	out := make(cli.Args, len(args))
	for k, v := range args {
		if k == "token" && v != "" {
			v = "***"
		}
		out[k] = v
	}
	return out
}
