package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rickgorman/apify-cli/internal/cli"
	"github.com/rickgorman/apify-cli/internal/consts"
	"github.com/rickgorman/apify-cli/internal/localconfig"
	"github.com/rickgorman/apify-cli/internal/localenv"
	"github.com/rickgorman/apify-cli/internal/ui"
	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Initialize an actor project in the current directory",
		Long: `Writes apify.json and sets up local emulation of the default dataset and
key-value store in the apify_local directory. An existing .gitignore gets the
apify_local entry and an existing package.json gets a run-local script.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(a.initProject),
	}
	cmd.Flags().BoolP("yes", "y", false, "Overwrite an existing apify.json without asking")
	return cmd
}

func (a *app) initProject(ctx context.Context, cmd *cobra.Command, args cli.Args, positional []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	ui.Info("Initializing actor project in %s", dir)

	// Unreadable files are user data too and go through the same question.
	write := true
	_, err = localconfig.Load(a.fs, dir)
	if !errors.Is(err, localconfig.ErrNotFound) {
		if err != nil {
			ui.Warn("Existing %s is unreadable: %v", consts.LocalConfigName, err)
		} else {
			ui.Warn("%s already exists in %s", consts.LocalConfigName, dir)
		}
		write = args.Bool("yes") || ui.AskYesNo("Overwrite it?", false)
	}

	if write {
		name := projectName(dir, positional)
		if err := localconfig.Set(a.fs, localconfig.Defaults(name), dir); err != nil {
			return err
		}
		ui.Success("Created %s for %s", ui.Bold(consts.LocalConfigName), ui.Bold(name))
	}

	if err := localenv.Setup(a.fs, dir); err != nil {
		return fmt.Errorf("failed to set up local emulation: %w", err)
	}
	ui.Success("Local emulation ready in %s", ui.Bold(consts.LocalEmulationDir))
	ui.DimMsg("Run it with: npm run %s", consts.RunLocalScript)

	return nil
}

// projectName takes the name argument, then asks, then falls back to the
// directory name.
func projectName(dir string, positional []string) string {
	if len(positional) > 0 && positional[0] != "" {
		return positional[0]
	}
	if name := ui.AskString("Actor name"); name != "" {
		return name
	}
	return filepath.Base(dir)
}
