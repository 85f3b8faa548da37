package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rickgorman/apify-cli/internal/cli"
	"github.com/rickgorman/apify-cli/internal/consts"
	"github.com/rickgorman/apify-cli/internal/localconfig"
	"github.com/rickgorman/apify-cli/internal/ui"
	"github.com/spf13/cobra"
)

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [key]",
		Short: "Show the project configuration",
		Long: `Prints apify.json of the current directory, or the value of one key.
String values are printed as is, everything else as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(a.showConfig),
	}
}

func (a *app) showConfig(_ context.Context, cmd *cobra.Command, _ cli.Args, positional []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := localconfig.Get(a.fs, dir)
	if cfg == nil {
		return errReported
	}

	var value any = cfg
	if len(positional) > 0 {
		v, ok := cfg[positional[0]]
		if !ok {
			ui.Fail("%s has no key %q", consts.LocalConfigName, positional[0])
			return errReported
		}
		value = v
	}

	out := cmd.OutOrStdout()
	if s, ok := value.(string); ok {
		_, _ = fmt.Fprintln(out, s)
		return nil
	}

	data, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", consts.LocalConfigName, err)
	}
	_, _ = fmt.Fprintln(out, string(data))
	return nil
}
