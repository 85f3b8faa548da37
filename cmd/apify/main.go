package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/rickgorman/apify-cli/internal/ui"
	"github.com/spf13/afero"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd(afero.NewOsFs())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			ui.Fail("%v", err)
		}
		stop()
		os.Exit(1)
	}
}
