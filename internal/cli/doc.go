// Package cli turns parsed command-line flags into the argument set handed
// to command bodies.
//
// Flags are gathered from a cobra command under their raw names, with the
// positional arguments stored under PositionalKey, and then normalized to
// camel case:
//
//	raw := cli.CollectArgs(cmd, positional)
//	args := cli.ArgsToCamelCase(raw)
//	if args.Bool("dryRun") {
//	    // ...
//	}
package cli
