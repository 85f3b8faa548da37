package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CollectArgs returns every flag of cmd, set or defaulted, under its raw
// name, plus the positional arguments under PositionalKey. Values keep
// their flag type where it is a bool, an int or a slice.
func CollectArgs(cmd *cobra.Command, positional []string) map[string]any {
	args := map[string]any{
		PositionalKey: append([]string(nil), positional...),
	}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}
		args[f.Name] = flagValue(f)
	})

	return args
}

func flagValue(f *pflag.Flag) any {
	switch f.Value.Type() {
	case "bool":
		if b, err := strconv.ParseBool(f.Value.String()); err == nil {
			return b
		}
	case "int", "count":
		if n, err := strconv.Atoi(f.Value.String()); err == nil {
			return n
		}
	}

	if sv, ok := f.Value.(pflag.SliceValue); ok {
		return sv.GetSlice()
	}

	return f.Value.String()
}
