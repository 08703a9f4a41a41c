package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var workspaceFlagAliases = map[string]string{
	"ws": "workspace",
}

var outputFlagAliases = map[string]string{
	"out": "output",
}

func addWorkspaceFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), workspaceFlagAliases)
	}
}

func addOutputFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), outputFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
