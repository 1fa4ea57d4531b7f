package cmd

import (
	"github.com/spf13/pflag"
)

var (
	globalBundlePath string
	globalHelperCmd  string
	globalRepoPath   string
	globalIsOptAll   bool
)

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&globalBundlePath,
		"bundle",
		"",
		"path to the world bundle archive to load")
	flags.StringVar(&globalHelperCmd,
		"helper-cmd",
		"",
		"external command to run when the bundle has no embedded JSON tables")
	flags.StringVar(&globalRepoPath,
		"repo-path",
		"",
		"path passed to the extraction helper as its working repository")
	flags.BoolVar(&globalIsOptAll,
		"opt-all",
		false,
		"evaluate with isOptAll: clamp requirements by enabled categories")
}
