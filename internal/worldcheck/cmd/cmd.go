// Package cmd assembles the worldcheck root command.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kiosk404/worldlogic/internal/worldcheck/cmd/check"
	"github.com/kiosk404/worldlogic/internal/worldcheck/cmd/print"
	"github.com/kiosk404/worldlogic/internal/worldcheck/cmd/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewDefaultWorldCheckCommand creates the `worldcheck` command with
// default I/O streams.
func NewDefaultWorldCheckCommand() *cobra.Command {
	return NewWorldCheckCommand(os.Stdin, os.Stdout, os.Stderr)
}

// NewWorldCheckCommand builds the `worldcheck` root command and wires
// every subcommand to a Factory bound to the persistent flags.
func NewWorldCheckCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmds := &cobra.Command{
		Use:   "worldcheck",
		Short: "worldcheck evaluates requirement logic against a world bundle",
		Long: fmt.Sprintf(`%s
worldcheck loads a world bundle's item, location, category, and region
tables, synthesises region-traversal requirements, and answers whether
a given location is reachable under an inventory and a yaml options
snapshot.`, Banner()),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmds.SetIn(in)
	cmds.SetOut(out)
	cmds.SetErr(errOut)

	flags := cmds.PersistentFlags()
	addGlobalFlags(flags)
	_ = viper.BindPFlags(flags)

	f := util.NewDefaultFactory(func() util.Options {
		return util.Options{
			BundlePath: globalBundlePath,
			HelperCmd:  globalHelperCmd,
			RepoPath:   globalRepoPath,
			IsOptAll:   globalIsOptAll,
		}
	})

	cmds.AddCommand(
		check.NewCmdCheck(f),
		print.NewCmdPrint(),
	)

	return cmds
}
