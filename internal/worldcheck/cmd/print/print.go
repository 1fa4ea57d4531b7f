// Package print implements worldcheck's "print" subcommand: parsing a
// requires string and printing its canonical and normalised forms.
package print

import (
	"fmt"
	"io"

	"github.com/kiosk404/worldlogic/pkg/world"
	"github.com/spf13/cobra"
)

// NewCmdPrint builds the "print" subcommand.
func NewCmdPrint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <requires>",
		Short: "Parse a requires string and print its canonical and normalised forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func run(out io.Writer, src string) error {
	tree, err := world.ParseRequires(src)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "canonical:  %s\n", world.Deparse(tree))
	fmt.Fprintf(out, "normalised: %s\n", world.Normalize(tree))
	return nil
}
