// Package check implements worldcheck's "check" subcommand: answering
// whether a location is in logic against an inventory and yaml snapshot
// read from the command line or a JSON file.
package check

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kiosk404/worldlogic/internal/worldcheck/cmd/util"
	"github.com/kiosk404/worldlogic/pkg/world"
	"github.com/spf13/cobra"
)

type options struct {
	factory util.Factory

	location      string
	items         []string
	yamlFile      string
	inventoryFile string
}

// NewCmdCheck builds the "check" subcommand.
func NewCmdCheck(f util.Factory) *cobra.Command {
	o := &options{factory: f}

	cmd := &cobra.Command{
		Use:   "check <location>",
		Short: "Report whether a location is in logic",
		Long: `Evaluate a location's requirement tree against an inventory and a
yaml options snapshot, printing either that the location is in logic
or the residual that remains unsatisfied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.location = args[0]
			return o.run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&o.items, "item", nil, "received item, repeatable (name or name=count)")
	flags.StringVar(&o.inventoryFile, "inventory-file", "", "JSON object of item name to received count")
	flags.StringVar(&o.yamlFile, "yaml-file", "", "JSON object of yaml option name to value")
	return cmd
}

func (o *options) run(ctx context.Context, out io.Writer) error {
	w, err := o.factory.World(ctx)
	if err != nil {
		return err
	}

	inventory, err := loadCounts(o.inventoryFile)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}
	for _, item := range o.items {
		name, count := splitNameCount(item)
		inventory[name] += count
	}

	yaml, err := loadCounts(o.yamlFile)
	if err != nil {
		return fmt.Errorf("loading yaml snapshot: %w", err)
	}

	residual := w.InLogic(o.location, inventory, yaml)
	if residual == nil {
		fmt.Fprintf(out, "%s: in logic\n", o.location)
		return nil
	}
	fmt.Fprintf(out, "%s: not in logic, missing: %s\n", o.location, world.Deparse(residual))
	return nil
}

func loadCounts(path string) (map[string]int, error) {
	counts := map[string]int{}
	if path == "" {
		return counts, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func splitNameCount(s string) (string, int) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			n := 0
			fmt.Sscanf(s[i+1:], "%d", &n)
			return s[:i], n
		}
	}
	return s, 1
}
