package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/domain"
	"tally/internal/store"
)

// add <name> <value> | add <name|value>: create a counter and save.
func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <value> | add <name|value>",
		Short: "Create a counter with an initial value",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				v   domain.CounterView
				err error
			)
			if len(args) == 1 {
				v, err = appCtx.Counters.AddEntry(args[0])
			} else {
				value, perr := store.ParseValue(args[1])
				if perr != nil {
					return perr
				}
				v, err = appCtx.Counters.Add(domain.CounterName(args[0]), value)
			}
			if v.Ref != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", v.Name, v.Value)
			}
			return err
		},
	}
	// Flags end at the first positional so "add X -5" reads -5 as the value.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
