package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List counters in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counters := appCtx.Counters.List()
			out := cmd.OutOrStdout()

			if asJSON {
				b, err := json.MarshalIndent(counters, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}

			if len(counters) == 0 {
				fmt.Fprintln(out, "no counters yet. use `tally add <name> <value>`")
				return nil
			}
			for i, c := range counters {
				fmt.Fprintf(out, "%d. %s: %d\n", i+1, c.Name, c.Value)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print counters as a JSON array")
	return cmd
}
