package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tally/internal/domain"
)

func incCmd() *cobra.Command {
	return stepCmd("inc", "Increment a counter by one", domain.CounterService.Increment)
}

func decCmd() *cobra.Command {
	return stepCmd("dec", "Decrement a counter by one", domain.CounterService.Decrement)
}

// stepCmd builds inc/dec. --at picks a counter by 1-based position when names repeat.
func stepCmd(
	use, short string,
	step func(domain.CounterService, domain.CounterRef) (domain.CounterView, error),
) *cobra.Command {
	var at int
	cmd := &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolve(args, at)
			if err != nil {
				return err
			}
			v, err := step(appCtx.Counters, target.Ref)
			if v.Ref != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", v.Name, v.Value)
			}
			return err
		},
	}
	cmd.Flags().IntVar(&at, "at", 0, "1-based position of the counter (see `tally list`)")
	return cmd
}

func showCmd() *cobra.Command {
	var at int
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print one counter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := resolve(args, at)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", v.Name, v.Value)
			return nil
		},
	}
	cmd.Flags().IntVar(&at, "at", 0, "1-based position of the counter (see `tally list`)")
	return cmd
}

// resolve finds the counter named by args[0], or at position at when at > 0.
func resolve(args []string, at int) (domain.CounterView, error) {
	if at > 0 {
		list := appCtx.Counters.List()
		if at > len(list) {
			return domain.CounterView{}, errors.Wrapf(domain.ErrNotFound, "no counter at position %d", at)
		}
		v := list[at-1]
		if len(args) == 1 && v.Name != domain.CounterName(args[0]) {
			return domain.CounterView{}, errors.Wrapf(domain.ErrNotFound, "counter at position %d is %q, not %q", at, v.Name, args[0])
		}
		return v, nil
	}
	if len(args) == 0 {
		return domain.CounterView{}, errors.Wrap(domain.ErrInvalidArgument, "counter name or --at required")
	}
	v, ok := appCtx.Counters.Find(domain.CounterName(args[0]))
	if !ok {
		return domain.CounterView{}, errors.Wrapf(domain.ErrNotFound, "%q", args[0])
	}
	return v, nil
}
