package commands

import (
	"github.com/spf13/cobra"

	"tally/internal/app"
)

var (
	home       string
	file       string
	passphrase string
	appCtx     *app.App
)

// Execute runs the tally CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tally",
		Short:         "Personal counter tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if file != "" {
				cfg.File = file
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}

			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = app.FromWire(w)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.tally)")
	root.PersistentFlags().StringVar(&file, "file", "", "counters file, relative to --home (default counters.txt)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal the counters file")

	root.AddCommand(listCmd(), addCmd(), incCmd(), decCmd(), showCmd())
	return root
}
