package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"kicks-lab/internal/app"
	"kicks-lab/internal/appconfig"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	root := &cobra.Command{
		Use:           "kickslab",
		Short:         "Color a 3D sneaker and export a screenshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", appconfig.DefaultPath, "prefs file")
	flags.StringVar(&opts.EnvFile, "env-file", ".env", "optional .env file")
	root.Flags().StringVar(&opts.AssetPath, "asset", "", "model file or http(s) URL (overrides prefs)")
	root.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(&cobra.Command{
		Use:   "font FAMILY",
		Short: "Download a Google Fonts family and use it for the panel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := args[0]
			for _, a := range args[1:] {
				family += " " + a
			}
			saved, err := app.FetchFont(cmd.Context(), opts.ConfigPath, family)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", saved)
			return nil
		},
	})
	return root
}
