package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/nijiero-go/internal/config"
	"github.com/vrsandeep/nijiero-go/internal/core"
	"github.com/vrsandeep/nijiero-go/internal/downloader/providers"
	"github.com/vrsandeep/nijiero-go/internal/models"
)

var (
	flagConfig   string
	flagProvider string
	flagDebug    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nijiero-cli",
		Short:         "Browse nijiero-ch.com from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !flagDebug {
				log.SetOutput(io.Discard)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ./config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "nijiero", "provider ID")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newPopularCmd(),
		newLatestCmd(),
		newSearchCmd(),
		newDetailsCmd(),
		newChaptersCmd(),
		newPagesCmd(),
		newFiltersCmd(),
		newProvidersCmd(),
	)
	return rootCmd
}

// withProvider loads the config, sets up the app and hands the selected
// provider to fn.
func withProvider(fn func(ctx context.Context, p models.Provider, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFile(flagConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		app, err := core.New(cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		p, ok := providers.Get(flagProvider)
		if !ok {
			return fmt.Errorf("unknown provider %q", flagProvider)
		}
		out, err := fn(cmd.Context(), p, args)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
