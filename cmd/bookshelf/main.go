package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookshelf/pkg/config"
	"bookshelf/pkg/seed"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	root := &cobra.Command{
		Use:          "bookshelf",
		Short:        "HTTP service for a reading list of books",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	flags := root.Flags()
	flags.StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")
	flags.String("addr", ":9000", "listen address")
	flags.String("store", config.StoreMemory, "storage backend: memory or sqlite")
	flags.String("sqlite-dsn", "", "SQLite DSN for the sqlite store")
	flags.String("id-generator", "nanoid", "book id generator: nanoid or uuid")
	flags.String("seed-file", "", "YAML file with books to create at startup")
	flags.String("gin-mode", "release", "gin mode: debug, release or test")
	for flag, key := range flagKeys {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(newCheckSeedCmd())
	return root
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"addr":         "addr",
	"store":        "store",
	"sqlite-dsn":   "sqlite_dsn",
	"id-generator": "id_generator",
	"seed-file":    "seed_file",
	"gin-mode":     "gin_mode",
}

func newCheckSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-seed FILE",
		Short: "Validate a seed file without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d books OK\n", args[0], len(inputs))
			return nil
		},
	}
}
