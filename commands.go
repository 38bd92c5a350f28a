package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blogpress/app/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// flagKeys maps command-line flags onto the config keys they override.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"port":      "server.port",
	"host":      "server.host",
	"storage":   "storage.driver",
	"seed":      "seed.posts",
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blogpress",
		Short: "A small blog with posts, comments and flash notices",
		Long: `blogpress serves a blog: create, read, update and delete posts, attach
comments, and see one-shot success and error notices.

Configuration comes from flags, BLOGPRESS_ environment variables (a .env file
is loaded first), an optional blogpress.yaml, then built-in defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv()
		},
	}

	root.PersistentFlags().String("config", "", "config file (default is ./blogpress.yaml)")
	root.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the blog web server",
		Long: `Start the blog web server.

Examples:
  blogpress serve                     # listen on :3000 with the in-memory store
  blogpress serve --port 8080         # another port
  blogpress serve --storage badger    # badger in-memory store
  blogpress serve --seed 10           # start with ten generated posts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().IntP("port", "p", 3000, "port to listen on")
	cmd.Flags().String("host", "", "host to bind to")
	cmd.Flags().String("storage", "memory", "post store driver (memory, badger)")
	cmd.Flags().Int("seed", 0, "number of generated demo posts to start with")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "blogpress version %s\n", version)
		},
	}
}

// loadConfig merges flags, environment, config file and defaults. Flags
// only win when set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	v := config.New(cfgFile)
	if err := bindFlags(cmd, v); err != nil {
		return nil, err
	}
	if err := config.ReadFile(v); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}
