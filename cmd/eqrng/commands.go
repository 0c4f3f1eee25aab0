package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jroosing/eqrng/internal/config"
	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/logging"
	"github.com/jroosing/eqrng/internal/server"
	"github.com/spf13/cobra"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	configPath string
	jsonLogs   bool
	debug      bool
}

// load resolves and validates the configuration and installs the logger.
func (o *rootOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(config.ResolveConfigPath(o.configPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if o.debug {
		cfg.Logging.Level = "DEBUG"
	}
	return cfg, logging.Configure(logging.FromConfig(cfg.Logging)), nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "eqrng",
		Short:         "Random EverQuest zone picker",
		Long:          "eqrng serves random zone and instance selection, zone annotations, ratings and admin listings over HTTP.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"path to YAML configuration file (or set "+config.ConfigPathEnv+")")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "enable JSON structured logging")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newSeedCommand(opts))

	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			logger.Info("eqrng starting",
				"version", version,
				"host", cfg.Server.Host,
				"port", cfg.Server.Port,
				"database", cfg.Database.Path,
			)
			runner := server.NewRunner(logger)
			runner.SetVersion(version)
			return runner.Run(cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "override bind host")
	cmd.Flags().IntVar(&port, "port", 0, "override bind port")
	return cmd
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			dc := cfg.Database
			dc.MigrateOnStartup = true
			db, err := server.OpenDatabase(dc)
			if err != nil {
				return err
			}
			defer db.Close()

			v, dirty, _, err := db.SchemaVersion()
			if err != nil {
				return err
			}
			logger.Info("schema up to date", "path", dc.Path, "version", v, "dirty", dirty)
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
			return nil
		},
	}
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Import zones, instances and links from a YAML seed file",
		Long: `Import a YAML seed file into the database.

Collections whose table already holds rows are skipped unless --replace is
given, in which case zones, instances and links are deleted first. Ratings
of deleted zones are removed with them.

Example:
  eqrng seed data/zones.yaml
  eqrng seed --replace data/zones.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			s, err := database.LoadSeedFile(args[0])
			if err != nil {
				return err
			}

			dc := cfg.Database
			dc.MigrateOnStartup = true
			db, err := server.OpenDatabase(dc)
			if err != nil {
				return err
			}
			defer db.Close()

			res, err := db.Import(cmd.Context(), s, database.SeedOptions{Replace: replace})
			if err != nil {
				return err
			}
			logger.Info("seed imported", "file", args[0], "replace", replace)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "delete existing zones, instances and links first")
	return cmd
}
