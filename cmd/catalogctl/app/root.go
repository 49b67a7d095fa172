// Package app provides the commands of the catalogctl command-line tool.
package app

import (
	"context"

	"github.com/spf13/cobra"

	"product-catalog-api/config"
	"product-catalog-api/config/storage"
	"product-catalog-api/internal/product/repository"
	"product-catalog-api/pkg/log"
)

type rootOptions struct {
	configPath string
	dbPath     string
	debug      bool
}

// NewRootCmd creates the catalogctl root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:               "catalogctl",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "catalogctl manages and queries the product catalog store",
		Long: `catalogctl works directly on the catalog store used by the API server.
It applies schema migrations, loads YAML seed files and runs catalog queries
with the same filtering, sorting and pagination rules as GET /api/v1/products.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.yaml (default: search ./config, ., /etc/app)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database path, overrides database.path")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newQueryCmd(opts))

	return cmd
}

// load resolves the configuration and applies flag overrides.
func (o *rootOptions) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.dbPath != "" {
		cfg.Database.Path = o.dbPath
		cfg.Database.InMemory = false
	}
	return cfg, nil
}

// logger is silent unless --debug is set so command output stays clean.
func (o *rootOptions) logger(cfg *config.Config) log.Logger {
	if !o.debug {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:    "debug",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})
}

func (o *rootOptions) openRepository(ctx context.Context) (repository.Repository, *config.Config, log.Logger, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, nil, nil, err
	}
	l := o.logger(cfg)

	repo, err := storage.Open(ctx, cfg.Database, l)
	if err != nil {
		return nil, nil, nil, err
	}
	return repo, cfg, l, nil
}
