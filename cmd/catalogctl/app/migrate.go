package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"product-catalog-api/internal/product/repository/sqlite"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the SQLite store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Database.InMemory {
				return errors.New("the in-memory store has no schema to migrate")
			}

			db, err := sqlite.OpenDB(ctx, cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := sqlite.Migrate(ctx, db)
			if err != nil {
				return err
			}
			version, err := sqlite.SchemaVersion(ctx, db)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s), schema version %d\n", applied, version)
			return nil
		},
	}
}
