package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"product-catalog-api/internal/product/seed"
	"product-catalog-api/internal/product/usecase"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Import items from a YAML seed file",
		Long: `Import items from a YAML seed file. Items whose SKU already exists are skipped.
Without an argument the file configured as seed.file is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, cfg, l, err := opts.openRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			path := cfg.Seed.File
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no seed file given and seed.file is not configured")
			}

			uc := usecase.New(repo, l, usecase.CacheConfig{})
			created, err := seed.Apply(ctx, uc, path)
			if err != nil {
				return err
			}

			total, err := repo.CountItems(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d item(s) from %s, catalog now holds %d\n", created, path, total)
			return nil
		},
	}
}
