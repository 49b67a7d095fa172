package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/product/query"
	"product-catalog-api/internal/product/usecase"
)

// queryFlags maps CLI flags onto catalog query parameters.
var queryFlags = []struct {
	flag  string
	param string
	usage string
}{
	{"page", query.ParamPage, "Page number, starting at 1"},
	{"size", query.ParamSize, "Page size, clamped to 1..100"},
	{"sort-by", query.ParamSortBy, "Sort key (see --list-sort-keys)"},
	{"sort-order", query.ParamSortOrder, "ascending or descending"},
	{"min-price", query.ParamMinPrice, "Inclusive lower price bound"},
	{"max-price", query.ParamMaxPrice, "Inclusive upper price bound"},
	{"name", query.ParamName, "Case-insensitive name substring"},
	{"sku", query.ParamSKU, "Exact, case-sensitive SKU"},
	{"search", query.ParamSearchTerm, "Name or SKU substring; true/false filters on availability"},
}

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var (
		values       = make(map[string]*string, len(queryFlags))
		output       string
		listSortKeys bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter, sort and paginate the catalog",
		Long: `Run a catalog query with the same rules as GET /api/v1/products.
Values that cannot be parsed fall back to their defaults instead of failing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listSortKeys {
				for _, key := range query.SortKeys() {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
				return nil
			}

			ctx := cmd.Context()

			repo, _, l, err := opts.openRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			raw := make(map[string]string)
			for _, f := range queryFlags {
				if cmd.Flags().Changed(f.flag) {
					raw[f.param] = *values[f.flag]
				}
			}

			uc := usecase.New(repo, l, usecase.CacheConfig{})
			out, err := uc.List(ctx, query.ParseOptions(raw))
			if err != nil {
				return err
			}

			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Page)
			case "table", "":
				return renderPage(cmd.OutOrStdout(), out.Page)
			default:
				return fmt.Errorf("unknown output format %q, use table or json", output)
			}
		},
	}

	for _, f := range queryFlags {
		values[f.flag] = cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")
	cmd.Flags().BoolVar(&listSortKeys, "list-sort-keys", false, "Print the accepted sort keys and exit")

	return cmd
}

func renderPage(w io.Writer, page query.Page) error {
	if len(page.Items) == 0 {
		fmt.Fprintf(w, "No items on page %d (%d matching).\n", page.Page, page.Total)
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader([]string{"ID", "SKU", "Name", "Price", "Available"}),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(5, tw.AlignLeft)),
	)

	for _, item := range page.Items {
		if err := table.Append(itemRow(item)); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintf(w, "Page %d of %d, %d matching item(s)\n", page.Page, page.TotalPages, page.Total)
	return nil
}

func itemRow(item model.Item) []string {
	available := "no"
	if item.IsAvailable {
		available = "yes"
	}
	return []string{
		strconv.FormatInt(item.ID, 10),
		item.SKU,
		item.Name,
		strconv.FormatFloat(item.Price, 'f', 2, 64),
		available,
	}
}
