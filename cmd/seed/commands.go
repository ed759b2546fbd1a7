package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/reviews"
	"github.com/Modeva-Ecommerce/marketplace-storefront/seed"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every subcommand.
type RootOptions struct {
	File string
}

func (o *RootOptions) load() (*seed.Dataset, error) {
	if o.File != "" {
		return seed.LoadFile(o.File)
	}
	return seed.Default()
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Inspect the storefront seed dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if opts.File == "" {
				opts.File = os.Getenv("SEED_FILE")
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.File, "file", "", "seed YAML file (default: embedded dataset, or SEED_FILE)")

	cmd.AddCommand(
		newValidateCommand(opts),
		newShowCommand(opts),
		newSearchCommand(opts),
	)
	return cmd
}

// ════════════════════════════════════════════════════════════
// validate
// ════════════════════════════════════════════════════════════

func newValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ dataset ok: %d products, %d reviews\n", len(ds.Products), len(ds.Reviews))
			return nil
		},
	}
}

// ════════════════════════════════════════════════════════════
// show
// ════════════════════════════════════════════════════════════

func newShowCommand(opts *RootOptions) *cobra.Command {
	var withReviews bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printProducts(out, ds.Products)

			if withReviews {
				ledger := reviews.NewLedger(ds.Reviews)
				for _, p := range ds.Products {
					list := ledger.ListForProduct(p.ID)
					if len(list) == 0 {
						continue
					}
					fmt.Fprintf(out, "\n%s\n", p.Name)
					for _, r := range list {
						fmt.Fprintf(out, "  %d★ %s (%s): %s\n", r.Rating, r.UserName, r.Date, r.Comment)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withReviews, "reviews", false, "also print the seed reviews")
	return cmd
}

// ════════════════════════════════════════════════════════════
// search
// ════════════════════════════════════════════════════════════

type searchOptions struct {
	Query      string
	Categories []string
	Min, Max   string
	Sort       string
	JSON       bool
}

func newSearchCommand(opts *RootOptions) *cobra.Command {
	so := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a catalog search the way the storefront does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			results := catalog.FilterAndSort(ds.Products, models.Criteria{
				Query:      so.Query,
				Categories: so.Categories,
				MinPrice:   catalog.ParsePriceBound(so.Min),
				MaxPrice:   catalog.ParsePriceBound(so.Max),
				Sort:       catalog.ParseSortKey(so.Sort),
			})

			if so.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(models.NewProductCards(results))
			}
			printProducts(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVar(&so.Query, "q", "", "free-text query")
	cmd.Flags().StringArrayVar(&so.Categories, "category", nil, "category label (repeatable)")
	cmd.Flags().StringVar(&so.Min, "min", "", "inclusive minimum price")
	cmd.Flags().StringVar(&so.Max, "max", "", "inclusive maximum price")
	cmd.Flags().StringVar(&so.Sort, "sort", string(models.SortRelevance), "relevance | price-low | price-high | rating | reviews")
	cmd.Flags().BoolVar(&so.JSON, "json", false, "print product cards as JSON")
	return cmd
}

func printProducts(out io.Writer, products []models.Product) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tREVIEWS")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%d\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Rating, p.Reviews)
	}
	_ = tw.Flush()
	fmt.Fprintf(out, "%d product(s)\n", len(products))
}
