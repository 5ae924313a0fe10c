package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"flx-labs/stay-sip/internal/catalog"
	"flx-labs/stay-sip/internal/config"
	"flx-labs/stay-sip/internal/filter"
	"flx-labs/stay-sip/internal/logging"
	"flx-labs/stay-sip/internal/models"
)

var listFlags struct {
	lakes       []string
	categories  []string
	maxPrice    float64
	minPrice    float64
	search      string
	tastings    bool
	minCapacity int
}

var listCmd = &cobra.Command{
	Use:   "list [collection]",
	Short: "Print a filtered collection to the terminal",
	Long: `Loads one collection and prints the records matching the given
filters, in source order.

Examples:
  stay-sip list stays --lake Keuka --max-price 250
  stay-sip list wineries --tastings --search "riesling"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: catalog.Names,
	Run: func(cmd *cobra.Command, args []string) {
		runList(cmd, args[0])
	},
}

func init() {
	listCmd.Flags().StringSliceVar(&listFlags.lakes, "lake", nil, "lake(s) to include")
	listCmd.Flags().StringSliceVar(&listFlags.categories, "category", nil, "category/tag value(s) to include")
	listCmd.Flags().Float64Var(&listFlags.maxPrice, "max-price", 0, "maximum price per night")
	listCmd.Flags().Float64Var(&listFlags.minPrice, "min-price", 0, "minimum price per night")
	listCmd.Flags().StringVar(&listFlags.search, "search", "", "case-insensitive substring over name/description")
	listCmd.Flags().BoolVar(&listFlags.tastings, "tastings", false, "only wineries offering tastings")
	listCmd.Flags().IntVar(&listFlags.minCapacity, "min-capacity", 0, "minimum venue capacity")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, name string) {
	appCfg := config.FromEnv()
	logger := logging.New(logging.Options{Level: "warn", Color: appCfg.LogColor})

	loader, err := catalog.NewLoader(appCfg.DataDir, logger)
	if err != nil {
		logger.Error("failed to build loader", "error", err)
		os.Exit(1)
	}

	records, err := loader.Load(name)
	if err != nil {
		logger.Error("failed to load collection", "collection", name, "error", err)
		os.Exit(1)
	}

	criteria := filter.Criteria{
		Lakes:        listFlags.lakes,
		Categories:   listFlags.categories,
		Search:       listFlags.search,
		TastingsOnly: listFlags.tastings,
	}
	if cmd.Flags().Changed("max-price") {
		criteria.MaxPrice = &listFlags.maxPrice
	}
	if cmd.Flags().Changed("min-price") {
		criteria.MinPrice = &listFlags.minPrice
	}
	if cmd.Flags().Changed("min-capacity") {
		criteria.MinCapacity = &listFlags.minCapacity
	}

	matched := filter.Apply(records, criteria)
	if len(matched) == 0 {
		fmt.Println("No results. Try broadening filters.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLAKE\tCATEGORY\tPRICE")
	for _, r := range matched {
		price := "-"
		if r.HasPrice() {
			price = fmt.Sprintf("$%.0f", r.Price())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.DisplayName(), orDash(r.Lake), orDash(categoryLabel(r)), price)
	}
	w.Flush()
	fmt.Printf("\n%d of %d records matched.\n", len(matched), len(records))
}

func categoryLabel(r models.ListingRecord) string {
	return strings.Join(r.CategoryTerms(), ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
