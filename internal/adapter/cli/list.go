package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/format"
	"github.com/sailing-search/sailing-listing-service/internal/usecase"
)

// Output formats for the list command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// listFlags are the listing controls shared by list and export.
type listFlags struct {
	sort     string
	order    string
	toggle   string
	page     int
	pageSize int
	reset    bool

	pageSet     bool
	pageSizeSet bool
}

func (f *listFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.sort, "sort", "s", "", "Comma-separated key[:direction] list (price, departureDate, duration)")
	fs.StringVarP(&f.order, "order", "o", "", "Default direction for --sort items (asc, desc)")
	fs.StringVarP(&f.toggle, "toggle", "t", "", "Comma-separated sort selector picks applied after --sort")
	fs.IntVarP(&f.page, "page", "p", 1, "1-based page number")
	fs.IntVar(&f.pageSize, "page-size", 0, "Sailings per page (defaults to LISTING_PAGE_SIZE)")
	fs.BoolVar(&f.reset, "reset", false, "Restore the default ordering (ignores --sort)")

	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		f.pageSet = cmd.Flags().Changed("page")
		f.pageSizeSet = cmd.Flags().Changed("page-size")
	}
}

// options converts the flags to use case options.
func (f *listFlags) options(defaultPageSize int) (usecase.ListOptions, error) {
	order := domain.DefaultSortDirection
	if f.order != "" {
		order = domain.SortDirection(strings.ToLower(f.order))
		if !order.IsValid() {
			return usecase.ListOptions{}, fmt.Errorf("%w: --order must be one of: asc, desc", domain.ErrInvalidRequest)
		}
	}

	sorts, err := domain.ParseSortSpecs(f.sort, order)
	if err != nil {
		return usecase.ListOptions{}, fmt.Errorf("%w: --sort: %v", domain.ErrInvalidRequest, err)
	}
	toggles, err := domain.ParseSortKeys(f.toggle)
	if err != nil {
		return usecase.ListOptions{}, fmt.Errorf("%w: --toggle: %v", domain.ErrInvalidRequest, err)
	}
	if len(sorts) == 0 && f.order != "" {
		sorts = []domain.SortSpec{{Key: domain.DefaultSortKey, Direction: order}}
	}

	if f.pageSet && f.page < 1 {
		return usecase.ListOptions{}, fmt.Errorf("%w: --page must be at least 1", domain.ErrInvalidRequest)
	}
	if f.pageSizeSet && f.pageSize < 1 {
		return usecase.ListOptions{}, fmt.Errorf("%w: --page-size must be at least 1", domain.ErrInvalidRequest)
	}

	var page, pageSize *int
	if f.pageSet {
		page = &f.page
	}
	if f.pageSizeSet {
		pageSize = &f.pageSize
	}
	params := domain.NewPaginationParams(page, pageSize, defaultPageSize)

	return usecase.ListOptions{
		Sorts:    sorts,
		Toggles:  toggles,
		Reset:    f.reset,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

func (a *App) newListCommand() *cobra.Command {
	flags := &listFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of sailings",
		Long: `Fetch the sailing list, drop duplicates, apply the requested ordering
and print the requested page.`,
		Example: `  sailctl list
  sailctl list --sort price:desc --page 2
  sailctl list --sort duration,price --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != OutputTable && output != OutputJSON {
				return fmt.Errorf("%w: --output must be one of: table, json", domain.ErrInvalidRequest)
			}

			cfg, page, err := a.listing(cmd.Context(), flags)
			if err != nil {
				return err
			}

			f := format.NewFormatter(nil)
			if output == OutputJSON {
				return writeJSON(a, f, page)
			}

			NewRenderer(a.out, f).Listing(page)
			if cfg.UsesAPI() {
				fmt.Fprintln(a.errOut, "Source:", cfg.Sources.APIURL)
			}
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&output, "output", OutputTable, "Output format (table, json)")
	return cmd
}

// listingJSON is the machine-readable form of a listing page.
type listingJSON struct {
	TotalResults int                `json:"totalResults"`
	Page         int                `json:"page"`
	PageSize     int                `json:"pageSize"`
	TotalPages   int                `json:"totalPages"`
	Sort         domain.SortSpec    `json:"sort"`
	Pagination   []domain.PageEntry `json:"pagination"`
	Sailings     []format.Card      `json:"sailings"`
}

func writeJSON(a *App, f *format.Formatter, page *domain.ListingPage) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(listingJSON{
		TotalResults: page.TotalResults,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		Sort:         page.Sort,
		Pagination:   page.Window,
		Sailings:     f.Cards(page.Sailings),
	})
}

func (a *App) newSortOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort-options",
		Short: "List the available sort keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			NewRenderer(a.out, nil).SortOptions(domain.SortOptions(), domain.DefaultSort())
			return nil
		},
	}
}
