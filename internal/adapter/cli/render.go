package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/format"
)

// Renderer prints listing pages as styled terminal cards.
type Renderer struct {
	out       io.Writer
	formatter *format.Formatter

	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	price   lipgloss.Style
	rating  lipgloss.Style
	current lipgloss.Style
	card    lipgloss.Style
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer, f *format.Formatter) *Renderer {
	if f == nil {
		f = format.NewFormatter(nil)
	}
	return &Renderer{
		out:       out,
		formatter: f,
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		heading:   lipgloss.NewStyle().Bold(true),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		price:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		rating:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		current:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
	}
}

// Listing prints the result count, the active ordering, the page's cards
// and the pagination controls.
func (r *Renderer) Listing(page *domain.ListingPage) {
	fmt.Fprintln(r.out, r.title.Render(page.ResultLabel()))
	fmt.Fprintln(r.out, r.muted.Render(fmt.Sprintf("Sorted by %s (%s)",
		page.Sort.Key.Label(), page.Sort.Direction.Label())))
	fmt.Fprintln(r.out)

	if len(page.Sailings) == 0 {
		fmt.Fprintln(r.out, "No sailings on this page.")
	}

	for _, card := range r.formatter.Cards(page.Sailings) {
		fmt.Fprintln(r.out, r.Card(card))
	}

	if page.TotalPages > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.Pagination(page))
	}
}

// Card renders a single sailing card.
func (r *Renderer) Card(c format.Card) string {
	lines := []string{
		r.heading.Render(c.Title),
		r.muted.Render(fmt.Sprintf("%d nights · %s", c.Nights, c.Region)),
		fmt.Sprintf("%s · %s", c.ShipName, c.Line),
	}

	if c.ShowRating {
		lines = append(lines, r.rating.Render(fmt.Sprintf("★ %.1f (%d reviews)", c.Rating, c.Reviews)))
	}
	if len(c.Route) > 0 {
		lines = append(lines, strings.Join(c.Route, " → "))
	}

	lines = append(lines, c.DateRange)

	if c.ShowPrice {
		lines = append(lines, "From "+r.price.Render(c.PriceLabel))
	}

	return r.card.Render(strings.Join(lines, "\n"))
}

// Pagination renders the page window with prev/next markers,
// e.g. "‹ 1 … 3 4 [5] 6 7 … 10 ›".
func (r *Renderer) Pagination(page *domain.ListingPage) string {
	parts := make([]string, 0, len(page.Window)+2)

	if page.HasPrev() {
		parts = append(parts, "‹")
	}
	for _, e := range page.Window {
		switch {
		case !e.IsClickable():
			parts = append(parts, "…")
		case e.Page == page.Page:
			parts = append(parts, r.current.Render("["+strconv.Itoa(e.Page)+"]"))
		default:
			parts = append(parts, strconv.Itoa(e.Page))
		}
	}
	if page.HasNext() {
		parts = append(parts, "›")
	}

	return strings.Join(parts, " ")
}

// SortOptions prints the selectable sort keys and the default ordering.
func (r *Renderer) SortOptions(options []domain.SortOption, def domain.SortSpec) {
	fmt.Fprintln(r.out, r.title.Render("Sort options"))
	for _, o := range options {
		fmt.Fprintf(r.out, "  %-14s %s\n", o.ID, r.muted.Render(o.Label))
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Directions: %s (%s), %s (%s)\n",
		domain.SortAsc, domain.SortAsc.Label(), domain.SortDesc, domain.SortDesc.Label())
	fmt.Fprintf(r.out, "Default: %s:%s\n", def.Key, def.Direction)
}
