package format

import "github.com/sailing-search/sailing-listing-service/internal/domain"

// Card is the display projection of one sailing.
type Card struct {
	// Title is the title-cased sailing name
	Title string `json:"title"`

	// Region is the destination shown next to the night count
	Region string `json:"region"`

	// Nights is the cruise duration
	Nights int `json:"nights"`

	// Rating and Reviews are shown only when ShowRating is true
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	ShowRating bool    `json:"showRating"`

	// Route is the itinerary as display city names, in stop order
	Route []string `json:"route"`

	// Price is the raw fare; PriceLabel is its display form
	Price      float64 `json:"price"`
	PriceLabel string  `json:"priceLabel"`
	ShowPrice  bool    `json:"showPrice"`

	// ImageURL is the ship image or its fallback
	ImageURL string `json:"imageUrl"`

	// DateRange is the formatted departure/return range
	DateRange string `json:"dateRange"`

	// LogoURL is the cruise line logo or its fallback
	LogoURL string `json:"logoUrl"`

	// Line is the cruise line name
	Line string `json:"line"`

	// ShipName is the ship name
	ShipName string `json:"shipName"`
}

// Card projects a sailing into its display form.
func (f *Formatter) Card(s domain.Sailing) Card {
	return Card{
		Title:      TitleCase(s.Name),
		Region:     s.Region,
		Nights:     s.Duration,
		Rating:     s.Ship.Rating,
		Reviews:    s.Ship.Reviews,
		ShowRating: s.HasRating(),
		Route:      Route(s.Itinerary),
		Price:      s.Price,
		PriceLabel: Price(s.Price),
		ShowPrice:  s.Price > 0,
		ImageURL:   ShipImageURL(s.Ship),
		DateRange:  f.DateRange(s.DepartureDate, s.ReturnDate),
		LogoURL:    LogoURL(s.Ship.Line),
		Line:       s.Ship.Line.Name,
		ShipName:   s.Ship.Name,
	}
}

// Cards projects every sailing, preserving order.
func (f *Formatter) Cards(sailings []domain.Sailing) []Card {
	cards := make([]Card, len(sailings))
	for i, s := range sailings {
		cards[i] = f.Card(s)
	}
	return cards
}
