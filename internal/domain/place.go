package domain

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Place is anything with a name and a country that can describe itself on a
// single line. Destination and Hotel are the two kinds of place.
type Place interface {
	Details() string
}

// compile-time checks: both place kinds must satisfy Place.
var (
	_ Place = (*Destination)(nil)
	_ Place = Hotel{}
)

// Destination is a travel location with a per-day cost and a fixed catalog
// of bookable activities. Destinations are owned by the catalog and shared
// by reference between every trip that visits them.
type Destination struct {
	Name       string
	Country    string
	CostPerDay decimal.Decimal

	activities []Activity
}

// NewDestination builds a Destination whose activity catalog is the given
// activities, in order.
func NewDestination(name, country string, costPerDay decimal.Decimal, activities ...Activity) *Destination {
	return &Destination{
		Name:       name,
		Country:    country,
		CostPerDay: costPerDay,
		activities: slices.Clone(activities),
	}
}

// Details returns e.g. "Destination: Paris, France, Cost/Day: $150.00".
func (d *Destination) Details() string {
	return fmt.Sprintf("Destination: %s, %s, Cost/Day: %s", d.Name, d.Country, FormatMoney(d.CostPerDay))
}

// ListActivities returns the destination's activity catalog in order.
// The returned slice is a copy; the catalog itself cannot be changed through it.
func (d *Destination) ListActivities() []Activity {
	return slices.Clone(d.activities)
}

// Hotel is a lodging option with a nightly price and a star rating (1-5).
type Hotel struct {
	Name          string
	Country       string
	PricePerNight decimal.Decimal
	Rating        int
}

// NewHotel returns a Hotel. No range check is applied to rating or price.
func NewHotel(name, country string, pricePerNight decimal.Decimal, rating int) Hotel {
	return Hotel{Name: name, Country: country, PricePerNight: pricePerNight, Rating: rating}
}

// Details returns e.g. "Hotel: Hotel Ritz, France, Price/Night: $250.00, Rating: 5⭐".
func (h Hotel) Details() string {
	return fmt.Sprintf("Hotel: %s, %s, Price/Night: %s, Rating: %d⭐",
		h.Name, h.Country, FormatMoney(h.PricePerNight), h.Rating)
}
