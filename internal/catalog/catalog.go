// Package catalog holds the built-in, read-only lookup table of destinations,
// their fixed activity lists, and the hotels suggested for each destination.
//
// A Catalog is built once at startup and handed to whatever needs it. Nothing
// can add to it afterwards, so it is safe to share between goroutines.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/vacation-planner/internal/domain"
)

//go:embed catalog.yaml
var builtin []byte

// Catalog is an immutable set of destinations and hotel suggestions.
// Destinations keep the order they were declared in, which is the order the
// console lists them in.
type Catalog struct {
	destinations []*domain.Destination
	hotels       map[string][]domain.Hotel // keyed by lower-cased destination name
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(builtin)
}

// Parse builds a Catalog from a YAML document with the layout of catalog.yaml.
// Money values must be valid decimals; destination names must be unique.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog.Parse: %w", err)
	}
	if len(doc.Destinations) == 0 {
		return nil, fmt.Errorf("catalog.Parse: no destinations defined")
	}

	c := &Catalog{hotels: make(map[string][]domain.Hotel, len(doc.Destinations))}
	for _, d := range doc.Destinations {
		dest, hotels, err := d.build()
		if err != nil {
			return nil, fmt.Errorf("catalog.Parse: %w", err)
		}
		key := strings.ToLower(dest.Name)
		if _, dup := c.hotels[key]; dup {
			return nil, fmt.Errorf("catalog.Parse: duplicate destination %q", dest.Name)
		}
		c.destinations = append(c.destinations, dest)
		c.hotels[key] = hotels
	}
	return c, nil
}

// Destinations returns every destination in declaration order.
func (c *Catalog) Destinations() []*domain.Destination {
	return slices.Clone(c.destinations)
}

// Destination looks a destination up by name, ignoring case.
// Returns domain.ErrNotFound if there is no such destination.
func (c *Catalog) Destination(name string) (*domain.Destination, error) {
	for _, d := range c.destinations {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("catalog.Destination %q: %w", name, domain.ErrNotFound)
}

// Hotels returns the hotels suggested for the named destination.
// Returns domain.ErrNotFound if there is no such destination.
func (c *Catalog) Hotels(destination string) ([]domain.Hotel, error) {
	hotels, ok := c.hotels[strings.ToLower(destination)]
	if !ok {
		return nil, fmt.Errorf("catalog.Hotels %q: %w", destination, domain.ErrNotFound)
	}
	return slices.Clone(hotels), nil
}

// ---- YAML document ---------------------------------------------------------

type document struct {
	Destinations []destinationDoc `yaml:"destinations"`
}

type destinationDoc struct {
	Name       string        `yaml:"name"`
	Country    string        `yaml:"country"`
	CostPerDay string        `yaml:"cost_per_day"`
	Activities []activityDoc `yaml:"activities"`
	Hotels     []hotelDoc    `yaml:"hotels"`
}

type activityDoc struct {
	Name string `yaml:"name"`
	Cost string `yaml:"cost"`
}

type hotelDoc struct {
	Name          string `yaml:"name"`
	Country       string `yaml:"country"` // defaults to the destination's country
	PricePerNight string `yaml:"price_per_night"`
	Rating        int    `yaml:"rating"`
}

// build converts one destination entry into domain values.
func (d destinationDoc) build() (*domain.Destination, []domain.Hotel, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, nil, fmt.Errorf("destination name is required")
	}
	costPerDay, err := decimal.NewFromString(d.CostPerDay)
	if err != nil {
		return nil, nil, fmt.Errorf("destination %q: cost_per_day: %w", d.Name, err)
	}

	activities := make([]domain.Activity, 0, len(d.Activities))
	for _, a := range d.Activities {
		cost, err := decimal.NewFromString(a.Cost)
		if err != nil {
			return nil, nil, fmt.Errorf("destination %q: activity %q: cost: %w", d.Name, a.Name, err)
		}
		activities = append(activities, domain.NewActivity(a.Name, cost))
	}

	hotels := make([]domain.Hotel, 0, len(d.Hotels))
	for _, h := range d.Hotels {
		price, err := decimal.NewFromString(h.PricePerNight)
		if err != nil {
			return nil, nil, fmt.Errorf("destination %q: hotel %q: price_per_night: %w", d.Name, h.Name, err)
		}
		if h.Rating < 1 || h.Rating > 5 {
			return nil, nil, fmt.Errorf("destination %q: hotel %q: rating %d outside 1-5", d.Name, h.Name, h.Rating)
		}
		country := h.Country
		if country == "" {
			country = d.Country
		}
		hotels = append(hotels, domain.NewHotel(h.Name, country, price, h.Rating))
	}

	return domain.NewDestination(d.Name, d.Country, costPerDay, activities...), hotels, nil
}
