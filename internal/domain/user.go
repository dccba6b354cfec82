package domain

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// User is the traveller doing the planning. Trips accumulate for the life of
// the process and are never removed.
type User struct {
	Name string

	trips []*Trip
}

// NewUser returns a User with no trips.
func NewUser(name string) *User {
	return &User{Name: name}
}

// PlanTrip creates a trip to destination, records it against the user and
// returns it so hotels and activities can be attached.
func (u *User) PlanTrip(destination *Destination, days int, budget decimal.Decimal, startDate time.Time) *Trip {
	trip := NewTrip(destination, days, budget, startDate)
	u.trips = append(u.trips, trip)
	return trip
}

// Trips returns the user's trips in the order they were planned.
func (u *User) Trips() []*Trip {
	return slices.Clone(u.trips)
}

// ViewTrips writes a heading followed by every trip's summary to w.
func (u *User) ViewTrips(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s's Trips:\n", u.Name); err != nil {
		return fmt.Errorf("domain.User.ViewTrips: %w", err)
	}
	for _, t := range u.trips {
		if _, err := fmt.Fprintln(w, t.Details()); err != nil {
			return fmt.Errorf("domain.User.ViewTrips: %w", err)
		}
	}
	return nil
}
