// Package domain contains the core data types for the vacation planner.
// Nothing in this package reads input or validates it; callers are expected
// to hand over well-formed values (see internal/prompt and internal/service).
package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the format used for trip start dates, both on input and in
// trip summaries.
const DateLayout = "2006-01-02"

// BudgetWarning is appended to a trip summary when the trip costs more than
// its budget.
const BudgetWarning = "⚠️ Warning: Your trip exceeds your budget!"

// Trip is the aggregate plan binding one destination, the selected hotels and
// the selected activities.
//
// Hotels are part of the plan and appear in the summary, but their prices are
// not counted in TotalCost. Only the daily destination cost and the activity
// costs are.
type Trip struct {
	ID          uuid.UUID
	Destination *Destination // shared with the catalog, never copied
	Days        int
	Budget      decimal.Decimal
	StartDate   time.Time

	hotels     []Hotel
	activities []Activity
}

// NewTrip returns an empty trip to destination. Most callers should go through
// User.PlanTrip so the trip is recorded against the user.
func NewTrip(destination *Destination, days int, budget decimal.Decimal, startDate time.Time) *Trip {
	return &Trip{
		ID:          uuid.New(),
		Destination: destination,
		Days:        days,
		Budget:      budget,
		StartDate:   startDate,
	}
}

// AddHotel appends hotel to the trip. The same hotel may be added twice.
func (t *Trip) AddHotel(hotel Hotel) {
	t.hotels = append(t.hotels, hotel)
}

// AddActivity appends activity to the trip. It is not checked against the
// destination's activity catalog.
func (t *Trip) AddActivity(activity Activity) {
	t.activities = append(t.activities, activity)
}

// Hotels returns the selected hotels in the order they were added.
func (t *Trip) Hotels() []Hotel {
	return slices.Clone(t.hotels)
}

// Activities returns the selected activities in the order they were added.
func (t *Trip) Activities() []Activity {
	return slices.Clone(t.activities)
}

// StayCost is days × destination cost per day.
func (t *Trip) StayCost() decimal.Decimal {
	return t.Destination.CostPerDay.Mul(decimal.NewFromInt(int64(t.Days)))
}

// TotalCost returns StayCost plus the cost of every selected activity.
// Hotel prices are excluded.
func (t *Trip) TotalCost() decimal.Decimal {
	total := t.StayCost()
	for _, a := range t.activities {
		total = total.Add(a.Cost)
	}
	return total
}

// IsWithinBudget reports whether TotalCost does not exceed Budget.
// A trip that costs exactly its budget is within budget.
func (t *Trip) IsWithinBudget() bool {
	return t.TotalCost().LessThanOrEqual(t.Budget)
}

// Details renders the multi-line trip summary printed at the end of planning.
// The budget warning line is present only when TotalCost > Budget.
func (t *Trip) Details() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nTrip to %s, %s:\n", t.Destination.Name, t.Destination.Country)
	fmt.Fprintf(&b, "Start Date: %s, Days: %d, Budget: %s\n\nHotels:\n",
		t.StartDate.Format(DateLayout), t.Days, FormatMoney(t.Budget))

	hotels := make([]string, len(t.hotels))
	for i, h := range t.hotels {
		hotels[i] = h.Details()
	}
	b.WriteString(strings.Join(hotels, "\n"))
	b.WriteString("\n\nActivities:\n")

	activities := make([]string, len(t.activities))
	for i, a := range t.activities {
		activities[i] = a.String()
	}
	b.WriteString(strings.Join(activities, "\n"))

	total := t.TotalCost()
	fmt.Fprintf(&b, "\n\nTotal Estimated Cost: %s\n", FormatMoney(total))
	if total.GreaterThan(t.Budget) {
		b.WriteString(BudgetWarning + "\n")
	}

	return b.String()
}
