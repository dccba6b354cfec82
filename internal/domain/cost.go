package domain

import "github.com/shopspring/decimal"

// CostKind identifies what a CostLine is charging for.
type CostKind string

const (
	CostKindStay     CostKind = "stay"
	CostKindActivity CostKind = "activity"
	CostKindHotel    CostKind = "hotel"
)

// CostLine is one item of a trip's cost breakdown.
// It is a flat row, suitable for CSV: Amount is always Quantity × UnitCost.
//
// Included is false for lines shown for information only (hotels). The
// amounts of the included lines add up to Trip.TotalCost.
type CostLine struct {
	Kind     CostKind
	Name     string
	UnitCost decimal.Decimal
	Quantity int
	Amount   decimal.Decimal
	Included bool
}

// CostLines returns the itemised breakdown of the trip: the stay first, then
// each activity, then each hotel priced for every day of the trip.
func (t *Trip) CostLines() []CostLine {
	lines := make([]CostLine, 0, 1+len(t.activities)+len(t.hotels))

	lines = append(lines, CostLine{
		Kind:     CostKindStay,
		Name:     t.Destination.Name,
		UnitCost: t.Destination.CostPerDay,
		Quantity: t.Days,
		Amount:   t.StayCost(),
		Included: true,
	})
	for _, a := range t.activities {
		lines = append(lines, CostLine{
			Kind:     CostKindActivity,
			Name:     a.Name,
			UnitCost: a.Cost,
			Quantity: 1,
			Amount:   a.Cost,
			Included: true,
		})
	}
	for _, h := range t.hotels {
		lines = append(lines, CostLine{
			Kind:     CostKindHotel,
			Name:     h.Name,
			UnitCost: h.PricePerNight,
			Quantity: t.Days,
			Amount:   h.PricePerNight.Mul(decimal.NewFromInt(int64(t.Days))),
		})
	}

	return lines
}

// FormatMoney renders d as dollars with two decimals, e.g. "$830.00".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
