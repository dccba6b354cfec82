package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Activity is a single bookable experience with a fixed one-time cost.
// It is a plain value: two activities with the same name and cost are
// indistinguishable, and a trip may hold the same activity more than once.
type Activity struct {
	Name string
	Cost decimal.Decimal
}

// NewActivity returns an Activity. Negative costs are accepted as-is.
func NewActivity(name string, cost decimal.Decimal) Activity {
	return Activity{Name: name, Cost: cost}
}

// String renders the activity as shown in activity lists and trip summaries,
// e.g. "Louvre Museum (Cost: $30.00)".
func (a Activity) String() string {
	return fmt.Sprintf("%s (Cost: %s)", a.Name, FormatMoney(a.Cost))
}
