package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoHotel is the TripRequest.HotelIndex value for a trip without a hotel.
const NoHotel = -1

// TripRequest is a fully parsed set of planning choices: which destination,
// when, for how long, on what budget, and which of the destination's hotel
// suggestions and activities to book. Indexes are 0-based positions in the
// catalog lists.
type TripRequest struct {
	Destination     string
	StartDate       time.Time
	Days            int
	Budget          decimal.Decimal
	HotelIndex      int
	ActivityIndexes []int
}
