package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pkordes/vacation-planner/internal/domain"
	"github.com/pkordes/vacation-planner/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of a CSV quote.
var csvHeaders = []string{"kind", "name", "unit_cost", "quantity", "amount", "included"}

// buildCSVResponse encodes the trip's cost breakdown as CSV, one row per cost
// line followed by a total row covering the included lines, and wraps it in
// the streaming response type.
func buildCSVResponse(t *domain.Trip) gen.CreateQuote200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, l := range t.CostLines() {
		//nolint:errcheck
		w.Write(costLineToCSVRecord(l))
	}
	//nolint:errcheck
	w.Write([]string{"total", t.Destination.Name, "", "", t.TotalCost().StringFixed(2), "true"})
	w.Flush()

	return gen.CreateQuote200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// costLineToCSVRecord encodes a domain.CostLine as a flat string slice.
func costLineToCSVRecord(l domain.CostLine) []string {
	return []string{
		string(l.Kind),
		l.Name,
		l.UnitCost.StringFixed(2),
		strconv.Itoa(l.Quantity),
		l.Amount.StringFixed(2),
		strconv.FormatBool(l.Included),
	}
}
