// Package prompt is the console input boundary. Parse functions turn raw text
// into typed values and report malformed input as domain.ErrValidation; the
// Prompter asks again whenever that happens.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pkordes/vacation-planner/internal/domain"
)

// unpaddedDateLayout accepts month and day with or without a leading zero,
// so "2025-6-1" reads the same as "2025-06-01".
const unpaddedDateLayout = "2006-1-2"

// ParseDate parses a YYYY-MM-DD date. Month and day may omit their leading
// zero.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(unpaddedDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", domain.ErrValidation, s)
	}
	return t, nil
}

// ParseDays parses a positive whole number of days.
func ParseDays(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", domain.ErrValidation, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	}
	return n, nil
}

// ParseBudget parses a non-negative decimal amount. A leading "$" is allowed.
func ParseBudget(s string) (decimal.Decimal, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "$")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not an amount", domain.ErrValidation, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	return d, nil
}

// ParseChoice parses a 1-based menu choice between 1 and n and returns it as
// a 0-based index.
func ParseChoice(s string, n int) (int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrValidation, s)
	}
	if c < 1 || c > n {
		return 0, fmt.Errorf("%w: choose a number from 1 to %d", domain.ErrValidation, n)
	}
	return c - 1, nil
}

// ParseChoices parses a comma-separated list of 1-based menu choices, each
// between 1 and n, and returns 0-based indexes in the order given.
// Blank input selects nothing. Repeated choices are kept.
func ParseChoices(s string, n int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		idx, err := ParseChoice(p, n)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}
	return out, nil
}
