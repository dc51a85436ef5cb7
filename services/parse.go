// Package services provides the quoting core: numeric parsing, ledger
// aggregation, currency formatting and the quote export generators.
package services

import (
	"strconv"
	"strings"
)

// ParseAmount converts an es-CL formatted amount string into a number.
// Periods are thousands separators and the comma is the decimal
// separator, so "1.234,50" parses to 1234.5. Malformed or empty input
// yields 0 rather than an error: operators type approximate values
// while a quote is still being drafted.
func ParseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseQuantity parses like ParseAmount except that a blank input
// counts as a single unit: a blank unit price means "no cost line",
// while a blank quantity means "one unit".
func ParseQuantity(raw string) float64 {
	if strings.TrimSpace(raw) == "" {
		return 1
	}
	return ParseAmount(raw)
}
