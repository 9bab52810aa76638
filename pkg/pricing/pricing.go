// Package pricing derives stay length and cost from a date range and a nightly rate.
//
// Stored booking prices come from TotalPrice only. Taxes are an explicit
// invoice-time surcharge (BuildInvoice) and are never folded into TotalPrice.
package pricing

import (
	"math"
	"time"
)

// DefaultTaxRate is the surcharge applied on invoices.
const DefaultTaxRate = 0.10

const day = 24 * time.Hour

// Nights returns ceil(checkOut - checkIn) in days, or 0 when the range is empty or inverted.
// Callers treat 0 as incomplete input and must not price it.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

// TotalPrice returns nights * nightlyRate. No rounding, no fees.
func TotalPrice(nights int, nightlyRate float64) float64 {
	if nights <= 0 {
		return 0
	}
	return float64(nights) * nightlyRate
}

// Invoice is the priced breakdown shown to a guest.
type Invoice struct {
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`
	Subtotal    float64 `json:"subtotal"`
	TaxRate     float64 `json:"tax_rate"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// BuildInvoice adds the tax line on top of the stay subtotal.
func BuildInvoice(nights int, nightlyRate, taxRate float64) Invoice {
	subtotal := TotalPrice(nights, nightlyRate)
	tax := subtotal * taxRate
	return Invoice{
		Nights:      nights,
		NightlyRate: nightlyRate,
		Subtotal:    subtotal,
		TaxRate:     taxRate,
		Tax:         tax,
		Total:       subtotal + tax,
	}
}
