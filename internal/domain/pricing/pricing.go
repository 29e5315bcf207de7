// Package pricing converts print options and a rate table into a price.
//
// Everything here is pure: no I/O, no hidden state.
package pricing

import (
	"strings"

	"printshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ColorMode selects the per-page base price.
type ColorMode string

const (
	Monochrome ColorMode = "monochrome"
	Color      ColorMode = "color"
)

// DuplexMode selects whether the double-sided surcharge applies.
type DuplexMode string

const (
	SingleSided DuplexMode = "single"
	DoubleSided DuplexMode = "double"
)

// PriceBreakdown is the result of Estimate. Every value is rounded to two
// decimals on its own, so Total may differ by 0.01 from Subtotal+TaxAmount.
type PriceBreakdown struct {
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"tax_amount"`
	Total        float64 `json:"total"`
	PricePerPage float64 `json:"price_per_page"`
}

// ParseColorMode accepts the values the client sends ("Color", "Black & White", ...).
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "color", "colour", "colored", "full color":
		return Color
	}
	return Monochrome
}

// ParseDuplexMode accepts "double", "Double-sided", "duplex" and friends.
func ParseDuplexMode(s string) DuplexMode {
	v := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(v, "double") || strings.Contains(v, "duplex") {
		return DoubleSided
	}
	return SingleSided
}

// ParsePaperSize canonicalizes the supported sizes; anything else is kept
// as typed and later priced with a 1.0 multiplier.
func ParsePaperSize(s string) string {
	v := strings.TrimSpace(s)
	for _, size := range entities.SupportedPaperSizes {
		if strings.EqualFold(size, v) {
			return size
		}
	}
	return v
}

var hundred = decimal.NewFromInt(100)

// Estimate prices pageCount pages times copies against rates.
//
// Non-positive pageCount or copies yield a zero breakdown instead of an
// error, so live previews can call it with half-typed input.
func Estimate(pageCount, copies int, color ColorMode, duplex DuplexMode, size string, rates entities.RateTable) PriceBreakdown {
	if pageCount <= 0 || copies <= 0 {
		return PriceBreakdown{}
	}

	base := decimal.NewFromFloat(rates.BlackWhite)
	if color == Color {
		base = decimal.NewFromFloat(rates.Color)
	}
	duplexCost := decimal.Zero
	if duplex == DoubleSided {
		duplexCost = decimal.NewFromFloat(rates.DoubleSided)
	}

	pricePerPage := base.Add(duplexCost).Mul(decimal.NewFromFloat(rates.Multiplier(size)))
	subtotal := pricePerPage.Mul(decimal.NewFromInt(int64(pageCount))).Mul(decimal.NewFromInt(int64(copies)))
	tax := subtotal.Mul(decimal.NewFromFloat(rates.TaxPercentage)).Div(hundred)
	total := subtotal.Add(tax)

	return PriceBreakdown{
		Subtotal:     round2(subtotal),
		TaxAmount:    round2(tax),
		Total:        round2(total),
		PricePerPage: round2(pricePerPage),
	}
}

// Round2 rounds a currency value to two decimals, half-up.
func Round2(v float64) float64 {
	return round2(decimal.NewFromFloat(v))
}

// decimal rounds half away from zero, which is half-up for the non-negative
// amounts handled here.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// SumAmounts adds currency values exactly and rounds the result to two decimals.
func SumAmounts(amounts ...float64) float64 {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(decimal.NewFromFloat(a))
	}
	return round2(sum)
}
