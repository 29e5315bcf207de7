package entities

import (
	"strings"
	"time"
)

// Supported paper sizes. Sizes outside this list are still accepted by the
// pricing engine and priced with a 1.0 multiplier.
const (
	PaperSizeA4     = "A4"
	PaperSizeA3     = "A3"
	PaperSizeLetter = "Letter"
	PaperSizeLegal  = "Legal"
)

// SupportedPaperSizes lists the sizes every RateTable must price.
var SupportedPaperSizes = []string{PaperSizeA4, PaperSizeA3, PaperSizeLetter, PaperSizeLegal}

// Rate bounds enforced on admin updates.
const (
	MinBlackWhitePrice = 0.1
	MaxBlackWhitePrice = 10.0
	MinColorPrice      = 0.1
	MaxColorPrice      = 20.0
	MaxDoubleSided     = 10.0
	MaxTaxPercentage   = 30.0
)

// RateTable is a versioned pricing configuration.
//
// Storage model (DynamoDB):
//   - PK: pk (constant partition for all versions)
//   - SK: version (number)
//
// Records are append-only: an admin update creates version n+1 and the
// current table is the one with the highest version.
type RateTable struct {
	ID                   string             `json:"id"`
	Version              int                `json:"version"`
	BlackWhite           float64            `json:"black_white"`
	Color                float64            `json:"color"`
	DoubleSided          float64            `json:"double_sided"`
	PaperSizeMultipliers map[string]float64 `json:"paper_size_multipliers"`
	TaxPercentage        float64            `json:"tax_percentage"`
	LastModified         time.Time          `json:"last_modified"`
	ModifiedBy           string             `json:"modified_by"`
}

// DefaultRateTable returns the bootstrap configuration used when no record exists yet.
func DefaultRateTable() RateTable {
	return RateTable{
		Version:     1,
		BlackWhite:  1.0,
		Color:       2.0,
		DoubleSided: 0.5,
		PaperSizeMultipliers: map[string]float64{
			PaperSizeA4:     1.0,
			PaperSizeA3:     1.5,
			PaperSizeLetter: 1.0,
			PaperSizeLegal:  1.2,
		},
		TaxPercentage: 18.0,
		ModifiedBy:    "system",
	}
}

// Multiplier resolves the paper-size multiplier, matching names
// case-insensitively. Unknown or non-positive entries resolve to 1.0.
func (r RateTable) Multiplier(size string) float64 {
	size = strings.TrimSpace(size)
	if m, ok := r.PaperSizeMultipliers[size]; ok && m > 0 {
		return m
	}
	for name, m := range r.PaperSizeMultipliers {
		if strings.EqualFold(name, size) && m > 0 {
			return m
		}
	}
	return 1.0
}

// WithSupportedSizes returns a copy whose multiplier map defines every
// supported size, filling the missing ones with 1.0.
func (r RateTable) WithSupportedSizes() RateTable {
	out := make(map[string]float64, len(r.PaperSizeMultipliers)+len(SupportedPaperSizes))
	for k, v := range r.PaperSizeMultipliers {
		out[k] = v
	}
	for _, size := range SupportedPaperSizes {
		if _, ok := out[size]; !ok {
			out[size] = 1.0
		}
	}
	r.PaperSizeMultipliers = out
	return r
}
