package response

import (
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/domain/pricing"
)

// RateTableResponse is the public rate card.
type RateTableResponse struct {
	BlackWhite           float64            `json:"black_white"`
	Color                float64            `json:"color"`
	DoubleSided          float64            `json:"double_sided"`
	PaperSizeMultipliers map[string]float64 `json:"paper_size_multipliers"`
	TaxPercentage        float64            `json:"tax_percentage"`
	LastModified         time.Time          `json:"last_modified"`
}

// AdminRateTableResponse adds version metadata for the admin console.
type AdminRateTableResponse struct {
	RateTableResponse
	ID         string `json:"id"`
	Version    int    `json:"version"`
	ModifiedBy string `json:"modified_by"`
}

type PriceQuoteResponse struct {
	PageCount int `json:"page_count"`
	Copies    int `json:"copies"`
	pricing.PriceBreakdown
}

func FromRateTable(rt entities.RateTable) RateTableResponse {
	return RateTableResponse{
		BlackWhite:           rt.BlackWhite,
		Color:                rt.Color,
		DoubleSided:          rt.DoubleSided,
		PaperSizeMultipliers: rt.PaperSizeMultipliers,
		TaxPercentage:        rt.TaxPercentage,
		LastModified:         rt.LastModified,
	}
}

func FromRateTableAdmin(rt entities.RateTable) AdminRateTableResponse {
	return AdminRateTableResponse{
		RateTableResponse: FromRateTable(rt),
		ID:                rt.ID,
		Version:           rt.Version,
		ModifiedBy:        rt.ModifiedBy,
	}
}

func FromRateTableHistory(history []entities.RateTable) []AdminRateTableResponse {
	out := make([]AdminRateTableResponse, 0, len(history))
	for _, rt := range history {
		out = append(out, FromRateTableAdmin(rt))
	}
	return out
}
