package request

import "printshop/internal/domain/pricing"

// RateTableUpdateRequest creates the next RateTable version. Omitting
// paper_size_multipliers keeps the current ones.
type RateTableUpdateRequest struct {
	BlackWhite           *float64           `json:"black_white" binding:"required"`
	Color                *float64           `json:"color" binding:"required"`
	DoubleSided          *float64           `json:"double_sided" binding:"required"`
	PaperSizeMultipliers map[string]float64 `json:"paper_size_multipliers"`
	TaxPercentage        *float64           `json:"tax_percentage" binding:"required"`
}

// CalculatePriceRequest asks for a quote. page_count wins over pages when
// both are given.
type CalculatePriceRequest struct {
	Pages     FlexString `json:"pages"`
	PageCount FlexInt    `json:"page_count"`
	Copies    FlexInt    `json:"copies"`
	Color     string     `json:"color"`
	Sides     string     `json:"sides"`
	Size      string     `json:"size"`
}

func (r CalculatePriceRequest) ResolvePageCount() int {
	if n := r.PageCount.Int(); n > 0 {
		return n
	}
	return pricing.PageCount(r.Pages.String())
}
