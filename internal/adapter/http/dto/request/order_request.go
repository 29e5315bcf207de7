package request

import (
	"encoding/json"

	"printshop/internal/domain/entities"
)

// OrderItemRequest is one cart line. Numeric fields accept numbers or numeric
// strings; missing ones are 0.
type OrderItemRequest struct {
	FileURL    string     `json:"file_url"`
	FileName   string     `json:"file_name"`
	Pages      FlexString `json:"pages"`
	PageCount  FlexInt    `json:"page_count"`
	Copies     FlexInt    `json:"copies"`
	Color      string     `json:"color"`
	Sides      string     `json:"sides"`
	Size       string     `json:"size"`
	Schedule   string     `json:"schedule"`
	PickupTime string     `json:"pickup_time"`
}

// PlaceOrderRequest is the checkout payload.
//
// total_amount is kept raw so that a missing or non-numeric value can be
// reported as a validation error instead of a decode failure.
type PlaceOrderRequest struct {
	Items       []OrderItemRequest `json:"items"`
	TotalAmount json.RawMessage    `json:"total_amount" swaggertype:"number"`
}

func (r PlaceOrderRequest) ToSpecs() []entities.PrintJobSpec {
	specs := make([]entities.PrintJobSpec, 0, len(r.Items))
	for _, it := range r.Items {
		specs = append(specs, entities.PrintJobSpec{
			FileURL:    it.FileURL,
			FileName:   it.FileName,
			Pages:      it.Pages.String(),
			PageCount:  it.PageCount.Int(),
			Copies:     it.Copies.Int(),
			Color:      it.Color,
			Sides:      it.Sides,
			Size:       it.Size,
			Schedule:   it.Schedule,
			PickupTime: it.PickupTime,
		})
	}
	return specs
}

// ResolveTotal returns NaN when total_amount is absent or not numeric.
func (r PlaceOrderRequest) ResolveTotal() float64 {
	return parseLooseNumber(r.TotalAmount)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
