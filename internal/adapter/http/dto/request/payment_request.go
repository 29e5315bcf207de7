package request

import "encoding/json"

// PaymentCreateRequest is the optional envelope for an order payment.
//
// `payment` is forwarded to the provider as-is; a body without the envelope
// is treated as the provider payload itself.
type PaymentCreateRequest struct {
	Payment json.RawMessage `json:"payment" swaggertype:"object"`
}
