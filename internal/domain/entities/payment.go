package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentStatusFromProvider maps a Mercado Pago payment status.
func PaymentStatusFromProvider(status string) PaymentStatus {
	switch status {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "pending", "in_process", "in_mediation":
		return PaymentStatusPending
	default:
		return PaymentStatusRejected
	}
}

// Payment is a checkout payment for an order.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI order_id-index: order_id
//
// ProviderPayloadRaw keeps the original provider body for traceability;
// ProviderPayload is the parsed form, useful for debugging.
type Payment struct {
	ID      string        `json:"id"`
	OrderID string        `json:"order_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
