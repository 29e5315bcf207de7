package entities

import "time"

// OrderStatus represents the lifecycle of a print order.
//
// Any status may be set from any other one; the only rule is membership in
// the set below.
type OrderStatus string

const (
	OrderStatusQueued    OrderStatus = "queued"
	OrderStatusDone      OrderStatus = "done"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusQueued, OrderStatusDone, OrderStatusCancelled:
		return true
	}
	return false
}

// Item defaults applied when the client leaves a field blank.
const (
	DefaultItemSize  = PaperSizeA4
	DefaultItemColor = "Black & White"
	DefaultItemSides = "Single-sided"
)

// PrintJobSpec is one requested print as submitted at checkout.
type PrintJobSpec struct {
	FileURL    string `json:"file_url"`
	FileName   string `json:"file_name"`
	Pages      string `json:"pages"`
	PageCount  int    `json:"page_count"`
	Copies     int    `json:"copies"`
	Color      string `json:"color"`
	Sides      string `json:"sides"`
	Size       string `json:"size"`
	Schedule   string `json:"schedule"`
	PickupTime string `json:"pickup_time,omitempty"`
}

// OrderItem is a normalized PrintJobSpec frozen into an order together with
// the price computed at checkout.
type OrderItem struct {
	PrintJobSpec
	EstimatedPrice float64 `json:"estimated_price"`
}

// Order is a checkout transaction.
//
// Storage model (DynamoDB):
//   - PK: id (internal record id)
//   - GSI order_id-index: order_id (external identifier shown to users)
//   - GSI user_id-index: user_id / created_at
//   - GSI status-index: status / created_at
//
// TotalAmount is frozen at checkout and never recomputed when rates change.
type Order struct {
	ID               string      `json:"id"`
	OrderID          string      `json:"order_id"`
	UserID           string      `json:"user_id"`
	UserEmail        string      `json:"user_email,omitempty"`
	Items            []OrderItem `json:"items"`
	TotalAmount      float64     `json:"total_amount"`
	Status           OrderStatus `json:"status"`
	PaymentReference string      `json:"payment_reference,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// OrderPlacedNotification is handed to the notifier after checkout.
type OrderPlacedNotification struct {
	Recipient string    `json:"recipient"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	PlacedAt  time.Time `json:"placed_at"`
}
