package entities

import "time"

// PrintJob is a persisted print job that may exist before being attached to
// an order. Several print jobs may reference the same file.
//
// Storage model (DynamoDB):
//   - PK: print_job_id
//   - GSI file_url-index: file_url
//   - file_name_lc keeps a lower-cased copy of FileName for substring lookups
type PrintJob struct {
	PrintJobID     string    `json:"print_job_id"`
	FileURL        string    `json:"file_url"`
	FileName       string    `json:"file_name"`
	Copies         int       `json:"copies"`
	Size           string    `json:"size"`
	Color          string    `json:"color"`
	Sides          string    `json:"sides"`
	Pages          string    `json:"pages"`
	Schedule       string    `json:"schedule"`
	EstimatedPrice float64   `json:"estimated_price"`
	OrderID        string    `json:"order_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p PrintJob) Linked() bool {
	return p.OrderID != ""
}
