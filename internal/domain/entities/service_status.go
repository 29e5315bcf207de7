package entities

import "time"

// ServicePrinting gates checkout: orders are refused while it is unavailable.
const ServicePrinting = "printing"

// ServiceStatus is the admin-controlled availability of a shop service.
//
// Storage model (DynamoDB):
//   - PK: service
type ServiceStatus struct {
	Service   string    `json:"service"`
	Available bool      `json:"available"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}
