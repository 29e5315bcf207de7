package response

import (
	"time"

	"printshop/internal/domain/entities"
)

type ServiceStatusResponse struct {
	Service   string    `json:"service"`
	Available bool      `json:"available"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func FromServiceStatus(s entities.ServiceStatus) ServiceStatusResponse {
	return ServiceStatusResponse{
		Service:   s.Service,
		Available: s.Available,
		Message:   s.Message,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromServiceStatuses(statuses []entities.ServiceStatus) []ServiceStatusResponse {
	out := make([]ServiceStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, FromServiceStatus(s))
	}
	return out
}
