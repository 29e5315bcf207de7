package interfaces

import (
	"context"
	"printshop/internal/domain/entities"
)

//go:generate mockgen -source=service_status_repository_interface.go -destination=mocks/service_status_repository_mock.go -package=mock_interfaces

// IServiceStatusRepository abstracts DynamoDB persistence for ServiceStatus.
// Get returns a zero ServiceStatus (Service == "") when absent.
type IServiceStatusRepository interface {
	Get(ctx context.Context, service string) (entities.ServiceStatus, error)
	List(ctx context.Context) ([]entities.ServiceStatus, error)
	Put(ctx context.Context, s entities.ServiceStatus) (entities.ServiceStatus, error)
}
