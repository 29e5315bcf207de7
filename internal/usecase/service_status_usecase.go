package usecase

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"
)

var serviceNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,39}$`)

//go:generate mockgen -source=service_status_usecase.go -destination=../adapter/http/handlers/mocks/service_status_usecase_mock.go -package=mocks

// IServiceStatusUseCase lets admins open and close shop services.
type IServiceStatusUseCase interface {
	List(ctx context.Context) ([]entities.ServiceStatus, error)
	Get(ctx context.Context, service string) (entities.ServiceStatus, error)
	IsAvailable(ctx context.Context, service string) (bool, error)
	Set(ctx context.Context, adminID, service string, available bool, message string) (entities.ServiceStatus, error)
}

type ServiceStatusUseCase struct {
	repo interfaces.IServiceStatusRepository
}

var _ IServiceStatusUseCase = (*ServiceStatusUseCase)(nil)

func NewServiceStatusUseCase(repo interfaces.IServiceStatusRepository) *ServiceStatusUseCase {
	return &ServiceStatusUseCase{repo: repo}
}

func (u *ServiceStatusUseCase) List(ctx context.Context) ([]entities.ServiceStatus, error) {
	statuses, err := u.repo.List(ctx)
	if err != nil {
		return nil, upstream("list service status", err)
	}
	return statuses, nil
}

// Get returns the stored record, or an available placeholder when the
// service was never configured.
func (u *ServiceStatusUseCase) Get(ctx context.Context, service string) (entities.ServiceStatus, error) {
	service = strings.ToLower(strings.TrimSpace(service))
	if !serviceNamePattern.MatchString(service) {
		return entities.ServiceStatus{}, ErrInvalidService
	}
	st, err := u.repo.Get(ctx, service)
	if err != nil {
		return entities.ServiceStatus{}, upstream("load service status", err)
	}
	if st.Service == "" {
		return entities.ServiceStatus{Service: service, Available: true}, nil
	}
	return st, nil
}

func (u *ServiceStatusUseCase) IsAvailable(ctx context.Context, service string) (bool, error) {
	st, err := u.Get(ctx, service)
	if err != nil {
		return false, err
	}
	return st.Available, nil
}

func (u *ServiceStatusUseCase) Set(ctx context.Context, adminID, service string, available bool, message string) (entities.ServiceStatus, error) {
	service = strings.ToLower(strings.TrimSpace(service))
	if !serviceNamePattern.MatchString(service) {
		return entities.ServiceStatus{}, ErrInvalidService
	}
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return entities.ServiceStatus{}, newValidationError("user_id", "is required")
	}

	saved, err := u.repo.Put(ctx, entities.ServiceStatus{
		Service:   service,
		Available: available,
		Message:   strings.TrimSpace(message),
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: adminID,
	})
	if err != nil {
		return entities.ServiceStatus{}, upstream("save service status", err)
	}
	log.Printf("[service-status][usecase] service=%s available=%t by=%s", service, available, adminID)
	return saved, nil
}
