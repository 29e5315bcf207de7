package interfaces

import (
	"context"
	"errors"
	"printshop/internal/domain/entities"
)

// ErrRateTableVersionConflict is returned by Create when another writer
// already created the same version.
var ErrRateTableVersionConflict = errors.New("rate table version already exists")

//go:generate mockgen -source=rate_table_repository_interface.go -destination=mocks/rate_table_repository_mock.go -package=mock_interfaces

// IRateTableRepository abstracts DynamoDB persistence for RateTable versions.
//
// GetCurrent returns a zero RateTable (Version == 0) when nothing was created yet.
// Create fails with ErrRateTableVersionConflict when the version already exists.
type IRateTableRepository interface {
	GetCurrent(ctx context.Context) (entities.RateTable, error)
	Create(ctx context.Context, rt entities.RateTable) (entities.RateTable, error)
	ListHistory(ctx context.Context) ([]entities.RateTable, error)
}

// IRateTableCache keeps the current RateTable close to the public pricing endpoint.
type IRateTableCache interface {
	Get(ctx context.Context) (entities.RateTable, bool, error)
	Set(ctx context.Context, rt entities.RateTable) error
}
