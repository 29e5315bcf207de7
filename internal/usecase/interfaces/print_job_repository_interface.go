package interfaces

import (
	"context"
	"printshop/internal/domain/entities"
)

//go:generate mockgen -source=print_job_repository_interface.go -destination=mocks/print_job_repository_mock.go -package=mock_interfaces

// IPrintJobRepository abstracts DynamoDB persistence for PrintJob.
//
// The two finders are separate lookup strategies; the caller decides the
// precedence (exact file URL first, then file name substring).
type IPrintJobRepository interface {
	FindByFileURL(ctx context.Context, fileURL string) ([]entities.PrintJob, error)
	FindByFileNameContains(ctx context.Context, fileName string) ([]entities.PrintJob, error)
	Create(ctx context.Context, p entities.PrintJob) (entities.PrintJob, error)
	RelinkToOrder(ctx context.Context, printJobID string, orderID string) (entities.PrintJob, error)
}
