package interfaces

import (
	"context"
	"printshop/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mock_interfaces

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups by external order id return a zero Order (ID == "") when absent.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Order, error)
	UpdateStatusByOrderID(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
	SetPaymentReference(ctx context.Context, orderID string, paymentRef string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
}
