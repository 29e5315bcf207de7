package interfaces

import (
	"context"
	"printshop/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces

// INotifier hands order events to the email pipeline. Delivery is
// fire-and-forget: callers log errors and move on.
type INotifier interface {
	NotifyOrderPlaced(ctx context.Context, n entities.OrderPlacedNotification) error
}
