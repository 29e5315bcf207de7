package handlers

import (
	"errors"
	"net/http"

	"printshop/internal/usecase"
	"printshop/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapUseCaseError translates the errors shared by every use case.
func mapUseCaseError(err error) *pkg.AppError {
	var validation *usecase.ValidationError
	var partial *usecase.PartialOrderError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("INVALID_REQUEST", validation.Error(), err, http.StatusBadRequest).
			WithDetail("field", validation.Field)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status: expected queued, done or cancelled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidService):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE", "Invalid service name", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateTableNotFound):
		return pkg.NewDomainErrorSimple("RATE_TABLE_NOT_FOUND", "Rate table not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Printing service is currently unavailable", http.StatusServiceUnavailable)
	case errors.As(err, &partial):
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred, please try again", err, http.StatusInternalServerError).
			WithDetail("order_id", partial.OrderID)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred, please try again", err, http.StatusInternalServerError)
	}
}
