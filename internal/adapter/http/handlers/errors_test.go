package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"printshop/internal/usecase"
)

func TestMapUseCaseError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.ValidationError{Field: "items", Reason: "must be a non-empty array"}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid status", usecase.ErrInvalidOrderStatus, http.StatusBadRequest, "INVALID_STATUS"},
		{"invalid service", usecase.ErrInvalidService, http.StatusBadRequest, "INVALID_SERVICE"},
		{"order not found", usecase.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"unavailable", usecase.ErrServiceUnavailable, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"upstream", fmt.Errorf("%w: boom", usecase.ErrUpstream), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapUseCaseError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("got %d %s, want %d %s", appErr.HTTPStatus, appErr.Code, tc.status, tc.code)
			}
		})
	}
}

func TestMapUseCaseError_Details(t *testing.T) {
	appErr := mapUseCaseError(&usecase.ValidationError{Field: "total_amount", Reason: "must be numeric"})
	if appErr.ToHTTPError().Details["field"] != "total_amount" {
		t.Fatalf("expected field detail, got %+v", appErr.Details)
	}

	appErr = mapUseCaseError(&usecase.PartialOrderError{OrderID: "ORD-1", Err: fmt.Errorf("%w: relink", usecase.ErrUpstream)})
	body := appErr.ToHTTPError()
	if appErr.HTTPStatus != http.StatusInternalServerError || body.Details["order_id"] != "ORD-1" {
		t.Fatalf("expected partial order id in body, got %+v", body)
	}
	if body.Message != "An internal error occurred, please try again" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}
