package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printshop/internal/adapter/http/handlers/mocks"
	"printshop/internal/domain/entities"
	"printshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))

		r := newTestRouter(student())
		r.POST("/v1/orders/:order_id/payments", h.CreatePayment)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-1/payments", bytes.NewBufferString("{")))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))

		r := newTestRouter(student())
		r.POST("/v1/orders/:order_id/payments", h.CreatePayment)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-1/payments", bytes.NewBufferString(`{"payment":null}`)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unwraps envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(student())
		r.POST("/v1/orders/:order_id/payments", h.CreatePayment)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), student(), "ORD-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Identity, orderID string, payload json.RawMessage) (entities.Payment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", payload)
				}
				return entities.Payment{ID: "123", OrderID: orderID, Amount: 23.6, Date: now, Status: entities.PaymentStatusApproved}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-1/payments", bytes.NewBufferString(`{"payment":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "123" || body["status"] != "approved" || body["amount"] != 23.6 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("raw body is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(student())
		r.POST("/v1/orders/:order_id/payments", h.CreatePayment)

		raw := `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`
		uc.EXPECT().CreateAndApprove(gomock.Any(), gomock.Any(), "ORD-1", json.RawMessage(raw)).
			Return(entities.Payment{ID: "1", Status: entities.PaymentStatusPending}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-1/payments", bytes.NewBufferString(raw)))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("mock mode tolerates unreadable body", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(student())
		r.POST("/v1/orders/:order_id/payments", h.CreatePayment)

		uc.EXPECT().CreateAndApprove(gomock.Any(), gomock.Any(), "ORD-1", json.RawMessage("{}")).
			Return(entities.Payment{ID: "MOCK-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest, "PAYMENT_PROVIDER_INVALID_USERS"},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_UNAVAILABLE"},
		{usecase.ErrOrderNotPayable, http.StatusConflict, "ORDER_NOT_PAYABLE"},
		{usecase.ErrOrderAlreadyPaid, http.StatusConflict, "ORDER_ALREADY_PAID"},
		{usecase.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapPaymentError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("%v: got %d %s, want %d %s", tc.err, appErr.HTTPStatus, appErr.Code, tc.status, tc.code)
		}
	}
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := newTestRouter(student())
	r.GET("/v1/orders/:order_id/payments", h.ListPayments)

	gomock.InOrder(
		uc.EXPECT().ListByOrderID(gomock.Any(), student(), "ORD-1").Return([]entities.Payment{{ID: "2"}, {ID: "1"}}, nil),
		uc.EXPECT().ListByOrderID(gomock.Any(), student(), "ORD-2").Return(nil, usecase.ErrOrderNotFound),
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/ORD-1/payments", nil))
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 || body[0]["payment_id"] != "2" {
		t.Fatalf("unexpected body %s err=%v", w.Body.String(), err)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/ORD-2/payments", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReadPaymentPayload_EmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("  "))

	payload, err := readPaymentPayload(c)
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected empty object, got %s err=%v", payload, err)
	}
}
