package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printshop/internal/adapter/http/handlers"
	"printshop/internal/adapter/http/handlers/mocks"
	"printshop/internal/adapter/http/middleware"
	"printshop/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

type testAPI struct {
	router   *gin.Engine
	pricing  *mocks.MockIPricingUseCase
	orders   *mocks.MockIOrderUseCase
	payments *mocks.MockIPaymentUseCase
	statuses *mocks.MockIServiceStatusUseCase
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	api := testAPI{
		router:   gin.New(),
		pricing:  mocks.NewMockIPricingUseCase(ctrl),
		orders:   mocks.NewMockIOrderUseCase(ctrl),
		payments: mocks.NewMockIPaymentUseCase(ctrl),
		statuses: mocks.NewMockIServiceStatusUseCase(ctrl),
	}
	auth := middleware.JWTAuth(testSecret)
	v1 := api.router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, auth, handlers.NewPricingHandler(api.pricing))
	addOrderRoutes(v1, auth, handlers.NewOrderHandler(api.orders), handlers.NewPaymentHandler(api.payments))
	addServiceStatusRoutes(v1, auth, handlers.NewServiceStatusHandler(api.statuses))
	return api
}

func token(t *testing.T, sub, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + s
}

func (api testAPI) do(method, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	api := newTestAPI(t)
	if w := api.do(http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	api := newTestAPI(t)
	api.pricing.EXPECT().GetCurrent(gomock.Any()).Return(entities.DefaultRateTable(), nil)
	api.statuses.EXPECT().List(gomock.Any()).Return(nil, nil)
	api.statuses.EXPECT().Get(gomock.Any(), "printing").Return(entities.ServiceStatus{Service: "printing", Available: true}, nil)

	for _, path := range []string{"/v1/pricing", "/v1/service-status", "/v1/service-status/printing"} {
		if w := api.do(http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestProtectedRoutes(t *testing.T) {
	cases := []struct {
		method string
		path   string
		authz  func(t *testing.T) string
		want   int
	}{
		{http.MethodGet, "/v1/orders", func(*testing.T) string { return "" }, http.StatusUnauthorized},
		{http.MethodGet, "/v1/orders/ORD-1", func(*testing.T) string { return "Bearer garbage" }, http.StatusUnauthorized},
		{http.MethodPut, "/v1/pricing", func(t *testing.T) string { return token(t, "u1", "student") }, http.StatusForbidden},
		{http.MethodGet, "/v1/pricing/history", func(t *testing.T) string { return token(t, "u1", "") }, http.StatusForbidden},
		{http.MethodPut, "/v1/orders/ORD-1/status", func(t *testing.T) string { return token(t, "u1", "student") }, http.StatusForbidden},
		{http.MethodGet, "/v1/orders/status/queued", func(t *testing.T) string { return token(t, "u1", "student") }, http.StatusForbidden},
		{http.MethodPut, "/v1/service-status/printing", func(*testing.T) string { return "" }, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			api := newTestAPI(t)
			if w := api.do(tc.method, tc.path, tc.authz(t)); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestAuthenticatedRoutesReceiveIdentity(t *testing.T) {
	api := newTestAPI(t)
	who := entities.Identity{UserID: "u1", Role: entities.RoleStudent}

	api.orders.EXPECT().ListByUser(gomock.Any(), "u1").Return(nil, nil)
	api.orders.EXPECT().GetByOrderID(gomock.Any(), who, "ORD-1").Return(entities.Order{OrderID: "ORD-1", UserID: "u1"}, nil)
	api.payments.EXPECT().ListByOrderID(gomock.Any(), who, "ORD-1").Return(nil, nil)
	api.orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusQueued).Return(nil, nil)

	authz := token(t, "u1", "student")
	for _, path := range []string{"/v1/orders", "/v1/orders/ORD-1", "/v1/orders/ORD-1/payments"} {
		if w := api.do(http.MethodGet, path, authz); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}

	if w := api.do(http.MethodGet, "/v1/orders/status/queued", token(t, "a1", "admin")); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}
