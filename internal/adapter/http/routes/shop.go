package routes

import (
	"printshop/internal/adapter/http/handlers"
	"printshop/internal/adapter/http/middleware"
	"printshop/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing       = "/pricing"
	PathOrders        = "/orders"
	PathServiceStatus = "/service-status"
)

func addPricingRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("", h.GetRates)
		pricing.POST("/calculate", h.Calculate)
	}

	adminPricing := rg.Group(PathPricing, auth, middleware.RequireRole(entities.RoleAdmin))
	{
		adminPricing.GET("/admin", h.GetAdminRates)
		adminPricing.GET("/history", h.ListHistory)
		adminPricing.PUT("", h.UpdateRates)
	}
}

// Ownership of a single order is checked by the use cases; a foreign order
// answers 404.
func addOrderRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, orders *handlers.OrderHandler, payments *handlers.PaymentHandler) {
	authenticated := rg.Group(PathOrders, auth)
	{
		authenticated.POST("", orders.PlaceOrder)
		authenticated.GET("", orders.ListMyOrders)
		authenticated.GET("/:order_id", orders.GetOrder)
		authenticated.POST("/:order_id/payments", payments.CreatePayment)
		authenticated.GET("/:order_id/payments", payments.ListPayments)
	}

	admin := rg.Group(PathOrders, auth, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.PUT("/:order_id/status", orders.UpdateStatus)
		admin.GET("/status/:status", orders.ListByStatus)
	}
}

func addServiceStatusRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.ServiceStatusHandler) {
	status := rg.Group(PathServiceStatus)
	{
		status.GET("", h.List)
		status.GET("/:service", h.Get)
	}

	admin := rg.Group(PathServiceStatus, auth, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.PUT("/:service", h.Set)
	}
}
