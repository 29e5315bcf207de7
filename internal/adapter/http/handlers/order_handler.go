package handlers

import (
	"log"
	"net/http"
	"strings"

	request "printshop/internal/adapter/http/dto/request"
	response "printshop/internal/adapter/http/dto/response"
	"printshop/internal/adapter/http/middleware"
	"printshop/internal/domain/entities"
	"printshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and order fulfillment requests.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// PlaceOrder godoc
// @Summary      Check out a cart of print jobs
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.PlaceOrderRequest  true  "Cart"
// @Success      201   {object}  response.PlaceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	who := middleware.IdentityFrom(c)
	log.Printf("[order][handler] place start user_id=%s items=%d", who.UserID, len(payload.Items))
	res, err := h.usecase.PlaceOrder(c.Request.Context(), who, payload.ToSpecs(), payload.ResolveTotal())
	if err != nil {
		log.Printf("[order][handler] place failed user_id=%s err=%v", who.UserID, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPlaceOrderResult(res))
}

// ListMyOrders returns the caller's own orders, newest first.
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	who := middleware.IdentityFrom(c)
	orders, err := h.usecase.ListByUser(c.Request.Context(), who.UserID)
	if err != nil {
		log.Printf("[order][handler] list own failed user_id=%s err=%v", who.UserID, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	order, err := h.usecase.GetByOrderID(c.Request.Context(), middleware.IdentityFrom(c), orderID)
	if err != nil {
		log.Printf("[order][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateStatus godoc
// @Summary      Set an order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path      string                            true  "Order ID"
// @Param        body      body      request.UpdateOrderStatusRequest  true  "queued, done or cancelled"
// @Success      200       {object}  response.OrderResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapUseCaseError(usecase.ErrInvalidOrderStatus)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := entities.OrderStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	order, err := h.usecase.UpdateStatus(c.Request.Context(), orderID, status)
	if err != nil {
		log.Printf("[order][handler] status update failed order_id=%s status=%s err=%v", orderID, status, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListByStatus(c *gin.Context) {
	status := entities.OrderStatus(strings.ToLower(strings.TrimSpace(c.Param("status"))))
	orders, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		log.Printf("[order][handler] list by status failed status=%s err=%v", status, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}
