package handlers

import (
	"log"
	"net/http"

	request "printshop/internal/adapter/http/dto/request"
	response "printshop/internal/adapter/http/dto/response"
	"printshop/internal/adapter/http/middleware"
	"printshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceStatusHandler exposes the open/closed state of shop services.
type ServiceStatusHandler struct {
	usecase usecase.IServiceStatusUseCase
}

func NewServiceStatusHandler(uc usecase.IServiceStatusUseCase) *ServiceStatusHandler {
	return &ServiceStatusHandler{usecase: uc}
}

func (h *ServiceStatusHandler) List(c *gin.Context) {
	statuses, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[service-status][handler] list failed err=%v", err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceStatuses(statuses))
}

func (h *ServiceStatusHandler) Get(c *gin.Context) {
	service := c.Param("service")
	st, err := h.usecase.Get(c.Request.Context(), service)
	if err != nil {
		log.Printf("[service-status][handler] get failed service=%s err=%v", service, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceStatus(st))
}

// Set godoc
// @Summary      Open or close a shop service
// @Tags         service-status
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        service  path      string                              true  "Service name, e.g. printing"
// @Param        body     body      request.ServiceStatusUpdateRequest  true  "Availability"
// @Success      200      {object}  response.ServiceStatusResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /service-status/{service} [put]
func (h *ServiceStatusHandler) Set(c *gin.Context) {
	var payload request.ServiceStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	service := c.Param("service")
	who := middleware.IdentityFrom(c)
	st, err := h.usecase.Set(c.Request.Context(), who.UserID, service, *payload.Available, payload.Message)
	if err != nil {
		log.Printf("[service-status][handler] set failed service=%s err=%v", service, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[service-status][handler] set service=%s available=%t by=%s", st.Service, st.Available, who.UserID)
	c.JSON(http.StatusOK, response.FromServiceStatus(st))
}
