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

// PricingHandler serves the rate card and price quotes.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetRates godoc
// @Summary      Current rate card
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  response.RateTableResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pricing [get]
func (h *PricingHandler) GetRates(c *gin.Context) {
	rt, err := h.usecase.GetCurrent(c.Request.Context())
	if err != nil {
		log.Printf("[pricing][handler] get rates failed err=%v", err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateTable(rt))
}

// GetAdminRates godoc
// @Summary      Current rate table with version metadata
// @Tags         pricing
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.AdminRateTableResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /pricing/admin [get]
func (h *PricingHandler) GetAdminRates(c *gin.Context) {
	rt, err := h.usecase.CurrentRates(c.Request.Context())
	if err != nil {
		log.Printf("[pricing][handler] get admin rates failed err=%v", err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateTableAdmin(rt))
}

// ListHistory godoc
// @Summary      Every rate table version, newest first
// @Tags         pricing
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.AdminRateTableResponse
// @Router       /pricing/history [get]
func (h *PricingHandler) ListHistory(c *gin.Context) {
	history, err := h.usecase.ListHistory(c.Request.Context())
	if err != nil {
		log.Printf("[pricing][handler] list history failed err=%v", err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateTableHistory(history))
}

// UpdateRates godoc
// @Summary      Publish a new rate table version
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.RateTableUpdateRequest  true  "New rates"
// @Success      200   {object}  response.AdminRateTableResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /pricing [put]
func (h *PricingHandler) UpdateRates(c *gin.Context) {
	var payload request.RateTableUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pricing][handler] invalid rate update payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	who := middleware.IdentityFrom(c)
	rt, err := h.usecase.UpdateRates(c.Request.Context(), who.UserID, usecase.RateTableInput{
		BlackWhite:           *payload.BlackWhite,
		Color:                *payload.Color,
		DoubleSided:          *payload.DoubleSided,
		PaperSizeMultipliers: payload.PaperSizeMultipliers,
		TaxPercentage:        *payload.TaxPercentage,
	})
	if err != nil {
		log.Printf("[pricing][handler] update rates failed user_id=%s err=%v", who.UserID, err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateTableAdmin(rt))
}

// Calculate godoc
// @Summary      Quote a print job against the current rates
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      request.CalculatePriceRequest  true  "Print options"
// @Success      200   {object}  response.PriceQuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /pricing/calculate [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	var payload request.CalculatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	pageCount := payload.ResolvePageCount()
	copies := payload.Copies.Int()
	quote, err := h.usecase.CalculatePrice(c.Request.Context(), pageCount, copies, payload.Color, payload.Sides, payload.Size)
	if err != nil {
		log.Printf("[pricing][handler] calculate failed err=%v", err)
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PriceQuoteResponse{PageCount: pageCount, Copies: copies, PriceBreakdown: quote})
}
