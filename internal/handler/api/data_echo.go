package api

import (
	"errors"

	models "FinFlow/internal/domain/models"
	"FinFlow/internal/usecase"
	xhttp "FinFlow/pkg/http"
	xlogger "FinFlow/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DataEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type DataEchoHandler struct {
	logger        *xlogger.Logger
	kline         *usecase.KlineUseCase
	comprehensive *usecase.ComprehensiveUseCase
	overview      *usecase.OverviewUseCase
	indicators    *usecase.IndicatorsUseCase
	reference     *usecase.ReferenceUseCase
}

func NewDataEchoHandler(
	logger *xlogger.Logger,
	kline *usecase.KlineUseCase,
	comprehensive *usecase.ComprehensiveUseCase,
	overview *usecase.OverviewUseCase,
	indicators *usecase.IndicatorsUseCase,
	reference *usecase.ReferenceUseCase,
) *DataEchoHandler {
	return &DataEchoHandler{
		logger:        logger,
		kline:         kline,
		comprehensive: comprehensive,
		overview:      overview,
		indicators:    indicators,
		reference:     reference,
	}
}

func (h *DataEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/kline", h.Kline)
	g.GET("/comprehensive", h.Comprehensive)
	g.GET("/overview", h.Overview)
	g.POST("/indicators", h.Indicators)
	g.GET("/stocks", h.Stocks)
	g.GET("/calendar", h.Calendar)
}

// errorResponse maps domain errors onto HTTP statuses.
func (h *DataEchoHandler) errorResponse(c echo.Context, op string, err error) error {
	if errors.Is(err, usecase.ErrInvalidSymbol) ||
		errors.Is(err, usecase.ErrUnsupportedMarket) ||
		errors.Is(err, usecase.ErrInvalidDate) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}
	h.logger.Error(op+" usecase error", xlogger.Error(err))
	return xhttp.AppErrorResponse(c, err)
}

func (h *DataEchoHandler) Kline(c echo.Context) error {
	req := &models.KlineRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	bars, err := h.kline.GetKline(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(c, "kline", err)
	}
	return xhttp.SuccessResponse(c, bars)
}

func (h *DataEchoHandler) Comprehensive(c echo.Context) error {
	req := &models.ComprehensiveRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.comprehensive.GetComprehensive(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(c, "comprehensive", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DataEchoHandler) Overview(c echo.Context) error {
	req := &models.OverviewRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.overview.GetOverview(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(c, "overview", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DataEchoHandler) Indicators(c echo.Context) error {
	req := &models.IndicatorsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.indicators.GetIndicators(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(c, "indicators", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DataEchoHandler) Stocks(c echo.Context) error {
	req := &models.StockListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.reference.StockList(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(c, "stocks", err)
	}
	return xhttp.SuccessResponse(c, rows)
}

func (h *DataEchoHandler) Calendar(c echo.Context) error {
	req := &models.CalendarRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.reference.TradingCalendar(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(c, "calendar", err)
	}
	return xhttp.SuccessResponse(c, rows)
}
