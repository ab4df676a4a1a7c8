package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-stock-catalog/internal/api/dto"
	"golang-stock-catalog/internal/api/service"
	"golang-stock-catalog/internal/entity"
	"golang-stock-catalog/pkg/logger"
	"golang-stock-catalog/pkg/pagination"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// StockHandler handles HTTP requests for the stock catalog.
type StockHandler struct {
	stockService service.StockService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateStock)
	g.POST("/", h.CreateStock)
	g.GET("", h.ListStocks)
	g.GET("/", h.ListStocks)
	g.POST("/seed", h.SeedStocks)
	g.GET("/:ticker", h.GetStock)
	g.PATCH("/:ticker", h.UpdateStock)
	g.DELETE("/:ticker", h.DeleteStock)
}

// CreateStock godoc
// @Summary Create a new stock
// @Description Create a new catalog entry; the ticker is normalized and must be unique
// @Tags stocks
// @Accept  json
// @Produce  json
// @Param   stock  body    dto.CreateStockRequest   true    "Stock to create"
// @Success 201 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /stocks [post]
func (h *StockHandler) CreateStock(c echo.Context) error {
	var req dto.CreateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: err.Error()})
	}

	stock, err := h.stockService.CreateStock(c.Request().Context(), &req)
	if err != nil {
		return h.translateError(c, err)
	}

	return c.JSON(http.StatusCreated, stock)
}

// ListStocks godoc
// @Summary List stocks
// @Description Get one page of the catalog, optionally filtered by exact sector
// @Tags stocks
// @Produce  json
// @Param   page       query   int     false   "Page number (default 1)"
// @Param   page_size  query   int     false   "Items per page (default 10, max 100)"
// @Param   sector     query   string  false   "Exact sector filter"
// @Success 200 {object} dto.StockListResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /stocks [get]
func (h *StockHandler) ListStocks(c echo.Context) error {
	page, err := queryIntParam(c, "page", defaultPage)
	if err != nil || page < 1 {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "page must be an integer greater than or equal to 1"})
	}
	pageSize, err := queryIntParam(c, "page_size", defaultPageSize)
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "page_size must be an integer between 1 and 100"})
	}

	var sector *string
	if v := c.QueryParam("sector"); v != "" {
		sector = &v
	}

	list, err := h.stockService.ListStocks(c.Request().Context(), sector, pagination.Params{Page: page, PageSize: pageSize})
	if err != nil {
		return h.translateError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

// GetStock godoc
// @Summary Get a stock by ticker
// @Description Get a single stock; the ticker is case- and whitespace-insensitive
// @Tags stocks
// @Produce  json
// @Param   ticker  path    string  true    "Ticker symbol"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stocks/{ticker} [get]
func (h *StockHandler) GetStock(c echo.Context) error {
	stock, err := h.stockService.GetStock(c.Request().Context(), c.Param("ticker"))
	if err != nil {
		return h.translateError(c, err)
	}
	return c.JSON(http.StatusOK, stock)
}

// UpdateStock godoc
// @Summary Update a stock
// @Description Apply a partial update; omitted fields keep their stored values
// @Tags stocks
// @Accept  json
// @Produce  json
// @Param   ticker  path    string                  true    "Ticker symbol"
// @Param   stock   body    dto.UpdateStockRequest  true    "Fields to update"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /stocks/{ticker} [patch]
func (h *StockHandler) UpdateStock(c echo.Context) error {
	var req dto.UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: err.Error()})
	}

	stock, err := h.stockService.UpdateStock(c.Request().Context(), c.Param("ticker"), &req)
	if err != nil {
		return h.translateError(c, err)
	}

	return c.JSON(http.StatusOK, stock)
}

// DeleteStock godoc
// @Summary Delete a stock
// @Description Remove a stock by ticker
// @Tags stocks
// @Produce  json
// @Param   ticker  path    string  true    "Ticker symbol"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Router /stocks/{ticker} [delete]
func (h *StockHandler) DeleteStock(c echo.Context) error {
	if err := h.stockService.DeleteStock(c.Request().Context(), c.Param("ticker")); err != nil {
		return h.translateError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SeedStocks godoc
// @Summary Seed the catalog with sample stocks
// @Description Insert the fixed sample catalog, skipping tickers that already exist
// @Tags stocks
// @Produce  json
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/seed [post]
func (h *StockHandler) SeedStocks(c echo.Context) error {
	if err := h.stockService.SeedDefaultStocks(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Error seeding stocks: " + err.Error()})
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Dummy stocks seeded successfully"})
}

// translateError maps domain errors onto their boundary status codes.
func (h *StockHandler) translateError(c echo.Context, err error) error {
	var notFound *entity.StockNotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: notFound.Error()})
	}

	var conflict *entity.TickerConflictError
	if errors.As(err, &conflict) {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: conflict.Error()})
	}

	h.logger.Error("Unexpected error handling stock request", logger.ErrorField(err))
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal server error"})
}

// queryIntParam parses an optional integer query parameter.
func queryIntParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
