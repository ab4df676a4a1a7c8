package service

import (
	"context"
	"errors"

	"golang-stock-catalog/internal/api/dto"
	"golang-stock-catalog/internal/api/repository"
	"golang-stock-catalog/internal/entity"
	"golang-stock-catalog/pkg/logger"
	"golang-stock-catalog/pkg/pagination"

	"gorm.io/gorm"
)

// StockService defines the interface for managing the stock catalog.
type StockService interface {
	CreateStock(ctx context.Context, req *dto.CreateStockRequest) (*dto.StockResponse, error)
	GetStock(ctx context.Context, ticker string) (*dto.StockResponse, error)
	ListStocks(ctx context.Context, sector *string, params pagination.Params) (*dto.StockListResponse, error)
	UpdateStock(ctx context.Context, ticker string, req *dto.UpdateStockRequest) (*dto.StockResponse, error)
	DeleteStock(ctx context.Context, ticker string) error
	SeedDefaultStocks(ctx context.Context) error
}

// NewStockService creates a new stock service.
func NewStockService(stockRepo repository.StockRepository, logger *logger.Logger) StockService {
	return &stockService{stockRepo: stockRepo, logger: logger}
}

type stockService struct {
	stockRepo repository.StockRepository
	logger    *logger.Logger
}

// CreateStock creates a new catalog entry under the normalized ticker. The
// existence pre-check yields the friendly conflict message; the unique index
// closes the race between check and insert.
func (s *stockService) CreateStock(ctx context.Context, req *dto.CreateStockRequest) (*dto.StockResponse, error) {
	ticker := entity.NormalizeTicker(req.Ticker)

	exists, err := s.stockRepo.ExistsByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &entity.TickerConflictError{Ticker: ticker}
	}

	stock := &entity.Stock{
		Ticker:       ticker,
		Name:         req.Name,
		Sector:       req.Sector,
		CurrentPrice: req.CurrentPrice,
		Description:  req.Description,
	}

	if err := s.stockRepo.Create(ctx, stock); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &entity.TickerConflictError{Ticker: ticker}
		}
		s.logger.Error("Failed to create stock", logger.ErrorField(err), logger.Field("ticker", ticker))
		return nil, err
	}

	return mapToStockResponse(stock), nil
}

// GetStock retrieves a stock by raw ticker, normalizing before lookup.
func (s *stockService) GetStock(ctx context.Context, ticker string) (*dto.StockResponse, error) {
	stock, err := s.getStockOrNotFound(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return mapToStockResponse(stock), nil
}

// ListStocks returns one page of the catalog, optionally filtered by sector.
func (s *stockService) ListStocks(ctx context.Context, sector *string, params pagination.Params) (*dto.StockListResponse, error) {
	page, err := s.stockRepo.FindPage(ctx, sector, params)
	if err != nil {
		s.logger.Error("Failed to list stocks", logger.ErrorField(err))
		return nil, err
	}

	stocks := make([]dto.StockResponse, 0, len(page.Items))
	for i := range page.Items {
		stocks = append(stocks, *mapToStockResponse(&page.Items[i]))
	}

	return &dto.StockListResponse{
		Stocks:   stocks,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// UpdateStock applies only the supplied fields. A renamed ticker is normalized
// and, when it actually differs from the stored one, re-checked for uniqueness
// before being adopted.
func (s *stockService) UpdateStock(ctx context.Context, ticker string, req *dto.UpdateStockRequest) (*dto.StockResponse, error) {
	stock, err := s.getStockOrNotFound(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if req.Ticker != nil {
		newTicker := entity.NormalizeTicker(*req.Ticker)
		if newTicker != stock.Ticker {
			exists, err := s.stockRepo.ExistsByTicker(ctx, newTicker)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, &entity.TickerConflictError{Ticker: newTicker}
			}
			stock.Ticker = newTicker
		}
	}
	if req.Name != nil {
		stock.Name = *req.Name
	}
	if req.Sector != nil {
		stock.Sector = req.Sector
	}
	if req.CurrentPrice != nil {
		stock.CurrentPrice = req.CurrentPrice
	}
	if req.Description != nil {
		stock.Description = req.Description
	}

	if err := s.stockRepo.Update(ctx, stock); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &entity.TickerConflictError{Ticker: stock.Ticker}
		}
		s.logger.Error("Failed to update stock", logger.ErrorField(err), logger.Field("ticker", stock.Ticker))
		return nil, err
	}

	return mapToStockResponse(stock), nil
}

// DeleteStock removes a stock by raw ticker.
func (s *stockService) DeleteStock(ctx context.Context, ticker string) error {
	stock, err := s.getStockOrNotFound(ctx, ticker)
	if err != nil {
		return err
	}
	if err := s.stockRepo.Delete(ctx, stock); err != nil {
		s.logger.Error("Failed to delete stock", logger.ErrorField(err), logger.Field("ticker", stock.Ticker))
		return err
	}
	return nil
}

// getStockOrNotFound centralizes normalization and not-found semantics for
// every ticker-addressed operation.
func (s *stockService) getStockOrNotFound(ctx context.Context, ticker string) (*entity.Stock, error) {
	normalized := entity.NormalizeTicker(ticker)
	stock, err := s.stockRepo.FindByTicker(ctx, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &entity.StockNotFoundError{Ticker: normalized}
		}
		return nil, err
	}
	return stock, nil
}

// mapToStockResponse maps an entity.Stock to a dto.StockResponse.
func mapToStockResponse(stock *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:           stock.ID,
		Ticker:       stock.Ticker,
		Name:         stock.Name,
		Sector:       stock.Sector,
		CurrentPrice: stock.CurrentPrice,
		Description:  stock.Description,
	}
}
