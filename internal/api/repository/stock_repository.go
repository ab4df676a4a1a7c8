package repository

import (
	"context"

	"golang-stock-catalog/internal/entity"
	"golang-stock-catalog/pkg/pagination"

	"gorm.io/gorm"
)

// StockRepository defines the interface for stock data operations. Tickers
// passed in are expected to be normalized already; the repository matches
// them exactly.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	FindByTicker(ctx context.Context, ticker string) (*entity.Stock, error)
	ExistsByTicker(ctx context.Context, ticker string) (bool, error)
	FindPage(ctx context.Context, sector *string, params pagination.Params) (*pagination.Result[entity.Stock], error)
	Update(ctx context.Context, stock *entity.Stock) error
	Delete(ctx context.Context, stock *entity.Stock) error
}

// NewStockRepository creates a new GORM-based stock repository.
func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

type stockRepository struct {
	db *gorm.DB
}

// Create inserts a new stock. The unique index on ticker is the authoritative
// duplicate guard; violations surface as gorm.ErrDuplicatedKey.
func (r *stockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

// FindByTicker retrieves a stock by its exact ticker.
func (r *stockRepository) FindByTicker(ctx context.Context, ticker string) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).Where("ticker = ?", ticker).First(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// ExistsByTicker reports whether a stock with the exact ticker is present.
func (r *stockRepository) ExistsByTicker(ctx context.Context, ticker string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("ticker = ?", ticker).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindPage returns one page of stocks in insertion order, optionally filtered
// by exact sector. The total is counted database-side by the pagination engine.
func (r *stockRepository) FindPage(ctx context.Context, sector *string, params pagination.Params) (*pagination.Result[entity.Stock], error) {
	query := r.db.Model(&entity.Stock{}).Order("created_at, id")
	if sector != nil {
		query = query.Where("sector = ?", *sector)
	}
	return pagination.Paginate[entity.Stock](ctx, query, params)
}

// Update persists all fields of the given stock record.
func (r *stockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// Delete removes the given stock record.
func (r *stockRepository) Delete(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Delete(stock).Error
}
