package service

import (
	"context"
	"testing"

	"golang-stock-catalog/internal/api/dto"
	"golang-stock-catalog/internal/api/repository"
	"golang-stock-catalog/internal/entity"
	"golang-stock-catalog/pkg/logger"
	"golang-stock-catalog/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStockService(t *testing.T) StockService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&entity.Stock{}), "failed to migrate table")

	appLogger, err := logger.New("error", "json")
	require.NoError(t, err)

	return NewStockService(repository.NewStockRepository(db), appLogger)
}

func createStock(t *testing.T, svc StockService, ticker, name string) *dto.StockResponse {
	t.Helper()

	stock, err := svc.CreateStock(context.Background(), &dto.CreateStockRequest{Ticker: ticker, Name: name})
	require.NoError(t, err)
	return stock
}

func TestStockService_CreateStock(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)

	price := 9800.0
	sector := "Banking"
	stock, err := svc.CreateStock(context.Background(), &dto.CreateStockRequest{
		Ticker:       "  bbca  ",
		Name:         "PT Bank Central Asia Tbk",
		Sector:       &sector,
		CurrentPrice: &price,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, stock.ID)
	assert.Equal(t, "BBCA", stock.Ticker, "stored ticker should be normalized")
	assert.Equal(t, "PT Bank Central Asia Tbk", stock.Name)
	require.NotNil(t, stock.Sector)
	assert.Equal(t, "Banking", *stock.Sector)
}

func TestStockService_CreateStock_DuplicateTicker(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)
	createStock(t, svc, "BBCA", "PT Bank Central Asia Tbk")

	tests := []struct {
		name   string
		ticker string
	}{
		{name: "exact duplicate", ticker: "BBCA"},
		{name: "lowercase duplicate", ticker: "bbca"},
		{name: "whitespace and case duplicate", ticker: "  BbCa  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateStock(context.Background(), &dto.CreateStockRequest{Ticker: tt.ticker, Name: "Impostor"})

			var conflict *entity.TickerConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, "BBCA", conflict.Ticker)
			assert.EqualError(t, err, "Stock with ticker BBCA already exists")
		})
	}

	// A distinct ticker still goes through.
	created := createStock(t, svc, "BMRI", "PT Bank Mandiri (Persero) Tbk")
	assert.Equal(t, "BMRI", created.Ticker)
}

func TestStockService_GetStock_NormalizedLookup(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)
	created := createStock(t, svc, "BBCA", "PT Bank Central Asia Tbk")

	for _, raw := range []string{"BBCA", "bbca", "BbCa", " bbca "} {
		stock, err := svc.GetStock(context.Background(), raw)
		require.NoError(t, err, "lookup via %q should hit the same record", raw)
		assert.Equal(t, created.ID, stock.ID)
	}
}

func TestStockService_GetStock_NotFound(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)

	_, err := svc.GetStock(context.Background(), " unkn ")

	var notFound *entity.StockNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "UNKN", notFound.Ticker, "message should carry the normalized ticker")
	assert.EqualError(t, err, "Stock with ticker UNKN not found")
}

func TestStockService_ListStocks(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)
	require.NoError(t, svc.SeedDefaultStocks(context.Background()))
	createStock(t, svc, "TLKM", "PT Telkom Indonesia (Persero) Tbk")

	list, err := svc.ListStocks(context.Background(), nil, pagination.Params{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, list.Total)
	assert.Len(t, list.Stocks, 2)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 2, list.PageSize)

	banking := "Banking"
	filtered, err := svc.ListStocks(context.Background(), &banking, pagination.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, filtered.Total)
	require.Len(t, filtered.Stocks, 3)
	for _, s := range filtered.Stocks {
		require.NotNil(t, s.Sector)
		assert.Equal(t, "Banking", *s.Sector)
	}
}

func TestStockService_UpdateStock_PartialUpdate(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)

	sector := "Banking"
	desc := "Largest private bank in Indonesia"
	created, err := svc.CreateStock(context.Background(), &dto.CreateStockRequest{
		Ticker:      "BBCA",
		Name:        "PT Bank Central Asia Tbk",
		Sector:      &sector,
		Description: &desc,
	})
	require.NoError(t, err)

	price := 100.0
	updated, err := svc.UpdateStock(context.Background(), "BBCA", &dto.UpdateStockRequest{CurrentPrice: &price})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "identifier must survive updates")
	require.NotNil(t, updated.CurrentPrice)
	assert.Equal(t, 100.0, *updated.CurrentPrice)
	assert.Equal(t, "PT Bank Central Asia Tbk", updated.Name, "omitted fields keep prior values")
	require.NotNil(t, updated.Sector)
	assert.Equal(t, "Banking", *updated.Sector)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
}

func TestStockService_UpdateStock_RenameTicker(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)
	createStock(t, svc, "BBCA", "PT Bank Central Asia Tbk")
	createStock(t, svc, "BMRI", "PT Bank Mandiri (Persero) Tbk")

	// Renaming onto a taken ticker conflicts.
	taken := "bmri"
	_, err := svc.UpdateStock(context.Background(), "BBCA", &dto.UpdateStockRequest{Ticker: &taken})
	var conflict *entity.TickerConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "BMRI", conflict.Ticker)

	// Re-submitting the current ticker in a different case is a no-op, not a conflict.
	same := " bbca "
	updated, err := svc.UpdateStock(context.Background(), "BBCA", &dto.UpdateStockRequest{Ticker: &same})
	require.NoError(t, err)
	assert.Equal(t, "BBCA", updated.Ticker)

	// Renaming onto a free ticker adopts the normalized value.
	free := " bnga "
	updated, err = svc.UpdateStock(context.Background(), "BBCA", &dto.UpdateStockRequest{Ticker: &free})
	require.NoError(t, err)
	assert.Equal(t, "BNGA", updated.Ticker)

	_, err = svc.GetStock(context.Background(), "BBCA")
	var notFound *entity.StockNotFoundError
	assert.ErrorAs(t, err, &notFound, "old ticker should no longer resolve")
}

func TestStockService_UpdateStock_NotFound(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)

	name := "Ghost"
	_, err := svc.UpdateStock(context.Background(), "NONE", &dto.UpdateStockRequest{Name: &name})

	var notFound *entity.StockNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStockService_DeleteStock(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)
	createStock(t, svc, "BBCA", "PT Bank Central Asia Tbk")

	require.NoError(t, svc.DeleteStock(context.Background(), "bbca"))

	_, err := svc.GetStock(context.Background(), "BBCA")
	var notFound *entity.StockNotFoundError
	assert.ErrorAs(t, err, &notFound)

	err = svc.DeleteStock(context.Background(), "BBCA")
	assert.ErrorAs(t, err, &notFound, "second delete should report not found")
}

func TestStockService_SeedDefaultStocks_Idempotent(t *testing.T) {
	t.Parallel()

	svc := setupStockService(t)

	require.NoError(t, svc.SeedDefaultStocks(context.Background()))
	require.NoError(t, svc.SeedDefaultStocks(context.Background()), "second seed run should skip existing tickers")

	list, err := svc.ListStocks(context.Background(), nil, pagination.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 4, list.Total)

	tickers := make([]string, 0, len(list.Stocks))
	for _, s := range list.Stocks {
		tickers = append(tickers, s.Ticker)
	}
	assert.ElementsMatch(t, []string{"BBCA", "BMRI", "BBRI", "BUMI"}, tickers)
}
