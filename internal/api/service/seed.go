package service

import (
	"context"
	"errors"

	"golang-stock-catalog/internal/entity"
	"golang-stock-catalog/pkg/logger"

	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// defaultStocks is the fixed sample catalog installed by the seed operation.
var defaultStocks = []entity.Stock{
	{
		Ticker:       "BBCA",
		Name:         "PT Bank Central Asia Tbk",
		Sector:       ptr("Banking"),
		CurrentPrice: ptr(9800.0),
		Description:  ptr("Largest private bank in Indonesia by market capitalization"),
	},
	{
		Ticker:       "BMRI",
		Name:         "PT Bank Mandiri (Persero) Tbk",
		Sector:       ptr("Banking"),
		CurrentPrice: ptr(6250.0),
		Description:  ptr("Indonesia's largest bank by assets"),
	},
	{
		Ticker:       "BBRI",
		Name:         "PT Bank Rakyat Indonesia (Persero) Tbk",
		Sector:       ptr("Banking"),
		CurrentPrice: ptr(5100.0),
		Description:  ptr("State-owned bank focusing on micro and small enterprises"),
	},
	{
		Ticker:       "BUMI",
		Name:         "PT Bumi Resources Tbk",
		Sector:       ptr("Mining"),
		CurrentPrice: ptr(142.0),
		Description:  ptr("Coal mining company operating in Kalimantan"),
	},
}

// SeedDefaultStocks inserts the sample catalog, skipping tickers that already
// exist. A duplicate-key error from a concurrently racing seeder counts as
// already present, so repeated or concurrent seeding converges on the same
// final state without being atomic as a whole.
func (s *stockService) SeedDefaultStocks(ctx context.Context) error {
	for _, seed := range defaultStocks {
		exists, err := s.stockRepo.ExistsByTicker(ctx, seed.Ticker)
		if err != nil {
			return err
		}
		if exists {
			s.logger.Info("Skipping seed stock, ticker already exists", logger.Field("ticker", seed.Ticker))
			continue
		}

		stock := seed
		if err := s.stockRepo.Create(ctx, &stock); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			s.logger.Error("Failed to seed stock", logger.ErrorField(err), logger.Field("ticker", seed.Ticker))
			return err
		}
		s.logger.Info("Seeded stock", logger.Field("ticker", stock.Ticker))
	}
	return nil
}
