package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock is a single catalog entry. The normalized ticker symbol is the
// natural key; the unique index is the authoritative duplicate guard.
type Stock struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	Ticker       string    `gorm:"size:10;not null;uniqueIndex"`
	Name         string    `gorm:"size:255;not null"`
	Sector       *string   `gorm:"size:100"`
	CurrentPrice *float64
	Description  *string   `gorm:"size:1000"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the record identifier once. It never changes afterwards.
func (s *Stock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// NormalizeTicker canonicalizes a raw ticker symbol: outer whitespace is
// stripped and the remainder is uppercased. Internal whitespace is preserved.
// Lookups and stored tickers always go through this, so "bbca", " BbCa " and
// "BBCA" all address the same record.
func NormalizeTicker(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
