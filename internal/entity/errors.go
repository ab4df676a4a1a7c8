package entity

import (
	"errors"
	"fmt"
)

// StockNotFoundError reports a lookup miss. Ticker holds the normalized form
// so the message names exactly what was searched for.
type StockNotFoundError struct {
	Ticker string
}

func (e *StockNotFoundError) Error() string {
	return fmt.Sprintf("Stock with ticker %s not found", e.Ticker)
}

// TickerConflictError reports that a normalized ticker is already taken,
// either on create or on a rename during update.
type TickerConflictError struct {
	Ticker string
}

func (e *TickerConflictError) Error() string {
	return fmt.Sprintf("Stock with ticker %s already exists", e.Ticker)
}

// Login failures. The messages double as the client-facing detail strings.
var (
	ErrEmailNotFound   = errors.New("Email not found")
	ErrInvalidPassword = errors.New("Invalid Password")
)
