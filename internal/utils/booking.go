package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for all rental dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %w", err)
	}
	return t, nil
}

// EndDate computes the rental end date: start date plus the rented day count.
func EndDate(start time.Time, days int32) time.Time {
	return start.AddDate(0, 0, int(days))
}

// TotalCost computes the booking cost snapshot: price per day times the day
// count, exact decimal arithmetic with no rounding.
func TotalCost(pricePerDay decimal.Decimal, days int32) decimal.Decimal {
	return pricePerDay.Mul(decimal.NewFromInt(int64(days)))
}

// Today returns the current UTC date truncated to day precision, comparable
// against parsed wire dates.
func Today() time.Time {
	year, month, day := time.Now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
