package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := ParseDate("2026-03-15")
		assert.NoError(t, err)
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("Invalid Format", func(t *testing.T) {
		_, err := ParseDate("15/03/2026")
		assert.Error(t, err)
	})

	t.Run("Invalid Day", func(t *testing.T) {
		_, err := ParseDate("2026-02-30")
		assert.Error(t, err)
	})
}

func TestEndDate(t *testing.T) {
	start, _ := ParseDate("2026-01-30")

	t.Run("Simple", func(t *testing.T) {
		end := EndDate(start, 3)
		assert.Equal(t, "2026-02-02", end.Format(DateLayout))
	})

	t.Run("Across Year Boundary", func(t *testing.T) {
		dec, _ := ParseDate("2026-12-30")
		end := EndDate(dec, 5)
		assert.Equal(t, "2027-01-04", end.Format(DateLayout))
	})

	t.Run("Full Year", func(t *testing.T) {
		end := EndDate(start, 365)
		assert.Equal(t, "2027-01-30", end.Format(DateLayout))
	})
}

func TestTotalCost(t *testing.T) {
	t.Run("Exact Decimal", func(t *testing.T) {
		price := decimal.RequireFromString("100.00")
		total := TotalCost(price, 3)
		assert.True(t, total.Equal(decimal.RequireFromString("300.00")), "got %s", total)
	})

	t.Run("Fractional Price", func(t *testing.T) {
		price := decimal.RequireFromString("19.99")
		total := TotalCost(price, 7)
		assert.True(t, total.Equal(decimal.RequireFromString("139.93")), "got %s", total)
	})

	t.Run("Single Day", func(t *testing.T) {
		price := decimal.RequireFromString("0.01")
		total := TotalCost(price, 1)
		assert.True(t, total.Equal(decimal.RequireFromString("0.01")), "got %s", total)
	})
}
