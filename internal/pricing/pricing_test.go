package pricing

import (
	"testing"

	"rentcar-bot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		days     int
		expected int
	}{
		{1, 0},
		{2, 0},
		{3, 15},
		{5, 15},
		{29, 15},
		{30, 25},
		{89, 25},
		{90, 35},
		{365, 35},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tt.expected, DiscountPercent(tt.days))
		})
	}
}

func TestNewQuote_BoundaryTotals(t *testing.T) {
	const dayRate = int64(49990)

	tests := []struct {
		days             int
		expectedDiscount int
		expectedCentavos int64
	}{
		{2, 0, 9998000},    // 99,980.00
		{3, 15, 12747450},  // 127,474.50
		{29, 15, 123225350},
		{30, 25, 112477500}, // 1,124,775.00
		{89, 25, 333683250},
		{90, 35, 292441500}, // 2,924,415.00
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			q, err := NewQuote(dayRate, tt.days)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedDiscount, q.DiscountPercent)
			assert.Equal(t, tt.expectedCentavos, q.TotalCentavos)
			assert.Equal(t, dayRate, q.DayRateCLP)
			assert.Equal(t, tt.days, q.Days)
		})
	}
}

func TestNewQuote_FiveDayEconomy(t *testing.T) {
	// 49,990 CLP/day for 5 days at 15% off = 212,457.50 CLP exactly.
	q, err := NewQuote(49990, 5)
	assert.NoError(t, err)
	assert.Equal(t, 15, q.DiscountPercent)
	assert.Equal(t, int64(21245750), q.TotalCentavos)
	assert.Equal(t, "212,457.50", FormatCLP(q.TotalCentavos))
}

func TestNewQuote_Invalid(t *testing.T) {
	t.Run("Zero days", func(t *testing.T) {
		_, err := NewQuote(49990, 0)
		assert.ErrorIs(t, err, ErrDuration)
	})

	t.Run("Negative days", func(t *testing.T) {
		_, err := NewQuote(49990, -3)
		assert.ErrorIs(t, err, ErrDuration)
	})

	t.Run("Zero day rate", func(t *testing.T) {
		_, err := NewQuote(0, 5)
		assert.Error(t, err)
	})
}

func TestParseDateRange(t *testing.T) {
	t.Run("Valid five day range", func(t *testing.T) {
		r, err := ParseDateRange("25.12.2023 - 30.12.2023")
		assert.NoError(t, err)
		assert.Equal(t, 5, r.Days())
		assert.Equal(t, "25.12.2023 - 30.12.2023", r.String())
	})

	t.Run("ISO dates rejected", func(t *testing.T) {
		_, err := ParseDateRange("2023-12-25 - 2023-12-30")
		assert.ErrorIs(t, err, ErrDateFormat)
	})

	t.Run("Missing separator", func(t *testing.T) {
		_, err := ParseDateRange("25.12.2023 30.12.2023")
		assert.ErrorIs(t, err, ErrDateFormat)
	})

	t.Run("Surrounding whitespace tolerated", func(t *testing.T) {
		r, err := ParseDateRange(" 25.12.2023 - 30.12.2023 ")
		assert.NoError(t, err)
		assert.Equal(t, 5, r.Days())
	})

	t.Run("Same day rejected", func(t *testing.T) {
		_, err := ParseDateRange("25.12.2023 - 25.12.2023")
		assert.ErrorIs(t, err, ErrDuration)
	})

	t.Run("End before start rejected", func(t *testing.T) {
		_, err := ParseDateRange("30.12.2023 - 25.12.2023")
		assert.ErrorIs(t, err, ErrDuration)
	})

	t.Run("Validation errors classify as domain.ErrValidation", func(t *testing.T) {
		_, err := ParseDateRange("garbage")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestFormatCLP(t *testing.T) {
	tests := []struct {
		centavos int64
		expected string
	}{
		{0, "0"},
		{9900, "99"},
		{9998000, "99,980"},
		{21245750, "212,457.50"},
		{112477500, "1,124,775"},
		{123225350, "1,232,253.50"},
		{-21245750, "-212,457.50"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCLP(tt.centavos))
		})
	}
}
