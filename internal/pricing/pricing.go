package pricing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rentcar-bot/internal/domain"
)

// Errors distinguishing the two locally-recoverable date failures. Both wrap
// domain.ErrValidation so callers can classify without string matching.
var (
	ErrDateFormat = fmt.Errorf("invalid date range format: %w", domain.ErrValidation)
	ErrDuration   = fmt.Errorf("invalid rental duration: %w", domain.ErrValidation)
)

// Discount tiers, evaluated in ascending threshold order; the last satisfied
// tier wins. Below 3 days no discount applies.
var discountTiers = []struct {
	MinDays int
	Percent int
}{
	{3, 15},
	{30, 25},
	{90, 35},
}

// DiscountPercent returns the tier discount for a rental of the given number
// of whole days.
func DiscountPercent(days int) int {
	discount := 0
	for _, tier := range discountTiers {
		if days >= tier.MinDays {
			discount = tier.Percent
		}
	}
	return discount
}

// NewQuote prices a rental. Totals are exact: dayRate * days * (100-discount)
// is the total in hundredths of a peso, so a 15% discount on a fractional
// total like 212,457.50 CLP is carried without rounding.
func NewQuote(dayRateCLP int64, days int) (domain.PricingQuote, error) {
	if days < 1 {
		return domain.PricingQuote{}, ErrDuration
	}
	if dayRateCLP < 1 {
		return domain.PricingQuote{}, fmt.Errorf("day rate must be positive, got %d", dayRateCLP)
	}

	discount := DiscountPercent(days)
	return domain.PricingQuote{
		DayRateCLP:      dayRateCLP,
		Days:            days,
		DiscountPercent: discount,
		TotalCentavos:   dayRateCLP * int64(days) * int64(100-discount),
	}, nil
}

// ParseDateRange parses the fixed chat wire format "DD.MM.YYYY - DD.MM.YYYY".
// The duration is the count of full 24-hour periods between the two dates;
// anything below one day fails with ErrDuration.
func ParseDateRange(text string) (domain.DateRange, error) {
	parts := strings.Split(text, " - ")
	if len(parts) != 2 {
		return domain.DateRange{}, ErrDateFormat
	}

	start, err := time.Parse(domain.DateLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.DateRange{}, ErrDateFormat
	}
	end, err := time.Parse(domain.DateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.DateRange{}, ErrDateFormat
	}

	r := domain.DateRange{Start: start, End: end}
	if r.Days() < 1 {
		return domain.DateRange{}, ErrDuration
	}
	return r, nil
}

// FormatCLP renders a centavo amount as a CLP string with thousand
// separators, keeping two decimals only when the amount is fractional.
func FormatCLP(centavos int64) string {
	negative := centavos < 0
	if negative {
		centavos = -centavos
	}

	whole := centavos / 100
	frac := centavos % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String()
	if frac != 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	if negative {
		out = "-" + out
	}
	return out
}
