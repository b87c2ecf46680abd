package domain

import (
	"fmt"
	"time"
)

type CarCategory string

const (
	CarCategoryEconomy CarCategory = "economy"
	CarCategorySUV     CarCategory = "suv"
	CarCategoryPremium CarCategory = "premium"
)

// CarCategories returns the closed set of catalog categories in display order.
func CarCategories() []CarCategory {
	return []CarCategory{CarCategoryEconomy, CarCategorySUV, CarCategoryPremium}
}

// ParseCarCategory validates a raw category value against the closed set.
func ParseCarCategory(s string) (CarCategory, error) {
	switch CarCategory(s) {
	case CarCategoryEconomy, CarCategorySUV, CarCategoryPremium:
		return CarCategory(s), nil
	}
	return "", fmt.Errorf("unknown car category %q: %w", s, ErrValidation)
}

type Car struct {
	ID          int64       `json:"id"`
	Brand       string      `json:"brand"`
	Model       string      `json:"model"`
	Year        int         `json:"year"`
	Category    CarCategory `json:"category"`
	DayRateCLP  int64       `json:"day_rate_clp"`
	Available   bool        `json:"available"`
	ImageURL    string      `json:"image_url"`
	Description string      `json:"description"`
	CreatedOn   time.Time   `json:"created_on"`
}

// DisplayName renders the catalog label used in keyboards and summaries.
func (c Car) DisplayName() string {
	return fmt.Sprintf("%s %s (%d)", c.Brand, c.Model, c.Year)
}
