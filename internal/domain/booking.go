package domain

import "time"

type BookingStatus string

const (
	BookingStatusSubmitted BookingStatus = "SUBMITTED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// DateLayout is the wire format for a single calendar date in the chat flow.
// It must be preserved exactly for compatibility with existing clients.
const DateLayout = "02.01.2006"

// DateRange is a pair of calendar dates with no time component.
// End must be strictly after Start.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the rental duration as whole 24-hour periods (end - start,
// exclusive of the end date).
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " - " + r.End.Format(DateLayout)
}

// PricingQuote is the price snapshot captured when the requester enters a
// date range. Totals are exact decimals carried as hundredths of a peso, so
// no floating point enters any price calculation.
type PricingQuote struct {
	DayRateCLP      int64 `json:"day_rate_clp"`
	Days            int   `json:"days"`
	DiscountPercent int   `json:"discount_percent"`
	TotalCentavos   int64 `json:"total_centavos"`
}

type Booking struct {
	ID          int64         `json:"id"`
	Ref         string        `json:"ref"` // opaque identifier, uuid
	RequesterID int64         `json:"requester_id"`
	Username    string        `json:"username"`
	CarID       int64         `json:"car_id"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	// Quote snapshot fields captured at negotiation time. Summaries and
	// statistics use these snapshots, not live catalog rates.
	Days            int    `json:"days"`
	DayRateCLP      int64  `json:"day_rate_clp"`
	DiscountPercent int    `json:"discount_percent"`
	TotalCentavos   int64  `json:"total_centavos"`
	ContactInfo     string `json:"contact_info"`
	Status          BookingStatus `json:"status"`
	CreatedOn       time.Time     `json:"created_on"`
}

// Range returns the booking's date range rebuilt from its persisted columns.
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

type BookingStats struct {
	Total           int64                   `json:"total"`
	RevenueCentavos int64                   `json:"revenue_centavos"`
	ByStatus        map[BookingStatus]int64 `json:"by_status"`
}
