package session

import (
	"time"

	"rentcar-bot/internal/domain"
)

// State names the step of the booking conversation a requester is on.
// Text messages are ambiguous on their own, so the dispatch layer uses the
// current state to decide whether free text means dates, contact details or
// a review comment.
type State string

const (
	StateChoosingCategory State = "choosing_category"
	StateChoosingCar      State = "choosing_car"
	StateSelectingDates   State = "selecting_dates"
	StateViewingConsent   State = "viewing_consent"
	StateEnteringContact  State = "entering_contact"
	StateConfirming       State = "confirming"
	StateSelectingRating  State = "selecting_rating"
	StateEnteringReview   State = "entering_review"
)

// Session carries the in-flight negotiation for one requester. Everything in
// it is reconstructible by restarting the flow, so sessions live in memory
// only and are reaped after a period of inactivity.
type Session struct {
	RequesterID int64
	Username    string
	State       State
	Category    domain.CarCategory
	Car         *domain.Car
	Range       domain.DateRange
	Quote       *domain.PricingQuote
	Contact     string
	Rating      int
	UpdatedAt   time.Time
}
