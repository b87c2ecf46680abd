package domain

// EventKind discriminates the inbound events the presentation layer feeds
// into the negotiation state machine.
type EventKind string

const (
	EventStartBooking     EventKind = "start_booking"
	EventCategorySelected EventKind = "category_selected"
	EventCarSelected      EventKind = "car_selected"
	EventDatesText        EventKind = "dates_text"
	EventConsentAction    EventKind = "consent_action"
	EventContactText      EventKind = "contact_text"
	EventConfirmAction    EventKind = "confirm_action"
	EventStartReview      EventKind = "start_review"
	EventRatingSelected   EventKind = "rating_selected"
	EventReviewText       EventKind = "review_text"
	EventCancelAction     EventKind = "cancel_action"
)

type ConsentAction string

const (
	ConsentView  ConsentAction = "view"
	ConsentAgree ConsentAction = "agree"
)

// Event is one inbound step of a requester's conversation. Only the fields
// relevant to the Kind are populated.
type Event struct {
	Kind     EventKind
	Category string        // category_selected
	CarID    int64         // car_selected
	Text     string        // dates_text, contact_text, review_text
	Consent  ConsentAction // consent_action
	Rating   int           // rating_selected
}

// ReplyCode tells the presentation layer what to render next. The negotiation
// core never builds chat-specific text or keyboards itself.
type ReplyCode string

const (
	ReplyChooseCategory  ReplyCode = "CHOOSE_CATEGORY"
	ReplyUnknownCategory ReplyCode = "UNKNOWN_CATEGORY"
	ReplyChooseCar       ReplyCode = "CHOOSE_CAR"
	ReplyCarUnavailable  ReplyCode = "CAR_UNAVAILABLE"
	ReplyAskDates        ReplyCode = "ASK_DATES"
	ReplyBadDateFormat   ReplyCode = "BAD_DATE_FORMAT"
	ReplyBadDuration     ReplyCode = "BAD_DURATION"
	ReplyAskConsent      ReplyCode = "ASK_CONSENT"
	ReplyPolicy          ReplyCode = "POLICY"
	ReplyAskContact      ReplyCode = "ASK_CONTACT"
	ReplyEmptyContact    ReplyCode = "EMPTY_CONTACT"
	ReplyConfirmSummary  ReplyCode = "CONFIRM_SUMMARY"
	ReplySubmitted       ReplyCode = "SUBMITTED"
	ReplySubmitFailed    ReplyCode = "SUBMIT_FAILED"
	ReplyCancelled       ReplyCode = "CANCELLED"
	ReplyAskRating       ReplyCode = "ASK_RATING"
	ReplyAskReviewText   ReplyCode = "ASK_REVIEW_TEXT"
	ReplyReviewThanks    ReplyCode = "REVIEW_THANKS"
	ReplyFailure         ReplyCode = "FAILURE"
)

// Reply is the state machine's answer to one event. Cars, Car, Quote and
// Booking carry the data the renderer needs for the given Code.
type Reply struct {
	Code    ReplyCode
	Cars    []Car
	Car     *Car
	Quote   *PricingQuote
	Booking *Booking
	Rating  int
}
