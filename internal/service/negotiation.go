package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/pricing"
	"rentcar-bot/internal/repository"
	"rentcar-bot/internal/session"
)

type negotiationService struct {
	cars        repository.CarRepository
	bookings    repository.BookingRepository
	reviews     repository.ReviewRepository
	sessions    *session.Store
	notifier    Notifier
	adminChatID int64
	reviewChat  int64
}

func NewNegotiationService(
	cars repository.CarRepository,
	bookings repository.BookingRepository,
	reviews repository.ReviewRepository,
	sessions *session.Store,
	notifier Notifier,
	adminChatID, reviewChatID int64,
) NegotiationService {
	return &negotiationService{
		cars:        cars,
		bookings:    bookings,
		reviews:     reviews,
		sessions:    sessions,
		notifier:    notifier,
		adminChatID: adminChatID,
		reviewChat:  reviewChatID,
	}
}

// Handle advances the requester's conversation by one event. Validation
// problems re-prompt in place and never abort the session; only cancel and a
// completed submit end it.
func (s *negotiationService) Handle(ctx context.Context, requesterID int64, username string, ev domain.Event) domain.Reply {
	if ev.Kind == domain.EventCancelAction {
		s.sessions.Delete(requesterID)
		return domain.Reply{Code: domain.ReplyCancelled}
	}

	switch ev.Kind {
	case domain.EventStartBooking:
		s.sessions.Reset(requesterID, username, session.StateChoosingCategory)
		return domain.Reply{Code: domain.ReplyChooseCategory}
	case domain.EventStartReview:
		s.sessions.Reset(requesterID, username, session.StateSelectingRating)
		return domain.Reply{Code: domain.ReplyAskRating}
	}

	sess := s.sessions.Get(requesterID)
	if sess == nil {
		// Event arrived with no conversation in flight, likely after a
		// reaped session. Restart from the top.
		s.sessions.Reset(requesterID, username, session.StateChoosingCategory)
		return domain.Reply{Code: domain.ReplyChooseCategory}
	}
	defer s.sessions.Touch(requesterID)

	switch sess.State {
	case session.StateChoosingCategory:
		return s.handleCategory(ctx, sess, ev)
	case session.StateChoosingCar:
		return s.handleCar(ctx, sess, ev)
	case session.StateSelectingDates:
		return s.handleDates(ctx, sess, ev)
	case session.StateViewingConsent:
		return s.handleConsent(ctx, sess, ev)
	case session.StateEnteringContact:
		return s.handleContact(ctx, sess, ev)
	case session.StateConfirming:
		return s.handleConfirm(ctx, sess, ev)
	case session.StateSelectingRating:
		return s.handleRating(ctx, sess, ev)
	case session.StateEnteringReview:
		return s.handleReviewText(ctx, sess, ev)
	default:
		logger.Error("unknown session state", "requester_id", sess.RequesterID, "state", sess.State)
		s.sessions.Delete(sess.RequesterID)
		return domain.Reply{Code: domain.ReplyFailure}
	}
}

func (s *negotiationService) handleCategory(ctx context.Context, sess *session.Session, ev domain.Event) domain.Reply {
	if ev.Kind != domain.EventCategorySelected {
		return domain.Reply{Code: domain.ReplyChooseCategory}
	}

	category, err := domain.ParseCarCategory(ev.Category)
	if err != nil {
		return domain.Reply{Code: domain.ReplyUnknownCategory}
	}

	cars, err := s.cars.ListAvailableByCategory(ctx, category)
	if err != nil {
		logger.Error("failed to list cars", "category", category, "error", err)
		return domain.Reply{Code: domain.ReplyFailure}
	}
	if len(cars) == 0 {
		return domain.Reply{Code: domain.ReplyCarUnavailable}
	}

	sess.Category = category
	sess.State = session.StateChoosingCar
	return domain.Reply{Code: domain.ReplyChooseCar, Cars: cars}
}

func (s *negotiationService) handleCar(ctx context.Context, sess *session.Session, ev domain.Event) domain.Reply {
	if ev.Kind != domain.EventCarSelected {
		return domain.Reply{Code: domain.ReplyChooseCar}
	}

	car, err := s.cars.GetByID(ctx, ev.CarID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Reply{Code: domain.ReplyCarUnavailable}
		}
		logger.Error("failed to load car", "car_id", ev.CarID, "error", err)
		return domain.Reply{Code: domain.ReplyFailure}
	}
	if !car.Available {
		return domain.Reply{Code: domain.ReplyCarUnavailable}
	}

	sess.Car = car
	sess.State = session.StateSelectingDates
	return domain.Reply{Code: domain.ReplyAskDates, Car: car}
}

func (s *negotiationService) handleDates(ctx context.Context, sess *session.Session, ev domain.Event) domain.Reply {
	if ev.Kind != domain.EventDatesText {
		return domain.Reply{Code: domain.ReplyAskDates, Car: sess.Car}
	}

	dateRange, err := pricing.ParseDateRange(ev.Text)
	if err != nil {
		if errors.Is(err, pricing.ErrDuration) {
			return domain.Reply{Code: domain.ReplyBadDuration}
		}
		return domain.Reply{Code: domain.ReplyBadDateFormat}
	}

	// Re-fetch for the current rate; the car may have been reserved or
	// repriced while the requester was typing.
	car, err := s.cars.GetByID(ctx, sess.Car.ID)
	if err != nil || !car.Available {
		sess.State = session.StateChoosingCategory
		return domain.Reply{Code: domain.ReplyCarUnavailable}
	}

	quote, err := pricing.NewQuote(car.DayRateCLP, dateRange.Days())
	if err != nil {
		return domain.Reply{Code: domain.ReplyBadDuration}
	}

	sess.Car = car
	sess.Range = dateRange
	sess.Quote = &quote
	sess.State = session.StateViewingConsent
	return domain.Reply{Code: domain.ReplyAskConsent, Car: car, Quote: &quote}
}

func (s *negotiationService) handleConsent(_ context.Context, sess *session.Session, ev domain.Event) domain.Reply {
	if ev.Kind != domain.EventConsentAction {
		return domain.Reply{Code: domain.ReplyAskConsent, Car: sess.Car, Quote: sess.Quote}
	}

	switch ev.Consent {
	case domain.ConsentView:
		return domain.Reply{Code: domain.ReplyPolicy}
	case domain.ConsentAgree:
		sess.State = session.StateEnteringContact
		return domain.Reply{Code: domain.ReplyAskContact}
	default:
		return domain.Reply{Code: domain.ReplyAskConsent, Car: sess.Car, Quote: sess.Quote}
	}
}

func (s *negotiationService) handleContact(_ context.Context, sess *session.Session, ev domain.Event) domain.Reply {
	if ev.Kind != domain.EventContactText {
		return domain.Reply{Code: domain.ReplyAskContact}
	}

	contact := strings.TrimSpace(ev.Text)
	if contact == "" {
		return domain.Reply{Code: domain.ReplyEmptyContact}
	}
	if !looksReachable(contact) {
		logger.Warn("contact info has no phone or handle", "requester_id", sess.RequesterID)
	}

	sess.Contact = contact
	sess.State = session.StateConfirming
	return domain.Reply{Code: domain.ReplyConfirmSummary, Car: sess.Car, Quote: sess.Quote}
}

func (s *negotiationService) handleConfirm(ctx context.Context, sess *session.Session, ev domain.Event) domain.Reply {
	if ev.Kind != domain.EventConfirmAction {
		return domain.Reply{Code: domain.ReplyConfirmSummary, Car: sess.Car, Quote: sess.Quote}
	}

	booking := &domain.Booking{
		Ref:             uuid.NewString(),
		RequesterID:     sess.RequesterID,
		Username:        sess.Username,
		CarID:           sess.Car.ID,
		StartDate:       sess.Range.Start,
		EndDate:         sess.Range.End,
		Days:            sess.Quote.Days,
		DayRateCLP:      sess.Quote.DayRateCLP,
		DiscountPercent: sess.Quote.DiscountPercent,
		TotalCentavos:   sess.Quote.TotalCentavos,
		ContactInfo:     sess.Contact,
		Status:          domain.BookingStatusSubmitted,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		logger.Error("failed to persist booking", "requester_id", sess.RequesterID, "car_id", booking.CarID, "error", err)
		// Session stays put so the requester can press confirm again.
		return domain.Reply{Code: domain.ReplySubmitFailed}
	}

	reserved, err := s.cars.ReserveIfAvailable(ctx, booking.CarID)
	if err != nil {
		logger.Error("failed to reserve car", "car_id", booking.CarID, "error", err)
	} else if !reserved {
		// Lost the race after persisting. The booking stands; the operator
		// resolves the overlap by hand.
		logger.Warn("car reserved by another booking", "car_id", booking.CarID, "ref", booking.Ref)
	}

	s.deliver(ctx, s.adminChatID, operatorSummary(sess.Car, booking))

	s.sessions.Delete(sess.RequesterID)
	logger.Info("booking submitted", "ref", booking.Ref, "requester_id", booking.RequesterID, "car_id", booking.CarID)
	return domain.Reply{Code: domain.ReplySubmitted, Car: sess.Car, Booking: booking}
}

func (s *negotiationService) handleRating(_ context.Context, sess *session.Session, ev domain.Event) domain.Reply {
	if ev.Kind != domain.EventRatingSelected {
		return domain.Reply{Code: domain.ReplyAskRating}
	}
	if ev.Rating < 1 || ev.Rating > 4 {
		return domain.Reply{Code: domain.ReplyAskRating}
	}

	sess.Rating = ev.Rating
	sess.State = session.StateEnteringReview
	return domain.Reply{Code: domain.ReplyAskReviewText, Rating: ev.Rating}
}

func (s *negotiationService) handleReviewText(ctx context.Context, sess *session.Session, ev domain.Event) domain.Reply {
	if ev.Kind != domain.EventReviewText {
		return domain.Reply{Code: domain.ReplyAskReviewText, Rating: sess.Rating}
	}

	comment := strings.TrimSpace(ev.Text)
	if comment == "" {
		return domain.Reply{Code: domain.ReplyAskReviewText, Rating: sess.Rating}
	}

	review := &domain.Review{
		RequesterID: sess.RequesterID,
		Username:    sess.Username,
		Rating:      sess.Rating,
		Comment:     comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		// Best effort; the review still reaches the review channel.
		logger.Error("failed to persist review", "requester_id", sess.RequesterID, "error", err)
	}

	s.deliver(ctx, s.reviewChat, reviewSummary(review))

	s.sessions.Delete(sess.RequesterID)
	return domain.Reply{Code: domain.ReplyReviewThanks, Rating: sess.Rating}
}

// deliver sends a formatted message to an operator channel, retrying once in
// plain text and swallowing the failure if that also fails.
func (s *negotiationService) deliver(ctx context.Context, chatID int64, text string) {
	if err := s.notifier.Send(ctx, chatID, text); err != nil {
		logger.Warn("formatted delivery failed, retrying plain", "chat_id", chatID, "error", err)
		if err := s.notifier.SendPlain(ctx, chatID, text); err != nil {
			logger.Error("operator notification lost", "chat_id", chatID, "error", err)
		}
	}
}

// looksReachable reports whether the contact text carries at least a phone
// number or a messenger handle. Advisory only.
func looksReachable(contact string) bool {
	if strings.Contains(contact, "@") {
		return true
	}
	digits := 0
	for _, r := range contact {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

func operatorSummary(car *domain.Car, b *domain.Booking) string {
	return fmt.Sprintf(
		"*New booking request*\n"+
			"Ref: `%s`\n"+
			"Car: %s\n"+
			"Dates: %s\n"+
			"Days: %d\n"+
			"Rate: %s CLP/day\n"+
			"Discount: %d%%\n"+
			"Total: %s CLP\n"+
			"Requester: @%s (%d)\n"+
			"Contact: %s",
		b.Ref,
		car.DisplayName(),
		b.Range().String(),
		b.Days,
		pricing.FormatCLP(b.DayRateCLP*100),
		b.DiscountPercent,
		pricing.FormatCLP(b.TotalCentavos),
		b.Username,
		b.RequesterID,
		b.ContactInfo,
	)
}

func reviewSummary(r *domain.Review) string {
	return fmt.Sprintf(
		"*New review*\nRating: %d/4\nFrom: @%s (%d)\n\n%s",
		r.Rating, r.Username, r.RequesterID, r.Comment,
	)
}
