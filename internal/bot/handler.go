package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/session"
)

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	requesterID := msg.From.ID
	lang := b.users.Language(ctx, requesterID)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			user := &domain.User{
				ID:        requesterID,
				Username:  msg.From.UserName,
				FirstName: msg.From.FirstName,
				LastName:  msg.From.LastName,
				Language:  domain.ParseLanguage(msg.From.LanguageCode),
			}
			if err := b.users.RegisterContact(ctx, user); err != nil {
				logger.Error("failed to register user", "requester_id", requesterID, "error", err)
			}
			b.reply(msg.Chat.ID, menu("choose_language", user.Language), languageKeyboard())
		default:
			b.showMainMenu(msg.Chat.ID, lang)
		}
		return
	}

	// Free text means different things depending on where the conversation
	// stands. Anything out of step just brings the menu back.
	var kind domain.EventKind
	if sess := b.sessions.Get(requesterID); sess != nil {
		switch sess.State {
		case session.StateSelectingDates:
			kind = domain.EventDatesText
		case session.StateEnteringContact:
			kind = domain.EventContactText
		case session.StateEnteringReview:
			kind = domain.EventReviewText
		}
	}
	if kind == "" {
		b.showMainMenu(msg.Chat.ID, lang)
		return
	}

	reply := b.negotiation.Handle(ctx, requesterID, msg.From.UserName, domain.Event{Kind: kind, Text: msg.Text})
	b.render(ctx, msg.Chat.ID, lang, reply)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Ack first so the client stops the spinner whatever happens next.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		logger.Warn("failed to answer callback", "error", err)
	}

	requesterID := cb.From.ID
	chatID := cb.Message.Chat.ID
	lang := b.users.Language(ctx, requesterID)
	data := cb.Data

	var ev domain.Event
	switch {
	case strings.HasPrefix(data, cbLangPrefix):
		lang = domain.ParseLanguage(strings.TrimPrefix(data, cbLangPrefix))
		if err := b.users.SetLanguage(ctx, requesterID, lang); err != nil {
			logger.Error("failed to set language", "requester_id", requesterID, "error", err)
		}
		b.showMainMenu(chatID, lang)
		return
	case data == cbMainMenu:
		b.negotiation.Handle(ctx, requesterID, cb.From.UserName, domain.Event{Kind: domain.EventCancelAction})
		b.showMainMenu(chatID, lang)
		return
	case data == cbMyBookings:
		b.showBookings(ctx, chatID, requesterID, lang)
		return
	case strings.HasPrefix(data, cbCancelPrefix):
		b.cancelBooking(ctx, chatID, requesterID, strings.TrimPrefix(data, cbCancelPrefix), lang)
		return
	case data == cbMakeReservation:
		ev = domain.Event{Kind: domain.EventStartBooking}
	case data == cbLeaveReview:
		ev = domain.Event{Kind: domain.EventStartReview}
	case strings.HasPrefix(data, cbCategoryPrefix):
		ev = domain.Event{Kind: domain.EventCategorySelected, Category: strings.TrimPrefix(data, cbCategoryPrefix)}
	case strings.HasPrefix(data, cbCarPrefix):
		carID, err := strconv.ParseInt(strings.TrimPrefix(data, cbCarPrefix), 10, 64)
		if err != nil {
			logger.Warn("malformed car callback", "data", data)
			b.showMainMenu(chatID, lang)
			return
		}
		ev = domain.Event{Kind: domain.EventCarSelected, CarID: carID}
	case data == cbViewPolicy:
		ev = domain.Event{Kind: domain.EventConsentAction, Consent: domain.ConsentView}
	case data == cbAcceptPolicy:
		ev = domain.Event{Kind: domain.EventConsentAction, Consent: domain.ConsentAgree}
	case data == cbConfirmBooking:
		ev = domain.Event{Kind: domain.EventConfirmAction}
	case strings.HasPrefix(data, cbRatePrefix):
		rating, err := strconv.Atoi(strings.TrimPrefix(data, cbRatePrefix))
		if err != nil {
			b.showMainMenu(chatID, lang)
			return
		}
		ev = domain.Event{Kind: domain.EventRatingSelected, Rating: rating}
	default:
		logger.Warn("unknown callback", "data", data)
		b.showMainMenu(chatID, lang)
		return
	}

	reply := b.negotiation.Handle(ctx, requesterID, cb.From.UserName, ev)
	b.render(ctx, chatID, lang, reply)
}

// render turns a negotiation reply into a chat message with the matching
// keyboard.
func (b *Bot) render(ctx context.Context, chatID int64, lang domain.Language, reply domain.Reply) {
	switch reply.Code {
	case domain.ReplyChooseCategory, domain.ReplyUnknownCategory:
		b.reply(chatID, text(reply.Code, lang), categoryKeyboard(b.catalog.ListCategories(ctx), lang))
	case domain.ReplyChooseCar:
		b.reply(chatID, text(reply.Code, lang), carsKeyboard(reply.Cars, lang))
	case domain.ReplyCarUnavailable:
		b.reply(chatID, text(reply.Code, lang), categoryKeyboard(b.catalog.ListCategories(ctx), lang))
	case domain.ReplyAskDates, domain.ReplyBadDateFormat, domain.ReplyBadDuration:
		b.reply(chatID, text(reply.Code, lang), backKeyboard(lang))
	case domain.ReplyAskConsent:
		body := quoteSummary(reply.Car, reply.Quote, lang) + "\n\n" + text(reply.Code, lang)
		b.reply(chatID, body, consentKeyboard(lang))
	case domain.ReplyPolicy:
		b.reply(chatID, text(reply.Code, lang), consentKeyboard(lang))
	case domain.ReplyAskContact, domain.ReplyEmptyContact:
		b.reply(chatID, text(reply.Code, lang), backKeyboard(lang))
	case domain.ReplyConfirmSummary:
		b.reply(chatID, quoteSummary(reply.Car, reply.Quote, lang), confirmKeyboard(lang))
	case domain.ReplySubmitted:
		body := text(reply.Code, lang)
		if reply.Booking != nil {
			body += fmt.Sprintf("\n\nRef: %s", reply.Booking.Ref)
		}
		b.reply(chatID, body, mainMenuKeyboard(lang))
	case domain.ReplySubmitFailed:
		b.reply(chatID, text(reply.Code, lang), confirmKeyboard(lang))
	case domain.ReplyCancelled:
		b.reply(chatID, text(reply.Code, lang), mainMenuKeyboard(lang))
	case domain.ReplyAskRating:
		b.reply(chatID, text(reply.Code, lang), ratingKeyboard(lang))
	case domain.ReplyAskReviewText:
		b.reply(chatID, text(reply.Code, lang), backKeyboard(lang))
	case domain.ReplyReviewThanks:
		b.reply(chatID, text(reply.Code, lang), mainMenuKeyboard(lang))
	default:
		b.reply(chatID, text(domain.ReplyFailure, lang), mainMenuKeyboard(lang))
	}
}

func (b *Bot) showMainMenu(chatID int64, lang domain.Language) {
	b.reply(chatID, menu("welcome", lang), mainMenuKeyboard(lang))
}

func (b *Bot) showBookings(ctx context.Context, chatID, requesterID int64, lang domain.Language) {
	bookings, err := b.bookings.ListBookings(ctx, requesterID)
	if err != nil {
		logger.Error("failed to list bookings", "requester_id", requesterID, "error", err)
		b.reply(chatID, text(domain.ReplyFailure, lang), mainMenuKeyboard(lang))
		return
	}
	if len(bookings) == 0 {
		b.reply(chatID, menu("no_bookings", lang), mainMenuKeyboard(lang))
		return
	}

	var sb strings.Builder
	for _, booking := range bookings {
		sb.WriteString(fmt.Sprintf("%s · %s · %s\n", booking.Range().String(), booking.Status, booking.Ref))
	}
	b.reply(chatID, sb.String(), bookingsKeyboard(bookings, lang))
}

func (b *Bot) cancelBooking(ctx context.Context, chatID, requesterID int64, ref string, lang domain.Language) {
	if err := b.bookings.CancelBooking(ctx, requesterID, ref); err != nil {
		logger.Error("failed to cancel booking", "ref", ref, "requester_id", requesterID, "error", err)
		b.reply(chatID, menu("cancel_failed", lang), mainMenuKeyboard(lang))
		return
	}
	b.reply(chatID, menu("booking_cancelled", lang), mainMenuKeyboard(lang))
}

func (b *Bot) reply(chatID int64, body string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, body)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		logger.Error("failed to send reply", "chat_id", chatID, "error", err)
	}
}
