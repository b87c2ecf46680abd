package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/pricing"
)

// Callback data identifiers. These are part of the chat wire format; changing
// them breaks in-flight keyboards.
const (
	cbMainMenu        = "main_menu"
	cbMakeReservation = "make_reservation"
	cbMyBookings      = "my_bookings"
	cbLeaveReview     = "leave_review"
	cbViewPolicy      = "view_privacy"
	cbAcceptPolicy    = "accept_privacy"
	cbConfirmBooking  = "confirm_booking"
	cbCategoryPrefix  = "category_"
	cbCarPrefix       = "car_"
	cbCancelPrefix    = "cancel_booking_"
	cbRatePrefix      = "rate_"
	cbLangPrefix      = "lang_"
)

func mainMenuKeyboard(lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menu("make_reservation", lang), cbMakeReservation),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menu("my_bookings", lang), cbMyBookings),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menu("leave_review", lang), cbLeaveReview),
		),
	)
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇬🇧 English", cbLangPrefix+"en"),
			tgbotapi.NewInlineKeyboardButtonData("🇨🇱 Español", cbLangPrefix+"es"),
			tgbotapi.NewInlineKeyboardButtonData("🇷🇺 Русский", cbLangPrefix+"ru"),
		),
	)
}

func categoryKeyboard(categories []domain.CarCategory, lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories)+1)
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(categoryLabel(category, lang), cbCategoryPrefix+string(category)),
		))
	}
	rows = append(rows, backRow(lang))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func carsKeyboard(cars []domain.Car, lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(cars)+1)
	for _, car := range cars {
		label := fmt.Sprintf("%s · %s CLP/day", car.DisplayName(), pricing.FormatCLP(car.DayRateCLP*100))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", cbCarPrefix, car.ID)),
		))
	}
	rows = append(rows, backRow(lang))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func consentKeyboard(lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menu("view_policy", lang), cbViewPolicy),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menu("accept_policy", lang), cbAcceptPolicy),
		),
		backRow(lang),
	)
}

func confirmKeyboard(lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(menu("confirm", lang), cbConfirmBooking),
		),
		backRow(lang),
	)
}

func ratingKeyboard(lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐", cbRatePrefix+"1"),
			tgbotapi.NewInlineKeyboardButtonData("⭐⭐", cbRatePrefix+"2"),
			tgbotapi.NewInlineKeyboardButtonData("⭐⭐⭐", cbRatePrefix+"3"),
			tgbotapi.NewInlineKeyboardButtonData("⭐⭐⭐⭐", cbRatePrefix+"4"),
		),
		backRow(lang),
	)
}

func bookingsKeyboard(bookings []domain.Booking, lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(bookings)+1)
	for _, b := range bookings {
		if b.Status == domain.BookingStatusSubmitted || b.Status == domain.BookingStatusConfirmed {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(
					fmt.Sprintf("❌ %s", b.Range().String()),
					cbCancelPrefix+b.Ref,
				),
			))
		}
	}
	rows = append(rows, backRow(lang))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func backKeyboard(lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(backRow(lang))
}

func backRow(lang domain.Language) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(menu("back_to_menu", lang), cbMainMenu),
	)
}
