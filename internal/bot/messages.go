package bot

import (
	"fmt"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/pricing"
)

// replyText holds the localized prompt for each reply code. The catalog is
// trimmed to the strings the conversation actually emits; everything falls
// back to English.
var replyText = map[domain.ReplyCode]map[domain.Language]string{
	domain.ReplyChooseCategory: {
		domain.LanguageEnglish: "Choose a car category:",
		domain.LanguageSpanish: "Elige una categoría de auto:",
		domain.LanguageRussian: "Выберите категорию автомобиля:",
	},
	domain.ReplyUnknownCategory: {
		domain.LanguageEnglish: "That category is not available. Choose one from the menu:",
		domain.LanguageSpanish: "Esa categoría no está disponible. Elige una del menú:",
		domain.LanguageRussian: "Такой категории нет. Выберите из меню:",
	},
	domain.ReplyChooseCar: {
		domain.LanguageEnglish: "Available cars:",
		domain.LanguageSpanish: "Autos disponibles:",
		domain.LanguageRussian: "Доступные автомобили:",
	},
	domain.ReplyCarUnavailable: {
		domain.LanguageEnglish: "Sorry, that car is no longer available. Pick another one:",
		domain.LanguageSpanish: "Lo sentimos, ese auto ya no está disponible. Elige otro:",
		domain.LanguageRussian: "К сожалению, этот автомобиль уже занят. Выберите другой:",
	},
	domain.ReplyAskDates: {
		domain.LanguageEnglish: "Send the rental dates as DD.MM.YYYY - DD.MM.YYYY\nFor example: 25.12.2024 - 30.12.2024",
		domain.LanguageSpanish: "Envía las fechas como DD.MM.YYYY - DD.MM.YYYY\nPor ejemplo: 25.12.2024 - 30.12.2024",
		domain.LanguageRussian: "Отправьте даты аренды в формате ДД.ММ.ГГГГ - ДД.ММ.ГГГГ\nНапример: 25.12.2024 - 30.12.2024",
	},
	domain.ReplyBadDateFormat: {
		domain.LanguageEnglish: "I could not read those dates. Use DD.MM.YYYY - DD.MM.YYYY:",
		domain.LanguageSpanish: "No pude leer esas fechas. Usa DD.MM.YYYY - DD.MM.YYYY:",
		domain.LanguageRussian: "Не удалось разобрать даты. Формат: ДД.ММ.ГГГГ - ДД.ММ.ГГГГ:",
	},
	domain.ReplyBadDuration: {
		domain.LanguageEnglish: "The end date must be after the start date. Try again:",
		domain.LanguageSpanish: "La fecha final debe ser posterior a la inicial. Intenta de nuevo:",
		domain.LanguageRussian: "Дата окончания должна быть позже даты начала. Попробуйте еще раз:",
	},
	domain.ReplyAskConsent: {
		domain.LanguageEnglish: "To continue, please review and accept our privacy policy.",
		domain.LanguageSpanish: "Para continuar, revisa y acepta nuestra política de privacidad.",
		domain.LanguageRussian: "Чтобы продолжить, ознакомьтесь с политикой конфиденциальности и примите ее.",
	},
	domain.ReplyPolicy: {
		domain.LanguageEnglish: "We store your contact details only to arrange this rental. They are shared with the operator and deleted on request.",
		domain.LanguageSpanish: "Guardamos tus datos de contacto solo para coordinar este arriendo. Se comparten con el operador y se eliminan a pedido.",
		domain.LanguageRussian: "Мы храним ваши контактные данные только для оформления аренды. Они передаются оператору и удаляются по запросу.",
	},
	domain.ReplyAskContact: {
		domain.LanguageEnglish: "Send a phone number or handle where we can reach you:",
		domain.LanguageSpanish: "Envía un teléfono o usuario donde podamos contactarte:",
		domain.LanguageRussian: "Отправьте номер телефона или ник для связи:",
	},
	domain.ReplyEmptyContact: {
		domain.LanguageEnglish: "I need some contact details to continue:",
		domain.LanguageSpanish: "Necesito datos de contacto para continuar:",
		domain.LanguageRussian: "Нужны контактные данные, чтобы продолжить:",
	},
	domain.ReplySubmitted: {
		domain.LanguageEnglish: "Your booking request was sent! Our operator will contact you shortly.",
		domain.LanguageSpanish: "¡Tu solicitud de reserva fue enviada! Nuestro operador te contactará pronto.",
		domain.LanguageRussian: "Заявка на бронирование отправлена! Оператор скоро свяжется с вами.",
	},
	domain.ReplySubmitFailed: {
		domain.LanguageEnglish: "Something went wrong saving your booking. Please press confirm again.",
		domain.LanguageSpanish: "Algo falló al guardar tu reserva. Presiona confirmar de nuevo.",
		domain.LanguageRussian: "Не удалось сохранить бронирование. Нажмите подтвердить еще раз.",
	},
	domain.ReplyCancelled: {
		domain.LanguageEnglish: "Booking cancelled. You are back at the main menu.",
		domain.LanguageSpanish: "Reserva cancelada. Volviste al menú principal.",
		domain.LanguageRussian: "Бронирование отменено. Вы в главном меню.",
	},
	domain.ReplyAskRating: {
		domain.LanguageEnglish: "How was your experience? Tap a rating:",
		domain.LanguageSpanish: "¿Cómo fue tu experiencia? Elige una calificación:",
		domain.LanguageRussian: "Как вам наш сервис? Выберите оценку:",
	},
	domain.ReplyAskReviewText: {
		domain.LanguageEnglish: "Thanks! Now write a few words about your experience:",
		domain.LanguageSpanish: "¡Gracias! Ahora escribe unas palabras sobre tu experiencia:",
		domain.LanguageRussian: "Спасибо! Теперь напишите пару слов о вашем опыте:",
	},
	domain.ReplyReviewThanks: {
		domain.LanguageEnglish: "Thank you for your review!",
		domain.LanguageSpanish: "¡Gracias por tu reseña!",
		domain.LanguageRussian: "Спасибо за ваш отзыв!",
	},
	domain.ReplyFailure: {
		domain.LanguageEnglish: "Something went wrong. Please try again from the main menu.",
		domain.LanguageSpanish: "Algo salió mal. Intenta de nuevo desde el menú principal.",
		domain.LanguageRussian: "Что-то пошло не так. Попробуйте снова из главного меню.",
	},
}

var menuText = map[string]map[domain.Language]string{
	"welcome": {
		domain.LanguageEnglish: "Welcome to RentCar Chile! What would you like to do?",
		domain.LanguageSpanish: "¡Bienvenido a RentCar Chile! ¿Qué deseas hacer?",
		domain.LanguageRussian: "Добро пожаловать в RentCar Chile! Что вы хотите сделать?",
	},
	"make_reservation": {
		domain.LanguageEnglish: "🚗 Make a reservation",
		domain.LanguageSpanish: "🚗 Hacer una reserva",
		domain.LanguageRussian: "🚗 Забронировать",
	},
	"my_bookings": {
		domain.LanguageEnglish: "📋 My bookings",
		domain.LanguageSpanish: "📋 Mis reservas",
		domain.LanguageRussian: "📋 Мои бронирования",
	},
	"leave_review": {
		domain.LanguageEnglish: "⭐ Leave a review",
		domain.LanguageSpanish: "⭐ Dejar una reseña",
		domain.LanguageRussian: "⭐ Оставить отзыв",
	},
	"back_to_menu": {
		domain.LanguageEnglish: "🔙 Back to menu",
		domain.LanguageSpanish: "🔙 Volver al menú",
		domain.LanguageRussian: "🔙 Вернуться в меню",
	},
	"view_policy": {
		domain.LanguageEnglish: "📄 View policy",
		domain.LanguageSpanish: "📄 Ver política",
		domain.LanguageRussian: "📄 Посмотреть политику",
	},
	"accept_policy": {
		domain.LanguageEnglish: "✅ I agree",
		domain.LanguageSpanish: "✅ Acepto",
		domain.LanguageRussian: "✅ Принимаю",
	},
	"confirm": {
		domain.LanguageEnglish: "✅ Confirm booking",
		domain.LanguageSpanish: "✅ Confirmar reserva",
		domain.LanguageRussian: "✅ Подтвердить",
	},
	"no_bookings": {
		domain.LanguageEnglish: "You have no bookings yet.",
		domain.LanguageSpanish: "Aún no tienes reservas.",
		domain.LanguageRussian: "У вас пока нет бронирований.",
	},
	"booking_cancelled": {
		domain.LanguageEnglish: "Booking cancelled and the car is available again.",
		domain.LanguageSpanish: "Reserva cancelada; el auto está disponible de nuevo.",
		domain.LanguageRussian: "Бронирование отменено, автомобиль снова доступен.",
	},
	"cancel_failed": {
		domain.LanguageEnglish: "Could not cancel that booking.",
		domain.LanguageSpanish: "No se pudo cancelar esa reserva.",
		domain.LanguageRussian: "Не удалось отменить бронирование.",
	},
	"choose_language": {
		domain.LanguageEnglish: "Please choose your language:",
		domain.LanguageSpanish: "Por favor elige tu idioma:",
		domain.LanguageRussian: "Пожалуйста, выберите язык:",
	},
}

var categoryLabels = map[domain.CarCategory]map[domain.Language]string{
	domain.CarCategoryEconomy: {
		domain.LanguageEnglish: "💰 Economy",
		domain.LanguageSpanish: "💰 Económico",
		domain.LanguageRussian: "💰 Эконом",
	},
	domain.CarCategorySUV: {
		domain.LanguageEnglish: "🚙 SUV",
		domain.LanguageSpanish: "🚙 SUV",
		domain.LanguageRussian: "🚙 Внедорожник",
	},
	domain.CarCategoryPremium: {
		domain.LanguageEnglish: "✨ Premium",
		domain.LanguageSpanish: "✨ Premium",
		domain.LanguageRussian: "✨ Премиум",
	},
}

func text(code domain.ReplyCode, lang domain.Language) string {
	if byLang, ok := replyText[code]; ok {
		if s, ok := byLang[lang]; ok {
			return s
		}
		return byLang[domain.LanguageEnglish]
	}
	return replyText[domain.ReplyFailure][domain.LanguageEnglish]
}

func menu(key string, lang domain.Language) string {
	byLang := menuText[key]
	if s, ok := byLang[lang]; ok {
		return s
	}
	return byLang[domain.LanguageEnglish]
}

func categoryLabel(category domain.CarCategory, lang domain.Language) string {
	byLang := categoryLabels[category]
	if s, ok := byLang[lang]; ok {
		return s
	}
	return byLang[domain.LanguageEnglish]
}

// quoteSummary renders the price breakdown shown before the consent step and
// again on the confirmation screen.
func quoteSummary(car *domain.Car, quote *domain.PricingQuote, lang domain.Language) string {
	var header string
	switch lang {
	case domain.LanguageSpanish:
		header = "Resumen de tu reserva"
	case domain.LanguageRussian:
		header = "Сводка бронирования"
	default:
		header = "Your booking summary"
	}
	return fmt.Sprintf(
		"%s\n\n🚗 %s\n📅 %d days\n💵 %s CLP/day\n🏷 %d%% off\n💰 Total: %s CLP",
		header,
		car.DisplayName(),
		quote.Days,
		pricing.FormatCLP(quote.DayRateCLP*100),
		quote.DiscountPercent,
		pricing.FormatCLP(quote.TotalCentavos),
	)
}
