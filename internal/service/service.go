package service

import (
	"context"

	"rentcar-bot/internal/domain"
)

// NegotiationService drives the booking conversation. One call per inbound
// event; the returned Reply tells the presentation layer what to render.
type NegotiationService interface {
	Handle(ctx context.Context, requesterID int64, username string, ev domain.Event) domain.Reply
}

type CatalogService interface {
	ListCategories(ctx context.Context) []domain.CarCategory
	ListAvailable(ctx context.Context, category domain.CarCategory) ([]domain.Car, error)
	GetCar(ctx context.Context, id int64) (*domain.Car, error)
	EnsureSeeded(ctx context.Context) error
}

type BookingService interface {
	ListBookings(ctx context.Context, requesterID int64) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, requesterID int64, ref string) error
	Stats(ctx context.Context) (*domain.BookingStats, error)
}

type UserService interface {
	RegisterContact(ctx context.Context, user *domain.User) error
	SetLanguage(ctx context.Context, requesterID int64, lang domain.Language) error
	Language(ctx context.Context, requesterID int64) domain.Language
}

// DigestService assembles and sends the nightly operator summary email.
type DigestService interface {
	SendDailyDigest(ctx context.Context) error
}

// Notifier is the outbound operator channel. Send uses rich formatting;
// SendPlain is the degraded fallback when formatted delivery is rejected.
type Notifier interface {
	Send(ctx context.Context, chatID int64, text string) error
	SendPlain(ctx context.Context, chatID int64, text string) error
}
