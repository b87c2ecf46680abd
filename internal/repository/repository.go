package repository

import (
	"context"

	"rentcar-bot/internal/domain"
)

type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	ListAvailableByCategory(ctx context.Context, category domain.CarCategory) ([]domain.Car, error)
	SetAvailable(ctx context.Context, id int64, available bool) error
	// ReserveIfAvailable flips the availability flag with a compare-and-set
	// so that concurrent bookings of the last unit lose gracefully.
	ReserveIfAvailable(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, cars []domain.Car) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error)
	// Cancel marks the booking cancelled and re-enables its car in one
	// transaction. Only the owning requester may cancel, and only while the
	// booking is still SUBMITTED or CONFIRMED.
	Cancel(ctx context.Context, ref string, requesterID int64) error
	Stats(ctx context.Context) (*domain.BookingStats, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SetLanguage(ctx context.Context, id int64, lang domain.Language) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
}
