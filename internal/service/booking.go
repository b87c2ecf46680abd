package service

import (
	"context"
	"fmt"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/repository"
)

type bookingService struct {
	bookings repository.BookingRepository
}

func NewBookingService(bookings repository.BookingRepository) BookingService {
	return &bookingService{bookings: bookings}
}

func (s *bookingService) ListBookings(ctx context.Context, requesterID int64) ([]domain.Booking, error) {
	return s.bookings.ListByRequester(ctx, requesterID)
}

// CancelBooking cancels the requester's own booking by reference and frees
// the car. Unknown refs and refs belonging to other requesters both come back
// as ErrNotFound.
func (s *bookingService) CancelBooking(ctx context.Context, requesterID int64, ref string) error {
	if err := s.bookings.Cancel(ctx, ref, requesterID); err != nil {
		return fmt.Errorf("cancelling booking %s: %w", ref, err)
	}
	logger.Info("booking cancelled", "ref", ref, "requester_id", requesterID)
	return nil
}

func (s *bookingService) Stats(ctx context.Context) (*domain.BookingStats, error) {
	return s.bookings.Stats(ctx)
}
