package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/pricing"
	"rentcar-bot/internal/repository"
	"rentcar-bot/internal/session"
)

// emailSender is the SendGrid call behind the digest, separated so tests can
// swap it out.
type emailSender func(message *mail.SGMailV3) error

type digestService struct {
	bookings repository.BookingRepository
	sessions *session.Store
	from     *mail.Email
	to       *mail.Email
	send     emailSender
}

func NewDigestService(bookings repository.BookingRepository, sessions *session.Store, apiKey, fromEmail, fromName, toEmail, toName string) DigestService {
	client := sendgrid.NewSendClient(apiKey)
	return &digestService{
		bookings: bookings,
		sessions: sessions,
		from:     mail.NewEmail(fromName, fromEmail),
		to:       mail.NewEmail(toName, toEmail),
		send: func(message *mail.SGMailV3) error {
			response, err := client.Send(message)
			if err != nil {
				return fmt.Errorf("sending email: %w", err)
			}
			if response.StatusCode >= 400 {
				return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
			}
			return nil
		},
	}
}

// SendDailyDigest mails the operator a one-page summary of the ledger and the
// live conversation count.
func (s *digestService) SendDailyDigest(ctx context.Context) error {
	stats, err := s.bookings.Stats(ctx)
	if err != nil {
		return fmt.Errorf("loading booking stats: %w", err)
	}

	subject := fmt.Sprintf("RentCar digest %s", time.Now().Format("2006-01-02"))
	plainText := digestBody(stats, s.sessions.Len())
	message := mail.NewSingleEmailPlainText(s.from, subject, s.to, plainText)

	if err := s.send(message); err != nil {
		return err
	}
	logger.Info("daily digest sent", "bookings", stats.Total, "active_sessions", s.sessions.Len())
	return nil
}

func digestBody(stats *domain.BookingStats, activeSessions int) string {
	body := fmt.Sprintf(
		"Bookings total: %d\nRevenue: %s CLP\nActive conversations: %d\n\nBy status:\n",
		stats.Total, pricing.FormatCLP(stats.RevenueCentavos), activeSessions,
	)
	for _, status := range []domain.BookingStatus{
		domain.BookingStatusSubmitted,
		domain.BookingStatusConfirmed,
		domain.BookingStatusCompleted,
		domain.BookingStatusCancelled,
	} {
		if count, ok := stats.ByStatus[status]; ok {
			body += fmt.Sprintf("  %s: %d\n", status, count)
		}
	}
	return body
}
