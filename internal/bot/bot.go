// Package bot maps Telegram updates onto negotiation events and renders the
// replies with localized text and inline keyboards. It holds no booking
// logic of its own.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/service"
	"rentcar-bot/internal/session"
)

// botAPI is the slice of tgbotapi.BotAPI the dispatcher uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Bot struct {
	api         botAPI
	negotiation service.NegotiationService
	catalog     service.CatalogService
	bookings    service.BookingService
	users       service.UserService
	sessions    *session.Store
}

func New(
	api *tgbotapi.BotAPI,
	negotiation service.NegotiationService,
	catalog service.CatalogService,
	bookings service.BookingService,
	users service.UserService,
	sessions *session.Store,
) *Bot {
	return &Bot{
		api:         api,
		negotiation: negotiation,
		catalog:     catalog,
		bookings:    bookings,
		users:       users,
		sessions:    sessions,
	}
}

// Run long-polls Telegram until the context is cancelled. Updates for one
// requester arrive in order, which is what keeps negotiation events
// serialized without any locking here.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	logger.Info("bot update loop started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logger.Info("bot update loop stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}
