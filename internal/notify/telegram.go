// Package notify implements the outbound operator channel over the Telegram
// Bot API.
package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rentcar-bot/internal/logger"
)

// botSender is the slice of tgbotapi.BotAPI the notifier needs.
type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot botSender
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

// Send delivers Markdown-formatted text. Telegram rejects the whole message
// when the markup is unbalanced, which is why callers keep a plain fallback.
func (n *TelegramNotifier) Send(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return n.send(ctx, msg)
}

// SendPlain delivers the text without any parse mode.
func (n *TelegramNotifier) SendPlain(ctx context.Context, chatID int64, text string) error {
	return n.send(ctx, tgbotapi.NewMessage(chatID, text))
}

func (n *TelegramNotifier) send(ctx context.Context, msg tgbotapi.MessageConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.ExternalServiceCall("telegram", "sendMessage", "chat_id", msg.ChatID)
	_, err := n.bot.Send(msg)
	logger.ExternalServiceResult("telegram", "sendMessage", err, "chat_id", msg.ChatID)
	if err != nil {
		return fmt.Errorf("telegram send to %d: %w", msg.ChatID, err)
	}
	return nil
}
