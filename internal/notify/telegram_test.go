package notify

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, f.err
}

func TestTelegramNotifier_Send(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot}

	err := n.Send(context.Background(), -100200, "*hello*")
	assert.NoError(t, err)
	assert.Len(t, bot.sent, 1)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.Equal(t, int64(-100200), bot.sent[0].ChatID)
}

func TestTelegramNotifier_SendPlainHasNoParseMode(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot}

	err := n.SendPlain(context.Background(), -100200, "*hello*")
	assert.NoError(t, err)
	assert.Empty(t, bot.sent[0].ParseMode)
}

func TestTelegramNotifier_SendError(t *testing.T) {
	bot := &fakeBot{err: errors.New("bad request")}
	n := &TelegramNotifier{bot: bot}

	err := n.Send(context.Background(), 1, "x")
	assert.ErrorContains(t, err, "telegram send")
}

func TestTelegramNotifier_CancelledContext(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, n.Send(ctx, 1, "x"))
	assert.Empty(t, bot.sent)
}
