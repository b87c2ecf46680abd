package bot

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/session"
)

type fakeAPI struct {
	sent []tgbotapi.Chattable
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return make(chan tgbotapi.Update)
}

func (f *fakeAPI) StopReceivingUpdates() {}

func (f *fakeAPI) lastMessage(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	require.NotEmpty(t, f.sent)
	msg, ok := f.sent[len(f.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok)
	return msg
}

type negotiationStub struct {
	events []domain.Event
	reply  domain.Reply
}

func (s *negotiationStub) Handle(_ context.Context, _ int64, _ string, ev domain.Event) domain.Reply {
	s.events = append(s.events, ev)
	return s.reply
}

type catalogStub struct{}

func (catalogStub) ListCategories(context.Context) []domain.CarCategory {
	return domain.CarCategories()
}
func (catalogStub) ListAvailable(context.Context, domain.CarCategory) ([]domain.Car, error) {
	return nil, nil
}
func (catalogStub) GetCar(context.Context, int64) (*domain.Car, error) { return nil, nil }
func (catalogStub) EnsureSeeded(context.Context) error                 { return nil }

type bookingsStub struct {
	list      []domain.Booking
	cancelErr error
	cancelled []string
}

func (s *bookingsStub) ListBookings(context.Context, int64) ([]domain.Booking, error) {
	return s.list, nil
}

func (s *bookingsStub) CancelBooking(_ context.Context, _ int64, ref string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancelled = append(s.cancelled, ref)
	return nil
}

func (s *bookingsStub) Stats(context.Context) (*domain.BookingStats, error) { return nil, nil }

type usersStub struct {
	lang domain.Language
	set  []domain.Language
}

func (s *usersStub) RegisterContact(context.Context, *domain.User) error { return nil }

func (s *usersStub) SetLanguage(_ context.Context, _ int64, lang domain.Language) error {
	s.set = append(s.set, lang)
	return nil
}

func (s *usersStub) Language(context.Context, int64) domain.Language {
	if s.lang == "" {
		return domain.LanguageEnglish
	}
	return s.lang
}

type botFixture struct {
	api          *fakeAPI
	negotiation  *negotiationStub
	bookingsStub *bookingsStub
	users        *usersStub
	sessions     *session.Store
	bot          *Bot
}

func newBotFixture() *botFixture {
	f := &botFixture{
		api:          &fakeAPI{},
		negotiation:  &negotiationStub{reply: domain.Reply{Code: domain.ReplyChooseCategory}},
		bookingsStub: &bookingsStub{},
		users:        &usersStub{},
		sessions:     session.NewStore(),
	}
	f.bot = &Bot{
		api:         f.api,
		negotiation: f.negotiation,
		catalog:     catalogStub{},
		bookings:    f.bookingsStub,
		users:       f.users,
		sessions:    f.sessions,
	}
	return f
}

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb1",
			From:    &tgbotapi.User{ID: 555, UserName: "traveler"},
			Data:    data,
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 555}},
		},
	}
}

func textUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: 555, UserName: "traveler"},
			Chat: &tgbotapi.Chat{ID: 555},
			Text: text,
		},
	}
}

func TestHandleCallback_EventMapping(t *testing.T) {
	tests := []struct {
		data string
		want domain.Event
	}{
		{"make_reservation", domain.Event{Kind: domain.EventStartBooking}},
		{"category_economy", domain.Event{Kind: domain.EventCategorySelected, Category: "economy"}},
		{"car_7", domain.Event{Kind: domain.EventCarSelected, CarID: 7}},
		{"view_privacy", domain.Event{Kind: domain.EventConsentAction, Consent: domain.ConsentView}},
		{"accept_privacy", domain.Event{Kind: domain.EventConsentAction, Consent: domain.ConsentAgree}},
		{"confirm_booking", domain.Event{Kind: domain.EventConfirmAction}},
		{"leave_review", domain.Event{Kind: domain.EventStartReview}},
		{"rate_3", domain.Event{Kind: domain.EventRatingSelected, Rating: 3}},
		{"main_menu", domain.Event{Kind: domain.EventCancelAction}},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			f := newBotFixture()
			f.bot.handleUpdate(context.Background(), callbackUpdate(tt.data))
			require.Len(t, f.negotiation.events, 1)
			assert.Equal(t, tt.want, f.negotiation.events[0])
		})
	}
}

func TestHandleMessage_TextRoutedByState(t *testing.T) {
	tests := []struct {
		state session.State
		want  domain.EventKind
	}{
		{session.StateSelectingDates, domain.EventDatesText},
		{session.StateEnteringContact, domain.EventContactText},
		{session.StateEnteringReview, domain.EventReviewText},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			f := newBotFixture()
			f.sessions.GetOrCreate(555, "traveler", tt.state)

			f.bot.handleUpdate(context.Background(), textUpdate("some text"))

			require.Len(t, f.negotiation.events, 1)
			assert.Equal(t, tt.want, f.negotiation.events[0].Kind)
			assert.Equal(t, "some text", f.negotiation.events[0].Text)
		})
	}
}

func TestHandleMessage_TextWithoutSessionShowsMenu(t *testing.T) {
	f := newBotFixture()

	f.bot.handleUpdate(context.Background(), textUpdate("hello"))

	assert.Empty(t, f.negotiation.events)
	msg := f.api.lastMessage(t)
	assert.Contains(t, msg.Text, "Welcome")
}

func TestHandleCallback_LanguageSelection(t *testing.T) {
	f := newBotFixture()

	f.bot.handleUpdate(context.Background(), callbackUpdate("lang_es"))

	require.Len(t, f.users.set, 1)
	assert.Equal(t, domain.LanguageSpanish, f.users.set[0])
	assert.Empty(t, f.negotiation.events)
}

func TestHandleCallback_MyBookings(t *testing.T) {
	f := newBotFixture()

	t.Run("empty", func(t *testing.T) {
		f.bot.handleUpdate(context.Background(), callbackUpdate("my_bookings"))
		assert.Contains(t, f.api.lastMessage(t).Text, "no bookings")
	})

	t.Run("with bookings", func(t *testing.T) {
		f.bookingsStub.list = []domain.Booking{
			{Ref: "ref-1", Status: domain.BookingStatusSubmitted},
		}
		f.bot.handleUpdate(context.Background(), callbackUpdate("my_bookings"))
		assert.Contains(t, f.api.lastMessage(t).Text, "ref-1")
	})
}

func TestHandleCallback_CancelBooking(t *testing.T) {
	f := newBotFixture()

	f.bot.handleUpdate(context.Background(), callbackUpdate("cancel_booking_ref-9"))
	assert.Equal(t, []string{"ref-9"}, f.bookingsStub.cancelled)
	assert.Contains(t, f.api.lastMessage(t).Text, "cancelled")

	f.bookingsStub.cancelErr = errors.New("not yours")
	f.bot.handleUpdate(context.Background(), callbackUpdate("cancel_booking_ref-9"))
	assert.Contains(t, f.api.lastMessage(t).Text, "Could not cancel")
}

func TestRender_SubmittedIncludesRef(t *testing.T) {
	f := newBotFixture()
	f.negotiation.reply = domain.Reply{
		Code:    domain.ReplySubmitted,
		Booking: &domain.Booking{Ref: "abc-123"},
	}

	f.bot.handleUpdate(context.Background(), callbackUpdate("confirm_booking"))
	assert.Contains(t, f.api.lastMessage(t).Text, "abc-123")
}

func TestRender_LocalizedPrompt(t *testing.T) {
	f := newBotFixture()
	f.users.lang = domain.LanguageSpanish

	f.bot.handleUpdate(context.Background(), callbackUpdate("make_reservation"))
	assert.Contains(t, f.api.lastMessage(t).Text, "categoría")
}
