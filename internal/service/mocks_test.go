package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentcar-bot/internal/domain"
)

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarRepository) ListAvailableByCategory(ctx context.Context, category domain.CarCategory) ([]domain.Car, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockCarRepository) SetAvailable(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockCarRepository) ReserveIfAvailable(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarRepository) Seed(ctx context.Context, cars []domain.Car) error {
	args := m.Called(ctx, cars)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, ref string, requesterID int64) error {
	args := m.Called(ctx, ref, requesterID)
	return args.Error(0)
}

func (m *MockBookingRepository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingStats), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

func (m *MockNotifier) SendPlain(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}
