package postgres

import (
	"database/sql"

	"rentcar-bot/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.BookingRepository
	repository.UserRepository
	repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		CarRepository:     NewCarRepository(db),
		BookingRepository: NewBookingRepository(db),
		UserRepository:    NewUserRepository(db),
		ReviewRepository:  NewReviewRepository(db),
	}
}
