package postgres

import (
	"context"
	"database/sql"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (requester_id, username, rating, comment) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rv.RequesterID, rv.Username, rv.Rating, rv.Comment).Scan(&rv.ID)
}
