package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, username, first_name, last_name, language)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (id) DO UPDATE SET username = $2, first_name = $3, last_name = $4`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, u.FirstName, u.LastName, u.Language)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, first_name, last_name, language, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Language, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) SetLanguage(ctx context.Context, id int64, lang domain.Language) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET language = $1 WHERE id = $2`, lang, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
