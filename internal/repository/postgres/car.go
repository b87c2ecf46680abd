package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT id, brand, model, year, category, day_rate_clp, available, COALESCE(image_url, ''), COALESCE(description, ''), created_on FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Category, &c.DayRateCLP, &c.Available, &c.ImageURL, &c.Description, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) ListAvailableByCategory(ctx context.Context, category domain.CarCategory) ([]domain.Car, error) {
	query := `SELECT id, brand, model, year, category, day_rate_clp, available, COALESCE(image_url, ''), COALESCE(description, ''), created_on
	          FROM cars WHERE category = $1 AND available ORDER BY day_rate_clp, id`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Category, &c.DayRateCLP, &c.Available, &c.ImageURL, &c.Description, &c.CreatedOn); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *carRepository) SetAvailable(ctx context.Context, id int64, available bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE cars SET available = $1 WHERE id = $2`, available, id)
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

// ReserveIfAvailable is a compare-and-set: the UPDATE only matches while the
// car is still available, so the losing side of a race sees zero rows.
func (r *carRepository) ReserveIfAvailable(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE cars SET available = false WHERE id = $1 AND available`
	logger.DatabaseCall("ReserveCar", query, "car_id", id)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars`).Scan(&count)
	return count, err
}

func (r *carRepository) Seed(ctx context.Context, cars []domain.Car) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO cars (brand, model, year, category, day_rate_clp, available, image_url, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, c := range cars {
		if _, err := tx.ExecContext(ctx, query, c.Brand, c.Model, c.Year, c.Category, c.DayRateCLP, c.Available, c.ImageURL, c.Description); err != nil {
			return err
		}
	}
	return tx.Commit()
}
