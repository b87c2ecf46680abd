package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentcar-bot/internal/domain"
)

func carColumnsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "brand", "model", "year", "category", "day_rate_clp", "available", "image_url", "description", "created_on"})
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)

	t.Run("found", func(t *testing.T) {
		rows := carColumnsRows().
			AddRow(1, "Chevrolet", "Cavalier", 2023, "economy", 49990, true, "", "", time.Now())
		mock.ExpectQuery(`SELECT .+ FROM cars WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		car, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Chevrolet", car.Brand)
		assert.Equal(t, domain.CarCategoryEconomy, car.Category)
		assert.Equal(t, int64(49990), car.DayRateCLP)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM cars WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(carColumnsRows())

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_ListAvailableByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)

	rows := carColumnsRows().
		AddRow(1, "Chevrolet", "Cavalier", 2023, "economy", 49990, true, "", "", time.Now()).
		AddRow(2, "Hyundai", "Accent", 2022, "economy", 52990, true, "", "", time.Now())
	mock.ExpectQuery(`SELECT .+ FROM cars WHERE category = \$1 AND available`).
		WithArgs(domain.CarCategoryEconomy).
		WillReturnRows(rows)

	cars, err := repo.ListAvailableByCategory(context.Background(), domain.CarCategoryEconomy)
	assert.NoError(t, err)
	assert.Len(t, cars, 2)
	assert.Equal(t, "Hyundai", cars[1].Brand)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_ReserveIfAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)
	query := regexp.QuoteMeta(`UPDATE cars SET available = false WHERE id = $1 AND available`)

	t.Run("wins the reservation", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

		reserved, err := repo.ReserveIfAvailable(context.Background(), 1)
		assert.NoError(t, err)
		assert.True(t, reserved)
	})

	t.Run("already taken", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))

		reserved, err := repo.ReserveIfAvailable(context.Background(), 1)
		assert.NoError(t, err)
		assert.False(t, reserved)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_SetAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)
	query := regexp.QuoteMeta(`UPDATE cars SET available = $1 WHERE id = $2`)

	t.Run("updates", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(true, int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.SetAvailable(context.Background(), 3, true))
	})

	t.Run("missing car", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(false, int64(42)).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.SetAvailable(context.Background(), 42, false), domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Seed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)

	cars := []domain.Car{
		{Brand: "Chevrolet", Model: "Cavalier", Year: 2023, Category: domain.CarCategoryEconomy, DayRateCLP: 49990, Available: true},
		{Brand: "Toyota", Model: "RAV4", Year: 2023, Category: domain.CarCategorySUV, DayRateCLP: 89990, Available: true},
	}

	mock.ExpectBegin()
	for range cars {
		mock.ExpectExec(`INSERT INTO cars`).WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	assert.NoError(t, repo.Seed(context.Background(), cars))
	assert.NoError(t, mock.ExpectationsWereMet())
}
