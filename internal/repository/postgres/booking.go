package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, ref, requester_id, username, car_id, start_date, end_date, days, day_rate_clp, discount_percent, total_centavos, contact_info, status, created_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (ref, requester_id, username, car_id, start_date, end_date, days, day_rate_clp, discount_percent, total_centavos, contact_info, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	logger.DatabaseCall("CreateBooking", query, "ref", b.Ref)
	return r.db.QueryRowContext(ctx, query, b.Ref, b.RequesterID, b.Username, b.CarID, b.StartDate, b.EndDate, b.Days, b.DayRateCLP, b.DiscountPercent, b.TotalCentavos, b.ContactInfo, b.Status).Scan(&b.ID)
}

func (r *bookingRepository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ref = $1`
	err := r.db.QueryRowContext(ctx, query, ref).Scan(&b.ID, &b.Ref, &b.RequesterID, &b.Username, &b.CarID, &b.StartDate, &b.EndDate, &b.Days, &b.DayRateCLP, &b.DiscountPercent, &b.TotalCentavos, &b.ContactInfo, &b.Status, &b.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE requester_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Ref, &b.RequesterID, &b.Username, &b.CarID, &b.StartDate, &b.EndDate, &b.Days, &b.DayRateCLP, &b.DiscountPercent, &b.TotalCentavos, &b.ContactInfo, &b.Status, &b.CreatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// Cancel flips the booking to CANCELLED and re-enables its car in a single
// transaction, mirroring the submit path in reverse.
func (r *bookingRepository) Cancel(ctx context.Context, ref string, requesterID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var carID int64
	query := `UPDATE bookings SET status = $1
	          WHERE ref = $2 AND requester_id = $3 AND status IN ($4, $5) RETURNING car_id`
	err = tx.QueryRowContext(ctx, query, domain.BookingStatusCancelled, ref, requesterID,
		domain.BookingStatusSubmitted, domain.BookingStatusConfirmed).Scan(&carID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE cars SET available = true WHERE id = $1`, carID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *bookingRepository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	stats := &domain.BookingStats{ByStatus: make(map[domain.BookingStatus]int64)}

	err := r.db.QueryRowContext(ctx, `SELECT count(*), COALESCE(sum(total_centavos), 0) FROM bookings`).Scan(&stats.Total, &stats.RevenueCentavos)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.BookingStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}
	return stats, rows.Err()
}
