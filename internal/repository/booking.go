package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
)

type BookingRepository struct {
	db *dbpg.DB
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, tour_id, user_id, start_date, number_of_people,
				total_price, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Master.ExecContext(
		ctx, query,
		b.ID, b.TourID, b.UserID, b.StartDate, b.NumberOfPeople,
		b.TotalPrice, b.Status, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, tour_id, user_id, start_date, number_of_people,
				total_price, status, created_at
			  FROM bookings
			  WHERE id = $1`

	var b domain.Booking
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.TourID, &b.UserID, &b.StartDate, &b.NumberOfPeople,
		&b.TotalPrice, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT id, tour_id, user_id, start_date, number_of_people,
				total_price, status, created_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.Master.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.TourID, &b.UserID, &b.StartDate, &b.NumberOfPeople,
			&b.TotalPrice, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// Delete removes the row permanently. Cancellation keeps no cancelled-state
// record behind.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete booking rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}
