package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
)

type TourRepository struct {
	db *dbpg.DB
}

func NewTourRepo(db *dbpg.DB) *TourRepository {
	return &TourRepository{db: db}
}

const tourColumns = `id, title, description, location, price, duration, max_group_size,
		difficulty, image, start_dates, highlights, included, not_included,
		created_at, updated_at`

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	query := `INSERT INTO tours (` + tourColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Master.ExecContext(
		ctx, query,
		t.ID, t.Title, t.Description, t.Location, t.Price, t.Duration,
		t.MaxGroupSize, t.Difficulty, t.Image,
		pq.Array(datesToStrings(t.StartDates)),
		pq.Array(t.Highlights), pq.Array(t.Included), pq.Array(t.NotIncluded),
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tour: %w", err)
	}

	return nil
}

func (r *TourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + `
			  FROM tours
			  WHERE id = $1`

	row := r.db.Master.QueryRowContext(ctx, query, id)

	t, err := scanTour(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("get tour: %w", err)
	}

	return t, nil
}

func (r *TourRepository) List(ctx context.Context) ([]*domain.Tour, error) {
	query := `SELECT ` + tourColumns + `
			  FROM tours
			  ORDER BY created_at DESC`

	rows, err := r.db.Master.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	var res []*domain.Tour
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tour: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *TourRepository) Update(ctx context.Context, t *domain.Tour) error {
	query := `UPDATE tours
			  SET title = $2, description = $3, location = $4, price = $5,
			      duration = $6, max_group_size = $7, difficulty = $8, image = $9,
			      start_dates = $10, highlights = $11, included = $12,
			      not_included = $13, updated_at = $14
			  WHERE id = $1`

	res, err := r.db.Master.ExecContext(
		ctx, query,
		t.ID, t.Title, t.Description, t.Location, t.Price, t.Duration,
		t.MaxGroupSize, t.Difficulty, t.Image,
		pq.Array(datesToStrings(t.StartDates)),
		pq.Array(t.Highlights), pq.Array(t.Included), pq.Array(t.NotIncluded),
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tour: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tour rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTourNotFound
	}

	return nil
}

func (r *TourRepository) Delete(ctx context.Context, id string) error {
	// No cascade: bookings keep referencing the deleted tour id.
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tour rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTourNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTour(row rowScanner) (*domain.Tour, error) {
	var (
		t          domain.Tour
		startDates pq.StringArray
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Location, &t.Price, &t.Duration,
		&t.MaxGroupSize, &t.Difficulty, &t.Image,
		&startDates,
		pq.Array(&t.Highlights), pq.Array(&t.Included), pq.Array(&t.NotIncluded),
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.StartDates, err = stringsToDates(startDates)
	if err != nil {
		return nil, fmt.Errorf("parse start_dates: %w", err)
	}

	return &t, nil
}

// Departure dates live in a text[] column as RFC 3339 strings; order is the
// insertion order of the array.
func datesToStrings(dates []time.Time) []string {
	res := make([]string, len(dates))
	for i, d := range dates {
		res[i] = d.UTC().Format(time.RFC3339)
	}
	return res
}

func stringsToDates(raw []string) ([]time.Time, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	res := make([]time.Time, len(raw))
	for i, s := range raw {
		d, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
		res[i] = d
	}
	return res, nil
}
