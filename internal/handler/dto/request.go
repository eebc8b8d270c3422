package dto

import (
	"fmt"
	"time"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type CreateTourRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Duration     string   `json:"duration" binding:"required"`
	MaxGroupSize int      `json:"maxGroupSize" binding:"required,gt=0"`
	Difficulty   string   `json:"difficulty" binding:"required,oneof=easy medium difficult"`
	Image        string   `json:"image" binding:"required"`
	StartDates   []string `json:"startDates"`
	Highlights   []string `json:"highlights"`
	Included     []string `json:"included"`
	NotIncluded  []string `json:"notIncluded"`
}

type UpdateTourRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Duration     *string  `json:"duration"`
	MaxGroupSize *int     `json:"maxGroupSize" binding:"omitempty,gt=0"`
	Difficulty   *string  `json:"difficulty" binding:"omitempty,oneof=easy medium difficult"`
	Image        *string  `json:"image"`
	StartDates   []string `json:"startDates"`
	Highlights   []string `json:"highlights"`
	Included     []string `json:"included"`
	NotIncluded  []string `json:"notIncluded"`
}

type CreateBookingRequest struct {
	TourID         string `json:"tourId" binding:"required,uuid"`
	StartDate      string `json:"startDate" binding:"required"`
	NumberOfPeople int    `json:"numberOfPeople" binding:"required,gt=0"`
}

func (r CreateTourRequest) ToInput() (domain.CreateTourInput, error) {
	dates, err := ParseDates(r.StartDates)
	if err != nil {
		return domain.CreateTourInput{}, err
	}

	return domain.CreateTourInput{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Price:        r.Price,
		Duration:     r.Duration,
		MaxGroupSize: r.MaxGroupSize,
		Difficulty:   domain.Difficulty(r.Difficulty),
		Image:        r.Image,
		StartDates:   dates,
		Highlights:   r.Highlights,
		Included:     r.Included,
		NotIncluded:  r.NotIncluded,
	}, nil
}

func (r UpdateTourRequest) ToInput() (domain.UpdateTourInput, error) {
	input := domain.UpdateTourInput{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Price:        r.Price,
		Duration:     r.Duration,
		MaxGroupSize: r.MaxGroupSize,
		Image:        r.Image,
		Highlights:   r.Highlights,
		Included:     r.Included,
		NotIncluded:  r.NotIncluded,
	}
	if r.Difficulty != nil {
		d := domain.Difficulty(*r.Difficulty)
		input.Difficulty = &d
	}
	if r.StartDates != nil {
		dates, err := ParseDates(r.StartDates)
		if err != nil {
			return domain.UpdateTourInput{}, err
		}
		input.StartDates = dates
	}

	return input, nil
}

func (r CreateBookingRequest) ToInput() (domain.CreateBookingInput, error) {
	date, err := ParseDate(r.StartDate)
	if err != nil {
		return domain.CreateBookingInput{}, err
	}

	return domain.CreateBookingInput{
		TourID:         r.TourID,
		StartDate:      date,
		NumberOfPeople: r.NumberOfPeople,
	}, nil
}

// ParseDate accepts either a full RFC 3339 timestamp or a plain calendar date,
// the two shapes the booking form submits.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", raw)
	}
	return t, nil
}

// ParseDates never returns a nil slice for non-nil input, so an explicit empty
// list clears the field on update.
func ParseDates(raw []string) ([]time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}
