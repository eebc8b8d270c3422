package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
	"github.com/AnshDabra27/jet-set-go/internal/service/ports"
)

type TourService struct {
	repo ports.TourRepo
}

func NewTourService(repo ports.TourRepo) *TourService {
	return &TourService{repo: repo}
}

func (s *TourService) Create(ctx context.Context, input domain.CreateTourInput) (*domain.Tour, error) {
	if err := validateTourFields(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tour := &domain.Tour{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Price:        input.Price,
		Duration:     input.Duration,
		MaxGroupSize: input.MaxGroupSize,
		Difficulty:   input.Difficulty,
		Image:        input.Image,
		StartDates:   input.StartDates,
		Highlights:   input.Highlights,
		Included:     input.Included,
		NotIncluded:  input.NotIncluded,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	return tour, nil
}

func (s *TourService) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TourService) List(ctx context.Context) ([]*domain.Tour, error) {
	return s.repo.List(ctx)
}

func (s *TourService) Update(ctx context.Context, id string, input domain.UpdateTourInput) (*domain.Tour, error) {
	tour, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyTourPatch(tour, input)

	if !tour.Difficulty.Valid() {
		return nil, fmt.Errorf("%w: difficulty must be one of easy, medium, difficult", domain.ErrValidation)
	}
	if tour.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if tour.MaxGroupSize <= 0 {
		return nil, fmt.Errorf("%w: max_group_size must be positive", domain.ErrValidation)
	}

	tour.UpdatedAt = time.Now().UTC()
	if err = s.repo.Update(ctx, tour); err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	return tour, nil
}

// Delete removes the tour only. Bookings referencing it are left in place with
// a dangling reference, as the original system does.
func (s *TourService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateTourFields(input domain.CreateTourInput) error {
	switch {
	case input.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case input.Description == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case input.Location == "":
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	case input.Duration == "":
		return fmt.Errorf("%w: duration is required", domain.ErrValidation)
	case input.Image == "":
		return fmt.Errorf("%w: image is required", domain.ErrValidation)
	case input.Price <= 0:
		return fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	case input.MaxGroupSize <= 0:
		return fmt.Errorf("%w: max_group_size must be positive", domain.ErrValidation)
	case !input.Difficulty.Valid():
		return fmt.Errorf("%w: difficulty must be one of easy, medium, difficult", domain.ErrValidation)
	}
	return nil
}

func applyTourPatch(tour *domain.Tour, input domain.UpdateTourInput) {
	if input.Title != nil {
		tour.Title = *input.Title
	}
	if input.Description != nil {
		tour.Description = *input.Description
	}
	if input.Location != nil {
		tour.Location = *input.Location
	}
	if input.Price != nil {
		tour.Price = *input.Price
	}
	if input.Duration != nil {
		tour.Duration = *input.Duration
	}
	if input.MaxGroupSize != nil {
		tour.MaxGroupSize = *input.MaxGroupSize
	}
	if input.Difficulty != nil {
		tour.Difficulty = *input.Difficulty
	}
	if input.Image != nil {
		tour.Image = *input.Image
	}
	if input.StartDates != nil {
		tour.StartDates = input.StartDates
	}
	if input.Highlights != nil {
		tour.Highlights = input.Highlights
	}
	if input.Included != nil {
		tour.Included = input.Included
	}
	if input.NotIncluded != nil {
		tour.NotIncluded = input.NotIncluded
	}
}
