package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
	"github.com/AnshDabra27/jet-set-go/internal/service/ports"
)

// BookingService is the only place where a monetary amount is computed and
// where a caller's access to a booking is authorized.
type BookingService struct {
	bookingRepo ports.BookingRepo
	tourRepo    ports.TourRepo
	userRepo    ports.UserRepo
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	tourRepo ports.TourRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		tourRepo:    tourRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create books a tour for userID. The total price is snapshotted at creation
// time as tour price times party size and never recomputed. Party size is not
// checked against the tour's max_group_size and the start date is not checked
// against the tour's departure dates; both match the behavior of the running
// system.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput, userID string) (*domain.Booking, error) {
	if input.NumberOfPeople <= 0 {
		return nil, fmt.Errorf("%w: number_of_people must be positive", domain.ErrValidation)
	}
	if input.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}

	tour, err := s.tourRepo.GetByID(ctx, input.TourID)
	if err != nil {
		return nil, fmt.Errorf("check tour: %w", err)
	}

	booking := &domain.Booking{
		ID:             uuid.New().String(),
		TourID:         tour.ID,
		UserID:         userID,
		StartDate:      input.StartDate,
		NumberOfPeople: input.NumberOfPeople,
		TotalPrice:     tour.Price * float64(input.NumberOfPeople),
		Status:         domain.BookingStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("tour_id", booking.TourID),
		logger.String("user_id", userID),
		logger.Int("number_of_people", booking.NumberOfPeople),
	)

	return booking, nil
}

// ListByUser returns the caller's bookings, most recent first, with each tour
// resolved. A booking whose tour has been deleted carries a nil tour.
func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.BookingWithTour, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	tours := make(map[string]*domain.Tour, len(bookings))
	res := make([]*domain.BookingWithTour, 0, len(bookings))
	for _, b := range bookings {
		tour, ok := tours[b.TourID]
		if !ok {
			tour, err = s.tourRepo.GetByID(ctx, b.TourID)
			if err != nil && !errors.Is(err, domain.ErrTourNotFound) {
				return nil, fmt.Errorf("resolve tour: %w", err)
			}
			tours[b.TourID] = tour
		}
		res = append(res, &domain.BookingWithTour{Booking: *b, Tour: tour})
	}

	return res, nil
}

// Get returns a single booking with its tour and the owner's name and email.
// Only the owner may read it.
func (s *BookingService) Get(ctx context.Context, bookingID, requestingUserID string) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != requestingUserID {
		return nil, domain.ErrForbidden
	}

	tour, err := s.tourRepo.GetByID(ctx, booking.TourID)
	if err != nil && !errors.Is(err, domain.ErrTourNotFound) {
		return nil, fmt.Errorf("resolve tour: %w", err)
	}

	owner, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	return &domain.BookingDetails{
		Booking: *booking,
		Tour:    tour,
		User:    domain.BookingOwner{ID: owner.ID, Name: owner.Name, Email: owner.Email},
	}, nil
}

// Cancel deletes the booking record outright. There is no ownership check here
// and no transition to a cancelled status; the row is simply gone.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return err
		}
		s.logger.Error("failed to cancel booking",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
	)

	return nil
}
