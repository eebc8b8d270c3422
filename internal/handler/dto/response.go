package dto

import (
	"time"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
)

type TourResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Price        float64  `json:"price"`
	Duration     string   `json:"duration"`
	MaxGroupSize int      `json:"maxGroupSize"`
	Difficulty   string   `json:"difficulty"`
	Image        string   `json:"image"`
	StartDates   []string `json:"startDates"`
	Highlights   []string `json:"highlights"`
	Included     []string `json:"included"`
	NotIncluded  []string `json:"notIncluded"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	TourID         string  `json:"tourId"`
	UserID         string  `json:"userId"`
	StartDate      string  `json:"startDate"`
	NumberOfPeople int     `json:"numberOfPeople"`
	TotalPrice     float64 `json:"totalPrice"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"`
}

// BookingWithTourResponse resolves the tour inline; Tour is null when the tour
// has been deleted since the booking was made.
type BookingWithTourResponse struct {
	BookingResponse
	Tour *TourResponse `json:"tour"`
}

type BookingOwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingDetailsResponse struct {
	BookingResponse
	Tour *TourResponse        `json:"tour"`
	User BookingOwnerResponse `json:"user"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTourResponse(t *domain.Tour) TourResponse {
	dates := make([]string, 0, len(t.StartDates))
	for _, d := range t.StartDates {
		dates = append(dates, d.Format(time.RFC3339))
	}

	return TourResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Location:     t.Location,
		Price:        t.Price,
		Duration:     t.Duration,
		MaxGroupSize: t.MaxGroupSize,
		Difficulty:   string(t.Difficulty),
		Image:        t.Image,
		StartDates:   dates,
		Highlights:   t.Highlights,
		Included:     t.Included,
		NotIncluded:  t.NotIncluded,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		TourID:         b.TourID,
		UserID:         b.UserID,
		StartDate:      b.StartDate.Format(time.RFC3339),
		NumberOfPeople: b.NumberOfPeople,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingWithTourResponse(b *domain.BookingWithTour) BookingWithTourResponse {
	resp := BookingWithTourResponse{
		BookingResponse: ToBookingResponse(&b.Booking),
	}
	if b.Tour != nil {
		tour := ToTourResponse(b.Tour)
		resp.Tour = &tour
	}
	return resp
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	resp := BookingDetailsResponse{
		BookingResponse: ToBookingResponse(&d.Booking),
		User: BookingOwnerResponse{
			ID:    d.User.ID,
			Name:  d.User.Name,
			Email: d.User.Email,
		},
	}
	if d.Tour != nil {
		tour := ToTourResponse(d.Tour)
		resp.Tour = &tour
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
