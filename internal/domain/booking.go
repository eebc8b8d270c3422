package domain

import "time"

type BookingStatus string

// Bookings are created as pending. The confirmed and cancelled values exist in
// the stored enum but no code path transitions into them: cancellation deletes
// the row outright.
const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID             string        `json:"id"`
	TourID         string        `json:"tourId"`
	UserID         string        `json:"userId"`
	StartDate      time.Time     `json:"startDate"`
	NumberOfPeople int           `json:"numberOfPeople"`
	TotalPrice     float64       `json:"totalPrice"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// BookingWithTour carries the booking together with its resolved tour. Tour is
// nil when the referenced tour has been deleted since the booking was made.
type BookingWithTour struct {
	Booking
	Tour *Tour `json:"tour"`
}

// BookingOwner is the minimal slice of the owning user exposed on a single
// booking read.
type BookingOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingDetails struct {
	Booking
	Tour *Tour        `json:"tour"`
	User BookingOwner `json:"user"`
}

type CreateBookingInput struct {
	TourID         string
	StartDate      time.Time
	NumberOfPeople int
}
