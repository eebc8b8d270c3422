package ports

import (
	"context"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
