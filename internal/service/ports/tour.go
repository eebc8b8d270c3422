package ports

import (
	"context"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
)

type TourRepo interface {
	Create(ctx context.Context, t *domain.Tour) error
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	List(ctx context.Context) ([]*domain.Tour, error)
	Update(ctx context.Context, t *domain.Tour) error
	Delete(ctx context.Context, id string) error
}
