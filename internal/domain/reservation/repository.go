package reservation

import (
	"context"
	"errors"

	"github.com/weecompany/reservas-api/internal/models"
)

// ErrNotFound is returned when no reservation matches the given id.
var ErrNotFound = errors.New("reservation not found")

type Repository interface {
	Create(ctx context.Context, r *models.Reservation) error

	FindByID(ctx context.Context, id uint) (*models.Reservation, error)

	// FindAllWithOwners returns every reservation with its owning user
	// resolved, for the admin listing.
	FindAllWithOwners(ctx context.Context) ([]models.Reservation, error)

	FindByOwner(ctx context.Context, ownerID uint) ([]models.Reservation, error)

	Update(ctx context.Context, r *models.Reservation) error

	Delete(ctx context.Context, id uint) error
}
