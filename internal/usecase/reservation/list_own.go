package reservation

import (
	"context"

	domain "github.com/weecompany/reservas-api/internal/domain/reservation"
	"github.com/weecompany/reservas-api/internal/models"
)

type ListOwnReservations struct {
	repo domain.Repository
}

func NewListOwnReservations(repo domain.Repository) *ListOwnReservations {
	return &ListOwnReservations{repo: repo}
}

// Execute returns the requester's reservations only; the filter is the
// authenticated identity, never a query parameter.
func (uc *ListOwnReservations) Execute(
	ctx context.Context,
	requesterID uint,
) ([]models.Reservation, error) {
	return uc.repo.FindByOwner(ctx, requesterID)
}
