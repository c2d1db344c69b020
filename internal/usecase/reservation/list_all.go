package reservation

import (
	"context"

	domain "github.com/weecompany/reservas-api/internal/domain/reservation"
	"github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/httperr"
	"github.com/weecompany/reservas-api/internal/models"
)

type ListAllReservations struct {
	repo domain.Repository
}

func NewListAllReservations(repo domain.Repository) *ListAllReservations {
	return &ListAllReservations{repo: repo}
}

// Execute returns every reservation with owner data. Admin only.
func (uc *ListAllReservations) Execute(
	ctx context.Context,
	role user.Role,
) ([]models.Reservation, error) {

	if !domain.CanListAll(role) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return uc.repo.FindAllWithOwners(ctx)
}
