package reservation

import (
	"context"
	"errors"

	"github.com/weecompany/reservas-api/internal/audit"
	domain "github.com/weecompany/reservas-api/internal/domain/reservation"
	"github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the reservation physically. There is no soft delete.
func (uc *DeleteReservation) Execute(
	ctx context.Context,
	requesterID uint,
	role user.Role,
	id uint,
) error {

	res, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("reservation_not_found")
		}
		return err
	}

	if !domain.CanModify(requesterID, role, res) {
		return httperr.ErrBusiness("forbidden")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("reservation_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: &id,
	})

	return nil
}
