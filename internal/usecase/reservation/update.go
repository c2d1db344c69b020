package reservation

import (
	"context"
	"errors"

	"github.com/weecompany/reservas-api/internal/audit"
	domain "github.com/weecompany/reservas-api/internal/domain/reservation"
	"github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/httperr"
	"github.com/weecompany/reservas-api/internal/models"
)

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute rewrites the date and party size of an existing reservation.
// Not-found wins over forbidden: a missing id is 404 for any caller.
func (uc *UpdateReservation) Execute(
	ctx context.Context,
	requesterID uint,
	role user.Role,
	id uint,
	in CreateInput,
) (*models.Reservation, error) {

	res, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, err
	}

	if !domain.CanModify(requesterID, role, res) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if in.PartySize <= 0 {
		return nil, httperr.ErrBusiness("invalid_party_size")
	}

	res.DateTime = in.DateTime
	res.PartySize = in.PartySize

	if err := uc.repo.Update(ctx, res); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
