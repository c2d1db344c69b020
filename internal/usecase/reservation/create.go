package reservation

import (
	"context"
	"time"

	"github.com/weecompany/reservas-api/internal/audit"
	domain "github.com/weecompany/reservas-api/internal/domain/reservation"
	"github.com/weecompany/reservas-api/internal/httperr"
	"github.com/weecompany/reservas-api/internal/models"
)

type CreateInput struct {
	DateTime  time.Time
	PartySize int
}

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates a reservation owned by the requester. The owner always
// comes from the validated token identity; a client-supplied owner id is
// never consulted, so nobody books on behalf of someone else.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	requesterID uint,
	in CreateInput,
) (*models.Reservation, error) {

	if in.PartySize <= 0 {
		return nil, httperr.ErrBusiness("invalid_party_size")
	}

	res := &models.Reservation{
		UserID:    requesterID,
		DateTime:  in.DateTime,
		PartySize: in.PartySize,
	}

	if err := uc.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
