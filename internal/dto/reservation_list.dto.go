package dto

import (
	"time"

	"github.com/weecompany/reservas-api/internal/models"
)

// ReservationListDTO is one row of the admin listing: the reservation plus
// its owner's public data, resolved by join at read time.
type ReservationListDTO struct {
	ID         uint      `json:"id"`
	DateTime   time.Time `json:"date_time"`
	PartySize  int       `json:"party_size"`
	OwnerID    uint      `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email"`
}

func NewReservationListDTO(r models.Reservation) ReservationListDTO {
	return ReservationListDTO{
		ID:         r.ID,
		DateTime:   r.DateTime,
		PartySize:  r.PartySize,
		OwnerID:    r.UserID,
		OwnerName:  r.User.Name,
		OwnerEmail: r.User.Email,
	}
}
