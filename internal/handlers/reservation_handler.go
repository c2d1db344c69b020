package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/dto"
	"github.com/weecompany/reservas-api/internal/httperr"
	"github.com/weecompany/reservas-api/internal/httpresp"
	"github.com/weecompany/reservas-api/internal/middleware"
	ucres "github.com/weecompany/reservas-api/internal/usecase/reservation"
)

type ReservationHandler struct {
	create  *ucres.CreateReservation
	update  *ucres.UpdateReservation
	delete  *ucres.DeleteReservation
	listAll *ucres.ListAllReservations
	listOwn *ucres.ListOwnReservations
}

func NewReservationHandler(
	create *ucres.CreateReservation,
	update *ucres.UpdateReservation,
	del *ucres.DeleteReservation,
	listAll *ucres.ListAllReservations,
	listOwn *ucres.ListOwnReservations,
) *ReservationHandler {
	return &ReservationHandler{
		create:  create,
		update:  update,
		delete:  del,
		listAll: listAll,
		listOwn: listOwn,
	}
}

// --------- Requests ---------

type ReservationRequest struct {
	DateTime  time.Time `json:"date_time" binding:"required"`
	PartySize int       `json:"party_size" binding:"required,gt=0"`
}

// --------- Helpers ---------

func identity(c *gin.Context) (uint, user.Role) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(user.Role)
	return userID, role
}

func reservationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// --------- Handlers ---------

func (h *ReservationHandler) ListAll(c *gin.Context) {
	_, role := identity(c)

	reservations, err := h.listAll.Execute(c.Request.Context(), role)
	if err != nil {
		if httperr.IsBusiness(err, "forbidden") {
			httperr.Forbidden(c, "forbidden", "Solo un administrador puede ver todas las reservas.")
			return
		}
		httperr.Internal(c, "failed_to_list_reservations", "Error al listar las reservas.")
		return
	}

	rows := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, dto.NewReservationListDTO(r))
	}

	httpresp.List(c, rows)
}

func (h *ReservationHandler) ListOwn(c *gin.Context) {
	userID, _ := identity(c)

	reservations, err := h.listOwn.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Error al listar las reservas.")
		return
	}

	httpresp.List(c, reservations)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	userID, _ := identity(c)

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	_, err := h.create.Execute(c.Request.Context(), userID, ucres.CreateInput{
		DateTime:  req.DateTime,
		PartySize: req.PartySize,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_party_size") {
			httperr.BadRequest(c, "invalid_party_size", "La cantidad de personas debe ser positiva.")
			return
		}
		httperr.Internal(c, "failed_to_create_reservation", "Error al crear la reserva.")
		return
	}

	httpresp.Text(c, "Reserva creada correctamente.")
}

func (h *ReservationHandler) Update(c *gin.Context) {
	userID, role := identity(c)

	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	_, err := h.update.Execute(c.Request.Context(), userID, role, id, ucres.CreateInput{
		DateTime:  req.DateTime,
		PartySize: req.PartySize,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "reservation_not_found"):
			httperr.NotFound(c, "reservation_not_found", "Reserva no encontrada.")
		case httperr.IsBusiness(err, "forbidden"):
			httperr.Forbidden(c, "forbidden", "No puedes modificar esta reserva.")
		case httperr.IsBusiness(err, "invalid_party_size"):
			httperr.BadRequest(c, "invalid_party_size", "La cantidad de personas debe ser positiva.")
		default:
			httperr.Internal(c, "failed_to_update_reservation", "Error al actualizar la reserva.")
		}
		return
	}

	httpresp.Text(c, "Reserva actualizada.")
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	userID, role := identity(c)

	id, ok := reservationID(c)
	if !ok {
		return
	}

	err := h.delete.Execute(c.Request.Context(), userID, role, id)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "reservation_not_found"):
			httperr.NotFound(c, "reservation_not_found", "Reserva no encontrada.")
		case httperr.IsBusiness(err, "forbidden"):
			httperr.Forbidden(c, "forbidden", "No puedes eliminar esta reserva.")
		default:
			httperr.Internal(c, "failed_to_delete_reservation", "Error al eliminar la reserva.")
		}
		return
	}

	httpresp.Text(c, "Reserva eliminada.")
}
