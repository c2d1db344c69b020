package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/httperr"
	"github.com/weecompany/reservas-api/internal/httpresp"
	"github.com/weecompany/reservas-api/internal/middleware"
)

type MeHandler struct {
	users domain.Repository
}

func NewMeHandler(users domain.Repository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	u, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	})
}
