package reservation

import (
	"github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/models"
)

// ===============================
// Authorization Policy
// ===============================

// CanModify reports whether the acting identity may update or delete the
// reservation: the owner may, and so may any admin. Every mutating
// reservation operation goes through this check.
func CanModify(userID uint, role user.Role, r *models.Reservation) bool {
	if r == nil {
		return false
	}
	return r.UserID == userID || role == user.RoleAdmin
}

// CanListAll gates the listing of every reservation in the system.
func CanListAll(role user.Role) bool {
	return role == user.RoleAdmin
}
