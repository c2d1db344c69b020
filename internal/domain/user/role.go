package user

import "errors"

// ===============================
// User Role
// ===============================

type Role string

const (
	RoleClient Role = "Client"
	RoleAdmin  Role = "Admin"
)

// ErrInvalidRole is returned for any value outside the closed role set.
var ErrInvalidRole = errors.New("invalid role")

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

// ParseRole accepts only the two known roles. Anything else is rejected at
// the store boundary rather than persisted as a free-form string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
