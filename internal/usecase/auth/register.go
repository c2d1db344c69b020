package auth

import (
	"context"

	"github.com/weecompany/reservas-api/internal/audit"
	domain "github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/httperr"
	"github.com/weecompany/reservas-api/internal/models"
	"github.com/weecompany/reservas-api/internal/security"
	"github.com/weecompany/reservas-api/internal/validators"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterUser struct {
	users domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterUser(
	users domain.Repository,
	audit *audit.Dispatcher,
) *RegisterUser {
	return &RegisterUser{
		users: users,
		audit: audit,
	}
}

// Execute creates a user with a hashed secret and the default Client role.
// The public API never accepts a role, so nobody self-elevates to Admin.
func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	email := validators.NormalizeEmail(in.Email)

	taken, err := uc.users.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("email_already_registered")
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(domain.RoleClient),
	}

	if err := uc.users.Create(ctx, u); err != nil {
		// Losing the duplicate-email race against a concurrent registration
		// lands here via the unique index rather than the pre-check.
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("email_already_registered")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
