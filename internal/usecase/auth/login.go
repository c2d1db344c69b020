package auth

import (
	"context"
	"errors"

	"github.com/weecompany/reservas-api/internal/audit"
	domain "github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/httperr"
	"github.com/weecompany/reservas-api/internal/security"
	"github.com/weecompany/reservas-api/internal/token"
	"github.com/weecompany/reservas-api/internal/validators"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginUser struct {
	users  domain.Repository
	tokens *token.Service
	audit  *audit.Dispatcher
}

func NewLoginUser(
	users domain.Repository,
	tokens *token.Service,
	audit *audit.Dispatcher,
) *LoginUser {
	return &LoginUser{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute verifies the credentials and issues a fresh bearer token. An
// unknown email and a wrong password are indistinguishable to the caller.
func (uc *LoginUser) Execute(
	ctx context.Context,
	in LoginInput,
) (string, error) {

	email := validators.NormalizeEmail(in.Email)

	u, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", httperr.ErrBusiness("invalid_credentials")
		}
		return "", err
	}

	if !security.CheckPassword(in.Password, u.PasswordHash) {
		return "", httperr.ErrBusiness("invalid_credentials")
	}

	tok, err := uc.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return tok, nil
}
