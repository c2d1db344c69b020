package user

import (
	"context"
	"errors"

	"github.com/weecompany/reservas-api/internal/models"
)

// ErrNotFound is returned when no user matches the lookup key.
var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u *models.User) error

	FindByID(ctx context.Context, id uint) (*models.User, error)

	FindByEmail(ctx context.Context, email string) (*models.User, error)

	EmailTaken(ctx context.Context, email string) (bool, error)
}
