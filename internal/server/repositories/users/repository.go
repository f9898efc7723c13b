package users

import (
	"context"

	"github.com/akarpovs/tasktracker/internal/server/models"
)

// Repository is the credential store: a durable mapping from email to
// account record.
type Repository interface {
	// Create persists a new account. A duplicate email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByEmail finds an account by exact email match.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
