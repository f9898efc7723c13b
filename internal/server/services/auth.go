// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akarpovs/tasktracker/internal/common"
	"github.com/akarpovs/tasktracker/internal/server/auth"
	"github.com/akarpovs/tasktracker/internal/server/config"
	"github.com/akarpovs/tasktracker/internal/server/models"
	"github.com/akarpovs/tasktracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

// AuthResult bundles the registered/authenticated account with its freshly
// minted access token.
type AuthResult struct {
	User  *models.User
	Token string
}

// AuthService provides authentication-related operations:
// - Register: validate input, create the account, mint a token
// - Login: verify credentials and mint a token
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server
// config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func validateRegistration(name, email, password, confirmPassword string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < minNameLength {
		return common.NewValidationError("name", "must be at least 2 characters")
	}
	if !emailPattern.MatchString(email) {
		return common.NewValidationError("email", "valid email is required")
	}
	if len(password) < minPasswordLength {
		return common.NewValidationError("password", "must be at least 6 characters")
	}
	if password != confirmPassword {
		return common.NewValidationError("confirmPassword", "passwords do not match")
	}
	return nil
}

// Register validates the input, stores the account with a bcrypt password
// hash, and returns the account together with a signed access token.
// A duplicate email yields common.ErrorAlreadyExists; the uniqueness check
// is the INSERT itself, so concurrent duplicate registrations cannot race
// past it.
func (s *AuthService) Register(ctx context.Context, name, email, password, confirmPassword string) (*AuthResult, error) {

	if err := validateRegistration(name, email, password, confirmPassword); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies the email/password pair and mints an access token. Unknown
// email and wrong password are both reported as common.ErrorUnauthorized so
// the response does not reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}
