package services

import (
	"context"
	"strings"

	"github.com/Nehru-cyber/task-manager/internal/models"
	"github.com/Nehru-cyber/task-manager/internal/repository"
	"github.com/Nehru-cyber/task-manager/pkg/credentials"
	appErr "github.com/Nehru-cyber/task-manager/pkg/errors"
	"github.com/Nehru-cyber/task-manager/pkg/logger"
	"go.uber.org/zap"
)

// invalidCredentials is deliberately identical for unknown email and wrong
// password so a caller cannot tell which one failed.
const invalidCredentials = "invalid email or password"

type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*models.PublicUser, error)
	Login(ctx context.Context, email, password string) (*models.PublicUser, error)
	Profile(ctx context.Context, userID string) (*models.PublicProfile, error)
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

var _ AuthService = (*authService)(nil)

// Register validates the input, derives a credential pair, and persists the
// new account. The returned view never carries the hash or salt.
func (s *authService) Register(ctx context.Context, email, password, displayName string) (*models.PublicUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil, appErr.New(appErr.CodeInvalid, "email and password are required")
	}
	if !strings.Contains(email, "@") {
		return nil, appErr.New(appErr.CodeInvalid, "invalid email address")
	}
	if len(password) < 6 {
		return nil, appErr.New(appErr.CodeInvalid, "password must be at least 6 characters")
	}

	var existing models.User
	err := s.users.GetByEmail(ctx, email, &existing)
	if err == nil {
		return nil, appErr.New(appErr.CodeConflict, "user with this email already exists")
	}
	if !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, err
	}

	if displayName == "" {
		displayName = email[:strings.Index(email, "@")]
	}

	userID, err := credentials.NewUserID()
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "generate user id failed")
	}
	salt, hash, err := credentials.HashPassword(password)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	u := models.User{
		UserID:       userID,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return nil, err
	}

	logger.L().Info("user registered", zap.String("user_id", u.UserID), zap.String("email", u.Email))
	view := u.Public()
	return &view, nil
}

// Login verifies credentials and returns the public user view. No token or
// session is issued; the client keeps the user id and resends it.
func (s *authService) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	if email == "" || password == "" {
		return nil, appErr.New(appErr.CodeInvalid, "email and password are required")
	}

	var u models.User
	if err := s.users.GetByEmail(ctx, email, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeUnauthorized, invalidCredentials)
		}
		return nil, err
	}

	if !credentials.VerifyPassword(password, u.PasswordSalt, u.PasswordHash) {
		return nil, appErr.New(appErr.CodeUnauthorized, invalidCredentials)
	}

	logger.L().Info("user logged in", zap.String("user_id", u.UserID))
	view := u.Public()
	return &view, nil
}

func (s *authService) Profile(ctx context.Context, userID string) (*models.PublicProfile, error) {
	var u models.User
	if err := s.users.GetByUserID(ctx, userID, &u); err != nil {
		return nil, err
	}
	view := u.Profile()
	return &view, nil
}
