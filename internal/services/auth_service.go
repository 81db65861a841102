package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"weighttracker/internal/models"
	"weighttracker/internal/repositories"
)

// AuthService handles registration, login and bearer token resolution.
//
// Tokens are credential-as-identifier: the token handed out at login is the
// user's primary key, valid indefinitely. ResolveToken is the seam where a
// signed-token scheme could be swapped in without touching other services.
type AuthService struct {
	userRepo          repositories.UserRepository
	settingsRepo      repositories.SettingsRepository
	allowRegistration bool
}

// NewAuthService creates a new AuthService. allowRegistration is the
// registration kill-switch read from configuration at startup.
func NewAuthService(userRepo repositories.UserRepository, settingsRepo repositories.SettingsRepository, allowRegistration bool) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		settingsRepo:      settingsRepo,
		allowRegistration: allowRegistration,
	}
}

// Register creates a new user with a bcrypt-hashed password and their
// default settings row.
func (s *AuthService) Register(username, password string, email *string) (*models.User, error) {
	if !s.allowRegistration {
		return nil, ErrRegistrationDisabled
	}
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
		Email:    email,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := s.settingsRepo.Create(models.NewDefaultUserSettings(user.ID)); err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}

	return user, nil
}

// Login authenticates a user by username and password. The caller issues the
// user's ID as the session token.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ResolveToken resolves a bearer token to the user it identifies. The token
// is looked up directly as a user ID.
func (s *AuthService) ResolveToken(token string) (*models.User, error) {
	user, err := s.userRepo.GetByID(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
