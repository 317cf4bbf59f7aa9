package services

import (
	"errors"
	"fmt"

	"github.com/zephyrlabs/zephyr/app/models"
	"github.com/zephyrlabs/zephyr/app/repositories"
	"github.com/zephyrlabs/zephyr/pkg/identity"
	"github.com/zephyrlabs/zephyr/pkg/metrics"
	"gorm.io/gorm"
)

// AuthService implements signup and login.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup creates an account with a bcrypt-hashed password.
//
// The sequential existence checks are kept for their distinct error
// messages; the store's unique indexes are the real guard, so a concurrent
// duplicate that slips past the checks still fails at insert and is mapped
// to the same errors.
func (s *AuthService) Signup(username, email, password string) (models.User, error) {
	if username == "" || email == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	if _, err := s.users.FindByUsername(username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("auth: signup lookup: %w", err)
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("auth: signup lookup: %w", err)
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{Username: username, Email: email, Password: hash}
	if err := s.users.Create(&user); err != nil {
		// Lost a race against a concurrent signup: report which identity
		// field collided, same as the pre-checks would have.
		if _, lookupErr := s.users.FindByUsername(username); lookupErr == nil {
			return models.User{}, ErrUsernameTaken
		}
		if _, lookupErr := s.users.FindByEmail(email); lookupErr == nil {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("auth: create user: %w", err)
	}

	metrics.Signups.Inc()
	return user, nil
}

// Login returns the user row when the credentials match.
func (s *AuthService) Login(username, password string) (models.User, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("auth: login lookup: %w", err)
	}

	if !identity.CheckPassword(user.Password, password) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
