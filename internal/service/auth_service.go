package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auth_portal/internal/model"
	"auth_portal/internal/repository"
	"auth_portal/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrIncompleteProfile  = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicatePhone     = errors.New("phone number already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
)

// RegisterInput carries the candidate profile for account creation
type RegisterInput struct {
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            string
}

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register validates the candidate profile and creates a new user account
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Username == "" || input.Email == "" || input.Phone == "" ||
		input.Password == "" || input.ConfirmPassword == "" || input.Role == "" {
		return nil, ErrIncompleteProfile
	}

	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	existing, err := s.userRepo.FindByEmailOrPhone(ctx, input.Email, input.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		// Email is reported first when both fields collide.
		if existing.Email == input.Email {
			return nil, ErrDuplicateEmail
		}
		return nil, ErrDuplicatePhone
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique indexes are authoritative; a concurrent insert that beat
		// the pre-check reports the same duplicate errors, never a raw fault.
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrDuplicateUsername
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrDuplicateEmail
		case errors.Is(err, repository.ErrDuplicatePhone):
			return nil, ErrDuplicatePhone
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns the matching account
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		// Same error as a wrong password so responses cannot reveal whether
		// the username exists.
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
