// internal/domain/user/service.go
package user

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles user business logic
type Service struct {
	db              *gorm.DB
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:              db,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
	}
}

// SignupRequest represents user registration data
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Signup creates a new user account and returns a bearer token bound to it
func (s *Service) Signup(req *SignupRequest) (*AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	// Length limits count characters, not bytes
	if n := utf8.RuneCountInString(name); n < 2 || n > 255 {
		return nil, apperror.Validation("name must be between 2 and 255 characters")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.passwordManager.ValidatePassword(req.Password); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	// Check if user already exists
	var existing User
	result := s.db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil, apperror.Conflict("user already exists with this email")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal(result.Error)
	}

	hash, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &AuthResponse{
		Token: token,
		User:  &user,
	}, nil
}

// Login authenticates a user. The failure message is identical for an
// unknown email and a wrong password.
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user User
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.Auth("invalid email or password")
		}
		return nil, apperror.Internal(result.Error)
	}

	if err := s.passwordManager.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		return nil, apperror.Auth("invalid email or password")
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &AuthResponse{
		Token: token,
		User:  &user,
	}, nil
}

// GetProfile gets a user by ID
func (s *Service) GetProfile(userID uint) (*User, error) {
	var user User
	result := s.db.Where("id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Internal(result.Error)
	}

	return &user, nil
}
