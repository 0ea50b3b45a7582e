package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"horeca_backend/internal/aggregation"
	"horeca_backend/internal/models"
	"horeca_backend/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrBusinessNotFound   = errors.New("business not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrMissingFields      = errors.New("missing required fields")
)

// --- Data Transfer Objects (DTOs) ---

// OnboardingRequest carries the fields of POST /api/complete-onboarding.
type OnboardingRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	HorecaName string `json:"horeca_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
}

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --- AuthService Interface ---
type AuthService interface {
	CompleteOnboarding(req OnboardingRequest) (int64, error)
	Login(req LoginRequest) (*models.Business, error)
	GetBusinessInfo(businessID int64) (models.BusinessInfo, error)
}

// --- authService Implementation ---
type authService struct {
	businessRepo repositories.BusinessRepository
	db           *sql.DB
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(businessRepo repositories.BusinessRepository, db *sql.DB) AuthService {
	return &authService{
		businessRepo: businessRepo,
		db:           db,
	}
}

// CompleteOnboarding registers a new business account and returns its id.
// The plaintext password is hashed with bcrypt before it reaches the store.
func (s *authService) CompleteOnboarding(req OnboardingRequest) (int64, error) {
	fields := []string{req.FirstName, req.LastName, req.HorecaName, req.Address, req.Phone, req.Email, req.Password}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return 0, ErrMissingFields
		}
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	business := models.Business{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		HorecaName: req.HorecaName,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
	}

	businessID, err := s.businessRepo.CreateBusiness(s.db, &business, string(hashedPasswordBytes))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return 0, ErrEmailExists
		}
		return 0, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	return businessID, nil
}

// Login verifies credentials and returns the business on success. Unknown
// email and wrong password collapse into the same error so the response
// never reveals whether an account exists.
func (s *authService) Login(req LoginRequest) (*models.Business, error) {
	business, storedHashedPassword, err := s.businessRepo.FindBusinessByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	business.PasswordHash = ""
	return business, nil
}

// GetBusinessInfo derives the {city, country} view from the stored free-text
// address of the business.
func (s *authService) GetBusinessInfo(businessID int64) (models.BusinessInfo, error) {
	business, err := s.businessRepo.FindBusinessByID(businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.BusinessInfo{}, ErrBusinessNotFound
		}
		return models.BusinessInfo{}, fmt.Errorf("failed to retrieve business: %w", err)
	}
	return aggregation.SplitAddress(business.Address), nil
}
