package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"horeca_backend/internal/models"

	"github.com/lib/pq"
)

// BusinessRepository defines the interface for business account database operations.
type BusinessRepository interface {
	CreateBusiness(executor SQLExecutor, business *models.Business, hashedPassword string) (int64, error)
	FindBusinessByEmail(email string) (*models.Business, string, error) // Returns Business, HashedPassword, Error
	FindBusinessByID(businessID int64) (*models.Business, error)
}

type businessRepository struct {
	db *sql.DB
}

// NewBusinessRepository creates a new instance of BusinessRepository.
func NewBusinessRepository(db *sql.DB) BusinessRepository {
	return &businessRepository{db: db}
}

// CreateBusiness inserts a new business account. The email column carries a
// unique constraint; violations map to ErrDuplicateKey.
func (r *businessRepository) CreateBusiness(executor SQLExecutor, business *models.Business, hashedPassword string) (int64, error) {
	query := `INSERT INTO businesses (first_name, last_name, horeca_name, address, phone, email, password_hash, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	var businessID int64
	err := executor.QueryRow(
		query,
		business.FirstName,
		business.LastName,
		business.HorecaName,
		business.Address,
		business.Phone,
		business.Email,
		hashedPassword,
		time.Now(),
	).Scan(&businessID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating business: %v", ErrDatabaseError, err)
	}
	return businessID, nil
}

// FindBusinessByEmail retrieves a business by its login email.
// It returns the business model, its hashed password, and an error if any.
func (r *businessRepository) FindBusinessByEmail(email string) (*models.Business, string, error) {
	business := &models.Business{}
	var hashedPassword string
	query := `SELECT id, first_name, last_name, horeca_name, address, phone, email, password_hash, created_at
	          FROM businesses
	          WHERE email = $1`

	err := r.db.QueryRow(query, email).Scan(
		&business.ID, &business.FirstName, &business.LastName, &business.HorecaName,
		&business.Address, &business.Phone, &business.Email, &hashedPassword,
		&business.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding business by email: %v", ErrDatabaseError, err)
	}
	return business, hashedPassword, nil
}

// FindBusinessByID retrieves a business by its ID. The password hash is not
// populated on the returned model.
func (r *businessRepository) FindBusinessByID(businessID int64) (*models.Business, error) {
	business := &models.Business{}
	query := `SELECT id, first_name, last_name, horeca_name, address, phone, email, created_at
	          FROM businesses
	          WHERE id = $1`

	err := r.db.QueryRow(query, businessID).Scan(
		&business.ID, &business.FirstName, &business.LastName, &business.HorecaName,
		&business.Address, &business.Phone, &business.Email, &business.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding business by ID %d: %v", ErrDatabaseError, businessID, err)
	}
	return business, nil
}
