package services

import (
	"testing"
	"time"

	"horeca_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := repositories.NewBusinessRepository(db)
	svc := NewAuthService(repo, db)
	return svc, mock, func() { db.Close() }
}

func businessRow(t *testing.T, password string) *sqlmock.Rows {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "horeca_name", "address", "phone", "email", "password_hash", "created_at",
	}).AddRow(42, "Jan", "Kowalski", "Cafe Centrala", "Main St 5, Springfield", "555-0101", "jan@example.com", string(hash), time.Now())
}

func TestLogin_Success(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery(`FROM businesses`).
		WithArgs("jan@example.com").
		WillReturnRows(businessRow(t, "s3cret"))

	business, err := svc.Login(LoginRequest{Email: "jan@example.com", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), business.ID)
	assert.Equal(t, "Cafe Centrala", business.HorecaName)
	assert.Empty(t, business.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPasswordIsInvalidCredentials(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery(`FROM businesses`).
		WithArgs("jan@example.com").
		WillReturnRows(businessRow(t, "s3cret"))

	_, err := svc.Login(LoginRequest{Email: "jan@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UnknownEmailYieldsSameError(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery(`FROM businesses`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "horeca_name", "address", "phone", "email", "password_hash", "created_at",
		}))

	_, err := svc.Login(LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	// Same sentinel as a wrong password, so responses cannot reveal whether
	// the email is registered.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteOnboarding_MissingFieldRejected(t *testing.T) {
	svc, _, closeDB := newAuthService(t)
	defer closeDB()

	_, err := svc.CompleteOnboarding(OnboardingRequest{
		FirstName: "Jan", LastName: "Kowalski", HorecaName: "  ",
		Address: "Main St 5", Phone: "555-0101", Email: "jan@example.com", Password: "pw",
	})

	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCompleteOnboarding_InsertsHashedPassword(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery(`INSERT INTO businesses`).
		WithArgs("Jan", "Kowalski", "Cafe Centrala", "Main St 5, Springfield", "555-0101", "jan@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := svc.CompleteOnboarding(OnboardingRequest{
		FirstName: "Jan", LastName: "Kowalski", HorecaName: "Cafe Centrala",
		Address: "Main St 5, Springfield", Phone: "555-0101",
		Email: "jan@example.com", Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBusinessInfo_DerivesCityFromAddress(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery(`FROM businesses`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "horeca_name", "address", "phone", "email", "created_at",
		}).AddRow(42, "Jan", "Kowalski", "Cafe Centrala", "Main St 5, Springfield", "555-0101", "jan@example.com", time.Now()))

	info, err := svc.GetBusinessInfo(42)

	require.NoError(t, err)
	assert.Equal(t, "Springfield", info.City)
	assert.Equal(t, "", info.Country)
	assert.NoError(t, mock.ExpectationsWereMet())
}
