package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMenuRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, MenuRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewMenuRepository(db)
}

func TestGetMenuItemRows_NullSubcategoryScansAsNil(t *testing.T) {
	db, mock, repo := setupMenuRepo(t)
	defer db.Close()

	created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "price", "created_at", "name", "brand", "name", "name"}).
		AddRow(1, 12.5, created, "Espresso Beans", "Lavazza", "Coffee", "Arabica").
		AddRow(2, 3.0, created, "House Wine", "Local", "Wine", nil)

	mock.ExpectQuery(`SELECT mi\.id, mi\.price, mi\.created_at`).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	items, err := repo.GetMenuItemRows(42)

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].SubcategoryName)
	assert.Equal(t, "Arabica", *items[0].SubcategoryName)
	assert.Nil(t, items[1].SubcategoryName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSalesRows_DecodesDateArray(t *testing.T) {
	db, mock, repo := setupMenuRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "name", "brand", "trending", "high_margin", "eco_friendly",
		"season", "production_city", "production_country", "coalesce",
	}).
		AddRow(1, "Cola", "CC", true, false, false, "summer", "Atlanta", "USA", []byte(`{2025-01-01,2024-12-31}`)).
		AddRow(2, "Tea", "Lipton", false, false, true, "winter", "London", "UK", []byte(`{}`))

	mock.ExpectQuery(`FROM menu_items mi`).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	sales, err := repo.GetSalesRows(42)

	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, []string{"2025-01-01", "2024-12-31"}, sales[0].SaleDates)
	assert.Empty(t, sales[1].SaleDates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateItemPrice_UnownedRowIsNotFound(t *testing.T) {
	db, mock, repo := setupMenuRepo(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE menu_items SET price`).
		WithArgs(9.99, int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateItemPrice(db, 42, 7, 9.99)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMenuItem_ScopedByBusinessID(t *testing.T) {
	db, mock, repo := setupMenuRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM menu_items WHERE id = \$1 AND business_id = \$2`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteMenuItem(db, 42, 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMenuItem_OtherTenantRowUntouched(t *testing.T) {
	db, mock, repo := setupMenuRepo(t)
	defer db.Close()

	// The row exists under another business id, so the scoped delete touches
	// nothing and the repository reports not found.
	mock.ExpectExec(`DELETE FROM menu_items`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteMenuItem(db, 42, 7)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMenuProductIDs_EmptyMenuYieldsEmptySet(t *testing.T) {
	db, mock, repo := setupMenuRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT product_id FROM menu_items`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	ids, err := repo.GetMenuProductIDs(42)

	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
