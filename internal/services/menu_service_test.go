package services

import (
	"errors"
	"testing"

	"horeca_backend/internal/models"
	"horeca_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService(t *testing.T) (MenuService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	menuRepo := repositories.NewMenuRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	svc := NewMenuService(menuRepo, catalogRepo, db)
	return svc, mock, func() { db.Close() }
}

func TestUpdatePrices_AllRowsCommitTogether(t *testing.T) {
	svc, mock, closeDB := newMenuService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE menu_items SET price`).
		WithArgs(5.0, int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE menu_items SET price`).
		WithArgs(7.5, int64(2), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.UpdatePrices(42, []models.PriceUpdate{
		{IDMenuItem: 1, Price: 5.0},
		{IDMenuItem: 2, Price: 7.5},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePrices_MidBatchFailureRollsBackEverything(t *testing.T) {
	svc, mock, closeDB := newMenuService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE menu_items SET price`).
		WithArgs(5.0, int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE menu_items SET price`).
		WithArgs(-1.0, int64(2), int64(42)).
		WillReturnError(errors.New("check constraint violated"))
	mock.ExpectRollback()

	err := svc.UpdatePrices(42, []models.PriceUpdate{
		{IDMenuItem: 1, Price: 5.0},
		{IDMenuItem: 2, Price: -1.0},
	})

	// All-or-nothing: the first update must not survive the second's failure.
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePrices_UnownedItemRollsBack(t *testing.T) {
	svc, mock, closeDB := newMenuService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE menu_items SET price`).
		WithArgs(5.0, int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.UpdatePrices(42, []models.PriceUpdate{{IDMenuItem: 1, Price: 5.0}})

	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePrices_EmptyBatchRejected(t *testing.T) {
	svc, _, closeDB := newMenuService(t)
	defer closeDB()

	err := svc.UpdatePrices(42, nil)

	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestDeleteItem_DeletesSalesBeforeItem(t *testing.T) {
	svc, mock, closeDB := newMenuService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM sales`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM menu_items`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteItem(42, 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItem_UnownedItemReturnsNotFoundAndRollsBack(t *testing.T) {
	svc, mock, closeDB := newMenuService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM sales`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM menu_items`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.DeleteItem(42, 7)

	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductsNotOnMenu_EmptyMenuReturnsWholeCatalog(t *testing.T) {
	svc, mock, closeDB := newMenuService(t)
	defer closeDB()

	productRows := sqlmock.NewRows([]string{
		"id", "name", "brand", "category_id", "subcategory_id",
		"production_city", "production_country",
		"trending", "high_margin", "eco_friendly", "season",
	}).
		AddRow(1, "Apple Juice", "Tymbark", 1, nil, "Warsaw", "Poland", false, false, true, "all").
		AddRow(2, "Zucchini", "Farm", 2, nil, "Lyon", "France", false, false, false, "summer")

	mock.ExpectQuery(`FROM products`).WillReturnRows(productRows)
	mock.ExpectQuery(`SELECT product_id FROM menu_items`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	products, err := svc.GetProductsNotOnMenu(42)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Apple Juice", products[0].Name)
	assert.Equal(t, "Zucchini", products[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
