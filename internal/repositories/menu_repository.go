package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"horeca_backend/internal/models"

	"github.com/lib/pq"
)

// MenuRepository defines the interface for menu item database operations.
// Every method is scoped by business id: cross-tenant reads and writes are
// impossible at the SQL level.
type MenuRepository interface {
	GetMenuItemRows(businessID int64) ([]models.MenuItemRow, error)
	GetSalesRows(businessID int64) ([]models.SalesRow, error)
	GetMenuProductIDs(businessID int64) (map[int64]struct{}, error)

	CreateMenuItem(executor SQLExecutor, item *models.MenuItem) (int64, error)
	UpdateItemPrice(executor SQLExecutor, businessID, itemID int64, price float64) error
	DeleteSalesForItem(executor SQLExecutor, businessID, itemID int64) error
	DeleteMenuItem(executor SQLExecutor, businessID, itemID int64) error
}

type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{db: db}
}

// GetMenuItemRows fetches the business's menu items joined with product,
// category and subcategory. The subcategory leg is a LEFT JOIN and may be
// NULL; every other leg is required to exist.
func (r *menuRepository) GetMenuItemRows(businessID int64) ([]models.MenuItemRow, error) {
	query := `SELECT mi.id, mi.price, mi.created_at,
	                 p.name, p.brand, c.name, sc.name
	          FROM menu_items mi
	          JOIN products p ON p.id = mi.product_id
	          JOIN categories c ON c.id = p.category_id
	          LEFT JOIN subcategories sc ON sc.id = p.subcategory_id
	          WHERE mi.business_id = $1
	          ORDER BY mi.id`
	rows, err := r.db.Query(query, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting menu item rows: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.MenuItemRow{}
	for rows.Next() {
		var row models.MenuItemRow
		var subcategory sql.NullString
		if err := rows.Scan(
			&row.MenuItemID, &row.Price, &row.CreatedAt,
			&row.ProductName, &row.Brand, &row.CategoryName, &subcategory,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning menu item row: %v", ErrDatabaseError, err)
		}
		if subcategory.Valid {
			row.SubcategoryName = &subcategory.String
		}
		items = append(items, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

// GetSalesRows fetches the business's menu items with product descriptive
// fields and the aggregated list of sale dates. Items without sales come back
// with an empty date list, not a missing row.
func (r *menuRepository) GetSalesRows(businessID int64) ([]models.SalesRow, error) {
	query := `SELECT mi.id, p.name, p.brand,
	                 p.trending, p.high_margin, p.eco_friendly, p.season,
	                 p.production_city, p.production_country,
	                 COALESCE(array_agg(to_char(s.sold_at, 'YYYY-MM-DD')) FILTER (WHERE s.id IS NOT NULL), '{}')
	          FROM menu_items mi
	          JOIN products p ON p.id = mi.product_id
	          LEFT JOIN sales s ON s.menu_item_id = mi.id
	          WHERE mi.business_id = $1
	          GROUP BY mi.id, p.name, p.brand, p.trending, p.high_margin, p.eco_friendly,
	                   p.season, p.production_city, p.production_country
	          ORDER BY mi.id`
	rows, err := r.db.Query(query, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting sales rows: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	sales := []models.SalesRow{}
	for rows.Next() {
		var row models.SalesRow
		if err := rows.Scan(
			&row.MenuItemID, &row.ProductName, &row.Brand,
			&row.Trending, &row.HighMargin, &row.EcoFriendly, &row.Season,
			&row.ProductionCity, &row.ProductionCountry,
			pq.Array(&row.SaleDates),
		); err != nil {
			return nil, fmt.Errorf("%w: scanning sales row: %v", ErrDatabaseError, err)
		}
		sales = append(sales, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sales rows: %v", ErrDatabaseError, err)
	}
	return sales, nil
}

// GetMenuProductIDs returns the set of product ids already listed on the
// business's menu, used as the exclusion set for the catalog diff.
func (r *menuRepository) GetMenuProductIDs(businessID int64) (map[int64]struct{}, error) {
	query := `SELECT product_id FROM menu_items WHERE business_id = $1`
	rows, err := r.db.Query(query, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting menu product ids: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	ids := map[int64]struct{}{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: scanning menu product id: %v", ErrDatabaseError, err)
		}
		ids[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu product ids: %v", ErrDatabaseError, err)
	}
	return ids, nil
}

// CreateMenuItem inserts a menu item owned by item.BusinessID.
func (r *menuRepository) CreateMenuItem(executor SQLExecutor, item *models.MenuItem) (int64, error) {
	query := `INSERT INTO menu_items (business_id, product_id, price, created_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := executor.QueryRow(query, item.BusinessID, item.ProductID, item.Price, time.Now()).Scan(&item.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: product already on menu (constraint: %s)", ErrDuplicateKey, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating menu item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

// UpdateItemPrice sets the price of one menu item. A zero row count means the
// item does not exist or belongs to another business; both map to ErrNotFound.
func (r *menuRepository) UpdateItemPrice(executor SQLExecutor, businessID, itemID int64, price float64) error {
	query := `UPDATE menu_items SET price = $1 WHERE id = $2 AND business_id = $3`
	result, err := executor.Exec(query, price, itemID, businessID)
	if err != nil {
		return fmt.Errorf("%w: updating price of menu item %d: %v", ErrDatabaseError, itemID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSalesForItem removes all sale records of one menu item. The item
// ownership check rides on the subquery; deleting zero sales is not an error.
func (r *menuRepository) DeleteSalesForItem(executor SQLExecutor, businessID, itemID int64) error {
	query := `DELETE FROM sales
	          WHERE menu_item_id IN (
	              SELECT id FROM menu_items WHERE id = $1 AND business_id = $2
	          )`
	if _, err := executor.Exec(query, itemID, businessID); err != nil {
		return fmt.Errorf("%w: deleting sales of menu item %d: %v", ErrDatabaseError, itemID, err)
	}
	return nil
}

// DeleteMenuItem removes one menu item owned by the business. Callers must
// delete its sales first; there is no cascading delete in the schema.
func (r *menuRepository) DeleteMenuItem(executor SQLExecutor, businessID, itemID int64) error {
	query := `DELETE FROM menu_items WHERE id = $1 AND business_id = $2`
	result, err := executor.Exec(query, itemID, businessID)
	if err != nil {
		return fmt.Errorf("%w: deleting menu item %d: %v", ErrDatabaseError, itemID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
