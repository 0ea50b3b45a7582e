package repositories

import (
	"database/sql"
	"fmt"

	"horeca_backend/internal/models"
)

// CatalogRepository defines read access to the shared product reference data.
// Products, categories and subcategories are never mutated by this system.
type CatalogRepository interface {
	GetProducts() ([]models.Product, error)
	GetCategories() ([]models.Category, error)
	GetSubcategories() ([]models.Subcategory, error)
}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetProducts() ([]models.Product, error) {
	query := `SELECT id, name, brand, category_id, subcategory_id,
	                 production_city, production_country,
	                 trending, high_margin, eco_friendly, season
	          FROM products
	          ORDER BY name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		var subcategoryID sql.NullInt64
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Brand, &p.CategoryID, &subcategoryID,
			&p.ProductionCity, &p.ProductionCountry,
			&p.Trending, &p.HighMargin, &p.EcoFriendly, &p.Season,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning product: %v", ErrDatabaseError, err)
		}
		if subcategoryID.Valid {
			p.SubcategoryID = &subcategoryID.Int64
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating products: %v", ErrDatabaseError, err)
	}
	return products, nil
}

func (r *catalogRepository) GetCategories() ([]models.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting categories: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: scanning category: %v", ErrDatabaseError, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating categories: %v", ErrDatabaseError, err)
	}
	return categories, nil
}

func (r *catalogRepository) GetSubcategories() ([]models.Subcategory, error) {
	query := `SELECT id, name, category_id FROM subcategories ORDER BY name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting subcategories: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	subcategories := []models.Subcategory{}
	for rows.Next() {
		var s models.Subcategory
		var categoryID sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Name, &categoryID); err != nil {
			return nil, fmt.Errorf("%w: scanning subcategory: %v", ErrDatabaseError, err)
		}
		if categoryID.Valid {
			s.CategoryID = &categoryID.Int64
		}
		subcategories = append(subcategories, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating subcategories: %v", ErrDatabaseError, err)
	}
	return subcategories, nil
}
