package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"horeca_backend/internal/aggregation"
	"horeca_backend/internal/models"
	"horeca_backend/internal/repositories"
)

// --- Custom Service Errors for Menu ---
var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrProductOnMenu    = errors.New("product already on menu")
	ErrEmptyBatch       = errors.New("updates payload must be a non-empty array")
)

// FixedStatsYear pins the reference year of GET /api/sales. The last-year
// endpoint derives its window from the clock instead; both windows feed the
// same aggregation with explicit year bounds.
const FixedStatsYear = 2025

// --- Item DTOs ---
type AddMenuItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

type UpdatePricesRequest struct {
	Updates []models.PriceUpdate `json:"updates" binding:"required"`
}

// --- MenuService Interface ---
type MenuService interface {
	GetMenu(businessID int64) ([]models.MenuItemView, error)
	AddItem(businessID int64, req AddMenuItemRequest) (int64, error)
	UpdatePrices(businessID int64, updates []models.PriceUpdate) error
	DeleteItem(businessID, itemID int64) error

	GetSalesStats(businessID int64, referenceYear int) ([]models.SalesStatView, error)
	GetLastYearSalesStats(businessID int64) ([]models.SalesStatView, error)
	GetProductsNotOnMenu(businessID int64) ([]models.Product, error)
	GetMenuCounts(businessID int64) ([]models.CategoryCount, error)
}

// --- menuService Implementation ---
type menuService struct {
	menuRepo    repositories.MenuRepository
	catalogRepo repositories.CatalogRepository
	db          *sql.DB
	now         func() time.Time
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(menuRepo repositories.MenuRepository, catalogRepo repositories.CatalogRepository, db *sql.DB) MenuService {
	return &menuService{
		menuRepo:    menuRepo,
		catalogRepo: catalogRepo,
		db:          db,
		now:         time.Now,
	}
}

// GetMenu returns the flattened menu listing for the business.
func (s *menuService) GetMenu(businessID int64) ([]models.MenuItemView, error) {
	rows, err := s.menuRepo.GetMenuItemRows(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	return aggregation.ShapeMenuItems(rows), nil
}

// AddItem puts a catalog product on the business's menu with a price.
func (s *menuService) AddItem(businessID int64, req AddMenuItemRequest) (int64, error) {
	item := models.MenuItem{
		BusinessID: businessID,
		ProductID:  req.ProductID,
		Price:      req.Price,
	}
	id, err := s.menuRepo.CreateMenuItem(s.db, &item)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return 0, ErrProductOnMenu
		}
		return 0, fmt.Errorf("failed to add menu item: %w", err)
	}
	return id, nil
}

// UpdatePrices applies a batch of price changes inside one transaction.
// Any failing row, including a row owned by another business, rolls back the
// whole batch; partial updates cannot occur.
func (s *menuService) UpdatePrices(businessID int64, updates []models.PriceUpdate) error {
	if len(updates) == 0 {
		return ErrEmptyBatch
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin price update transaction: %w", err)
	}

	for _, u := range updates {
		if err := s.menuRepo.UpdateItemPrice(tx, businessID, u.IDMenuItem, u.Price); err != nil {
			tx.Rollback()
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: menu item %d", ErrMenuItemNotFound, u.IDMenuItem)
			}
			return fmt.Errorf("failed to update price of menu item %d: %w", u.IDMenuItem, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price updates: %w", err)
	}
	return nil
}

// DeleteItem removes a menu item and its sales in one transaction. Sales go
// first; the schema has no cascading delete.
func (s *menuService) DeleteItem(businessID, itemID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}

	if err := s.menuRepo.DeleteSalesForItem(tx, businessID, itemID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete sales of menu item %d: %w", itemID, err)
	}

	if err := s.menuRepo.DeleteMenuItem(tx, businessID, itemID); err != nil {
		tx.Rollback()
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMenuItemNotFound
		}
		return fmt.Errorf("failed to delete menu item %d: %w", itemID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit menu item delete: %w", err)
	}
	return nil
}

// GetSalesStats computes the inclusive calendar-year window counts for the
// given reference year, in store row order.
func (s *menuService) GetSalesStats(businessID int64, referenceYear int) ([]models.SalesStatView, error) {
	rows, err := s.menuRepo.GetSalesRows(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales rows: %w", err)
	}
	return aggregation.SalesStats(rows, referenceYear), nil
}

// GetLastYearSalesStats windows on the year before the current system year
// and sorts the result ascending by menu item id.
func (s *menuService) GetLastYearSalesStats(businessID int64) ([]models.SalesStatView, error) {
	stats, err := s.GetSalesStats(businessID, s.now().Year()-1)
	if err != nil {
		return nil, err
	}
	aggregation.SortStatsByItemID(stats)
	return stats, nil
}

// GetProductsNotOnMenu returns catalog products the business has not listed
// yet, sorted by name. The set difference runs in process, so a business with
// an empty menu gets the full catalog back.
func (s *menuService) GetProductsNotOnMenu(businessID int64) ([]models.Product, error) {
	products, err := s.catalogRepo.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to get product catalog: %w", err)
	}
	onMenu, err := s.menuRepo.GetMenuProductIDs(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu product ids: %w", err)
	}
	return aggregation.DiffCatalog(products, onMenu), nil
}

// GetMenuCounts returns the per-category composition of the menu.
func (s *menuService) GetMenuCounts(businessID int64) ([]models.CategoryCount, error) {
	rows, err := s.menuRepo.GetMenuItemRows(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	return aggregation.CountByCategory(rows), nil
}
