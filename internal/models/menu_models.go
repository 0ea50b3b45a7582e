package models

import "time"

// MenuItem scopes a Product to a Business with a price. Every read and write
// on menu items must be filtered by BusinessID.
type MenuItem struct {
	ID         int64     `json:"id_menu_item"`
	BusinessID int64     `json:"business_id" db:"business_id"`
	ProductID  int64     `json:"product_id" db:"product_id"`
	Price      float64   `json:"price" db:"price"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Sale is an append-only sell event for a menu item. SoldAt is a calendar
// date rendered as zero-padded ISO YYYY-MM-DD.
type Sale struct {
	ID         int64  `json:"id"`
	MenuItemID int64  `json:"menu_item_id" db:"menu_item_id"`
	SoldAt     string `json:"sold_at" db:"sold_at"`
}

// MenuItemRow is a menu item joined with its product, category and
// subcategory, decoded at the repository boundary. SubcategoryName is the
// only join leg that may legitimately be absent.
type MenuItemRow struct {
	MenuItemID      int64
	Price           float64
	CreatedAt       time.Time
	ProductName     string
	Brand           string
	CategoryName    string
	SubcategoryName *string
}

// SalesRow is a menu item joined with its product's descriptive fields and
// the full list of its sale dates (ISO YYYY-MM-DD, possibly empty).
type SalesRow struct {
	MenuItemID        int64
	ProductName       string
	Brand             string
	Trending          bool
	HighMargin        bool
	EcoFriendly       bool
	Season            string
	ProductionCity    string
	ProductionCountry string
	SaleDates         []string
}

// MenuItemView is the flattened menu listing returned by GET /api/menu-items.
type MenuItemView struct {
	IDMenuItem  int64     `json:"id_menu_item"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	ItemName    string    `json:"item_name"`
	Producent   string    `json:"producent"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
}

// SalesStatView carries per-item window counts plus the product's
// descriptive fields, unchanged.
type SalesStatView struct {
	IDMenuItem        int64  `json:"id_menu_item"`
	ItemName          string `json:"item_name"`
	Producent         string `json:"producent"`
	TotalSold         int    `json:"total_sold"`
	LastYearSold      int    `json:"last_year_sold"`
	Trending          bool   `json:"trending"`
	HighMargin        bool   `json:"high_margin"`
	EcoFriendly       bool   `json:"eco_friendly"`
	Season            string `json:"season"`
	ProductionCity    string `json:"production_city"`
	ProductionCountry string `json:"production_country"`
}

// CategoryCount is one row of the menu composition report.
type CategoryCount struct {
	Category    string `json:"category"`
	CountOnMenu int    `json:"count_on_menu"`
}

// PriceUpdate is one element of the batch price PATCH payload.
type PriceUpdate struct {
	IDMenuItem int64   `json:"id_menu_item" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
}
