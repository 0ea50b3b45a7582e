package models

// Product is a shared catalog entry, read-only reference data for every
// business. SubcategoryID is nullable.
type Product struct {
	ID                int64  `json:"id"`
	Name              string `json:"name" db:"name"`
	Brand             string `json:"brand" db:"brand"`
	CategoryID        int64  `json:"category_id" db:"category_id"`
	SubcategoryID     *int64 `json:"subcategory_id,omitempty" db:"subcategory_id"`
	ProductionCity    string `json:"production_city" db:"production_city"`
	ProductionCountry string `json:"production_country" db:"production_country"`
	Trending          bool   `json:"trending" db:"trending"`
	HighMargin        bool   `json:"high_margin" db:"high_margin"`
	EcoFriendly       bool   `json:"eco_friendly" db:"eco_friendly"`
	Season            string `json:"season" db:"season"`
}

// Category groups products at the top level.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name" db:"name"`
}

// Subcategory optionally refines a category.
type Subcategory struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" db:"name"`
	CategoryID *int64 `json:"category_id,omitempty" db:"category_id"`
}
