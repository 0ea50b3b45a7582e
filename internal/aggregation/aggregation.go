// Package aggregation shapes joined store rows into the response views served
// by the API. Every function here is pure: no I/O, no shared state, input rows
// are assumed to have been decoded and null-checked at the repository boundary
// except for the explicitly nullable subcategory relation.
package aggregation

import (
	"fmt"
	"sort"
	"strings"

	"horeca_backend/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ShapeMenuItem flattens one joined menu item row into its listing view.
// A missing subcategory becomes an empty string, never null.
func ShapeMenuItem(row models.MenuItemRow) models.MenuItemView {
	subcategory := ""
	if row.SubcategoryName != nil {
		subcategory = *row.SubcategoryName
	}
	return models.MenuItemView{
		IDMenuItem:  row.MenuItemID,
		Price:       row.Price,
		CreatedAt:   row.CreatedAt,
		ItemName:    row.ProductName,
		Producent:   row.Brand,
		Category:    row.CategoryName,
		Subcategory: subcategory,
	}
}

// ShapeMenuItems applies ShapeMenuItem to every row, preserving input order.
// It always returns a non-nil slice so an empty menu serializes as [].
func ShapeMenuItems(rows []models.MenuItemRow) []models.MenuItemView {
	views := make([]models.MenuItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ShapeMenuItem(row))
	}
	return views
}

// SalesStats computes per-item window counts for the given reference year and
// the year before it. The window is the inclusive calendar year
// [YYYY-01-01, YYYY-12-31]; comparison is lexicographic, which is correct for
// zero-padded ISO dates. Output order is input row order.
func SalesStats(rows []models.SalesRow, referenceYear int) []models.SalesStatView {
	stats := make([]models.SalesStatView, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, models.SalesStatView{
			IDMenuItem:        row.MenuItemID,
			ItemName:          row.ProductName,
			Producent:         row.Brand,
			TotalSold:         countInYear(row.SaleDates, referenceYear),
			LastYearSold:      countInYear(row.SaleDates, referenceYear-1),
			Trending:          row.Trending,
			HighMargin:        row.HighMargin,
			EcoFriendly:       row.EcoFriendly,
			Season:            row.Season,
			ProductionCity:    row.ProductionCity,
			ProductionCountry: row.ProductionCountry,
		})
	}
	return stats
}

// SortStatsByItemID orders stats ascending by menu item id, in place. The
// last-year sales endpoint requires this as an explicit post-processing step.
func SortStatsByItemID(stats []models.SalesStatView) {
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].IDMenuItem < stats[j].IDMenuItem
	})
}

func countInYear(dates []string, year int) int {
	lo := fmt.Sprintf("%04d-01-01", year)
	hi := fmt.Sprintf("%04d-12-31", year)
	count := 0
	for _, d := range dates {
		if d >= lo && d <= hi {
			count++
		}
	}
	return count
}

// DiffCatalog returns the products whose id is not in the exclusion set,
// sorted ascending by name. An empty exclusion set therefore yields the whole
// catalog; it must never be interpreted as "match nothing".
func DiffCatalog(all []models.Product, onMenu map[int64]struct{}) []models.Product {
	missing := make([]models.Product, 0, len(all))
	for _, p := range all {
		if _, listed := onMenu[p.ID]; !listed {
			missing = append(missing, p)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		return missing[i].Name < missing[j].Name
	})
	return missing
}

// CountByCategory groups menu item rows by their product's category name and
// counts membership. Output is sorted ascending by category name using
// locale-aware collation, so the result is deterministic for any input order.
func CountByCategory(rows []models.MenuItemRow) []models.CategoryCount {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryName]++
	}
	out := make([]models.CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, models.CategoryCount{Category: name, CountOnMenu: n})
	}
	coll := collate.New(language.Und)
	sort.Slice(out, func(i, j int) bool {
		return coll.CompareString(out[i].Category, out[j].Category) < 0
	})
	return out
}

// SplitAddress derives a location view from the free-text business address.
// City is the trimmed last comma-separated component when the address has
// more than one component, otherwise empty. Country is always empty; the
// data model does not track it. This lossy parse is the documented contract.
func SplitAddress(address string) models.BusinessInfo {
	parts := strings.Split(address, ",")
	city := ""
	if len(parts) > 1 {
		city = strings.TrimSpace(parts[len(parts)-1])
	}
	return models.BusinessInfo{City: city, Country: ""}
}
