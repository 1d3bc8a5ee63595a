package engine

import (
	"strings"

	"fastfood-dashboard/internal/models"
)

// Dataset is the cleaned, immutable collection of restaurant records.
// Distinct-value dictionaries are built once at construction so the
// sidebar option lists never rescan the rows.
type Dataset struct {
	records []models.Restaurant
	hasGeo  bool

	provinces  []string
	categories []string
	citiesBy   map[string][]string
	allCities  []string
}

// NewDataset wraps cleaned records and builds the value dictionaries.
// Dictionary order is first-encounter order, matching file order.
func NewDataset(records []models.Restaurant, hasGeo bool) *Dataset {
	d := &Dataset{
		records:  records,
		hasGeo:   hasGeo,
		citiesBy: make(map[string][]string),
	}

	seenProv := make(map[string]bool)
	seenCat := make(map[string]bool)
	seenCity := make(map[string]bool)
	seenProvCity := make(map[string]bool)

	for _, r := range records {
		if !seenProv[r.Province] {
			seenProv[r.Province] = true
			d.provinces = append(d.provinces, r.Province)
		}
		if r.Categories != "" && !seenCat[r.Categories] {
			seenCat[r.Categories] = true
			d.categories = append(d.categories, r.Categories)
		}
		if !seenCity[r.City] {
			seenCity[r.City] = true
			d.allCities = append(d.allCities, r.City)
		}
		pc := r.Province + "\x00" + r.City
		if !seenProvCity[pc] {
			seenProvCity[pc] = true
			d.citiesBy[r.Province] = append(d.citiesBy[r.Province], r.City)
		}
	}

	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records exposes the underlying rows. Callers must treat them as read-only.
func (d *Dataset) Records() []models.Restaurant {
	if d == nil {
		return nil
	}
	return d.records
}

// HasGeo reports whether the source carried latitude/longitude columns.
func (d *Dataset) HasGeo() bool {
	return d != nil && d.hasGeo
}

// Provinces returns every distinct province value, in first-encounter order.
func (d *Dataset) Provinces() []string {
	if d == nil {
		return nil
	}
	return d.provinces
}

// Categories returns every distinct cleaned category value.
func (d *Dataset) Categories() []string {
	if d == nil {
		return nil
	}
	return d.categories
}

// CitiesIn returns the distinct cities within a province.
// The "all" sentinel returns every distinct city in the dataset.
func (d *Dataset) CitiesIn(province string) []string {
	if d == nil {
		return nil
	}
	if strings.EqualFold(province, models.SentinelAll) {
		return d.allCities
	}
	return d.citiesBy[province]
}
