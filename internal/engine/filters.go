package engine

import (
	"strings"

	"fastfood-dashboard/internal/models"
)

// Filters are pure: the source Dataset is never mutated and each call
// returns a fresh Dataset. Every dashboard artifact derives its own
// filtered view from the full cleaned Dataset — filtered state is never
// shared between artifacts.

// FilterByProvince narrows to records whose province equals the given
// value exactly. The "all" sentinel is the identity.
func FilterByProvince(d *Dataset, province string) *Dataset {
	if isAll(province) {
		return d
	}

	var matched []models.Restaurant
	for _, r := range d.Records() {
		if r.Province == province {
			matched = append(matched, r)
		}
	}
	return NewDataset(matched, d.HasGeo())
}

// FilterByCityAndProvince narrows to records matching both city and
// province, case-insensitively. A city of "all" keeps every record in
// the given province.
func FilterByCityAndProvince(d *Dataset, city, province string) *Dataset {
	if isAll(city) {
		return FilterByProvince(d, province)
	}

	var matched []models.Restaurant
	for _, r := range d.Records() {
		if strings.EqualFold(r.City, city) && (isAll(province) || strings.EqualFold(r.Province, province)) {
			matched = append(matched, r)
		}
	}
	return NewDataset(matched, d.HasGeo())
}

// FilterByCategories narrows to records whose cleaned category cell is a
// member of the given set. Multi-category cells are matched as one atomic
// string, not split. An empty set is the identity.
func FilterByCategories(d *Dataset, categories []string) *Dataset {
	if len(categories) == 0 {
		return d
	}

	set := make(map[string]bool, len(categories))
	for _, c := range categories {
		set[strings.ToLower(strings.TrimSpace(c))] = true
	}

	var matched []models.Restaurant
	for _, r := range d.Records() {
		if set[r.Categories] {
			matched = append(matched, r)
		}
	}
	return NewDataset(matched, d.HasGeo())
}

// Apply derives a filtered view for the record table: province first,
// then city within the province-filtered set.
func Apply(d *Dataset, c models.FilterCriteria) *Dataset {
	return FilterByCityAndProvince(FilterByProvince(d, c.Province), c.City, c.Province)
}

func isAll(value string) bool {
	return value == "" || strings.EqualFold(value, models.SentinelAll)
}
