package engine

import (
	"sort"
	"strings"

	"fastfood-dashboard/internal/models"
)

// Aggregations are total: an empty dataset yields an empty result,
// never an error.

// ProvinceCategory is the grouping key for per-(province, category) counts.
type ProvinceCategory struct {
	Province string
	Category string
}

// CountByProvince counts records per distinct province value.
// The counts always sum to d.Len().
func CountByProvince(d *Dataset) map[string]int {
	counts := make(map[string]int)
	for _, r := range d.Records() {
		counts[r.Province]++
	}
	return counts
}

// CountByProvinceAndCategory counts records per (province, category) pair.
func CountByProvinceAndCategory(d *Dataset) map[ProvinceCategory]int {
	counts := make(map[ProvinceCategory]int)
	for _, r := range d.Records() {
		counts[ProvinceCategory{Province: r.Province, Category: r.Categories}]++
	}
	return counts
}

// CountByCategory counts records per distinct cleaned category value.
func CountByCategory(d *Dataset) map[string]int {
	counts := make(map[string]int)
	for _, r := range d.Records() {
		counts[r.Categories]++
	}
	return counts
}

// TopNByName ranks restaurant names by location count, descending.
// Ties keep first-encounter order and the result is truncated to n.
func TopNByName(d *Dataset, n int) []models.NameCount {
	return topNames(d.Records(), "", n)
}

// TopNByNameForCity is TopNByName restricted to records whose city
// matches case-insensitively.
func TopNByNameForCity(d *Dataset, city string, n int) []models.NameCount {
	return topNames(d.Records(), city, n)
}

func topNames(records []models.Restaurant, city string, n int) []models.NameCount {
	counts := make(map[string]int)
	var order []string

	for _, r := range records {
		if city != "" && !strings.EqualFold(r.City, city) {
			continue
		}
		if _, seen := counts[r.Name]; !seen {
			order = append(order, r.Name)
		}
		counts[r.Name]++
	}

	ranking := make([]models.NameCount, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, models.NameCount{Name: name, Count: counts[name]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}
