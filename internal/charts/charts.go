package charts

import (
	"fastfood-dashboard/internal/engine"
	"fastfood-dashboard/internal/models"
)

// palette is the default series color cycle.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildCategoryBar produces a stacked bar spec: x=province, y=count,
// one stack series per category.
func BuildCategoryBar(d *engine.Dataset, title string) *models.BarSpec {
	spec := &models.BarSpec{
		Title:   title,
		XLabel:  "Province",
		YLabel:  "Number of Locations",
		Labels:  []string{},
		Series:  []models.BarSeries{},
		Stacked: true,
	}

	counts := engine.CountByProvinceAndCategory(d)
	if len(counts) == 0 {
		return spec
	}

	provinces := d.Provinces()
	spec.Labels = provinces

	for _, cat := range d.Categories() {
		values := make([]int, len(provinces))
		nonzero := false
		for i, prov := range provinces {
			v := counts[engine.ProvinceCategory{Province: prov, Category: cat}]
			values[i] = v
			if v > 0 {
				nonzero = true
			}
		}
		if nonzero {
			spec.Series = append(spec.Series, models.BarSeries{Name: cat, Values: values})
		}
	}

	return spec
}

// BuildCategoryPie produces a pie spec over the per-category counts.
func BuildCategoryPie(d *engine.Dataset, title string) *models.PieSpec {
	spec := &models.PieSpec{
		Title:  title,
		Labels: []string{},
		Values: []int{},
	}

	counts := engine.CountByCategory(d)
	for _, cat := range d.Categories() {
		if n := counts[cat]; n > 0 {
			spec.Labels = append(spec.Labels, cat)
			spec.Values = append(spec.Values, n)
		}
	}

	return spec
}
