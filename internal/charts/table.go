package charts

import (
	"fastfood-dashboard/internal/engine"
	"fastfood-dashboard/internal/models"
)

// tableColumns is the column subset shown in the restaurant details table.
var tableColumns = []string{"name", "address", "categories", "city", "postalCode", "province"}

// BuildLocationTable renders a filtered dataset as a table spec with the
// standard column subset. An empty dataset produces a notice instead of rows.
func BuildLocationTable(d *engine.Dataset, title string) *models.TableSpec {
	spec := &models.TableSpec{
		Title:   title,
		Columns: tableColumns,
		Rows:    [][]string{},
		Total:   d.Len(),
	}

	if d.Len() == 0 {
		spec.Notice = "No fast food restaurants found for the selected filters."
		return spec
	}

	for _, r := range d.Records() {
		spec.Rows = append(spec.Rows, []string{
			r.Name, r.Address, r.Categories, r.City, r.PostalCode, r.Province,
		})
	}
	return spec
}
