package engine

import (
	"testing"

	"fastfood-dashboard/internal/models"
)

func sampleDataset() *Dataset {
	return NewDataset([]models.Restaurant{
		{ID: "1", Name: "Burger Palace", City: "Los Angeles", Province: "CA", Categories: "burgers"},
		{ID: "2", Name: "Pizza Corner", City: "San Diego", Province: "CA", Categories: "pizza"},
		{ID: "3", Name: "Taco Stop", City: "Austin", Province: "TX", Categories: "tacos"},
		{ID: "4", Name: "Burger Palace", City: "Baton Rouge", Province: "LA", Categories: "burgers"},
		{ID: "5", Name: "Wing Shack", City: "austin", Province: "TX", Categories: "burgers,fast food"},
	}, false)
}

func TestFilterByProvinceAllIsIdentity(t *testing.T) {
	d := sampleDataset()
	if got := FilterByProvince(d, "all"); got != d {
		t.Error("FilterByProvince with the all sentinel should return the dataset unchanged")
	}
	if got := FilterByProvince(d, "All"); got != d {
		t.Error("sentinel match should be case-insensitive")
	}
}

func TestFilterByProvinceExactMatch(t *testing.T) {
	d := sampleDataset()

	got := FilterByProvince(d, "CA")
	if got.Len() != 2 {
		t.Fatalf("expected 2 CA records, got %d", got.Len())
	}

	// Stored values are matched case-sensitively.
	if got := FilterByProvince(d, "ca"); got.Len() != 0 {
		t.Errorf("lowercase province should not match stored %q values, got %d records", "CA", got.Len())
	}
}

func TestFilterByProvinceLAIsNotASpecialCase(t *testing.T) {
	d := sampleDataset()
	got := FilterByProvince(d, "LA")
	if got.Len() != 1 {
		t.Fatalf("LA must filter like any other province, got %d records", got.Len())
	}
	if got.Records()[0].City != "Baton Rouge" {
		t.Errorf("unexpected record: %+v", got.Records()[0])
	}
}

func TestFilterByCityAndProvince(t *testing.T) {
	d := sampleDataset()

	// City "all" keeps every record of the province.
	got := FilterByCityAndProvince(d, "all", "CA")
	if got.Len() != 2 {
		t.Errorf("city=all, province=CA: expected 2 records, got %d", got.Len())
	}

	// Both sides fold to a common case before comparing.
	got = FilterByCityAndProvince(d, "AUSTIN", "tx")
	if got.Len() != 2 {
		t.Errorf("case-insensitive city match: expected 2 records, got %d", got.Len())
	}

	// A city with province "all" constrains on city only.
	got = FilterByCityAndProvince(d, "San Diego", "all")
	if got.Len() != 1 {
		t.Errorf("city filter under province=all: expected 1 record, got %d", got.Len())
	}
}

func TestFilterByCategories(t *testing.T) {
	d := sampleDataset()

	if got := FilterByCategories(d, nil); got != d {
		t.Error("empty category set should return the dataset unchanged")
	}

	got := FilterByCategories(d, []string{"burgers"})
	if got.Len() != 2 {
		t.Errorf("expected 2 burgers records, got %d", got.Len())
	}

	// Multi-category cells match as one atomic string only.
	got = FilterByCategories(d, []string{"fast food"})
	if got.Len() != 0 {
		t.Errorf("multi-category cell must not be split, got %d records", got.Len())
	}
	got = FilterByCategories(d, []string{"burgers,fast food"})
	if got.Len() != 1 {
		t.Errorf("atomic multi-category match: expected 1 record, got %d", got.Len())
	}
}

func TestFiltersDoNotMutateSource(t *testing.T) {
	d := sampleDataset()
	before := d.Len()

	FilterByProvince(d, "TX")
	FilterByCityAndProvince(d, "Austin", "TX")
	FilterByCategories(d, []string{"pizza"})

	if d.Len() != before {
		t.Fatalf("source dataset mutated: %d -> %d", before, d.Len())
	}
	if d.Records()[0].Name != "Burger Palace" {
		t.Error("source record content changed")
	}
}

func TestApplyComposesProvinceThenCity(t *testing.T) {
	d := sampleDataset()
	got := Apply(d, models.FilterCriteria{Province: "TX", City: "Austin"})
	if got.Len() != 2 {
		t.Errorf("expected 2 Austin/TX records, got %d", got.Len())
	}
}
