package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCleansDuplicatesKeepLast(t *testing.T) {
	path := writeTempCSV(t, `id,name,address,city,province,postalCode,categories,latitude,longitude
1,A,1 Main St,LA,CA,90001,Burgers,34.05,-118.24
2,B,2 Main St,LA,CA,90002,Pizza,34.06,-118.25
1,A2,3 Main St,LA,CA,90003,Burgers,34.07,-118.26
`)

	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if ds.Len() != 2 {
		t.Fatalf("expected 2 records after dedupe, got %d", ds.Len())
	}

	// Later rows win: the first id=1 row ("A") is dropped and the
	// surviving record sits where the last occurrence sat.
	records := ds.Records()
	if records[0].Name != "B" {
		t.Errorf("records[0].Name: got %q, want %q", records[0].Name, "B")
	}
	if records[1].Name != "A2" {
		t.Errorf("records[1].Name: got %q, want %q", records[1].Name, "A2")
	}
}

func TestLoadNormalizesCategories(t *testing.T) {
	path := writeTempCSV(t, `id,name,address,city,province,postalCode,categories
1,A,1 Main St,LA,CA,90001,  Burgers
2,B,2 Main St,LA,CA,90002,PIZZA
`)

	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range ds.Records() {
		if r.Categories != "burgers" && r.Categories != "pizza" {
			t.Errorf("category not trimmed/lower-cased: %q", r.Categories)
		}
	}
}

func TestLoadParsesCoordinates(t *testing.T) {
	path := writeTempCSV(t, `id,name,address,city,province,postalCode,categories,latitude,longitude
1,A,1 Main St,LA,CA,90001,burgers,34.05,-118.24
2,B,2 Main St,LA,CA,90002,pizza,bogus,-118.25
`)

	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ds.HasGeo() {
		t.Fatal("expected HasGeo for a file with coordinate columns")
	}

	records := ds.Records()
	if !records[0].HasGeo || records[0].Latitude != 34.05 {
		t.Errorf("record 0 coordinates not parsed: %+v", records[0])
	}
	if records[1].HasGeo {
		t.Error("record with unparseable latitude should not carry geo")
	}
}

func TestLoadWithoutGeoColumns(t *testing.T) {
	path := writeTempCSV(t, `id,name,address,city,province,postalCode,categories
1,A,1 Main St,LA,CA,90001,burgers
`)

	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.HasGeo() {
		t.Error("HasGeo should be false without latitude/longitude columns")
	}
	if ds.Len() != 1 {
		t.Errorf("expected 1 record, got %d", ds.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrMissingFile) {
		t.Errorf("expected ErrMissingFile, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")
	_, err := Load(path)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("expected ErrEmptyFile, got %v", err)
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := writeTempCSV(t, `id,name,address,city,province,postalCode
1,A,1 Main St,LA,CA,90001
`)
	_, err := Load(path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoadHeaderOnlyIsValidEmptyDataset(t *testing.T) {
	path := writeTempCSV(t, "id,name,address,city,province,postalCode,categories\n")
	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 0 {
		t.Errorf("expected empty dataset, got %d records", ds.Len())
	}
}
