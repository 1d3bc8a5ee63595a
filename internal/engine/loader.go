package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"fastfood-dashboard/internal/models"
)

// Load failure kinds. Callers match with errors.Is and degrade to a
// no-data state; a load failure never crashes the session.
var (
	ErrMissingFile   = errors.New("dataset file not found")
	ErrEmptyFile     = errors.New("dataset file is empty")
	ErrMissingColumn = errors.New("required column missing")
)

// requiredColumns are the columns every input file must carry.
// latitude/longitude are optional; without them map endpoints degrade
// to a text notice.
var requiredColumns = []string{
	"id", "name", "address", "city", "province", "postalcode", "categories",
}

// Load reads the CSV at path into a cleaned Dataset:
// duplicate ids are dropped keeping the last row in file order, and the
// categories column is trimmed and lower-cased.
func Load(path string) (*Dataset, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// Header lookup is case-insensitive so "postalCode" and "postalcode"
	// both resolve.
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	latIdx, hasLat := cols["latitude"]
	lngIdx, hasLng := cols["longitude"]
	hasGeo := hasLat && hasLng

	var rows []models.Restaurant
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows rather than abort the whole load.
			continue
		}

		r := models.Restaurant{
			ID:         field(row, cols["id"]),
			Name:       field(row, cols["name"]),
			Address:    field(row, cols["address"]),
			City:       field(row, cols["city"]),
			Province:   field(row, cols["province"]),
			PostalCode: field(row, cols["postalcode"]),
			Categories: strings.ToLower(strings.TrimSpace(field(row, cols["categories"]))),
		}
		if r.ID == "" {
			continue
		}

		if hasGeo {
			lat, latErr := strconv.ParseFloat(field(row, latIdx), 64)
			lng, lngErr := strconv.ParseFloat(field(row, lngIdx), 64)
			if latErr == nil && lngErr == nil {
				r.Latitude = lat
				r.Longitude = lng
				r.HasGeo = true
			}
		}

		rows = append(rows, r)
	}

	cleaned := dropDuplicates(rows)

	log.Printf("[loader] Load complete: %d rows (%d duplicates dropped) in %v",
		len(cleaned), len(rows)-len(cleaned), time.Since(start))

	return NewDataset(cleaned, hasGeo), nil
}

// dropDuplicates keeps exactly one record per id: the last occurrence in
// file order, positioned where that last occurrence sat.
func dropDuplicates(rows []models.Restaurant) []models.Restaurant {
	lastIdx := make(map[string]int, len(rows))
	for i, r := range rows {
		lastIdx[r.ID] = i
	}

	out := make([]models.Restaurant, 0, len(lastIdx))
	for i, r := range rows {
		if lastIdx[r.ID] == i {
			out = append(out, r)
		}
	}
	return out
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
