package charts

import (
	"strconv"

	geohash "github.com/TomiHiltunen/geohash-golang"

	"fastfood-dashboard/internal/engine"
	"fastfood-dashboard/internal/models"
)

const mapStyle = "open-street-map"

// noGeoNotice is shown when the source file carries no coordinate columns.
const noGeoNotice = "The dataset must contain latitude and longitude for each restaurant."

// BuildDensityMap produces a geo-scatter spec where each location is
// weighted by its province's record count, plus geohash density cells for
// the heatmap layer. Without geo columns the result degrades to a notice.
func BuildDensityMap(d *engine.Dataset, title string, zoom, precision int) *models.MapSpec {
	spec := &models.MapSpec{
		Title: title,
		Style: mapStyle,
		Zoom:  zoom,
	}

	if !d.HasGeo() {
		spec.Notice = noGeoNotice
		return spec
	}

	provinceCounts := engine.CountByProvince(d)
	cellCounts := make(map[string]int)
	var cellOrder []string

	for _, r := range d.Records() {
		if !r.HasGeo {
			continue
		}
		count := provinceCounts[r.Province]
		spec.Points = append(spec.Points, models.MapPoint{
			Lat:    r.Latitude,
			Lng:    r.Longitude,
			Label:  r.Name,
			Weight: count,
			Hover: map[string]string{
				"address":  r.Address,
				"city":     r.City,
				"province": r.Province,
				"count":    strconv.Itoa(count),
			},
		})

		h := geohash.EncodeWithPrecision(r.Latitude, r.Longitude, precision)
		if _, seen := cellCounts[h]; !seen {
			cellOrder = append(cellOrder, h)
		}
		cellCounts[h]++
	}

	for _, h := range cellOrder {
		center := geohash.Decode(h).Center()
		spec.Cells = append(spec.Cells, models.DensityCell{
			Geohash: h,
			Lat:     center.Lat(),
			Lng:     center.Lng(),
			Count:   cellCounts[h],
		})
	}

	return spec
}

// BuildTopMap plots the locations of the ranked restaurant names,
// colored per name.
func BuildTopMap(d *engine.Dataset, ranking []models.NameCount, title string, zoom int) *models.MapSpec {
	spec := &models.MapSpec{
		Title: title,
		Style: mapStyle,
		Zoom:  zoom,
	}

	if !d.HasGeo() {
		spec.Notice = noGeoNotice
		return spec
	}

	colorFor := make(map[string]string, len(ranking))
	for i, nc := range ranking {
		colorFor[nc.Name] = palette[i%len(palette)]
	}

	for _, r := range d.Records() {
		color, ranked := colorFor[r.Name]
		if !ranked || !r.HasGeo {
			continue
		}
		spec.Points = append(spec.Points, models.MapPoint{
			Lat:   r.Latitude,
			Lng:   r.Longitude,
			Label: r.Name,
			Color: color,
			Hover: map[string]string{
				"city":       r.City,
				"address":    r.Address,
				"postalCode": r.PostalCode,
			},
		})
	}

	return spec
}
