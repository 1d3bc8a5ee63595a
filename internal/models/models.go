package models

// Restaurant is one fast-food location row after cleaning.
type Restaurant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Province   string  `json:"province"`
	PostalCode string  `json:"postalCode"`
	Categories string  `json:"categories"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
	HasGeo     bool    `json:"-"`
}

// SentinelAll is the selector value meaning "no restriction".
const SentinelAll = "all"

// FilterCriteria is the user-selected (province, city, categories) tuple.
// Rebuilt from query params on every request, never stored.
type FilterCriteria struct {
	Province   string   `json:"province"`
	City       string   `json:"city"`
	Categories []string `json:"categories"`
}

// FilterOptions backs the sidebar controls: every distinct province,
// the cities within the selected province, and every distinct category.
type FilterOptions struct {
	Provinces  []string `json:"provinces"`
	Cities     []string `json:"cities"`
	Categories []string `json:"categories"`
}

// NameCount is one row of a top-N restaurant ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TableSpec is a render-ready table: a chosen column subset plus rows.
type TableSpec struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
	Notice  string     `json:"notice,omitempty"`
}

// MapPoint is a single marker on a geo scatter map.
type MapPoint struct {
	Lat    float64           `json:"lat"`
	Lng    float64           `json:"lng"`
	Label  string            `json:"label"`
	Weight int               `json:"weight"`
	Color  string            `json:"color,omitempty"`
	Hover  map[string]string `json:"hover,omitempty"`
}

// DensityCell is a geohash bucket with an aggregate point count,
// used by the frontend heatmap layer.
type DensityCell struct {
	Geohash string  `json:"geohash"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Count   int     `json:"count"`
}

// MapSpec is a geo-scatter specification for the map renderer.
type MapSpec struct {
	Title  string        `json:"title"`
	Style  string        `json:"style"`
	Zoom   int           `json:"zoom"`
	Points []MapPoint    `json:"points"`
	Cells  []DensityCell `json:"cells,omitempty"`
	Notice string        `json:"notice,omitempty"`
}

// BarSeries is one stack segment of a categorical bar chart.
type BarSeries struct {
	Name   string `json:"name"`
	Values []int  `json:"values"`
}

// BarSpec is a stacked categorical bar specification:
// one label per x position, one series per stack dimension value.
type BarSpec struct {
	Title   string      `json:"title"`
	XLabel  string      `json:"xLabel"`
	YLabel  string      `json:"yLabel"`
	Labels  []string    `json:"labels"`
	Series  []BarSeries `json:"series"`
	Stacked bool        `json:"stacked"`
}

// PieSpec is a pie chart specification.
type PieSpec struct {
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// TopRestaurants bundles the top-N ranking with its map rendering.
type TopRestaurants struct {
	Province string      `json:"province"`
	Ranking  []NameCount `json:"ranking"`
	Map      *MapSpec    `json:"map"`
}
