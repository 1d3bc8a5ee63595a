package api

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"fastfood-dashboard/internal/charts"
	"fastfood-dashboard/internal/config"
	"fastfood-dashboard/internal/engine"
	"fastfood-dashboard/internal/models"
)

// Handler serves dashboard artifacts computed from the loaded dataset.
// Every request re-derives its own filtered view from the full cleaned
// dataset and the request's FilterCriteria; no filtered state is shared.
type Handler struct {
	mu   sync.RWMutex
	data *engine.Dataset
	cfg  *config.Config
}

func NewHandler(data *engine.Dataset, cfg *config.Config) *Handler {
	return &Handler{data: data, cfg: cfg}
}

// SetDataset publishes a freshly loaded dataset to the live API.
func (h *Handler) SetDataset(d *engine.Dataset) {
	h.mu.Lock()
	h.data = d
	h.mu.Unlock()
}

func (h *Handler) dataset() *engine.Dataset {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/filters", h.GetFilterOptions)
	api.GET("/restaurants", h.GetRestaurantTable)
	api.GET("/restaurants/top", h.GetTopRestaurants)
	api.GET("/map/density", h.GetDensityMap)
	api.GET("/charts/bar", h.GetCategoryBar)
	api.GET("/charts/pie", h.GetCategoryPie)
}

// criteriaFrom rebuilds the FilterCriteria from query params.
// Missing selectors default to the "all" sentinel / empty set.
func criteriaFrom(c echo.Context) models.FilterCriteria {
	crit := models.FilterCriteria{
		Province:   c.QueryParam("province"),
		City:       c.QueryParam("city"),
		Categories: c.QueryParams()["categories"],
	}
	if crit.Province == "" {
		crit.Province = models.SentinelAll
	}
	if crit.City == "" {
		crit.City = models.SentinelAll
	}
	return crit
}

// notLoaded is the fallback state while the dataset is loading, or when
// the load failed. The session keeps serving; it never crashes.
func notLoaded(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"error": "dataset not loaded",
	})
}

// --- HANDLERS ---

func (h *Handler) GetHealth(c echo.Context) error {
	d := h.dataset()
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"loaded":  d != nil,
		"records": d.Len(),
	})
}

// GetFilterOptions returns the sidebar control options: "all" plus every
// distinct province, "all" plus the cities of the selected province, and
// every distinct category in the full dataset.
func (h *Handler) GetFilterOptions(c echo.Context) error {
	d := h.dataset()
	if d == nil {
		return notLoaded(c)
	}

	province := c.QueryParam("province")
	if province == "" {
		province = models.SentinelAll
	}

	opts := models.FilterOptions{
		Provinces:  append([]string{models.SentinelAll}, d.Provinces()...),
		Cities:     append([]string{models.SentinelAll}, d.CitiesIn(province)...),
		Categories: d.Categories(),
	}
	return c.JSON(http.StatusOK, opts)
}

// GetRestaurantTable returns the filtered details table: province filter,
// then city filter against the province-filtered set.
func (h *Handler) GetRestaurantTable(c echo.Context) error {
	d := h.dataset()
	if d == nil {
		return notLoaded(c)
	}

	crit := criteriaFrom(c)
	view := engine.Apply(d, crit)

	title := fmt.Sprintf("Details for Fast Food Restaurants in %s, %s", crit.City, crit.Province)
	return c.JSON(http.StatusOK, charts.BuildLocationTable(view, title))
}

// GetDensityMap returns the density map spec for the province/city view.
func (h *Handler) GetDensityMap(c echo.Context) error {
	d := h.dataset()
	if d == nil {
		return notLoaded(c)
	}

	crit := criteriaFrom(c)
	view := engine.Apply(d, crit)

	title := fmt.Sprintf("Density Map of Fast-Food Locations in %s, %s", crit.City, crit.Province)
	spec := charts.BuildDensityMap(view, title, h.cfg.MapZoom, h.cfg.GeohashPrecision)
	return c.JSON(http.StatusOK, spec)
}

// GetCategoryBar returns the stacked bar spec. Category and province
// filters are applied directly against the full cleaned dataset, not the
// city-filtered subset.
func (h *Handler) GetCategoryBar(c echo.Context) error {
	d := h.dataset()
	if d == nil {
		return notLoaded(c)
	}

	crit := criteriaFrom(c)
	view := engine.FilterByProvince(engine.FilterByCategories(d, crit.Categories), crit.Province)

	title := fmt.Sprintf("Fast-Food Category Frequency by Province: %s", crit.Province)
	return c.JSON(http.StatusOK, charts.BuildCategoryBar(view, title))
}

// GetCategoryPie returns the pie spec over the category-filtered full
// dataset. Province and city selections do not apply here.
func (h *Handler) GetCategoryPie(c echo.Context) error {
	d := h.dataset()
	if d == nil {
		return notLoaded(c)
	}

	crit := criteriaFrom(c)
	view := engine.FilterByCategories(d, crit.Categories)

	return c.JSON(http.StatusOK, charts.BuildCategoryPie(view, "Distribution of Fast-Food Types Across the U.S."))
}

// GetTopRestaurants returns the top-N most common restaurant names in the
// selected province, with their locations mapped. An optional ?city=
// restricts the ranking to one city.
func (h *Handler) GetTopRestaurants(c echo.Context) error {
	d := h.dataset()
	if d == nil {
		return notLoaded(c)
	}

	crit := criteriaFrom(c)
	n := h.cfg.TopN
	if raw := c.QueryParam("n"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			n = v
		}
	}

	view := engine.FilterByProvince(d, crit.Province)

	var ranking []models.NameCount
	if crit.City != models.SentinelAll {
		ranking = engine.TopNByNameForCity(view, crit.City, n)
	} else {
		ranking = engine.TopNByName(view, n)
	}

	title := fmt.Sprintf("Top %d Most Common Restaurants in %s", n, crit.Province)
	return c.JSON(http.StatusOK, models.TopRestaurants{
		Province: crit.Province,
		Ranking:  ranking,
		Map:      charts.BuildTopMap(view, ranking, title, h.cfg.MapZoom),
	})
}
