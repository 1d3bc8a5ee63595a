package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fastfood-dashboard/internal/api"
	"fastfood-dashboard/internal/config"
	"fastfood-dashboard/internal/engine"
)

func main() {
	cfg := config.Load()

	// 1. Initialize Echo (starts instantly)
	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// 2. Register handlers with no data yet.
	// The API is live but returns 503 until the dataset is published.
	h := api.NewHandler(nil, cfg)
	h.RegisterRoutes(e)

	// 3. Load the dataset in the background.
	// A load failure is logged and the API keeps serving its no-data state.
	go func() {
		log.Printf("BACKGROUND: loading dataset from %s ...", cfg.DataPath)
		t0 := time.Now()

		ds, err := engine.Load(cfg.DataPath)
		if err != nil {
			log.Printf("BACKGROUND: dataset load failed: %v", err)
			return
		}

		h.SetDataset(ds)
		log.Printf("BACKGROUND: dataset ready in %v (%d records). API is fully ready.",
			time.Since(t0), ds.Len())
	}()

	// 4. Start server
	log.Printf("Server ready on port %s (data loading in background...)", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
