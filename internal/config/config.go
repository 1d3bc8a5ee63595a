package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all server settings loaded from environment variables.
type Config struct {
	Port             string
	DataPath         string
	TopN             int
	MapZoom          int
	GeohashPrecision int
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DataPath:         getEnv("DATA_PATH", "./data/fastfood.csv"),
		TopN:             getEnvInt("TOP_N", 10),
		MapZoom:          getEnvInt("MAP_ZOOM", 10),
		GeohashPrecision: getEnvInt("GEOHASH_PRECISION", 5),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
