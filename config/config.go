package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries all process configuration. It is built once at startup and
// passed by value into the components that need it; the Amadeus credential
// check (and therefore the live/sample mode of the provider gateway) happens
// exactly once, here.
type Config struct {
	AmadeusAPIKey    string
	AmadeusAPISecret string
	AmadeusBaseURL   string

	WeatherBaseURL string

	DatabaseURL string
	Port        string

	FrontendOrigins []string
}

// Load reads configuration from .env / environment variables with defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	cfg := Config{
		AmadeusAPIKey:    os.Getenv("AMADEUS_API_KEY"),
		AmadeusAPISecret: os.Getenv("AMADEUS_API_SECRET"),
		AmadeusBaseURL:   getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		WeatherBaseURL:   getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Port:             getEnv("PORT", "8080"),
	}

	for _, origin := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.FrontendOrigins = append(cfg.FrontendOrigins, origin)
		}
	}

	return cfg
}

// HasAmadeusCredentials reports whether both API credentials are present.
// When false the provider gateway runs in sample-data mode.
func (c Config) HasAmadeusCredentials() bool {
	return c.AmadeusAPIKey != "" && c.AmadeusAPISecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
