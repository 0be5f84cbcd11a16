package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"wayfarer/config"
)

// WeatherClient fetches hourly temperature forecasts from Open-Meteo. It
// shares the gateway's fetch-or-fallback contract: the no-network and
// network-failure paths are deliberately unified into the same synthetic
// payload generator.
type WeatherClient struct {
	baseURL    string
	live       bool
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewWeatherClient builds the forecast client. live mirrors the gateway's
// authenticated mode: when inactive no network call is attempted at all.
func NewWeatherClient(cfg config.Config, live bool) *WeatherClient {
	return &WeatherClient{
		baseURL: cfg.WeatherBaseURL,
		live:    live,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "open-meteo",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
}

// GetForecast returns the hourly forecast for the coordinates and date range,
// or a synthetic payload when offline or when the request fails.
func (c *WeatherClient) GetForecast(lat, lon float64, startDate, endDate string) *ForecastPayload {
	log.Printf("🌤️  Fetching weather forecast for %.4f, %.4f (%s to %s)", lat, lon, startDate, endDate)

	if !c.live {
		log.Println("   Using sample weather data")
		return SampleForecast(lat, lon, startDate, endDate)
	}

	url := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&hourly=temperature_2m&start_date=%s&end_date=%s",
		c.baseURL, lat, lon, startDate, endDate)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Get(url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("weather API error (%d): %s", resp.StatusCode, string(body))
		}
		return body, nil
	})
	if err != nil {
		log.Printf("❌ Weather fetch failed: %v — using sample data", err)
		return SampleForecast(lat, lon, startDate, endDate)
	}

	var payload ForecastPayload
	if err := json.Unmarshal(result.([]byte), &payload); err != nil {
		log.Printf("❌ Failed to parse forecast: %v — using sample data", err)
		return SampleForecast(lat, lon, startDate, endDate)
	}

	log.Printf("✅ Forecast received: %d hourly samples", len(payload.Hourly.Time))
	return &payload
}
