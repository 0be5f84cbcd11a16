package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/config"
)

func TestGetForecastOfflineMode(t *testing.T) {
	c := NewWeatherClient(config.Config{WeatherBaseURL: "http://invalid.local"}, false)

	payload := c.GetForecast(37.98, 23.73, "2026-09-10", "2026-09-12")
	require.NotNil(t, payload)
	assert.True(t, payload.IsSample)
	assert.Len(t, payload.Hourly.Time, 3*24)
	assert.Len(t, payload.Hourly.Temperature2M, 3*24)
	assert.Equal(t, "2026-09-10T00:00", payload.Hourly.Time[0])
}

func TestGetForecastLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "temperature_2m", r.URL.Query().Get("hourly"))
		json.NewEncoder(w).Encode(ForecastPayload{
			Latitude:  37.98,
			Longitude: 23.73,
			Hourly: HourlySeries{
				Time:          []string{"2026-09-10T00:00", "2026-09-10T01:00"},
				Temperature2M: []float64{21.5, 20.8},
			},
		})
	}))
	defer server.Close()

	c := NewWeatherClient(config.Config{WeatherBaseURL: server.URL}, true)

	payload := c.GetForecast(37.98, 23.73, "2026-09-10", "2026-09-12")
	require.NotNil(t, payload)
	assert.False(t, payload.IsSample)
	assert.Len(t, payload.Hourly.Time, 2)
}

func TestGetForecastFallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewWeatherClient(config.Config{WeatherBaseURL: server.URL}, true)

	payload := c.GetForecast(37.98, 23.73, "2026-09-10", "2026-09-12")
	require.NotNil(t, payload)
	assert.True(t, payload.IsSample)
	assert.NotEmpty(t, payload.Hourly.Time)
}

func TestSampleForecastUnusableDates(t *testing.T) {
	payload := SampleForecast(0, 0, "not-a-date", "")
	require.NotNil(t, payload)
	assert.True(t, payload.IsSample)
	// Defaults to a three-day series.
	assert.Len(t, payload.Hourly.Time, 3*24)
}

func TestSampleForecastCapsRange(t *testing.T) {
	payload := SampleForecast(0, 0, "2026-09-01", "2026-09-30")
	assert.Len(t, payload.Hourly.Time, 7*24)
}
