package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"wayfarer/config"
)

// AmadeusClient is the provider gateway for the marketplace capabilities:
// flight search, hotel search and activity search. Every operation follows the
// same fetch-or-fallback contract — a raw payload always comes back, tagged as
// sample data whenever the live API was unavailable or failed.
type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string

	// authenticated is resolved once at construction and read-only after.
	authenticated bool

	accessToken string
	tokenExpiry time.Time
	mu          sync.Mutex

	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewAmadeusClient builds the gateway and resolves its live/sample mode once:
// missing credentials or a failed initial token request both put the client in
// sample-data mode for the remainder of the process.
func NewAmadeusClient(cfg config.Config) *AmadeusClient {
	c := &AmadeusClient{
		clientID:     cfg.AmadeusAPIKey,
		clientSecret: cfg.AmadeusAPISecret,
		baseURL:      cfg.AmadeusBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "amadeus",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}

	if !cfg.HasAmadeusCredentials() {
		log.Println("⚠️  Amadeus API credentials not found. Using sample data.")
		return c
	}

	if err := c.refreshToken(); err != nil {
		log.Printf("❌ Amadeus authentication failed: %v — using sample data", err)
		return c
	}

	c.authenticated = true
	log.Println("✅ Amadeus API authentication successful")
	return c
}

// Authenticated reports whether the gateway runs against the live API.
func (c *AmadeusClient) Authenticated() bool {
	return c.authenticated
}

// ─── OAuth2 token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) refreshToken() error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequest(http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken() (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doRequest(path string) ([]byte, error) {
	token, err := c.getToken()
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(body))
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// ─── Flight search ────────────────────────────────────────────────────────────

// SearchFlights fetches flight offers for the given route, or a sample payload
// when the live API is unavailable. Codes are expected to be resolved already.
func (c *AmadeusClient) SearchFlights(originCode, destinationCode, departureDate, returnDate string, adults int) *FlightOffersPayload {
	log.Printf("🔍 Searching flights: %s → %s on %s", originCode, destinationCode, departureDate)

	if !c.authenticated {
		log.Println("   Using sample flight data")
		return SampleFlights(originCode, destinationCode, departureDate)
	}

	query := url.Values{}
	query.Set("originLocationCode", originCode)
	query.Set("destinationLocationCode", destinationCode)
	query.Set("departureDate", departureDate)
	query.Set("adults", fmt.Sprintf("%d", adults))
	query.Set("max", "20")
	query.Set("currencyCode", "USD")
	if returnDate != "" {
		query.Set("returnDate", returnDate)
	}

	body, err := c.doRequest("/v2/shopping/flight-offers?" + query.Encode())
	if err != nil {
		log.Printf("❌ Flight search failed: %v — using sample data", err)
		return SampleFlights(originCode, destinationCode, departureDate)
	}

	var payload FlightOffersPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("❌ Failed to parse flight offers: %v — using sample data", err)
		return SampleFlights(originCode, destinationCode, departureDate)
	}

	log.Printf("✅ Found %d real flights", len(payload.Data))
	return &payload
}

// ─── Hotel search ─────────────────────────────────────────────────────────────

// SearchHotels fetches hotels around a city, or a sample payload on failure.
func (c *AmadeusClient) SearchHotels(cityCode string, radius int, radiusUnit string, amenities, ratings []string) *HotelListPayload {
	log.Printf("🏨 Searching hotels in %s (radius %d %s)", cityCode, radius, radiusUnit)

	if !c.authenticated {
		log.Println("   Using sample hotel data")
		return SampleHotels(cityCode)
	}

	query := url.Values{}
	query.Set("cityCode", cityCode)
	query.Set("radius", fmt.Sprintf("%d", radius))
	query.Set("radiusUnit", radiusUnit)
	if len(amenities) > 0 {
		query.Set("amenities", strings.Join(amenities, ","))
	}
	if len(ratings) > 0 {
		query.Set("ratings", strings.Join(ratings, ","))
	}

	body, err := c.doRequest("/v1/reference-data/locations/hotels/by-city?" + query.Encode())
	if err != nil {
		log.Printf("❌ Hotel search failed: %v — using sample data", err)
		return SampleHotels(cityCode)
	}

	var payload HotelListPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("❌ Failed to parse hotel list: %v — using sample data", err)
		return SampleHotels(cityCode)
	}

	log.Printf("✅ Found %d real hotels", len(payload.Data))
	return &payload
}

// ─── Activity search ──────────────────────────────────────────────────────────

// SearchActivities fetches bookable activities near the given coordinates, or
// a sample payload on failure.
func (c *AmadeusClient) SearchActivities(lat, lon float64, radius int) *ActivitiesPayload {
	log.Printf("🎭 Searching activities near %.4f, %.4f", lat, lon)

	if !c.authenticated {
		log.Println("   Using sample activity data")
		return SampleActivities()
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", lat))
	query.Set("longitude", fmt.Sprintf("%f", lon))
	query.Set("radius", fmt.Sprintf("%d", radius))

	body, err := c.doRequest("/v1/shopping/activities?" + query.Encode())
	if err != nil {
		log.Printf("❌ Activity search failed: %v — using sample data", err)
		return SampleActivities()
	}

	var payload ActivitiesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("❌ Failed to parse activities: %v — using sample data", err)
		return SampleActivities()
	}

	log.Printf("✅ Found %d real activities", len(payload.Data))
	return &payload
}
