package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/config"
	"wayfarer/services"
)

func samplePlanner() *Planner {
	cfg := config.Config{
		AmadeusBaseURL: "http://invalid.local",
		WeatherBaseURL: "http://invalid.local",
	}
	amadeus := services.NewAmadeusClient(cfg)
	weather := services.NewWeatherClient(cfg, amadeus.Authenticated())
	return New(amadeus, weather)
}

func TestCreateTripPlanSampleMode(t *testing.T) {
	p := samplePlanner()

	plan := p.CreateTripPlan(TripRequest{
		Origin:        "New York",
		Destination:   "Athens",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-14",
		Travelers:     2,
		Budget:        BudgetHigh,
		Interests:     []Interest{InterestCulture, InterestFood},
	})

	info := plan.TripInfo
	assert.Equal(t, "New York", info.Origin)
	assert.Equal(t, "JFK", info.OriginCode)
	assert.Equal(t, "Athens", info.Destination)
	assert.Equal(t, "ATH", info.DestinationCode)
	assert.Equal(t, 2, info.Travelers)
	assert.Equal(t, BudgetHigh, info.Budget)

	require.Len(t, plan.Flights, 3)
	assert.True(t, plan.Flights[0].IsSample)
	assert.Equal(t, "JFK", plan.Flights[0].DepartureAirport)
	assert.Equal(t, "ATH", plan.Flights[0].ArrivalAirport)

	assert.NotEmpty(t, plan.Hotels)
	assert.NotEmpty(t, plan.Activities)
	assert.NotEmpty(t, plan.Attractions)
	assert.NotEmpty(t, plan.PackingList["essentials"])

	assert.True(t, plan.Weather.IsSample)
	assert.Equal(t, "Athens", plan.Weather.City)
	assert.Equal(t, "2026-09-10 to 2026-09-14", plan.Weather.DateRange)
	require.Len(t, plan.Weather.Days, 5)
}

func TestCreateTripPlanDefaults(t *testing.T) {
	p := samplePlanner()

	plan := p.CreateTripPlan(TripRequest{
		Origin:        "Berlin",
		Destination:   "Paris",
		DepartureDate: "2026-09-10",
	})

	assert.Equal(t, 1, plan.TripInfo.Travelers)
	assert.Equal(t, BudgetMedium, plan.TripInfo.Budget)
	assert.Equal(t, "BER", plan.TripInfo.OriginCode)
	assert.Equal(t, "CDG", plan.TripInfo.DestinationCode)
}

func TestCreateTripPlanOneWayForecastWindow(t *testing.T) {
	p := samplePlanner()

	plan := p.CreateTripPlan(TripRequest{
		Origin:        "Berlin",
		Destination:   "London",
		DepartureDate: "2026-09-10",
	})

	// One-way trips forecast departure day plus four more.
	assert.Equal(t, "2026-09-10 to 2026-09-14", plan.Weather.DateRange)
	assert.Len(t, plan.Weather.Days, 5)
}

func TestCreateTripPlanCollectionsNeverNil(t *testing.T) {
	p := samplePlanner()

	plan := p.CreateTripPlan(TripRequest{
		Origin:        "Nowheresville",
		Destination:   "Elsewhere",
		DepartureDate: "2026-09-10",
	})

	assert.NotNil(t, plan.Flights)
	assert.NotNil(t, plan.Hotels)
	assert.NotNil(t, plan.Activities)
	assert.NotNil(t, plan.Attractions)
	assert.NotNil(t, plan.PackingList)
}

func TestCreateTripPlanCreatedAt(t *testing.T) {
	p := samplePlanner()

	plan := p.CreateTripPlan(TripRequest{
		Origin:        "Berlin",
		Destination:   "Paris",
		DepartureDate: "2026-09-10",
	})

	created, err := time.Parse(createdAtLayout, plan.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created, time.Minute)
}

func TestAttractions(t *testing.T) {
	t.Run("base suggestions templated on destination", func(t *testing.T) {
		got := Attractions("Athens", nil)
		assert.Contains(t, got, "Explore Athens city center")
		assert.Contains(t, got, "Visit local markets in Athens")
		assert.Contains(t, got, "Try traditional cuisine")
		assert.Len(t, got, 4)
	})

	t.Run("interest suggestions appended", func(t *testing.T) {
		got := Attractions("Athens", []Interest{InterestCulture})
		assert.Contains(t, got, "Visit museums")
		assert.Contains(t, got, "Explore historical sites")
	})

	t.Run("capped at eight", func(t *testing.T) {
		got := Attractions("Athens", []Interest{
			InterestBeach, InterestHiking, InterestCulture, InterestFood, InterestShopping,
		})
		assert.Len(t, got, maxAttractions)
	})

	t.Run("duplicate interests deduplicated", func(t *testing.T) {
		got := Attractions("Athens", []Interest{InterestFood, InterestFood})
		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s], "duplicate suggestion %q", s)
			seen[s] = true
		}
	})
}

func TestPackingList(t *testing.T) {
	t.Run("fixed categories", func(t *testing.T) {
		got := PackingList(nil)
		assert.Contains(t, got["essentials"], "Passport/ID")
		assert.Contains(t, got["clothing"], "Comfortable shoes")
		assert.Contains(t, got["toiletries"], "Sunscreen")
		assert.Contains(t, got["electronics"], "Power bank")
		assert.NotContains(t, got, "special")
	})

	t.Run("beach special items", func(t *testing.T) {
		got := PackingList([]Interest{InterestBeach})
		assert.Contains(t, got["special"], "Swimsuit")
		assert.NotContains(t, got["special"], "Hiking boots")
	})

	t.Run("beach and hiking combined", func(t *testing.T) {
		got := PackingList([]Interest{InterestBeach, InterestHiking})
		assert.Contains(t, got["special"], "Beach towel")
		assert.Contains(t, got["special"], "Water bottle")
	})
}
