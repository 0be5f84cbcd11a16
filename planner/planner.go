package planner

import (
	"fmt"
	"log"
	"time"

	"wayfarer/services"
)

const (
	maxAttractions  = 8
	hotelRadiusKM   = 5
	activityRadius  = 1
	weatherWindow   = 4 // extra forecast days for one-way trips
	createdAtLayout = "2006-01-02 15:04:05"
)

// Planner assembles canonical trip plans from the provider gateway.
type Planner struct {
	amadeus *services.AmadeusClient
	weather *services.WeatherClient
}

func New(amadeus *services.AmadeusClient, weather *services.WeatherClient) *Planner {
	return &Planner{amadeus: amadeus, weather: weather}
}

// CreateTripPlan resolves locations, fetches each data category through the
// gateway, normalizes the raw responses and merges everything into one
// TripPlan. Sections assemble best-effort: a failure in one never discards the
// others, so the returned plan is always usable.
func (p *Planner) CreateTripPlan(req TripRequest) TripPlan {
	log.Printf("📝 Creating trip plan: %s → %s", req.Origin, req.Destination)

	if req.Travelers <= 0 {
		req.Travelers = 1
	}
	if req.Budget == "" {
		req.Budget = BudgetMedium
	}

	originCode := services.ResolveAirportCode(req.Origin)
	destinationCode := services.ResolveAirportCode(req.Destination)
	lat, lon := services.ResolveCoordinates(req.Destination)
	log.Printf("   Airport codes: %s → %s", originCode, destinationCode)

	plan := TripPlan{
		TripInfo: TripInfo{
			Origin:          req.Origin,
			OriginCode:      originCode,
			Destination:     req.Destination,
			DestinationCode: destinationCode,
			DepartureDate:   req.DepartureDate,
			ReturnDate:      req.ReturnDate,
			Travelers:       req.Travelers,
			Budget:          req.Budget,
			Interests:       req.Interests,
		},
		Flights:     []FlightOption{},
		Hotels:      []HotelOption{},
		Activities:  []ActivityOption{},
		Attractions: []string{},
		PackingList: map[string][]string{},
		CreatedAt:   time.Now().Format(createdAtLayout),
	}

	section("flights", func() {
		payload := p.amadeus.SearchFlights(originCode, destinationCode, req.DepartureDate, req.ReturnDate, req.Travelers)
		plan.Flights = NormalizeFlights(payload)
	})

	section("hotels", func() {
		payload := p.amadeus.SearchHotels(destinationCode, hotelRadiusKM, "KM", nil, nil)
		plan.Hotels = NormalizeHotels(payload)
	})

	section("activities", func() {
		payload := p.amadeus.SearchActivities(lat, lon, activityRadius)
		plan.Activities = NormalizeActivities(payload)
	})

	section("weather", func() {
		endDate := req.ReturnDate
		if endDate == "" && req.DepartureDate != "" {
			if start, err := time.Parse("2006-01-02", req.DepartureDate); err == nil {
				endDate = start.AddDate(0, 0, weatherWindow).Format("2006-01-02")
			}
		}
		payload := p.weather.GetForecast(lat, lon, req.DepartureDate, endDate)
		plan.Weather = BuildWeatherSummary(payload, req.Destination, req.DepartureDate, endDate)
	})

	section("attractions", func() {
		plan.Attractions = Attractions(req.Destination, req.Interests)
	})

	section("packing list", func() {
		plan.PackingList = PackingList(req.Interests)
	})

	log.Printf("✅ Trip plan created with %d flights, %d hotels, %d activities",
		len(plan.Flights), len(plan.Hotels), len(plan.Activities))
	return plan
}

// section isolates one assembly step so an unexpected panic degrades to a
// partial plan instead of failing the whole request.
func section(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ %s section failed: %v — continuing with partial plan", name, r)
		}
	}()
	fn()
}

var interestAttractions = map[Interest][]string{
	InterestBeach:    {"Relax at the beach", "Try water sports", "Watch the sunset"},
	InterestHiking:   {"Hike mountain trails", "Visit nature reserves"},
	InterestCulture:  {"Visit museums", "Explore historical sites"},
	InterestFood:     {"Food tasting tour", "Cooking class"},
	InterestShopping: {"Shop at boutiques", "Visit shopping malls"},
}

// Attractions builds the static suggestion set: four destination-templated
// entries plus canned suggestions per recognized interest, deduplicated and
// capped at eight.
func Attractions(destination string, interests []Interest) []string {
	suggestions := []string{
		fmt.Sprintf("Explore %s city center", destination),
		fmt.Sprintf("Visit local markets in %s", destination),
		"Try traditional cuisine",
		"Take a city tour",
	}

	for _, interest := range interests {
		suggestions = append(suggestions, interestAttractions[interest]...)
	}

	suggestions = dedupe(suggestions)
	if len(suggestions) > maxAttractions {
		suggestions = suggestions[:maxAttractions]
	}
	return suggestions
}

// PackingList builds the fixed category lists, with a special category only
// when beach or hiking interests are present.
func PackingList(interests []Interest) map[string][]string {
	packing := map[string][]string{
		"essentials":  {"Passport/ID", "Wallet", "Phone + Charger", "Travel documents"},
		"clothing":    {"T-shirts", "Pants", "Underwear", "Socks", "Jacket", "Comfortable shoes"},
		"toiletries":  {"Toothbrush", "Shampoo", "Soap", "Deodorant", "Sunscreen"},
		"electronics": {"Phone charger", "Power bank", "Headphones"},
	}

	var special []string
	if hasInterest(interests, InterestBeach) {
		special = append(special, "Swimsuit", "Sunglasses", "Beach towel")
	}
	if hasInterest(interests, InterestHiking) {
		special = append(special, "Hiking boots", "Backpack", "Water bottle")
	}
	if len(special) > 0 {
		packing["special"] = special
	}

	return packing
}
