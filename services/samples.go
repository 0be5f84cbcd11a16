package services

import (
	"fmt"
	"time"
)

// Sample payload generators. These are structurally identical to the real
// provider responses so the normalizers process them through the exact same
// path; the only difference is the provenance flag.

var sampleAirlines = []struct {
	name string
	code string
}{
	{"American Airlines", "AA"},
	{"Delta Airlines", "DL"},
	{"United Airlines", "UA"},
}

// SampleFlights generates a realistic flight-offers payload for the route.
func SampleFlights(originCode, destinationCode, departureDate string) *FlightOffersPayload {
	prices := []string{"299.99", "349.99", "399.99"}

	offers := make([]FlightOffer, 0, len(sampleAirlines))
	for i, airline := range sampleAirlines {
		offers = append(offers, FlightOffer{
			ID: fmt.Sprintf("sample_%d", i),
			Price: OfferPrice{
				Total:    prices[i],
				Currency: "USD",
			},
			Itineraries: []Itinerary{{
				Duration: fmt.Sprintf("PT%dH%dM", i+4, i*10),
				Segments: []Segment{{
					Departure: FlightEndpoint{
						IataCode: originCode,
						At:       fmt.Sprintf("%sT%02d:00:00", departureDate, 8+i),
					},
					Arrival: FlightEndpoint{
						IataCode: destinationCode,
						At:       fmt.Sprintf("%sT%02d:00:00", departureDate, 12+i),
					},
					CarrierCode: airline.code,
					Number:      fmt.Sprintf("%d", 100+i),
					Duration:    fmt.Sprintf("PT%dH", i+4),
				}},
			}},
		})
	}

	return &FlightOffersPayload{
		Data: offers,
		Dictionaries: Dictionaries{
			Carriers: map[string]string{
				"AA": "American Airlines",
				"DL": "Delta Airlines",
				"UA": "United Airlines",
			},
		},
		IsSample: true,
	}
}

// SampleHotels generates a hotel-list payload for the city.
func SampleHotels(cityCode string) *HotelListPayload {
	hotels := []struct {
		name  string
		chain string
		line  string
		dist  float64
	}{
		{"Grand City Hotel", "GC", "1 Central Plaza", 0.4},
		{"Boutique Residence", "BR", "12 Arts District", 1.2},
		{"Business Inn", "BI", "45 Commerce Street", 2.1},
		{"Harbour View Suites", "HV", "8 Waterfront Walk", 2.8},
		{"Economy Stay", "ES", "102 Airport Road", 7.5},
	}

	records := make([]HotelRecord, 0, len(hotels))
	for i, h := range hotels {
		records = append(records, HotelRecord{
			Name:      h.name,
			HotelID:   fmt.Sprintf("SAMPLE%s%03d", cityCode, i+1),
			ChainCode: h.chain,
			IataCode:  cityCode,
			GeoCode: GeoCode{
				Latitude:  48.85 + float64(i)*0.01,
				Longitude: 2.35 + float64(i)*0.01,
			},
			Address: HotelAddress{
				Lines:       []string{h.line},
				CityName:    cityCode,
				CountryCode: "XX",
			},
			Distance: HotelDistance{Value: h.dist, Unit: "KM"},
		})
	}

	return &HotelListPayload{Data: records, IsSample: true}
}

// SampleActivities generates an activities payload. Descriptions deliberately
// include the markup the live API returns, so sample data exercises the same
// cleanup path.
func SampleActivities() *ActivitiesPayload {
	return &ActivitiesPayload{
		Data: []ActivityRecord{
			{
				Name:             "Old Town Walking Tour",
				ShortDescription: "Discover the historic heart of the city with a <b>local guide</b>, including hidden courtyards and landmark squares.",
				Price:            ActivityPrice{Amount: "25.00", CurrencyCode: "EUR"},
				MinimumDuration:  "2 hours",
				BookingLink:      "https://example.com/activities/old-town-tour",
			},
			{
				Name:             "Food Market Tasting",
				ShortDescription: "Sample regional specialities across the central market halls.",
				Price:            ActivityPrice{Amount: "40.00", CurrencyCode: "EUR"},
				MinimumDuration:  "3 hours",
				BookingLink:      "https://example.com/activities/food-market",
			},
			{
				Name:             "River Sunset Cruise",
				ShortDescription: "<p>An evening cruise with panoramic views of the skyline.</p>",
				Price:            ActivityPrice{Amount: "32.50", CurrencyCode: "EUR"},
				MinimumDuration:  "90 minutes",
				BookingLink:      "https://example.com/activities/sunset-cruise",
			},
		},
		IsSample: true,
	}
}

// SampleForecast generates a synthetic hourly temperature series covering the
// requested date range (capped at 7 days, 3 days when the range is unusable).
// The series is deterministic so repeated calls yield identical payloads.
func SampleForecast(lat, lon float64, startDate, endDate string) *ForecastPayload {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		start = time.Now().UTC().Truncate(24 * time.Hour)
	}

	days := 3
	if end, err := time.Parse("2006-01-02", endDate); err == nil && end.After(start) {
		days = int(end.Sub(start).Hours()/24) + 1
		if days > 7 {
			days = 7
		}
	}

	series := HourlySeries{}
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		base := 16.0 + float64(d%4)*2.5
		for h := 0; h < 24; h++ {
			// Coolest around 04:00, warmest around 14:00.
			diurnal := -5.0
			if h >= 4 && h <= 14 {
				diurnal = -5.0 + float64(h-4)
			} else if h > 14 {
				diurnal = 5.0 - float64(h-14)*0.8
			}
			series.Time = append(series.Time, fmt.Sprintf("%sT%02d:00", day.Format("2006-01-02"), h))
			series.Temperature2M = append(series.Temperature2M, base+diurnal)
		}
	}

	return &ForecastPayload{
		Latitude:  lat,
		Longitude: lon,
		Hourly:    series,
		IsSample:  true,
	}
}
