package planner

import (
	"strings"
	"time"

	"wayfarer/services"
)

const maxFlights = 20

// NormalizeFlights converts a raw flight-offers payload into canonical flight
// entries. At most 20 offers are kept and a malformed offer is skipped without
// aborting its siblings.
func NormalizeFlights(payload *services.FlightOffersPayload) []FlightOption {
	flights := []FlightOption{}
	if payload == nil {
		return flights
	}

	for i, offer := range payload.Data {
		if i >= maxFlights {
			break
		}
		if f, ok := normalizeOffer(offer, payload.Dictionaries, payload.IsSample); ok {
			flights = append(flights, f)
		}
	}
	return flights
}

func normalizeOffer(offer services.FlightOffer, dicts services.Dictionaries, isSample bool) (f FlightOption, ok bool) {
	// One bad offer must not take down the rest of the list.
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	f = FlightOption{
		Airline:          "Unknown",
		Price:            "N/A",
		Currency:         "USD",
		DepartureTime:    "N/A",
		ArrivalTime:      "N/A",
		DepartureAirport: "N/A",
		ArrivalAirport:   "N/A",
		Duration:         "N/A",
		IsSample:         isSample,
	}

	if offer.Price.Total != "" {
		f.Price = offer.Price.Total
	}
	if offer.Price.Currency != "" {
		f.Currency = offer.Price.Currency
	}

	if len(offer.Itineraries) > 0 {
		itinerary := offer.Itineraries[0]
		f.Duration = formatISODuration(itinerary.Duration)

		if len(itinerary.Segments) > 0 {
			segment := itinerary.Segments[0]

			airline := segment.CarrierCode
			if name, found := dicts.Carriers[segment.CarrierCode]; found {
				airline = name
			}

			f.Airline = airline
			f.FlightNumber = segment.CarrierCode + segment.Number
			f.DepartureTime = orNA(segment.Departure.At)
			f.ArrivalTime = orNA(segment.Arrival.At)
			f.DepartureAirport = orNA(segment.Departure.IataCode)
			f.ArrivalAirport = orNA(segment.Arrival.IataCode)
			f.Stops = len(itinerary.Segments) - 1
		}
	}

	if f.DepartureTime != "N/A" {
		f.DepartureDisplay = displayTime(f.DepartureTime)
	}
	if f.ArrivalTime != "N/A" {
		f.ArrivalDisplay = displayTime(f.ArrivalTime)
	}

	return f, true
}

// formatISODuration turns an ISO-8601 duration like "PT4H10M" into "4h 10m".
func formatISODuration(iso string) string {
	if iso == "" {
		iso = "PT0H"
	}
	s := strings.TrimPrefix(iso, "PT")
	s = strings.ReplaceAll(s, "H", "h ")
	s = strings.ReplaceAll(s, "M", "m")
	return strings.TrimSpace(s)
}

// displayTime renders a provider timestamp as "Jan 02, 03:04 PM". Timestamps
// that fail to parse come back unchanged.
func displayTime(ts string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("Jan 02, 03:04 PM")
		}
	}
	return ts
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
