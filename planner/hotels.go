package planner

import (
	"fmt"
	"strings"

	"wayfarer/services"
)

const maxHotels = 10

// NormalizeHotels converts a raw hotel-list payload into canonical hotel
// entries, at most 10.
func NormalizeHotels(payload *services.HotelListPayload) []HotelOption {
	hotels := []HotelOption{}
	if payload == nil {
		return hotels
	}

	for i, record := range payload.Data {
		if i >= maxHotels {
			break
		}
		hotels = append(hotels, HotelOption{
			Name:      record.Name,
			HotelID:   record.HotelID,
			ChainCode: record.ChainCode,
			Address:   formatAddress(record.Address),
			Latitude:  record.GeoCode.Latitude,
			Longitude: record.GeoCode.Longitude,
			Distance:  formatDistance(record.Distance),
			IsSample:  payload.IsSample,
		})
	}
	return hotels
}

// formatAddress builds a multi-line address from up to two raw address lines
// plus a city/state/country summary line. Absent parts are left out.
func formatAddress(addr services.HotelAddress) string {
	var lines []string
	for i, line := range addr.Lines {
		if i >= 2 {
			break
		}
		if line != "" {
			lines = append(lines, line)
		}
	}

	var summary []string
	for _, part := range []string{addr.CityName, addr.StateCode, addr.CountryCode} {
		if part != "" {
			summary = append(summary, part)
		}
	}
	if len(summary) > 0 {
		lines = append(lines, strings.Join(summary, ", "))
	}

	return strings.Join(lines, "\n")
}

// formatDistance renders "<value> <unit> from center", or "" when either part
// is missing.
func formatDistance(d services.HotelDistance) string {
	if d.Value <= 0 || d.Unit == "" {
		return ""
	}
	return fmt.Sprintf("%g %s from center", d.Value, d.Unit)
}
