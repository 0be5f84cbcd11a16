package services

import (
	"strings"
)

// cityAirports maps lowercase city names to IATA airport codes. Order matters:
// the resolver tests entries in slice order and the first match wins, so the
// lookup stays deterministic for ambiguous inputs.
var cityAirports = []struct {
	city string
	code string
}{
	{"berlin", "BER"},
	{"athens", "ATH"},
	{"athen", "ATH"},
	{"paris", "CDG"},
	{"london", "LHR"},
	{"rome", "FCO"},
	{"new york", "JFK"},
	{"los angeles", "LAX"},
	{"chicago", "ORD"},
	{"tokyo", "HND"},
	{"dubai", "DXB"},
	{"singapore", "SIN"},
	{"sydney", "SYD"},
	{"madrid", "MAD"},
	{"frankfurt", "FRA"},
	{"amsterdam", "AMS"},
	{"barcelona", "BCN"},
	{"milan", "MXP"},
	{"munich", "MUC"},
	{"vienna", "VIE"},
	{"zurich", "ZRH"},
	{"brussels", "BRU"},
	{"copenhagen", "CPH"},
	{"stockholm", "ARN"},
	{"oslo", "OSL"},
	{"helsinki", "HEL"},
	{"dublin", "DUB"},
	{"manchester", "MAN"},
	{"edinburgh", "EDI"},
	{"lisbon", "LIS"},
	{"istanbul", "IST"},
	{"moscow", "SVO"},
	{"beijing", "PEK"},
	{"shanghai", "PVG"},
	{"hong kong", "HKG"},
	{"seoul", "ICN"},
	{"bangkok", "BKK"},
	{"mumbai", "BOM"},
	{"delhi", "DEL"},
	{"doha", "DOH"},
	{"abu dhabi", "AUH"},
	{"riyadh", "RUH"},
	{"cairo", "CAI"},
	{"johannesburg", "JNB"},
	{"nairobi", "NBO"},
	{"mexico city", "MEX"},
	{"sao paulo", "GRU"},
	{"buenos aires", "EZE"},
	{"santiago", "SCL"},
	{"lima", "LIM"},
	{"bogota", "BOG"},
}

// cityCoordinates maps lowercase city names to latitude/longitude. Independent
// of cityAirports: exact lookup only, and the city sets are not required to
// match.
var cityCoordinates = map[string][2]float64{
	"berlin":       {52.5200, 13.4050},
	"athens":       {37.9838, 23.7275},
	"paris":        {48.8566, 2.3522},
	"london":       {51.5074, -0.1278},
	"rome":         {41.9028, 12.4964},
	"new york":     {40.7128, -74.0060},
	"los angeles":  {34.0522, -118.2437},
	"tokyo":        {35.6762, 139.6503},
	"dubai":        {25.2048, 55.2708},
	"singapore":    {1.3521, 103.8198},
	"sydney":       {-33.8688, 151.2093},
	"madrid":       {40.4168, -3.7038},
	"frankfurt":    {50.1109, 8.6821},
	"amsterdam":    {52.3676, 4.9041},
	"barcelona":    {41.3874, 2.1686},
	"vienna":       {48.2082, 16.3738},
	"lisbon":       {38.7223, -9.1393},
	"istanbul":     {41.0082, 28.9784},
	"bangkok":      {13.7563, 100.5018},
	"cairo":        {30.0444, 31.2357},
	"mexico city":  {19.4326, -99.1332},
	"buenos aires": {-34.6037, -58.3816},
}

// defaultCoordinates is used when a destination is not in the table (London).
var defaultCoordinates = [2]float64{51.5074, -0.1278}

// ResolveAirportCode converts a free-text place name to a 3-letter IATA code.
// Inputs that already look like a code pass through; otherwise the city table
// is scanned with exact, input-contains-city and city-contains-input matching.
// Unknown inputs degrade to their first three letters, uppercased and padded
// with 'X' so the result is always exactly 3 characters.
func ResolveAirportCode(location string) string {
	if len(location) == 3 && location == strings.ToUpper(location) && isAlpha(location) {
		return location
	}

	lower := strings.ToLower(strings.TrimSpace(location))
	for _, entry := range cityAirports {
		if lower == entry.city ||
			(lower != "" && strings.Contains(entry.city, lower)) ||
			strings.Contains(lower, entry.city) {
			return entry.code
		}
	}

	code := strings.ToUpper(lower)
	if len(code) > 3 {
		code = code[:3]
	}
	for len(code) < 3 {
		code += "X"
	}
	return code
}

// ResolveCoordinates returns latitude/longitude for a place name, falling back
// to the default location's coordinates on any miss.
func ResolveCoordinates(location string) (lat, lon float64) {
	if coords, ok := cityCoordinates[strings.ToLower(strings.TrimSpace(location))]; ok {
		return coords[0], coords[1]
	}
	return defaultCoordinates[0], defaultCoordinates[1]
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
