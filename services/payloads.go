package services

// Raw provider payloads, decoded at the ingestion boundary. Fields mirror the
// upstream JSON and are all optional; the planner package converts these into
// the canonical trip-plan entities and nothing downstream of it sees these
// shapes. IsSample marks synthetic fallback payloads so normalized entries can
// carry provenance.

// ─── Flights (Amadeus Flight Offers Search) ──────────────────────────────────

type FlightOffersPayload struct {
	Data         []FlightOffer `json:"data"`
	Dictionaries Dictionaries  `json:"dictionaries"`
	IsSample     bool          `json:"_is_sample,omitempty"`
}

type FlightOffer struct {
	ID          string      `json:"id"`
	Price       OfferPrice  `json:"price"`
	Itineraries []Itinerary `json:"itineraries"`
}

type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   FlightEndpoint `json:"departure"`
	Arrival     FlightEndpoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
	Duration    string         `json:"duration"`
}

type FlightEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

// ─── Hotels (Amadeus Hotel List by city) ─────────────────────────────────────

type HotelListPayload struct {
	Data     []HotelRecord `json:"data"`
	IsSample bool          `json:"_is_sample,omitempty"`
}

type HotelRecord struct {
	Name      string        `json:"name"`
	HotelID   string        `json:"hotelId"`
	ChainCode string        `json:"chainCode"`
	IataCode  string        `json:"iataCode"`
	GeoCode   GeoCode       `json:"geoCode"`
	Address   HotelAddress  `json:"address"`
	Distance  HotelDistance `json:"distance"`
}

type GeoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type HotelAddress struct {
	Lines       []string `json:"lines"`
	PostalCode  string   `json:"postalCode"`
	CityName    string   `json:"cityName"`
	StateCode   string   `json:"stateCode"`
	CountryCode string   `json:"countryCode"`
}

type HotelDistance struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ─── Activities (Amadeus Tours and Activities) ───────────────────────────────

type ActivitiesPayload struct {
	Data     []ActivityRecord `json:"data"`
	IsSample bool             `json:"_is_sample,omitempty"`
}

type ActivityRecord struct {
	Name             string        `json:"name"`
	ShortDescription string        `json:"shortDescription"`
	Description      string        `json:"description"`
	Price            ActivityPrice `json:"price"`
	MinimumDuration  string        `json:"minimumDuration"`
	BookingLink      string        `json:"bookingLink"`
}

type ActivityPrice struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// ─── Weather (Open-Meteo hourly forecast) ────────────────────────────────────

type ForecastPayload struct {
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Hourly    HourlySeries `json:"hourly"`
	IsSample  bool         `json:"_is_sample,omitempty"`
}

// HourlySeries pairs timestamps and temperatures index-for-index. The two
// slices may have mismatched lengths; consumers truncate to the shorter.
type HourlySeries struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
}
