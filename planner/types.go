package planner

// Canonical trip-plan entities. Raw provider shapes from the services package
// are converted into these at the normalization boundary and nothing
// downstream sees the loose payloads.

// BudgetTier classifies the traveler's budget.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// ParseBudgetTier maps free text to a tier, defaulting to medium.
func ParseBudgetTier(s string) BudgetTier {
	switch BudgetTier(s) {
	case BudgetLow, BudgetMedium, BudgetHigh:
		return BudgetTier(s)
	default:
		return BudgetMedium
	}
}

// Interest is a recognized traveler interest tag. Unknown tags are dropped at
// parse time.
type Interest string

const (
	InterestBeach    Interest = "beach"
	InterestHiking   Interest = "hiking"
	InterestCulture  Interest = "culture"
	InterestFood     Interest = "food"
	InterestShopping Interest = "shopping"
)

// ParseInterests filters a list of raw tags down to the known set.
func ParseInterests(raw []string) []Interest {
	var interests []Interest
	for _, s := range raw {
		switch Interest(s) {
		case InterestBeach, InterestHiking, InterestCulture, InterestFood, InterestShopping:
			interests = append(interests, Interest(s))
		}
	}
	return interests
}

func hasInterest(interests []Interest, want Interest) bool {
	for _, i := range interests {
		if i == want {
			return true
		}
	}
	return false
}

// Condition is a daily weather condition label derived from mean temperature.
type Condition string

const (
	ConditionHot      Condition = "Hot"
	ConditionWarm     Condition = "Warm"
	ConditionMild     Condition = "Mild"
	ConditionChilly   Condition = "Chilly"
	ConditionCold     Condition = "Cold"
	ConditionFreezing Condition = "Freezing"
)

// Icon returns the display glyph for the condition.
func (c Condition) Icon() string {
	switch c {
	case ConditionHot:
		return "☀️"
	case ConditionWarm:
		return "🌤️"
	case ConditionMild:
		return "⛅"
	case ConditionChilly:
		return "🌥️"
	case ConditionCold:
		return "☁️"
	case ConditionFreezing:
		return "❄️"
	default:
		return "🌡️"
	}
}

// TripRequest is the immutable input to one planning call. Dates are
// YYYY-MM-DD strings; ReturnDate may be empty for one-way trips.
type TripRequest struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Travelers     int
	Budget        BudgetTier
	Interests     []Interest
}

// TripInfo echoes the request plus the resolved location codes.
type TripInfo struct {
	Origin          string     `json:"origin"`
	OriginCode      string     `json:"origin_code"`
	Destination     string     `json:"destination"`
	DestinationCode string     `json:"destination_code"`
	DepartureDate   string     `json:"departure_date"`
	ReturnDate      string     `json:"return_date"`
	Travelers       int        `json:"travelers"`
	Budget          BudgetTier `json:"budget"`
	Interests       []Interest `json:"interests"`
}

// FlightOption is one normalized flight offer. Price stays a decimal string
// because absent prices render as "N/A".
type FlightOption struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flight_number"`
	Price            string `json:"price"`
	Currency         string `json:"currency"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	DepartureDisplay string `json:"departure_time_display,omitempty"`
	ArrivalDisplay   string `json:"arrival_time_display,omitempty"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	Duration         string `json:"duration"`
	Stops            int    `json:"stops"`
	IsSample         bool   `json:"is_sample"`
}

// HotelOption is one normalized hotel record.
type HotelOption struct {
	Name      string  `json:"name"`
	HotelID   string  `json:"hotel_id"`
	ChainCode string  `json:"chain_code"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  string  `json:"distance"`
	IsSample  bool    `json:"is_sample"`
}

// ActivityOption is one normalized activity. Description is markup-free and at
// most 150 characters.
type ActivityOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Duration    string `json:"duration"`
	BookingLink string `json:"booking_link"`
	IsSample    bool   `json:"is_sample"`
}

// DailyForecast summarizes one day's hourly samples.
type DailyForecast struct {
	Date        string    `json:"date"`
	DateDisplay string    `json:"date_display"`
	AvgTemp     float64   `json:"avg_temp"`
	MinTemp     float64   `json:"min_temp"`
	MaxTemp     float64   `json:"max_temp"`
	Condition   Condition `json:"condition"`
	Icon        string    `json:"icon"`
}

// WeatherSummary is the aggregated forecast for the trip window.
type WeatherSummary struct {
	IsSample       bool            `json:"is_sample"`
	City           string          `json:"city"`
	Temperature    string          `json:"temperature"`
	Conditions     Condition       `json:"conditions"`
	Recommendation string          `json:"recommendation"`
	DateRange      string          `json:"date_range"`
	Days           []DailyForecast `json:"days"`
	PackingItems   []string        `json:"packing_items"`
	Unit           string          `json:"unit"`
}

// TripPlan is the canonical output record. Every collection is independently
// empty-safe.
type TripPlan struct {
	TripInfo    TripInfo            `json:"trip_info"`
	Flights     []FlightOption      `json:"flights"`
	Hotels      []HotelOption       `json:"hotels"`
	Activities  []ActivityOption    `json:"activities"`
	Attractions []string            `json:"attractions"`
	PackingList map[string][]string `json:"packing_list"`
	Weather     WeatherSummary      `json:"weather"`
	CreatedAt   string              `json:"created_at"`
}
