package planner

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"wayfarer/services"
)

const maxForecastDays = 5

// BuildWeatherSummary buckets the hourly forecast into daily summaries and
// derives the trip-level overview and packing recommendation. Unusable input
// (missing hourly arrays, or no departure date at all) degrades to a fixed
// fallback summary tagged as sample data.
func BuildWeatherSummary(payload *services.ForecastPayload, city, startDate, endDate string) WeatherSummary {
	if startDate == "" || payload == nil ||
		len(payload.Hourly.Time) == 0 || len(payload.Hourly.Temperature2M) == 0 {
		return fallbackWeatherSummary(city, startDate)
	}

	// The two arrays are paired index-for-index; tolerate mismatched lengths.
	n := len(payload.Hourly.Time)
	if len(payload.Hourly.Temperature2M) < n {
		n = len(payload.Hourly.Temperature2M)
	}

	buckets := make(map[string][]float64)
	for i := 0; i < n; i++ {
		ts := payload.Hourly.Time[i]
		if len(ts) < 10 {
			continue
		}
		date := ts[:10]
		buckets[date] = append(buckets[date], payload.Hourly.Temperature2M[i])
	}
	if len(buckets) == 0 {
		return fallbackWeatherSummary(city, startDate)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > maxForecastDays {
		dates = dates[:maxForecastDays]
	}

	days := make([]DailyForecast, 0, len(dates))
	for _, date := range dates {
		temps := buckets[date]
		mean, minT, maxT := dayStats(temps)
		condition := classifyCondition(mean)
		days = append(days, DailyForecast{
			Date:        date,
			DateDisplay: displayDate(date),
			AvgTemp:     mean,
			MinTemp:     minT,
			MaxTemp:     maxT,
			Condition:   condition,
			Icon:        condition.Icon(),
		})
	}

	// Overall mean is the mean of per-day means, so a sparsely sampled day
	// carries the same weight as a fully sampled one.
	var sum, rangeMin, rangeMax float64
	rangeMin = math.Inf(1)
	rangeMax = math.Inf(-1)
	for _, day := range days {
		sum += day.AvgTemp
		rangeMin = math.Min(rangeMin, day.MinTemp)
		rangeMax = math.Max(rangeMax, day.MaxTemp)
	}
	overallMean := round1(sum / float64(len(days)))

	items, recommendation := packingForRange(rangeMin, rangeMax, anyRainy(days))

	if endDate == "" {
		endDate = days[len(days)-1].Date
	}

	return WeatherSummary{
		IsSample:       payload.IsSample,
		City:           city,
		Temperature:    fmt.Sprintf("%.1f°C", overallMean),
		Conditions:     dominantCondition(days),
		Recommendation: recommendation,
		DateRange:      startDate + " to " + endDate,
		Days:           days,
		PackingItems:   items,
		Unit:           "°C",
	}
}

func dayStats(temps []float64) (mean, minT, maxT float64) {
	minT = math.Inf(1)
	maxT = math.Inf(-1)
	var sum float64
	for _, t := range temps {
		sum += t
		minT = math.Min(minT, t)
		maxT = math.Max(maxT, t)
	}
	return round1(sum / float64(len(temps))), round1(minT), round1(maxT)
}

// classifyCondition maps a mean temperature to its condition band.
func classifyCondition(mean float64) Condition {
	switch {
	case mean > 25:
		return ConditionHot
	case mean > 15:
		return ConditionWarm
	case mean > 5:
		return ConditionMild
	case mean > 0:
		return ConditionChilly
	case mean > -5:
		return ConditionCold
	default:
		return ConditionFreezing
	}
}

// dominantCondition picks the most frequent per-day condition; ties go to the
// condition seen first in chronological order.
func dominantCondition(days []DailyForecast) Condition {
	counts := make(map[Condition]int)
	firstSeen := make(map[Condition]int)
	for i, day := range days {
		counts[day.Condition]++
		if _, seen := firstSeen[day.Condition]; !seen {
			firstSeen[day.Condition] = i
		}
	}

	best := days[0].Condition
	for _, day := range days[1:] {
		c := day.Condition
		if counts[c] > counts[best] ||
			(counts[c] == counts[best] && firstSeen[c] < firstSeen[best]) {
			best = c
		}
	}
	return best
}

// packingForRange applies the tiered packing rules: the max-based tiers are
// mutually exclusive, the sub-zero addition is evaluated independently, and
// rain gear stacks on top of whichever tier matched.
func packingForRange(minT, maxT float64, rainy bool) ([]string, string) {
	var items []string
	var recommendation string

	switch {
	case maxT > 25:
		items = append(items, "Light clothing", "Sunscreen", "Sun hat", "Sunglasses")
		recommendation = "Hot weather expected — pack light, breathable clothing and sun protection."
	case maxT > 15:
		items = append(items, "Light layers", "Light jacket", "Comfortable walking shoes")
		recommendation = "Mild to warm weather — light layers will cover most days."
	case maxT > 5:
		items = append(items, "Warm jacket", "Sweaters", "Long pants")
		recommendation = "Cool weather — bring a warm jacket and layers."
	default:
		items = append(items, "Winter coat", "Warm layers")
		recommendation = "Cold conditions throughout — pack for winter."
	}

	if minT < 0 {
		items = append(items, "Gloves", "Scarf", "Thermal underwear", "Winter hat")
		recommendation += " Sub-zero temperatures expected — add cold-weather gear."
	}

	if rainy {
		items = append(items, "Umbrella", "Raincoat")
		recommendation += " Rain is likely — pack waterproofs."
	}

	return dedupe(items), recommendation
}

func anyRainy(days []DailyForecast) bool {
	for _, day := range days {
		if strings.Contains(strings.ToLower(string(day.Condition)), "rain") {
			return true
		}
	}
	return false
}

// fallbackWeatherSummary is the canned three-day summary used when no usable
// forecast exists.
func fallbackWeatherSummary(city, startDate string) WeatherSummary {
	base, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		base = time.Now().UTC()
	}

	means := []float64{21.0, 23.5, 20.0}
	days := make([]DailyForecast, 0, len(means))
	for i, mean := range means {
		date := base.AddDate(0, 0, i).Format("2006-01-02")
		condition := classifyCondition(mean)
		days = append(days, DailyForecast{
			Date:        date,
			DateDisplay: displayDate(date),
			AvgTemp:     mean,
			MinTemp:     round1(mean - 4),
			MaxTemp:     round1(mean + 4),
			Condition:   condition,
			Icon:        condition.Icon(),
		})
	}

	return WeatherSummary{
		IsSample:       true,
		City:           city,
		Temperature:    "21.5°C",
		Conditions:     ConditionWarm,
		Recommendation: "Forecast unavailable — pack layered clothing to be safe.",
		DateRange:      days[0].Date + " to " + days[len(days)-1].Date,
		Days:           days,
		PackingItems:   []string{"Light layers", "Light jacket", "Umbrella"},
		Unit:           "°C",
	}
}

func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 02")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
