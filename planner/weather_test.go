package planner

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/services"
)

// hourlyPayload builds a payload with the given temperatures per date, one
// sample per hour starting at midnight.
func hourlyPayload(daily map[string][]float64) *services.ForecastPayload {
	payload := &services.ForecastPayload{}
	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		for h, temp := range daily[date] {
			payload.Hourly.Time = append(payload.Hourly.Time, fmt.Sprintf("%sT%02d:00", date, h))
			payload.Hourly.Temperature2M = append(payload.Hourly.Temperature2M, temp)
		}
	}
	return payload
}

func TestBuildWeatherSummaryDailyStats(t *testing.T) {
	payload := hourlyPayload(map[string][]float64{
		"2026-09-10": {18.0, 22.0, 26.0},
	})

	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-10")
	require.Len(t, summary.Days, 1)

	day := summary.Days[0]
	assert.Equal(t, "2026-09-10", day.Date)
	assert.Equal(t, 22.0, day.AvgTemp)
	assert.Equal(t, 18.0, day.MinTemp)
	assert.Equal(t, 26.0, day.MaxTemp)
	assert.Equal(t, ConditionWarm, day.Condition)
	assert.Equal(t, "Thu, Sep 10", day.DateDisplay)
	assert.False(t, summary.IsSample)
	assert.Equal(t, "°C", summary.Unit)
}

func TestBuildWeatherSummaryRoundsToOneDecimal(t *testing.T) {
	payload := hourlyPayload(map[string][]float64{
		"2026-09-10": {20.04, 20.06, 20.11},
	})

	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "")
	require.Len(t, summary.Days, 1)
	assert.Equal(t, 20.1, summary.Days[0].AvgTemp)
	assert.Equal(t, 20.0, summary.Days[0].MinTemp)
	assert.Equal(t, 20.1, summary.Days[0].MaxTemp)
}

func TestBuildWeatherSummaryCapsAtFiveChronologicalDays(t *testing.T) {
	daily := make(map[string][]float64)
	for d := 1; d <= 8; d++ {
		daily[fmt.Sprintf("2026-09-%02d", d)] = []float64{20}
	}

	summary := BuildWeatherSummary(hourlyPayload(daily), "Athens", "2026-09-01", "2026-09-08")
	require.Len(t, summary.Days, 5)
	for i, day := range summary.Days {
		assert.Equal(t, fmt.Sprintf("2026-09-%02d", i+1), day.Date)
	}
}

func TestBuildWeatherSummaryOverallMeanIsMeanOfDayMeans(t *testing.T) {
	// Day one has many samples, day two a single one; each day still counts
	// once toward the overall mean.
	dayOne := make([]float64, 23)
	for i := range dayOne {
		dayOne[i] = 20.0
	}
	payload := hourlyPayload(map[string][]float64{
		"2026-09-10": dayOne,
		"2026-09-11": {30.0},
	})

	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-11")
	assert.Equal(t, "25.0°C", summary.Temperature)
}

func TestBuildWeatherSummaryConditionBands(t *testing.T) {
	cases := map[float64]Condition{
		30.0: ConditionHot,
		20.0: ConditionWarm,
		10.0: ConditionMild,
		3.0:  ConditionChilly,
		-2.0: ConditionCold,
		-9.0: ConditionFreezing,
	}
	for mean, want := range cases {
		assert.Equal(t, want, classifyCondition(mean), "mean %.1f", mean)
	}
	// Band edges are exclusive.
	assert.Equal(t, ConditionWarm, classifyCondition(25.0))
	assert.Equal(t, ConditionMild, classifyCondition(15.0))
	assert.Equal(t, ConditionFreezing, classifyCondition(-5.0))
}

func TestBuildWeatherSummaryDominantCondition(t *testing.T) {
	payload := hourlyPayload(map[string][]float64{
		"2026-09-10": {20},
		"2026-09-11": {10},
		"2026-09-12": {20},
	})

	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-12")
	assert.Equal(t, ConditionWarm, summary.Conditions)
}

func TestBuildWeatherSummaryConditionTieBreaksChronologically(t *testing.T) {
	payload := hourlyPayload(map[string][]float64{
		"2026-09-10": {10},
		"2026-09-11": {20},
	})

	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-11")
	assert.Equal(t, ConditionMild, summary.Conditions)
}

func TestBuildWeatherSummaryPackingTiers(t *testing.T) {
	t.Run("hot tier", func(t *testing.T) {
		payload := hourlyPayload(map[string][]float64{"2026-09-10": {24, 28}})
		summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "")
		assert.Contains(t, summary.PackingItems, "Sunscreen")
		assert.NotContains(t, summary.PackingItems, "Gloves")
	})

	t.Run("mild tier", func(t *testing.T) {
		payload := hourlyPayload(map[string][]float64{"2026-09-10": {12, 18}})
		summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "")
		assert.Contains(t, summary.PackingItems, "Light layers")
	})

	t.Run("cool tier", func(t *testing.T) {
		payload := hourlyPayload(map[string][]float64{"2026-09-10": {4, 9}})
		summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "")
		assert.Contains(t, summary.PackingItems, "Warm jacket")
	})

	t.Run("sub-zero addition is independent of the matched tier", func(t *testing.T) {
		// One hot day, one freezing night: sun protection and cold gear both.
		payload := hourlyPayload(map[string][]float64{
			"2026-09-10": {26, 27},
			"2026-09-11": {-6, -5},
			"2026-09-12": {10, 11},
		})
		summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-12")
		assert.Contains(t, summary.PackingItems, "Sunscreen")
		assert.Contains(t, summary.PackingItems, "Gloves")
		assert.Contains(t, summary.Recommendation, "Sub-zero")
	})
}

func TestBuildWeatherSummaryExampleConditions(t *testing.T) {
	payload := hourlyPayload(map[string][]float64{
		"2026-09-10": {26},
		"2026-09-11": {10},
		"2026-09-12": {-6},
	})

	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-12")
	require.Len(t, summary.Days, 3)
	assert.Equal(t, ConditionHot, summary.Days[0].Condition)
	assert.Equal(t, ConditionMild, summary.Days[1].Condition)
	assert.Equal(t, ConditionFreezing, summary.Days[2].Condition)
	// min < 0 packs cold gear despite the hot day.
	assert.Contains(t, summary.PackingItems, "Gloves")
}

func TestBuildWeatherSummaryPackingItemsDeduplicated(t *testing.T) {
	payload := hourlyPayload(map[string][]float64{"2026-09-10": {26, 28}})
	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "")

	seen := map[string]bool{}
	for _, item := range summary.PackingItems {
		assert.False(t, seen[item], "duplicate item %q", item)
		seen[item] = true
	}
}

func TestBuildWeatherSummaryMismatchedArraysTruncated(t *testing.T) {
	payload := &services.ForecastPayload{
		Hourly: services.HourlySeries{
			Time:          []string{"2026-09-10T00:00", "2026-09-10T01:00", "2026-09-11T00:00"},
			Temperature2M: []float64{20, 22},
		},
	}

	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "")
	require.Len(t, summary.Days, 1)
	assert.Equal(t, 21.0, summary.Days[0].AvgTemp)
}

func TestBuildWeatherSummaryFallback(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		summary := BuildWeatherSummary(nil, "Athens", "2026-09-10", "")
		assert.True(t, summary.IsSample)
		assert.Len(t, summary.Days, 3)
		assert.Equal(t, "2026-09-10", summary.Days[0].Date)
	})

	t.Run("missing hourly arrays", func(t *testing.T) {
		summary := BuildWeatherSummary(&services.ForecastPayload{}, "Athens", "2026-09-10", "")
		assert.True(t, summary.IsSample)
		assert.NotEmpty(t, summary.Recommendation)
	})

	t.Run("no departure date", func(t *testing.T) {
		payload := hourlyPayload(map[string][]float64{"2026-09-10": {20}})
		summary := BuildWeatherSummary(payload, "Athens", "", "")
		assert.True(t, summary.IsSample)
		assert.Len(t, summary.Days, 3)
	})
}

func TestBuildWeatherSummaryIdempotent(t *testing.T) {
	payload := hourlyPayload(map[string][]float64{
		"2026-09-10": {18, 24},
		"2026-09-11": {15, 21},
	})

	first := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-11")
	second := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-11")
	assert.Equal(t, first, second)
}

func TestSampleForecastAggregatesCleanly(t *testing.T) {
	payload := services.SampleForecast(37.98, 23.73, "2026-09-10", "2026-09-14")

	summary := BuildWeatherSummary(payload, "Athens", "2026-09-10", "2026-09-14")
	assert.True(t, summary.IsSample)
	assert.Len(t, summary.Days, 5)
	for i := 1; i < len(summary.Days); i++ {
		assert.Less(t, summary.Days[i-1].Date, summary.Days[i].Date)
	}
}
