package planner

import (
	"regexp"
	"strings"

	"wayfarer/services"
)

const (
	maxActivities         = 10
	maxDescriptionRunes   = 150
	truncatedDescription  = 147
	placeholderActivity   = "Activity"
	placeholderDescriptor = "No description available"
)

var markupTags = regexp.MustCompile(`<[^>]+>`)

// NormalizeActivities converts a raw activities payload into canonical
// entries, at most 10, with markup-free length-bounded descriptions.
func NormalizeActivities(payload *services.ActivitiesPayload) []ActivityOption {
	activities := []ActivityOption{}
	if payload == nil {
		return activities
	}

	for i, record := range payload.Data {
		if i >= maxActivities {
			break
		}

		name := record.Name
		if name == "" {
			name = placeholderActivity
		}

		description := record.ShortDescription
		if description == "" {
			description = record.Description
		}
		if description == "" {
			description = placeholderDescriptor
		}
		description = cleanDescription(description)

		currency := record.Price.CurrencyCode
		if currency == "" {
			currency = "EUR"
		}

		bookingLink := record.BookingLink
		if bookingLink == "" {
			bookingLink = "#"
		}

		activities = append(activities, ActivityOption{
			Name:        name,
			Description: description,
			Price:       record.Price.Amount,
			Currency:    currency,
			Duration:    record.MinimumDuration,
			BookingLink: bookingLink,
			IsSample:    payload.IsSample,
		})
	}
	return activities
}

// cleanDescription strips markup tags and truncates to 147 characters plus an
// ellipsis when the text exceeds 150.
func cleanDescription(s string) string {
	s = strings.TrimSpace(markupTags.ReplaceAllString(s, ""))
	runes := []rune(s)
	if len(runes) > maxDescriptionRunes {
		return string(runes[:truncatedDescription]) + "..."
	}
	return s
}
