package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"wayfarer/planner"
)

// Generate renders the trip plan as a paginated PDF report and returns the raw
// bytes.
func Generate(plan planner.TripPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	usingSample := plan.Weather.IsSample ||
		(len(plan.Flights) > 0 && plan.Flights[0].IsSample)

	// ── Watermark ────────────────────────────────────────────
	if usingSample {
		pdf.SetTextColor(230, 230, 230)
		pdf.SetFont("Helvetica", "B", 55)
		pdf.TransformBegin()
		pdf.TransformRotate(42, 60, 200)
		pdf.Text(60, 200, "SAMPLE")
		pdf.TransformEnd()
		pdf.SetTextColor(0, 0, 0)
	}

	// ── Header bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Wayfarer", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Trip Plan: "+plan.TripInfo.Destination, "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	bullet := func(text string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(170, 6, "- "+text, "", 1, "L", false, 0, "")
	}

	// ── Trip information ──────────────────────────────────────
	info := plan.TripInfo
	sectionHeader("Trip Information")
	row("From", fmt.Sprintf("%s (%s)", info.Origin, info.OriginCode))
	row("To", fmt.Sprintf("%s (%s)", info.Destination, info.DestinationCode))
	row("Departure", info.DepartureDate)
	returnDate := info.ReturnDate
	if returnDate == "" {
		returnDate = "One-way"
	}
	row("Return", returnDate)
	row("Travelers", fmt.Sprintf("%d", info.Travelers))
	row("Budget", title(string(info.Budget)))
	pdf.Ln(4)

	// ── Flights ───────────────────────────────────────────────
	if len(plan.Flights) > 0 {
		sectionHeader("Flight Options")
		if plan.Flights[0].IsSample {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(130, 90, 20)
			pdf.CellFormat(170, 5, "Sample flight data shown", "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		for i, flight := range plan.Flights {
			if i >= 3 {
				break
			}
			departure := flight.DepartureDisplay
			if departure == "" {
				departure = flight.DepartureTime
			}
			arrival := flight.ArrivalDisplay
			if arrival == "" {
				arrival = flight.ArrivalTime
			}
			row(fmt.Sprintf("%s %s", flight.Airline, flight.FlightNumber),
				fmt.Sprintf("%s -> %s (%s, %d stops)  %s %s",
					departure, arrival, flight.Duration, flight.Stops, flight.Price, flight.Currency))
		}
		pdf.Ln(4)
	}

	// ── Hotels ────────────────────────────────────────────────
	if len(plan.Hotels) > 0 {
		sectionHeader("Hotels")
		for i, hotel := range plan.Hotels {
			if i >= 3 {
				break
			}
			detail := strings.ReplaceAll(hotel.Address, "\n", ", ")
			if hotel.Distance != "" {
				detail += " - " + hotel.Distance
			}
			row(hotel.Name, detail)
		}
		pdf.Ln(4)
	}

	// ── Activities ────────────────────────────────────────────
	if len(plan.Activities) > 0 {
		sectionHeader("Activities")
		for i, activity := range plan.Activities {
			if i >= 3 {
				break
			}
			price := activity.Price
			if price != "" {
				price += " " + activity.Currency
			}
			row(activity.Name, price)
		}
		pdf.Ln(4)
	}

	// ── Weather ───────────────────────────────────────────────
	if len(plan.Weather.Days) > 0 {
		sectionHeader("Weather Forecast")
		row("Overview", fmt.Sprintf("%s, %s (%s)",
			plan.Weather.Temperature, plan.Weather.Conditions, plan.Weather.DateRange))
		for _, day := range plan.Weather.Days {
			row(day.DateDisplay, fmt.Sprintf("%s  %.1f / %.1f / %.1f %s",
				day.Condition, day.MinTemp, day.AvgTemp, day.MaxTemp, plan.Weather.Unit))
		}
		if plan.Weather.Recommendation != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(40, 40, 40)
			pdf.MultiCell(170, 5, plan.Weather.Recommendation, "", "L", false)
		}
		pdf.Ln(4)
	}

	// ── Attractions ───────────────────────────────────────────
	if len(plan.Attractions) > 0 {
		sectionHeader("Recommended Attractions")
		for _, attraction := range plan.Attractions {
			bullet(attraction)
		}
		pdf.Ln(4)
	}

	// ── Packing list ──────────────────────────────────────────
	if len(plan.PackingList) > 0 {
		sectionHeader("Packing List")
		for _, category := range []string{"essentials", "clothing", "toiletries", "electronics", "special"} {
			items, ok := plan.PackingList[category]
			if !ok {
				continue
			}
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(170, 6, title(category), "", 1, "L", false, 0, "")
			for _, item := range items {
				bullet(item)
			}
			pdf.Ln(2)
		}
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		fmt.Sprintf("Generated on %s - Wayfarer Trip Planner - Prices subject to change", plan.CreatedAt),
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
