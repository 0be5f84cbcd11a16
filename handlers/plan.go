package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfarer/database"
	"wayfarer/pdf"
	"wayfarer/planner"
)

// Handler carries the dependencies shared by all routes.
type Handler struct {
	Planner       *planner.Planner
	Authenticated bool
}

func New(p *planner.Planner, authenticated bool) *Handler {
	return &Handler{Planner: p, Authenticated: authenticated}
}

type PlanRequest struct {
	Origin        string   `json:"origin" binding:"required"`
	Destination   string   `json:"destination" binding:"required"`
	DepartureDate string   `json:"departure_date" binding:"required"`
	ReturnDate    string   `json:"return_date"`
	Travelers     int      `json:"travelers"`
	Budget        string   `json:"budget"`
	Interests     []string `json:"interests"`
}

type PlanResponse struct {
	Success     bool             `json:"success"`
	Plan        planner.TripPlan `json:"plan"`
	PDFURL      string           `json:"pdf_url,omitempty"`
	UsingSample bool             `json:"using_sample"`
}

// PlanHandler creates a trip plan, renders the PDF and persists both.
func (h *Handler) PlanHandler(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := time.Parse("2006-01-02", req.DepartureDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid departure date format. Use YYYY-MM-DD"})
		return
	}
	if req.ReturnDate != "" {
		ret, err := time.Parse("2006-01-02", req.ReturnDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid return date format. Use YYYY-MM-DD"})
			return
		}
		dep, _ := time.Parse("2006-01-02", req.DepartureDate)
		if !ret.After(dep) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Return date must be after departure date"})
			return
		}
	}

	plan := h.Planner.CreateTripPlan(planner.TripRequest{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Travelers:     req.Travelers,
		Budget:        planner.ParseBudgetTier(req.Budget),
		Interests:     planner.ParseInterests(req.Interests),
	})

	usingSample := plan.Weather.IsSample
	if len(plan.Flights) > 0 {
		usingSample = usingSample || plan.Flights[0].IsSample
	}

	resp := PlanResponse{Success: true, Plan: plan, UsingSample: usingSample}

	pdfBytes, err := pdf.Generate(plan)
	if err != nil {
		log.Printf("❌ PDF generation failed: %v", err)
		c.JSON(http.StatusOK, resp)
		return
	}

	planJSON, _ := json.Marshal(plan)
	planID := uuid.New().String()
	if err := database.SavePlan(&database.Plan{
		ID:            planID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Travelers:     plan.TripInfo.Travelers,
		PlanJSON:      string(planJSON),
		PDFData:       pdfBytes,
	}); err != nil {
		log.Printf("❌ Failed to save plan: %v", err)
	} else if database.DB != nil {
		resp.PDFURL = "/api/download/" + planID
	}

	c.JSON(http.StatusOK, resp)
}
