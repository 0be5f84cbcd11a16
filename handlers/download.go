package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/database"
)

// DownloadHandler serves the PDF for a stored plan.
func (h *Handler) DownloadHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing plan ID"})
		return
	}

	plan, err := database.GetPlan(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if len(plan.PDFData) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "PDF has not been generated for this plan"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=trip-plan-"+plan.Destination+".pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", plan.PDFData)
}

// HealthHandler reports process health and provider mode.
func (h *Handler) HealthHandler(c *gin.Context) {
	dbStatus := "not configured"
	if database.DB != nil {
		dbStatus = "ok"
		if err := database.DB.Ping(); err != nil {
			dbStatus = "error: " + err.Error()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"service":            "Wayfarer API",
		"amadeus_configured": h.Authenticated,
		"database":           dbStatus,
	})
}
