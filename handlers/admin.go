package handlers

import (
	"net/http"

	"scholaris/database/repository"
	"scholaris/models"
	"scholaris/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the read-only booking reporting view.
type AdminHandler struct {
	Bookings repository.BookingRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookings repository.BookingRepository) *AdminHandler {
	return &AdminHandler{Bookings: bookings}
}

// ListBookingsHandler returns booking records joined to their customers,
// optionally filtered by a name/email search term and an exact date.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	records, err := ah.Bookings.List(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if records == nil {
		records = []models.BookingRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// BookingMetricsHandler returns the summary counts shown above the admin table.
func (ah *AdminHandler) BookingMetricsHandler(c *gin.Context) {
	metrics, err := ah.Bookings.Metrics(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch booking metrics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking metrics"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
