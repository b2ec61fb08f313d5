package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/events"
	"github.com/rakhadenta/restaurant-booking/utils"
)

type ReportController struct {
	Rest *booking.Restaurant
}

func NewReportController(rest *booking.Restaurant) *ReportController {
	return &ReportController{Rest: rest}
}

// GetDailyReport -> booking sheet summary plus revenue over non-cancelled
// orders; ?title= overrides the default
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	title := c.DefaultQuery("title", "Daily Report")
	report := rc.Rest.GenerateDailyReport(title)

	events.Broadcast(events.Message{
		Event: events.EventReportGenerated,
		Data:  report,
	})

	utils.RespondJSON(c, http.StatusOK, "Daily report", report)
}
