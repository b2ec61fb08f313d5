package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/models"
	"github.com/rakhadenta/restaurant-booking/utils"
)

// StaffHeader identifies the acting staff member. There is no
// authentication behind it; the check is advisory by design.
const StaffHeader = "X-Staff"

// RequirePermission gates a route group on the staff roster's capability
// set. Requests without the header pass through untouched: the permission
// check only reports, it does not own the operation.
func RequirePermission(restaurant *booking.Restaurant, permission models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffName := c.GetHeader(StaffHeader)
		if staffName == "" {
			c.Next()
			return
		}
		ok, reason := restaurant.Authorize(staffName, permission)
		if !ok {
			utils.RespondError(c, http.StatusForbidden, errors.New(reason))
			c.Abort()
			return
		}
		c.Next()
	}
}
