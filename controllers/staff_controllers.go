package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/models"
	"github.com/rakhadenta/restaurant-booking/utils"
)

type StaffController struct {
	Rest *booking.Restaurant
}

func NewStaffController(rest *booking.Restaurant) *StaffController {
	return &StaffController{Rest: rest}
}

type staffView struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// GetAllStaff -> the roster (names and role names only)
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	staff := sc.Rest.Staff()
	views := make([]staffView, 0, len(staff))
	for _, member := range staff {
		views = append(views, staffView{Name: member.Name, Role: member.Role.Name})
	}
	utils.RespondJSON(c, http.StatusOK, "List of staff", views)
}

// CreateStaff -> add a staff member with a named role and capability set
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Role        string   `json:"role" binding:"required"`
		Permissions []string `json:"permissions"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role := models.NewRole(req.Role)
	for _, perm := range req.Permissions {
		role.AddPermission(models.Permission(perm))
	}
	sc.Rest.AddStaff(models.Staff{Name: req.Name, Role: role})

	utils.InfoLogger.Printf("Staff added: %s (%s)", req.Name, req.Role)
	utils.RespondJSON(c, http.StatusCreated, "Staff created", staffView{Name: req.Name, Role: req.Role})
}
