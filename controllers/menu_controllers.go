package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/models"
	"github.com/rakhadenta/restaurant-booking/utils"
)

type MenuController struct {
	Rest *booking.Restaurant
}

func NewMenuController(rest *booking.Restaurant) *MenuController {
	return &MenuController{Rest: rest}
}

// GetAllMenuItems -> the whole catalogue
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menu items", mc.Rest.Menu())
}

// CreateMenuItem -> append to the catalogue (append-only, no updates)
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	mc.Rest.AddMenuItem(item)

	utils.InfoLogger.Printf("Menu item added: %s (%.2f)", item.Name, item.Price)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}
