package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/events"
	"github.com/rakhadenta/restaurant-booking/models"
	"github.com/rakhadenta/restaurant-booking/utils"
)

type TableController struct {
	Rest *booking.Restaurant
}

func NewTableController(rest *booking.Restaurant) *TableController {
	return &TableController{Rest: rest}
}

// CreateTable -> register a new table on the booking sheet
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		ID    int    `json:"id" binding:"required"`
		Seats int    `json:"seats" binding:"required"`
		Label string `json:"label"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, ok := tc.Rest.CreateTable(req.ID, req.Seats, req.Label)
	if !ok {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("table %d already exists", req.ID))
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventTableCreate,
		Data:  table,
	})

	utils.InfoLogger.Printf("New table created: %d (seats=%d)", table.ID, table.Seats)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> list every table
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Rest.Tables())
}

// GetAvailableTables -> free tables fitting ?party_size=, smallest first
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	partySize, err := strconv.Atoi(c.DefaultQuery("party_size", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid party_size"))
		return
	}
	tables := tc.Rest.AvailableTables(partySize)
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// GetTableByID -> detail of one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table id"))
		return
	}
	table, ok := tc.Rest.Table(tableID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("table %d not found", tableID))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTableStatus -> manual status path (out_of_service and back)
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table id"))
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := models.TableStatus(body.Status)
	switch status {
	case models.TableFree, models.TableReserved, models.TableOccupied, models.TableOutOfService:
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown table status %q", body.Status))
		return
	}

	if _, ok := tc.Rest.Table(tableID); !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("table %d not found", tableID))
		return
	}

	if ok, reason := tc.Rest.SetTableStatus(tableID, status); !ok {
		utils.RespondError(c, http.StatusConflict, errors.New(reason))
		return
	}
	table, _ := tc.Rest.Table(tableID)
	events.Broadcast(events.Message{
		Event: events.EventTableUpdate,
		Data:  table,
	})

	utils.InfoLogger.Printf("Table %d status changed to %s", tableID, status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}
