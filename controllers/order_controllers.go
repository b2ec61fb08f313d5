package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/events"
	"github.com/rakhadenta/restaurant-booking/utils"
)

type OrderController struct {
	Rest *booking.Restaurant
}

func NewOrderController(rest *booking.Restaurant) *OrderController {
	return &OrderController{Rest: rest}
}

// GetAllOrders -> list orders with items and derived totals
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Rest.Orders())
}

// CreateOrder -> open an order for a table. The one-open-order-per-table
// rule lives with the caller, so this handler checks before creating.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableID int `json:"table_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, ok := oc.Rest.Table(req.TableID); !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("table %d not found", req.TableID))
		return
	}

	if open, ok := oc.Rest.FindOpenOrderByTable(req.TableID); ok {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("table %d already has open order %d", req.TableID, open.ID))
		return
	}

	created := oc.Rest.CreateOrder(req.TableID)
	order, _ := oc.Rest.Order(created.ID)

	events.Broadcast(events.Message{
		Event: events.EventOrderUpdate,
		Data:  order,
	})

	utils.InfoLogger.Printf("Order %d opened for table %d", order.ID, order.TableID)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOpenOrderByTable -> the open order for ?table_id=, if any
func (oc *OrderController) GetOpenOrderByTable(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Query("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table_id"))
		return
	}
	order, ok := oc.Rest.FindOpenOrderByTable(tableID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("no open order for table %d", tableID))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Open order", order)
}

// AddOrderItem -> append a menu item snapshot to an open order
func (oc *OrderController) AddOrderItem(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Item     string `json:"item" binding:"required"`
		Quantity int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ok, reason := oc.Rest.AddOrderItem(orderID, req.Item, req.Quantity)
	if !ok {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New(reason))
		return
	}

	order, _ := oc.Rest.Order(orderID)
	events.Broadcast(events.Message{
		Event: events.EventOrderUpdate,
		Data:  order,
	})

	utils.RespondJSON(c, http.StatusOK, "Item added to order", order)
}

// CloseOrder -> mark the order served and paid for reporting purposes
func (oc *OrderController) CloseOrder(c *gin.Context) {
	oc.setStatus(c, "Order closed", oc.Rest.CloseOrder)
}

// CancelOrder -> void the order; it no longer counts towards revenue
func (oc *OrderController) CancelOrder(c *gin.Context) {
	oc.setStatus(c, "Order cancelled", oc.Rest.CancelOrder)
}

func (oc *OrderController) setStatus(c *gin.Context, message string, apply func(int) bool) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	if !apply(orderID) {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("order %d not found", orderID))
		return
	}

	order, _ := oc.Rest.Order(orderID)
	events.Broadcast(events.Message{
		Event: events.EventOrderUpdate,
		Data:  order,
	})

	utils.InfoLogger.Printf("Order %d is now %s", orderID, order.Status)
	utils.RespondJSON(c, http.StatusOK, message, order)
}
