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

type ReservationController struct {
	Rest *booking.Restaurant
}

func NewReservationController(rest *booking.Restaurant) *ReservationController {
	return &ReservationController{Rest: rest}
}

// reservationView flattens the weak table link into a plain id for JSON.
type reservationView struct {
	ID        int             `json:"id"`
	Customer  models.Customer `json:"customer"`
	DateTime  string          `json:"date_time"`
	PartySize int             `json:"party_size"`
	Status    string          `json:"status"`
	TableID   *int            `json:"table_id,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

func newReservationView(r booking.Reservation) reservationView {
	view := reservationView{
		ID:        r.ID,
		Customer:  r.Customer,
		DateTime:  booking.FormatDateTime(r.DateTime),
		PartySize: r.PartySize,
		Status:    r.Status.String(),
		Notes:     r.Notes,
	}
	if table := r.Table(); table != nil {
		view.TableID = &table.ID
	}
	return view
}

// CreateReservation -> book a reservation; auto-assigns the smallest
// fitting free table when one exists
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		Phone     string `json:"phone"`
		Email     string `json:"email"`
		DateTime  string `json:"date_time" binding:"required"`
		PartySize int    `json:"party_size" binding:"required"`
		Notes     string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dateTime, err := booking.ParseDateTime(req.DateTime)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{Name: req.Name, Phone: req.Phone, Email: req.Email}
	created := rc.Rest.BookReservation(customer, dateTime, req.PartySize, req.Notes)
	reservation, _ := rc.Rest.Reservation(created.ID)
	view := newReservationView(reservation)

	events.Broadcast(events.Message{
		Event: events.EventReservationCreate,
		Data:  view,
	})

	utils.InfoLogger.Printf("Reservation #%d created for %s (%d guests)", reservation.ID, customer.Name, req.PartySize)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", view)
}

// GetAllReservations -> every reservation on the sheet
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations := rc.Rest.Reservations()
	views := make([]reservationView, 0, len(reservations))
	for _, reservation := range reservations {
		views = append(views, newReservationView(reservation))
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", views)
}

// GetReservationByID -> detail of one reservation
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, ok := rc.findReservation(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", newReservationView(reservation))
}

// AssignTable -> checked assignment; in strict mode the slot-exclusivity
// predicate can reject with a reason
func (rc *ReservationController) AssignTable(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	var body struct {
		TableID int `json:"table_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ok, reason := rc.Rest.AssignTableToReservation(reservationID, body.TableID)
	if !ok {
		utils.RespondError(c, http.StatusConflict, errors.New(reason))
		return
	}

	reservation, _ := rc.Rest.Reservation(reservationID)
	view := newReservationView(reservation)
	events.Broadcast(events.Message{
		Event: events.EventReservationUpdate,
		Data:  view,
	})

	utils.InfoLogger.Printf("Reservation #%d assigned to table %d", reservationID, body.TableID)
	utils.RespondJSON(c, http.StatusOK, "Table assigned", view)
}

// CheckIn -> guest arrived, table becomes occupied
func (rc *ReservationController) CheckIn(c *gin.Context) {
	rc.transition(c, "Reservation checked in", rc.Rest.CheckInReservation)
}

// Complete -> reservation done, table freed; idempotent
func (rc *ReservationController) Complete(c *gin.Context) {
	rc.transition(c, "Reservation completed", rc.Rest.CompleteReservation)
}

// Cancel -> reservation cancelled, table freed if one was held
func (rc *ReservationController) Cancel(c *gin.Context) {
	rc.transition(c, "Reservation cancelled", rc.Rest.CancelReservation)
}

func (rc *ReservationController) transition(c *gin.Context, message string, apply func(int) bool) {
	reservationID, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	if !apply(reservationID) {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("reservation %d not found", reservationID))
		return
	}

	reservation, _ := rc.Rest.Reservation(reservationID)
	view := newReservationView(reservation)
	events.Broadcast(events.Message{
		Event: events.EventReservationUpdate,
		Data:  view,
	})

	utils.InfoLogger.Printf("Reservation #%d is now %s", reservationID, reservation.Status)
	utils.RespondJSON(c, http.StatusOK, message, view)
}

// GetSummary -> the reference booking-sheet rendering
func (rc *ReservationController) GetSummary(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Booking sheet summary", gin.H{
		"summary": rc.Rest.Summary(),
	})
}

func (rc *ReservationController) findReservation(c *gin.Context) (booking.Reservation, bool) {
	reservationID, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return booking.Reservation{}, false
	}
	reservation, ok := rc.Rest.Reservation(reservationID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("reservation %d not found", reservationID))
		return booking.Reservation{}, false
	}
	return reservation, true
}
