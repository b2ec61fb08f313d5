package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rakhadenta/restaurant-booking/models"
)

func testDateTime(t *testing.T) time.Time {
	t.Helper()
	dt, err := ParseDateTime("2024-08-08T19:00")
	assert.NoError(t, err)
	return dt
}

func TestAssignTableForcesBooked(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)
	table := models.NewTable(1, 2, "Window")

	reservation.AssignTable(table)

	assert.Equal(t, models.ReservationBooked, reservation.Status)
	assert.Equal(t, models.TableReserved, table.Status)
	assert.Same(t, table, reservation.Table())
}

func TestAssignNilTableIsNoOp(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)

	reservation.AssignTable(nil)

	assert.Equal(t, models.ReservationOpen, reservation.Status)
	assert.Nil(t, reservation.Table())
}

func TestReassignmentDoesNotFreePreviousTable(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)
	first := models.NewTable(1, 2, "")
	second := models.NewTable(2, 4, "")

	reservation.AssignTable(first)
	reservation.AssignTable(second)

	// Freeing the old table belongs to the assignment workflow, not to the
	// reservation itself.
	assert.Equal(t, models.TableReserved, first.Status)
	assert.Equal(t, models.TableReserved, second.Status)
	assert.Same(t, second, reservation.Table())
}

func TestCancelledFreesTable(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)
	table := models.NewTable(1, 2, "")
	reservation.AssignTable(table)

	reservation.UpdateStatus(models.ReservationCancelled)

	assert.Equal(t, models.TableFree, table.Status)
	assert.Equal(t, models.ReservationCancelled, reservation.Status)
}

func TestCompletedFreesTableAndKeepsLink(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)
	table := models.NewTable(1, 2, "")
	reservation.AssignTable(table)

	reservation.UpdateStatus(models.ReservationCompleted)

	assert.Equal(t, models.TableFree, table.Status)
	// The link stays for the summary's audit trail.
	assert.Same(t, table, reservation.Table())
}

func TestSeatedOccupiesTable(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)
	table := models.NewTable(1, 2, "")
	reservation.AssignTable(table)

	reservation.UpdateStatus(models.ReservationSeated)

	assert.Equal(t, models.TableOccupied, table.Status)
}

func TestStatusChangeWithoutTableIsSafe(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)

	assert.NotPanics(t, func() {
		reservation.UpdateStatus(models.ReservationSeated)
		reservation.UpdateStatus(models.ReservationCancelled)
	})
	assert.Equal(t, models.ReservationCancelled, reservation.Status)
}

func TestClearTable(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)
	table := models.NewTable(1, 2, "")
	reservation.AssignTable(table)

	reservation.ClearTable()

	assert.Equal(t, models.TableFree, table.Status)
	assert.Nil(t, reservation.Table())

	assert.NotPanics(t, func() { reservation.ClearTable() })
}

func TestIsActive(t *testing.T) {
	reservation := newReservation(1, models.Customer{Name: "Chen Li"}, testDateTime(t), 2)
	assert.True(t, reservation.IsActive())

	reservation.UpdateStatus(models.ReservationSeated)
	assert.True(t, reservation.IsActive())

	reservation.UpdateStatus(models.ReservationCompleted)
	assert.False(t, reservation.IsActive())
}
