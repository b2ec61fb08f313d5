package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakhadenta/restaurant-booking/models"
)

func TestReservationIDsMonotonic(t *testing.T) {
	sheet := NewBookingSheet()
	customer := models.Customer{Name: "Chen Li"}
	dt := testDateTime(t)

	for i := 1; i <= 5; i++ {
		reservation := sheet.CreateReservation(customer, dt, 2, "")
		assert.Equal(t, i, reservation.ID)
	}

	// Cancellation never frees an id for reuse.
	sheet.CancelReservation(2)
	sheet.CancelReservation(4)
	assert.Equal(t, 6, sheet.CreateReservation(customer, dt, 2, "").ID)
}

func TestAvailableTablesBestFit(t *testing.T) {
	sheet := NewBookingSheet()
	sheet.AddTable(1, 6, "")
	sheet.AddTable(2, 2, "")
	sheet.AddTable(3, 4, "")
	sheet.AddTable(4, 2, "")

	tables := sheet.AvailableTables(2)

	seats := make([]int, 0, len(tables))
	ids := make([]int, 0, len(tables))
	for _, table := range tables {
		seats = append(seats, table.Seats)
		ids = append(ids, table.ID)
	}
	assert.Equal(t, []int{2, 2, 4, 6}, seats)
	// Equal capacities keep insertion order.
	assert.Equal(t, []int{2, 4, 3, 1}, ids)
}

func TestAvailableTablesFiltersStatusAndCapacity(t *testing.T) {
	sheet := NewBookingSheet()
	small := sheet.AddTable(1, 2, "")
	sheet.AddTable(2, 4, "")
	broken := sheet.AddTable(3, 8, "")
	broken.Status = models.TableOutOfService

	tables := sheet.AvailableTables(3)

	assert.Len(t, tables, 1)
	assert.Equal(t, 2, tables[0].ID)
	assert.NotContains(t, tables, small)
}

func TestAssignTableUnknownIDs(t *testing.T) {
	sheet := NewBookingSheet()
	table := sheet.AddTable(1, 2, "")
	reservation := sheet.CreateReservation(models.Customer{Name: "Chen Li"}, testDateTime(t), 2, "")

	assert.False(t, sheet.AssignTable(99, table.ID))
	assert.False(t, sheet.AssignTable(reservation.ID, 99))

	// No mutation on failure.
	assert.Equal(t, models.TableFree, table.Status)
	assert.Equal(t, models.ReservationOpen, reservation.Status)
	assert.Nil(t, reservation.Table())

	assert.True(t, sheet.AssignTable(reservation.ID, table.ID))
	assert.Equal(t, models.TableReserved, table.Status)
	assert.Equal(t, table.ID, reservation.Table().ID)
}

func TestAutoAssignPicksSmallestFit(t *testing.T) {
	sheet := NewBookingSheet()
	sheet.AddTable(1, 6, "")
	sheet.AddTable(2, 2, "")
	reservation := sheet.CreateReservation(models.Customer{Name: "Chen Li"}, testDateTime(t), 2, "")

	sheet.AutoAssign(reservation)

	assert.Equal(t, 2, reservation.Table().ID)
}

func TestAutoAssignNoFitIsNoOp(t *testing.T) {
	sheet := NewBookingSheet()
	sheet.AddTable(1, 2, "")
	reservation := sheet.CreateReservation(models.Customer{Name: "Wang Wei"}, testDateTime(t), 8, "")

	sheet.AutoAssign(reservation)

	assert.Nil(t, reservation.Table())
	assert.Equal(t, models.ReservationOpen, reservation.Status)
}

func TestCancelReservationUnknownIsNoOp(t *testing.T) {
	sheet := NewBookingSheet()
	assert.NotPanics(t, func() { sheet.CancelReservation(42) })
}

func TestFindReturnsNilWhenAbsent(t *testing.T) {
	sheet := NewBookingSheet()
	assert.Nil(t, sheet.FindReservation(1))
	assert.Nil(t, sheet.FindTable(1))
}

func TestIsTableAvailableSlotExclusivity(t *testing.T) {
	sheet := NewBookingSheet()
	sheet.AddTable(5, 4, "")
	reservationA := sheet.CreateReservation(models.Customer{Name: "Chen Li"}, testDateTime(t), 2, "")
	assert.True(t, sheet.AssignTable(reservationA.ID, 5))

	// A holds table 5 on 2024-08-08 at 19:00.
	assert.False(t, sheet.IsTableAvailable(5, "2024-08-08", "19:00", 0))

	// The holder itself is excluded when re-checking its own slot.
	assert.True(t, sheet.IsTableAvailable(5, "2024-08-08", "19:00", reservationA.ID))

	// Other slots and tables are unaffected.
	assert.True(t, sheet.IsTableAvailable(5, "2024-08-08", "20:00", 0))
	assert.True(t, sheet.IsTableAvailable(5, "2024-08-09", "19:00", 0))
	assert.True(t, sheet.IsTableAvailable(6, "2024-08-08", "19:00", 0))

	sheet.CancelReservation(reservationA.ID)
	assert.True(t, sheet.IsTableAvailable(5, "2024-08-08", "19:00", 0))
}

func TestIsTableAvailableIgnoresTerminalHolders(t *testing.T) {
	sheet := NewBookingSheet()
	sheet.AddTable(5, 4, "")
	reservation := sheet.CreateReservation(models.Customer{Name: "Chen Li"}, testDateTime(t), 2, "")
	assert.True(t, sheet.AssignTable(reservation.ID, 5))
	assert.False(t, sheet.IsTableAvailable(5, "2024-08-08", "19:00", 0))

	// A completed party keeps its table link for the summary, but the
	// slot opens up again.
	reservation.UpdateStatus(models.ReservationSeated)
	reservation.UpdateStatus(models.ReservationCompleted)
	assert.NotNil(t, reservation.Table())
	assert.True(t, sheet.IsTableAvailable(5, "2024-08-08", "19:00", 0))
}

func TestSummaryFormat(t *testing.T) {
	sheet := NewBookingSheet()
	sheet.AddTable(1, 2, "Window")
	booked := sheet.CreateReservation(models.Customer{Name: "Chen Li"}, testDateTime(t), 2, "Birthday")
	sheet.AutoAssign(booked)
	sheet.CreateReservation(models.Customer{Name: "Wang Wei"}, testDateTime(t), 5, "")

	expected := "Reservations:\n" +
		"#1 - Chen Li | 2 guests | 2024-08-08T19:00 | Booked | Table 1\n" +
		"#2 - Wang Wei | 5 guests | 2024-08-08T19:00 | Open\n"
	assert.Equal(t, expected, sheet.Summary())
}

func TestBestFitScenario(t *testing.T) {
	sheet := NewBookingSheet()
	sheet.AddTable(1, 2, "")
	sheet.AddTable(2, 4, "")

	tables := sheet.AvailableTables(2)
	assert.Len(t, tables, 2)
	assert.Equal(t, 1, tables[0].ID)
	assert.Equal(t, 2, tables[1].ID)

	reservation := sheet.CreateReservation(models.Customer{Name: "Chen Li"}, testDateTime(t), 2, "")
	sheet.AutoAssign(reservation)
	assert.Equal(t, 1, reservation.Table().ID)

	tables = sheet.AvailableTables(2)
	assert.Len(t, tables, 1)
	assert.Equal(t, 2, tables[0].ID)
}
