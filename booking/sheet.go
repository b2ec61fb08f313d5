package booking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rakhadenta/restaurant-booking/models"
)

// BookingSheet owns the tables and reservations and is the only component
// allowed to mutate their linkage. It answers every "is table T free"
// question; callers never reach around it.
//
// The sheet itself is not safe for concurrent use; the Restaurant
// coordinator serializes access when the sheet is exposed over HTTP.
type BookingSheet struct {
	reservationSeq int
	tables         []*models.Table
	reservations   []*Reservation
}

func NewBookingSheet() *BookingSheet {
	return &BookingSheet{}
}

// AddTable registers a table. Id uniqueness is the caller's responsibility;
// the setup step issues ids once and never reuses them.
func (b *BookingSheet) AddTable(id, seats int, label string) *models.Table {
	table := models.NewTable(id, seats, label)
	b.tables = append(b.tables, table)
	return table
}

// CreateReservation issues the next sequence id (1, 2, 3, ...; never
// reused, even after cancellation) and returns a live handle into the
// sheet's storage. Party size and timestamp are stored as given.
func (b *BookingSheet) CreateReservation(customer models.Customer, dateTime time.Time, partySize int, notes string) *Reservation {
	b.reservationSeq++
	reservation := newReservation(b.reservationSeq, customer, dateTime, partySize)
	reservation.AddNotes(notes)
	b.reservations = append(b.reservations, reservation)
	return reservation
}

// AvailableTables returns every Free table seating at least partySize,
// smallest first so large tables are not wasted on small parties. Equal
// capacities keep insertion order.
func (b *BookingSheet) AvailableTables(partySize int) []*models.Table {
	var result []*models.Table
	for _, table := range b.tables {
		if table.IsAvailable() && table.Seats >= partySize {
			result = append(result, table)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Seats < result[j].Seats
	})
	return result
}

// AssignTable links the reservation to the table. It fails without mutation
// when either id is unknown. It does not check slot exclusivity; strict
// callers consult IsTableAvailable first.
func (b *BookingSheet) AssignTable(reservationID, tableID int) bool {
	reservation := b.FindReservation(reservationID)
	table := b.FindTable(tableID)
	if reservation == nil || table == nil {
		return false
	}
	reservation.AssignTable(table)
	return true
}

func (b *BookingSheet) FindReservation(reservationID int) *Reservation {
	for _, reservation := range b.reservations {
		if reservation.ID == reservationID {
			return reservation
		}
	}
	return nil
}

func (b *BookingSheet) FindTable(tableID int) *models.Table {
	for _, table := range b.tables {
		if table.ID == tableID {
			return table
		}
	}
	return nil
}

// AutoAssign books the smallest fitting available table; no-op when none
// fit.
func (b *BookingSheet) AutoAssign(reservation *Reservation) {
	tables := b.AvailableTables(reservation.PartySize)
	if len(tables) > 0 {
		reservation.AssignTable(tables[0])
	}
}

// CancelReservation is a no-op for unknown ids; otherwise the Cancelled
// transition frees the linked table.
func (b *BookingSheet) CancelReservation(reservationID int) {
	if reservation := b.FindReservation(reservationID); reservation != nil {
		reservation.UpdateStatus(models.ReservationCancelled)
	}
}

// IsTableAvailable is the authoritative slot-exclusivity check: false when
// some other active reservation holds the exact table, date and time slot.
// Terminal reservations keep their table link for the audit trail but no
// longer claim the slot. excludeReservationID skips the reservation being
// (re)assigned.
func (b *BookingSheet) IsTableAvailable(tableID int, date, timeSlot string, excludeReservationID int) bool {
	for _, reservation := range b.reservations {
		if reservation.ID == excludeReservationID {
			continue
		}
		if !reservation.IsActive() {
			continue
		}
		table := reservation.Table()
		if table == nil || table.ID != tableID {
			continue
		}
		resDate, resSlot := SlotOf(reservation.DateTime)
		if resDate == date && resSlot == timeSlot {
			return false
		}
	}
	return true
}

// Summary renders every reservation, one per line:
//
//	#1 - Chen Li | 2 guests | 2024-08-08T19:00 | Booked | Table 1
func (b *BookingSheet) Summary() string {
	var sb strings.Builder
	sb.WriteString("Reservations:\n")
	for _, reservation := range b.reservations {
		fmt.Fprintf(&sb, "#%d - %s | %d guests | %s | %s",
			reservation.ID,
			reservation.Customer.Name,
			reservation.PartySize,
			FormatDateTime(reservation.DateTime),
			reservation.Status)
		if table := reservation.Table(); table != nil {
			fmt.Fprintf(&sb, " | Table %d", table.ID)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *BookingSheet) Reservations() []*Reservation {
	return b.reservations
}

func (b *BookingSheet) Tables() []*models.Table {
	return b.tables
}
