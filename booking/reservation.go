package booking

import (
	"time"

	"github.com/rakhadenta/restaurant-booking/models"
)

// Reservation owns the status state machine tied to its table link. The
// table reference is a non-owning handle: the table belongs to the booking
// sheet and outlives any reservation pointing at it.
//
// States: Open -> Booked -> Seated -> Completed, with Cancelled reachable
// from any non-terminal state. Transitions are not rejected; the table side
// effects below keep invariant 4 in one place.
type Reservation struct {
	ID        int
	Customer  models.Customer
	DateTime  time.Time
	PartySize int
	Status    models.ReservationStatus
	Notes     string

	table *models.Table
}

func newReservation(id int, customer models.Customer, dateTime time.Time, partySize int) *Reservation {
	return &Reservation{
		ID:        id,
		Customer:  customer,
		DateTime:  dateTime,
		PartySize: partySize,
		Status:    models.ReservationOpen,
	}
}

// Table returns the linked table, or nil. The link survives terminal
// transitions so the summary can still show which table was used.
func (r *Reservation) Table() *models.Table {
	return r.table
}

func (r *Reservation) AddNotes(notes string) {
	r.Notes = notes
}

// IsActive reports whether the reservation still holds a claim on its slot.
func (r *Reservation) IsActive() bool {
	return !r.Status.Terminal()
}

// AssignTable binds the table link, forces the reservation to Booked and
// marks the table Reserved. A nil table is a no-op. Re-assignment
// overwrites the link without freeing the previous table; freeing is the
// caller's side of the workflow, because the previous table may already be
// claimed elsewhere.
func (r *Reservation) AssignTable(table *models.Table) {
	r.table = table
	if table != nil {
		table.Status = models.TableReserved
		r.Status = models.ReservationBooked
	}
}

// UpdateStatus is the single routing point for status changes that touch
// the linked table: Cancelled and Completed free it, Seated occupies it,
// Open and Booked leave it alone. Safe without a linked table.
func (r *Reservation) UpdateStatus(status models.ReservationStatus) {
	r.Status = status
	if r.table == nil {
		return
	}
	switch status {
	case models.ReservationCancelled, models.ReservationCompleted:
		r.table.Status = models.TableFree
	case models.ReservationSeated:
		r.table.Status = models.TableOccupied
	}
}

// ClearTable frees the linked table (if any) and drops the link,
// independent of status.
func (r *Reservation) ClearTable() {
	if r.table != nil {
		r.table.Status = models.TableFree
	}
	r.table = nil
}
