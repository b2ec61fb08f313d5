package booking

import (
	"fmt"
	"sync"
	"time"

	"github.com/rakhadenta/restaurant-booking/models"
)

// Restaurant coordinates the booking sheet with the menu catalogue, orders
// and staff roster. The mutex is the serialization boundary the in-memory
// model needs once the operations are exposed over concurrent HTTP
// requests: every read-then-mutate sequence (availability check followed by
// assignment) runs under it, and the read accessors hand out value
// snapshots taken under the same lock so callers never touch live storage.
type Restaurant struct {
	mu sync.Mutex

	Name    string
	Address string

	sheet    *BookingSheet
	menu     []models.MenuItem
	orders   []*models.Order
	orderSeq int
	staff    []models.Staff

	strictSlotExclusivity bool
}

func NewRestaurant(name, address string) *Restaurant {
	return &Restaurant{
		Name:                  name,
		Address:               address,
		sheet:                 NewBookingSheet(),
		strictSlotExclusivity: true,
	}
}

// SetStrictSlotExclusivity toggles the slot-exclusivity check performed by
// AssignTableToReservation. Strict is the default; the lax mode matches the
// variant that assigns without checking the slot.
func (r *Restaurant) SetStrictSlotExclusivity(strict bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strictSlotExclusivity = strict
}

func (r *Restaurant) AddStaff(staff models.Staff) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staff = append(r.staff, staff)
}

func (r *Restaurant) Staff() []models.Staff {
	r.mu.Lock()
	defer r.mu.Unlock()
	staff := make([]models.Staff, len(r.staff))
	copy(staff, r.staff)
	return staff
}

// Authorize is the advisory permission gate: it reports whether the named
// staff member may perform the operation, with a human-readable reason on
// rejection. It never blocks the underlying operation by itself.
func (r *Restaurant) Authorize(staffName string, permission models.Permission) (bool, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, staff := range r.staff {
		if staff.Name != staffName {
			continue
		}
		if staff.Can(permission) {
			return true, ""
		}
		return false, fmt.Sprintf("%s (%s) lacks permission %q", staff.Name, staff.Role.Name, permission)
	}
	return false, fmt.Sprintf("unknown staff member %q", staffName)
}

// AddMenuItem appends to the catalogue. The catalogue is append-only.
func (r *Restaurant) AddMenuItem(item models.MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menu = append(r.menu, item)
}

func (r *Restaurant) Menu() []models.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	menu := make([]models.MenuItem, len(r.menu))
	copy(menu, r.menu)
	return menu
}

func (r *Restaurant) FindMenuItem(name string) (models.MenuItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.menu {
		if item.Name == name {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (r *Restaurant) AddTable(id, seats int, label string) *models.Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sheet.AddTable(id, seats, label)
}

// CreateTable registers a table after verifying the id is unused, as one
// step under the lock. Returns false when the id is already taken.
func (r *Restaurant) CreateTable(id, seats int, label string) (models.Table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sheet.FindTable(id) != nil {
		return models.Table{}, false
	}
	return *r.sheet.AddTable(id, seats, label), true
}

// Table returns a snapshot of one table.
func (r *Restaurant) Table(tableID int) (models.Table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table := r.sheet.FindTable(tableID)
	if table == nil {
		return models.Table{}, false
	}
	return *table, true
}

func (r *Restaurant) Tables() []models.Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	live := r.sheet.Tables()
	tables := make([]models.Table, 0, len(live))
	for _, table := range live {
		tables = append(tables, *table)
	}
	return tables
}

// AvailableTables snapshots the free tables fitting partySize, smallest
// first. The slice is never nil, so an empty result still marshals as [].
func (r *Restaurant) AvailableTables(partySize int) []models.Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	live := r.sheet.AvailableTables(partySize)
	tables := make([]models.Table, 0, len(live))
	for _, table := range live {
		tables = append(tables, *table)
	}
	return tables
}

// SetTableStatus is the manual status path (out of service and back). It
// refuses to touch a table held by an active reservation, so the derived
// statuses stay consistent.
func (r *Restaurant) SetTableStatus(tableID int, status models.TableStatus) (bool, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table := r.sheet.FindTable(tableID)
	if table == nil {
		return false, fmt.Sprintf("table %d not found", tableID)
	}
	for _, reservation := range r.sheet.Reservations() {
		if reservation.IsActive() && reservation.Table() == table {
			return false, fmt.Sprintf("table %d is held by reservation #%d", tableID, reservation.ID)
		}
	}
	table.Status = status
	return true, ""
}

// BookReservation creates the reservation and immediately tries to
// auto-assign the smallest fitting table. With no table available the
// reservation stays Open until assigned manually.
func (r *Restaurant) BookReservation(customer models.Customer, dateTime time.Time, partySize int, notes string) *Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	reservation := r.sheet.CreateReservation(customer, dateTime, partySize, notes)
	r.sheet.AutoAssign(reservation)
	return reservation
}

// Reservation returns a snapshot of one reservation.
func (r *Restaurant) Reservation(reservationID int) (Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reservation := r.sheet.FindReservation(reservationID)
	if reservation == nil {
		return Reservation{}, false
	}
	return *reservation, true
}

func (r *Restaurant) Reservations() []Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	live := r.sheet.Reservations()
	reservations := make([]Reservation, 0, len(live))
	for _, reservation := range live {
		reservations = append(reservations, *reservation)
	}
	return reservations
}

func (r *Restaurant) CheckInReservation(reservationID int) bool {
	return r.updateReservationStatus(reservationID, models.ReservationSeated)
}

// CompleteReservation is idempotent: completing twice leaves the status
// Completed and reports success both times.
func (r *Restaurant) CompleteReservation(reservationID int) bool {
	return r.updateReservationStatus(reservationID, models.ReservationCompleted)
}

func (r *Restaurant) CancelReservation(reservationID int) bool {
	return r.updateReservationStatus(reservationID, models.ReservationCancelled)
}

func (r *Restaurant) updateReservationStatus(reservationID int, status models.ReservationStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	reservation := r.sheet.FindReservation(reservationID)
	if reservation == nil {
		return false
	}
	reservation.UpdateStatus(status)
	return true
}

// AssignTableToReservation performs the checked assignment workflow: both
// ids must exist and, in strict mode, the slot-exclusivity predicate must
// accept the table for the reservation's date and time slot. On
// re-assignment the previously held table is freed first.
func (r *Restaurant) AssignTableToReservation(reservationID, tableID int) (bool, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reservation := r.sheet.FindReservation(reservationID)
	if reservation == nil {
		return false, fmt.Sprintf("reservation %d not found", reservationID)
	}
	table := r.sheet.FindTable(tableID)
	if table == nil {
		return false, fmt.Sprintf("table %d not found", tableID)
	}
	if r.strictSlotExclusivity {
		date, slot := SlotOf(reservation.DateTime)
		if !r.sheet.IsTableAvailable(tableID, date, slot, reservationID) {
			return false, fmt.Sprintf("table %d is not available on %s at %s", tableID, date, slot)
		}
	}
	if previous := reservation.Table(); previous != nil && previous.ID != tableID {
		reservation.ClearTable()
	}
	reservation.AssignTable(table)
	return true, ""
}

// CreateOrder opens an order for the table. At most one open order per
// table is the callers' rule: check FindOpenOrderByTable first.
func (r *Restaurant) CreateOrder(tableID int) *models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orderSeq++
	order := models.NewOrder(r.orderSeq, tableID)
	r.orders = append(r.orders, order)
	return order
}

// FindOpenOrderByTable returns a snapshot of the table's open order.
func (r *Restaurant) FindOpenOrderByTable(tableID int) (models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.TableID == tableID && order.Status == models.OrderOpen {
			return orderSnapshot(order), true
		}
	}
	return models.Order{}, false
}

// Order returns a snapshot of one order.
func (r *Restaurant) Order(orderID int) (models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == orderID {
			return orderSnapshot(order), true
		}
	}
	return models.Order{}, false
}

func (r *Restaurant) Orders() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, orderSnapshot(order))
	}
	return orders
}

// orderSnapshot copies the order and its items so callers can read and
// marshal the result outside the lock.
func orderSnapshot(order *models.Order) models.Order {
	snapshot := *order
	snapshot.Items = make([]models.OrderItem, len(order.Items))
	copy(snapshot.Items, order.Items)
	return snapshot
}

// AddOrderItem appends a catalogue item snapshot to an open order.
func (r *Restaurant) AddOrderItem(orderID int, itemName string, quantity int) (bool, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var order *models.Order
	for _, o := range r.orders {
		if o.ID == orderID {
			order = o
			break
		}
	}
	if order == nil {
		return false, fmt.Sprintf("order %d not found", orderID)
	}
	if order.Status != models.OrderOpen {
		return false, fmt.Sprintf("order %d is %s", orderID, string(order.Status))
	}
	for _, item := range r.menu {
		if item.Name == itemName {
			order.AddItem(item, quantity)
			return true, ""
		}
	}
	return false, fmt.Sprintf("menu item %q not found", itemName)
}

func (r *Restaurant) CloseOrder(orderID int) bool {
	return r.setOrderStatus(orderID, models.OrderClosed)
}

func (r *Restaurant) CancelOrder(orderID int) bool {
	return r.setOrderStatus(orderID, models.OrderCancelled)
}

func (r *Restaurant) setOrderStatus(orderID int, status models.OrderStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == orderID {
			order.Status = status
			return true
		}
	}
	return false
}

// Summary renders the booking sheet under the coordinator's lock.
func (r *Restaurant) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sheet.Summary()
}

// GenerateDailyReport renders the booking sheet summary plus total revenue.
// Cancelled orders do not count towards revenue.
func (r *Restaurant) GenerateDailyReport(title string) Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	report := NewReport(title)
	report.GenerateFrom(r.sheet, r.orders)
	return report
}
