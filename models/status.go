package models

type TableStatus string

const (
	TableFree         TableStatus = "free"
	TableReserved     TableStatus = "reserved"
	TableOccupied     TableStatus = "occupied"
	TableOutOfService TableStatus = "out_of_service"
)

func (s TableStatus) String() string {
	switch s {
	case TableFree:
		return "Free"
	case TableReserved:
		return "Reserved"
	case TableOccupied:
		return "Occupied"
	case TableOutOfService:
		return "Out of Service"
	}
	return "Unknown"
}

type ReservationStatus string

const (
	ReservationOpen      ReservationStatus = "open"
	ReservationBooked    ReservationStatus = "booked"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) String() string {
	switch s {
	case ReservationOpen:
		return "Open"
	case ReservationBooked:
		return "Booked"
	case ReservationSeated:
		return "Seated"
	case ReservationCompleted:
		return "Completed"
	case ReservationCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Terminal reports whether the status allows no further transitions.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCompleted || s == ReservationCancelled
}

type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderClosed    OrderStatus = "closed"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	switch s {
	case OrderOpen:
		return "Open"
	case OrderClosed:
		return "Closed"
	case OrderCancelled:
		return "Cancelled"
	}
	return "Unknown"
}
