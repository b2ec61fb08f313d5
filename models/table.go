package models

// Table is owned by the booking sheet. Its status is mutated only through
// reservation transitions, except for the manual out-of-service path.
type Table struct {
	ID     int         `json:"id"`
	Seats  int         `json:"seats"`
	Label  string      `json:"label,omitempty"`
	Status TableStatus `json:"status"`
}

func NewTable(id, seats int, label string) *Table {
	return &Table{
		ID:     id,
		Seats:  seats,
		Label:  label,
		Status: TableFree,
	}
}

func (t *Table) IsAvailable() bool {
	return t.Status == TableFree
}
