package models

// MenuItem is an immutable catalogue entry. Orders carry a snapshot of the
// item, so later catalogue changes never affect past totals.
type MenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
}
