package models

// Customer is a plain value embedded in a reservation; it has no identity
// of its own.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}
