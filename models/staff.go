package models

type Permission string

const (
	PermCreateReservation Permission = "create_reservation"
	PermManageOrders      Permission = "manage_orders"
	PermRunReports        Permission = "run_reports"
)

// Role is a named capability set. Permission checks are a membership test,
// not a role-name comparison.
type Role struct {
	Name        string
	permissions map[Permission]struct{}
}

func NewRole(name string, perms ...Permission) Role {
	r := Role{Name: name, permissions: make(map[Permission]struct{})}
	for _, p := range perms {
		r.permissions[p] = struct{}{}
	}
	return r
}

func (r *Role) AddPermission(p Permission) {
	if r.permissions == nil {
		r.permissions = make(map[Permission]struct{})
	}
	r.permissions[p] = struct{}{}
}

func (r Role) HasPermission(p Permission) bool {
	_, ok := r.permissions[p]
	return ok
}

type Staff struct {
	Name string
	Role Role
}

func (s Staff) Can(p Permission) bool {
	return s.Role.HasPermission(p)
}
