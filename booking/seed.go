package booking

import "github.com/rakhadenta/restaurant-booking/models"

// SeedDemo loads the demo tables, menu and staff roster so the console and
// web front-ends start with something bookable.
func SeedDemo(r *Restaurant) {
	r.AddTable(1, 2, "Window")
	r.AddTable(2, 4, "Center")
	r.AddTable(3, 6, "Patio")

	r.AddMenuItem(models.MenuItem{Name: "Lobster Bisque", Description: "Creamy lobster soup", Price: 14.5, Category: "Starter"})
	r.AddMenuItem(models.MenuItem{Name: "Grilled Salmon", Description: "Served with seasonal vegetables", Price: 28.0, Category: "Main"})
	r.AddMenuItem(models.MenuItem{Name: "Chocolate Lava Cake", Description: "Rich chocolate dessert", Price: 9.5, Category: "Dessert"})

	frontDesk := models.NewRole("Front Desk", models.PermCreateReservation)
	manager := models.NewRole("Manager", models.PermCreateReservation, models.PermManageOrders, models.PermRunReports)
	r.AddStaff(models.Staff{Name: "Alice", Role: frontDesk})
	r.AddStaff(models.Staff{Name: "Bob", Role: manager})
}
