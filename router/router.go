package router

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/controllers"
	"github.com/rakhadenta/restaurant-booking/middlewares"
	"github.com/rakhadenta/restaurant-booking/models"
)

// SetupRouter wires every Restaurant operation to the HTTP surface. The
// transport stays thin: handlers only translate requests, the core stays
// callable without Gin (the console front-end uses it directly).
func SetupRouter(rest *booking.Restaurant, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestLogger())

	// Static front-end, when the directory exists.
	if staticDir != "" {
		if _, err := os.Stat(staticDir); err == nil {
			r.Static("/web", staticDir)
			r.GET("/", func(c *gin.Context) {
				c.Redirect(http.StatusMovedPermanently, "/web/index.html")
			})
		}
	}

	tableCtrl := controllers.NewTableController(rest)
	reservationCtrl := controllers.NewReservationController(rest)
	menuCtrl := controllers.NewMenuController(rest)
	orderCtrl := controllers.NewOrderController(rest)
	reportCtrl := controllers.NewReportController(rest)
	staffCtrl := controllers.NewStaffController(rest)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/ws", controllers.EventsHandler)

	api := r.Group("/api")

	tables := api.Group("/tables")
	{
		tables.POST("", tableCtrl.CreateTable)
		tables.GET("", tableCtrl.GetAllTables)
		tables.GET("/available", tableCtrl.GetAvailableTables)
		tables.GET("/:table_id", tableCtrl.GetTableByID)
		tables.PATCH("/:table_id/status", tableCtrl.UpdateTableStatus)
	}

	reservations := api.Group("/reservations")
	reservations.Use(middlewares.RequirePermission(rest, models.PermCreateReservation))
	{
		reservations.POST("", reservationCtrl.CreateReservation)
		reservations.GET("", reservationCtrl.GetAllReservations)
		reservations.GET("/summary", reservationCtrl.GetSummary)
		reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
		reservations.POST("/:reservation_id/table", reservationCtrl.AssignTable)
		reservations.PATCH("/:reservation_id/checkin", reservationCtrl.CheckIn)
		reservations.PATCH("/:reservation_id/complete", reservationCtrl.Complete)
		reservations.PATCH("/:reservation_id/cancel", reservationCtrl.Cancel)
	}

	menu := api.Group("/menu")
	{
		menu.GET("", menuCtrl.GetAllMenuItems)
		menu.POST("", menuCtrl.CreateMenuItem)
	}

	orders := api.Group("/orders")
	orders.Use(middlewares.RequirePermission(rest, models.PermManageOrders))
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/open", orderCtrl.GetOpenOrderByTable)
		orders.POST("/:order_id/items", orderCtrl.AddOrderItem)
		orders.PATCH("/:order_id/close", orderCtrl.CloseOrder)
		orders.PATCH("/:order_id/cancel", orderCtrl.CancelOrder)
	}

	reports := api.Group("/reports")
	reports.Use(middlewares.RequirePermission(rest, models.PermRunReports))
	{
		reports.GET("/daily", reportCtrl.GetDailyReport)
	}

	staff := api.Group("/staff")
	{
		staff.GET("", staffCtrl.GetAllStaff)
		staff.POST("", staffCtrl.CreateStaff)
	}

	return r
}
