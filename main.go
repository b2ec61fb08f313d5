package main

import (
	"github.com/gin-gonic/gin"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/config"
	"github.com/rakhadenta/restaurant-booking/router"
	"github.com/rakhadenta/restaurant-booking/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.Load()
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	rest := booking.NewRestaurant(cfg.RestaurantName, cfg.RestaurantAddress)
	rest.SetStrictSlotExclusivity(cfg.StrictSlotExclusivity)
	booking.SeedDemo(rest)

	r := router.SetupRouter(rest, cfg.StaticDir)

	utils.InfoLogger.Printf("%s listening on port %s (strict slot exclusivity: %v)",
		cfg.RestaurantName, cfg.Port, cfg.StrictSlotExclusivity)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
