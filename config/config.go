package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment. Every field
// has a default so the server starts with no .env at all.
type Config struct {
	Port                  string
	GinMode               string
	StaticDir             string
	RestaurantName        string
	RestaurantAddress     string
	StrictSlotExclusivity bool
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		Port:                  getenv("PORT", "8080"),
		GinMode:               getenv("GIN_MODE", ""),
		StaticDir:             getenv("STATIC_DIR", "web"),
		RestaurantName:        getenv("RESTAURANT_NAME", "Ocean Breeze"),
		RestaurantAddress:     getenv("RESTAURANT_ADDRESS", "123 Harbor Road"),
		StrictSlotExclusivity: getenvBool("STRICT_SLOT_EXCLUSIVITY", true),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid bool for %s: %q, using %v", key, v, fallback)
		return fallback
	}
	return b
}
