// Package myconfig collects runtime settings from the environment.
package myconfig

import (
	"fmt"
	"os"
)

const DefaultCartKey = "@RocketShoes:cart"

type Config struct {
	Port               string
	StockAPIURL        string
	CartKey            string
	RedisAddr          string
	GoogleCloudProject string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from environment with defaults.
func Load() Config {
	port := getenv("PORT", "8080")
	return Config{
		Port:               port,
		StockAPIURL:        getenv("STOCK_API_URL", fmt.Sprintf("http://localhost:%s/api/catalog", port)),
		CartKey:            getenv("CART_KEY", DefaultCartKey),
		RedisAddr:          getenv("REDIS_ADDR", ""),
		GoogleCloudProject: getenv("GOOGLE_CLOUD_PROJECT", ""),
	}
}
