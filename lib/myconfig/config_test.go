package myconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("STOCK_API_URL", "")
		t.Setenv("CART_KEY", "")
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("GOOGLE_CLOUD_PROJECT", "")

		assert.Equal(t, Config{
			Port:        "8080",
			StockAPIURL: "http://localhost:8080/api/catalog",
			CartKey:     "@RocketShoes:cart",
		}, Load())
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		t.Setenv("STOCK_API_URL", "http://localhost:3333")
		t.Setenv("CART_KEY", "mycart")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("GOOGLE_CLOUD_PROJECT", "myproject")

		assert.Equal(t, Config{
			Port:               "3000",
			StockAPIURL:        "http://localhost:3333",
			CartKey:            "mycart",
			RedisAddr:          "localhost:6379",
			GoogleCloudProject: "myproject",
		}, Load())
	})
}
