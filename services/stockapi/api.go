package stockapi

import (
	"context"
)

// Stock is the authoritative available quantity of a product
type Stock struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

// Product is catalog metadata; it carries no quantity
type Product struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

//go:generate mockgen -source=api.go -package stockapi -destination stockapi_mock.go StockAPI
type StockAPI interface {
	GetStock(c context.Context, productID int) (Stock, bool, error)
	GetProduct(c context.Context, productID int) (Product, bool, error)
}
