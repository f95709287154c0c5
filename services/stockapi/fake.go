package stockapi

import (
	"context"
	"strconv"

	"github.com/MarcGrol/shopcart/lib/mystore"
)

// FakeStockAPI keeps stock and products in memory
type FakeStockAPI struct {
	Stock    *mystore.InMemoryStore[Stock]
	Products *mystore.InMemoryStore[Product]
}

func NewFakeStockAPI() *FakeStockAPI {
	stock, _, _ := mystore.NewInMemoryStore[Stock](context.Background())
	products, _, _ := mystore.NewInMemoryStore[Product](context.Background())
	return &FakeStockAPI{
		Stock:    stock,
		Products: products,
	}
}

// With registers a product together with its available amount
func (a *FakeStockAPI) With(product Product, amount int) *FakeStockAPI {
	ctx := context.Background()
	a.Products.Put(ctx, strconv.Itoa(product.ID), product)
	a.Stock.Put(ctx, strconv.Itoa(product.ID), Stock{ID: product.ID, Amount: amount})
	return a
}

func (a *FakeStockAPI) GetStock(ctx context.Context, productID int) (Stock, bool, error) {
	return a.Stock.Get(ctx, strconv.Itoa(productID))
}

func (a *FakeStockAPI) GetProduct(ctx context.Context, productID int) (Product, bool, error) {
	return a.Products.Get(ctx, strconv.Itoa(productID))
}
