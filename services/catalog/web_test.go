package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/shopcart/lib/myhttpclient"
	"github.com/MarcGrol/shopcart/lib/mystore"
	"github.com/MarcGrol/shopcart/services/stockapi"
)

func TestCatalogService(t *testing.T) {

	t.Run("List products", func(t *testing.T) {
		// setup
		_, router, _, _ := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalog/products", nil)
		require.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		products := []stockapi.Product{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &products))
		assert.Len(t, products, 6)
		assert.Equal(t, 1, products[0].ID)
		assert.Equal(t, 6, products[5].ID)
	})

	t.Run("Get product", func(t *testing.T) {
		// setup
		_, router, _, _ := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalog/products/3", nil)
		require.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		product := stockapi.Product{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &product))
		assert.Equal(t, "Tênis Adidas Duramo Lite 2.0", product.Title)
		assert.Equal(t, 219.9, product.Price)
	})

	t.Run("Get stock", func(t *testing.T) {
		// setup
		ctx, router, stockStore, _ := setup(t)

		// given
		stockStore.Put(ctx, "1", stockapi.Stock{ID: 1, Amount: 7})

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalog/stock/1", nil)
		require.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"id":1,"amount":7}`, response.Body.String())
	})

	t.Run("Get stock not exists", func(t *testing.T) {
		// setup
		_, router, _, _ := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalog/stock/42", nil)
		require.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Get product with invalid id", func(t *testing.T) {
		// setup
		_, router, _, _ := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalog/products/abc", nil)
		require.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Seeding keeps existing catalog", func(t *testing.T) {
		ctx := context.TODO()
		stockStore, _, _ := mystore.NewInMemoryStore[stockapi.Stock](ctx)
		productStore, _, _ := mystore.NewInMemoryStore[stockapi.Product](ctx)
		productStore.Put(ctx, "9", stockapi.Product{ID: 9, Title: "Chinelo"})

		err := NewService(stockStore, productStore).RegisterEndpoints(ctx, mux.NewRouter())
		require.NoError(t, err)

		products, err := productStore.List(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("Served through the stock api client", func(t *testing.T) {
		// setup
		_, router, _, _ := setup(t)
		ts := httptest.NewServer(router)
		defer ts.Close()

		client := stockapi.NewHTTPClient(ts.URL+"/api/catalog", myhttpclient.New())

		// when
		stock, found, err := client.GetStock(context.TODO(), 3)

		// then
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, stockapi.Stock{ID: 3, Amount: 2}, stock)

		_, found, err = client.GetProduct(context.TODO(), 42)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func setup(t *testing.T) (context.Context, *mux.Router, mystore.Store[stockapi.Stock], mystore.Store[stockapi.Product]) {
	c := context.TODO()
	stockStore, _, _ := mystore.NewInMemoryStore[stockapi.Stock](c)
	productStore, _, _ := mystore.NewInMemoryStore[stockapi.Product](c)

	sut := NewService(stockStore, productStore)
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(c, router)
	require.NoError(t, err)

	return c, router, stockStore, productStore
}
