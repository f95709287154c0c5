package catalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mystore"
	"github.com/MarcGrol/shopcart/services/stockapi"
)

type service struct {
	stockStore   mystore.Store[stockapi.Stock]
	productStore mystore.Store[stockapi.Product]
	logger       mylog.Logger
}

func newService(stockStore mystore.Store[stockapi.Stock], productStore mystore.Store[stockapi.Product], logger mylog.Logger) *service {
	return &service{
		stockStore:   stockStore,
		productStore: productStore,
		logger:       logger,
	}
}

func (s *service) getStock(c context.Context, productID int) (stockapi.Stock, error) {
	stock, found, err := s.stockStore.Get(c, strconv.Itoa(productID))
	if err != nil {
		return stockapi.Stock{}, myerrors.NewInternalError(err)
	}
	if !found {
		return stockapi.Stock{}, myerrors.NewNotFoundError(fmt.Errorf("stock of product %d not found", productID))
	}
	return stock, nil
}

func (s *service) getProduct(c context.Context, productID int) (stockapi.Product, error) {
	product, found, err := s.productStore.Get(c, strconv.Itoa(productID))
	if err != nil {
		return stockapi.Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return stockapi.Product{}, myerrors.NewNotFoundError(fmt.Errorf("product %d not found", productID))
	}
	return product, nil
}

func (s *service) listProducts(c context.Context) ([]stockapi.Product, error) {
	products, err := s.productStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
	return products, nil
}

// seed only fills an empty catalog
func (s *service) seed(c context.Context) error {
	existing, err := s.productStore.List(c)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Seeding catalog with %d products", len(seedProducts))

	for _, p := range seedProducts {
		uid := strconv.Itoa(p.product.ID)
		err = s.productStore.Put(c, uid, p.product)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		err = s.stockStore.Put(c, uid, stockapi.Stock{ID: p.product.ID, Amount: p.amount})
		if err != nil {
			return myerrors.NewInternalError(err)
		}
	}
	return nil
}
