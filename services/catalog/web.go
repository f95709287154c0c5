package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcart/lib/mycontext"
	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/myhttp"
	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mystore"
	"github.com/MarcGrol/shopcart/services/stockapi"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(stockStore mystore.Store[stockapi.Stock], productStore mystore.Store[stockapi.Product]) *webService {
	logger := mylog.New("catalog")
	return &webService{
		logger:  logger,
		service: newService(stockStore, productStore, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.seed(c)
	if err != nil {
		return fmt.Errorf("error seeding catalog: %w", err)
	}

	// Same resources as the json-server the storefront was developed against
	router.HandleFunc("/api/catalog/products", s.listProductsPage()).Methods("GET")
	router.HandleFunc("/api/catalog/products/{productID}", s.productPage()).Methods("GET")
	router.HandleFunc("/api/catalog/stock/{productID}", s.stockPage()).Methods("GET")

	return nil
}

func (s *webService) listProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		products, err := s.service.listProducts(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, products)
	}
}

func (s *webService) productPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID, err := parseProductID(r)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		product, err := s.service.getProduct(c, productID)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *webService) stockPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID, err := parseProductID(r)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		stock, err := s.service.getStock(c, productID)
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, stock)
	}
}

func parseProductID(r *http.Request) (int, error) {
	productID, err := strconv.Atoi(mux.Vars(r)["productID"])
	if err != nil {
		return 0, myerrors.NewInvalidInputErrorf("invalid product id %q", mux.Vars(r)["productID"])
	}
	return productID, nil
}
