package cart

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcart/lib/mycontext"
	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/myhttp"
	"github.com/MarcGrol/shopcart/lib/mylog"
)

type CartResponse struct {
	Products   Cart    `json:"products"`
	Size       int     `json:"size"`
	TotalPrice float64 `json:"totalPrice"`
}

type AmountUpdate struct {
	Amount int `form:"amount"`
}

type webService struct {
	logger  mylog.Logger
	manager *Manager
}

func NewWebService(manager *Manager) *webService {
	return &webService{
		logger:  mylog.New("cart"),
		manager: manager,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/api/cart/products/{productID}", s.addProductPage()).Methods("POST")
	router.HandleFunc("/api/cart/products/{productID}", s.removeProductPage()).Methods("DELETE")
	router.HandleFunc("/api/cart/products/{productID}/amount", s.updateAmountPage()).Methods("PUT")
}

func (s *webService) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cart, err := s.manager.Cart(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s *webService) addProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID, err := parseProductID(r)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		cart, err := s.manager.AddProduct(c, productID)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s *webService) removeProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID, err := parseProductID(r)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		cart, err := s.manager.RemoveProduct(c, productID)
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s *webService) updateAmountPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID, err := parseProductID(r)
		if err != nil {
			errorWriter.WriteError(c, w, 6, err)
			return
		}

		update, err := newAmountUpdateFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 7, err)
			return
		}

		cart, err := s.manager.UpdateProductAmount(c, productID, update.Amount)
		if err != nil {
			errorWriter.WriteError(c, w, 8, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func newCartResponse(cart Cart) CartResponse {
	return CartResponse{
		Products:   cart,
		Size:       cart.Size(),
		TotalPrice: cart.TotalPrice(),
	}
}

func parseProductID(r *http.Request) (int, error) {
	productID, err := strconv.Atoi(mux.Vars(r)["productID"])
	if err != nil {
		return 0, myerrors.NewInvalidInputErrorf("invalid product id %q", mux.Vars(r)["productID"])
	}
	return productID, nil
}

func newAmountUpdateFromRequest(r *http.Request) (AmountUpdate, error) {
	err := r.ParseForm()
	if err != nil {
		return AmountUpdate{}, myerrors.NewInvalidInputError(err)
	}
	return newAmountUpdateFromValues(r.Form)
}

func newAmountUpdateFromValues(values url.Values) (AmountUpdate, error) {
	update := AmountUpdate{}
	err := formcodec.NewDecoder().Decode(&update, values)
	if err != nil {
		return update, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %w", err))
	}
	return update, nil
}
