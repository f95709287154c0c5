package stockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/myhttpclient"
)

type httpClient struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

func NewHTTPClient(baseURL string, sender myhttpclient.HTTPSender) StockAPI {
	return &httpClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		sender:  sender,
	}
}

func (c *httpClient) GetStock(ctx context.Context, productID int) (Stock, bool, error) {
	stock := &Stock{}
	found, err := c.get(ctx, fmt.Sprintf("%s/stock/%d", c.baseURL, productID), &stock)
	if err != nil || !found || stock == nil {
		return Stock{}, false, err
	}
	return *stock, true, nil
}

func (c *httpClient) GetProduct(ctx context.Context, productID int) (Product, bool, error) {
	product := &Product{}
	found, err := c.get(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, productID), &product)
	if err != nil || !found || product == nil {
		return Product{}, false, err
	}
	return *product, true, nil
}

// get decodes into a pointer-to-pointer so that a json null body is reported as absent
func (c *httpClient) get(ctx context.Context, url string, result any) (bool, error) {
	httpStatus, respBody, err := c.sender.Send(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, myerrors.NewBadGatewayError(err)
	}

	switch httpStatus {
	case http.StatusOK:
		err = json.Unmarshal(respBody, result)
		if err != nil {
			return false, myerrors.NewBadGatewayError(fmt.Errorf("error parsing response of %s: %w", url, err))
		}
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, myerrors.NewBadGatewayError(fmt.Errorf("unexpected http-status %d from %s", httpStatus, url))
	}
}
