package cart

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MarcGrol/shopcart/lib/myerrors"
)

type FailureKind int

const (
	OutOfStock FailureKind = iota + 1
	AddFailed
	RemoveFailed
	UpdateAmountFailed
)

var userMessages = map[FailureKind]string{
	OutOfStock:         "Requested quantity is out of stock",
	AddFailed:          "Error adding product",
	RemoveFailed:       "Error removing product",
	UpdateAmountFailed: "Error changing product quantity",
}

func (k FailureKind) String() string {
	switch k {
	case OutOfStock:
		return "out-of-stock"
	case AddFailed:
		return "add-failed"
	case RemoveFailed:
		return "remove-failed"
	case UpdateAmountFailed:
		return "update-amount-failed"
	default:
		return fmt.Sprintf("failure-%d", int(k))
	}
}

// Failure is the outcome of a rejected mutation; the cart is unchanged when one is returned
type Failure struct {
	Kind      FailureKind
	ProductID int
	Err       error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s for product %d", f.Kind, f.ProductID)
	}
	return fmt.Sprintf("%s for product %d: %s", f.Kind, f.ProductID, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// UserMessage is the notification to show to the shopper
func (f *Failure) UserMessage() string {
	return userMessages[f.Kind]
}

func (f *Failure) GetHTTPErrorCode() int {
	if f.Kind == OutOfStock {
		return http.StatusConflict
	}
	if f.Err == nil {
		return http.StatusInternalServerError
	}
	return myerrors.GetHTTPStatus(f.Err)
}

// KindOf reports the failure kind carried by err, if any
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}

func newFailure(kind FailureKind, productID int, err error) *Failure {
	return &Failure{
		Kind:      kind,
		ProductID: productID,
		Err:       err,
	}
}
