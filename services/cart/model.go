package cart

import (
	"context"
	"time"
)

// Product is a catalog product together with the quantity held in the cart
type Product struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Amount int     `json:"amount"`
}

func (p Product) Subtotal() float64 {
	return p.Price * float64(p.Amount)
}

// Cart is an ordered snapshot of products, unique by id
type Cart []Product

func (c Cart) Find(productID int) (Product, bool) {
	for _, p := range c {
		if p.ID == productID {
			return p, true
		}
	}
	return Product{}, false
}

// Size is the number of distinct products
func (c Cart) Size() int {
	return len(c)
}

func (c Cart) TotalPrice() float64 {
	var total float64
	for _, p := range c {
		total += p.Subtotal()
	}
	return total
}

// clone never returns nil so an empty cart serializes as []
func (c Cart) clone() Cart {
	cloned := make(Cart, len(c))
	copy(cloned, c)
	return cloned
}

func (c Cart) withAmount(productID int, amount int) Cart {
	updated := make(Cart, 0, len(c))
	for _, p := range c {
		if p.ID == productID {
			p.Amount = amount
		}
		updated = append(updated, p)
	}
	return updated
}

func (c Cart) without(productID int) Cart {
	updated := make(Cart, 0, len(c))
	for _, p := range c {
		if p.ID != productID {
			updated = append(updated, p)
		}
	}
	return updated
}

type Operation string

const (
	OperationProductAdded         Operation = "product.added"
	OperationProductRemoved       Operation = "product.removed"
	OperationProductAmountChanged Operation = "product.amount.changed"
)

// Change describes one committed mutation
type Change struct {
	CartKey   string
	Operation Operation
	ProductID int
	Amount    int
	Cart      Cart
	ChangedAt time.Time
}

// Observer receives every committed snapshot, in commit order.
// OnCartChanged runs while the mutation still holds the cart: it must not mutate the cart itself.
type Observer interface {
	OnCartChanged(c context.Context, change Change)
}

type ObserverFunc func(c context.Context, change Change)

func (f ObserverFunc) OnCartChanged(c context.Context, change Change) {
	f(c, change)
}
