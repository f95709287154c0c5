package cart

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/mylog"
)

// AddProduct puts one more unit of the product in the cart
func (m *Manager) AddProduct(c context.Context, productID int) (Cart, error) {
	m.mutationLock.Lock()
	defer m.mutationLock.Unlock()

	err := m.ensureLoaded(c)
	if err != nil {
		return nil, m.failed(c, AddFailed, productID, err)
	}

	current := m.snapshot()
	existing, found := current.Find(productID)
	requested := existing.Amount + 1

	err = m.verifyStock(c, productID, requested, AddFailed)
	if err != nil {
		return nil, err
	}

	var updated Cart
	if found {
		updated = current.withAmount(productID, requested)
	} else {
		meta, metaFound, err := m.stockAPI.GetProduct(c, productID)
		if err != nil {
			return nil, m.failed(c, AddFailed, productID, err)
		}
		if !metaFound {
			return nil, m.failed(c, AddFailed, productID,
				myerrors.NewNotFoundError(fmt.Errorf("product %d not found in catalog", productID)))
		}
		updated = append(current, Product{
			ID:     meta.ID,
			Title:  meta.Title,
			Price:  meta.Price,
			Image:  meta.Image,
			Amount: 1,
		})
	}

	err = m.commit(c, Change{
		CartKey:   m.cartKey,
		Operation: OperationProductAdded,
		ProductID: productID,
		Amount:    requested,
		Cart:      updated,
		ChangedAt: m.nower.Now(),
	})
	if err != nil {
		return nil, m.failed(c, AddFailed, productID, err)
	}

	m.logger.Log(c, m.cartKey, mylog.SeverityInfo, "Added product %d (amount %d)", productID, requested)

	return updated.clone(), nil
}

// RemoveProduct drops the product from the cart regardless of its amount
func (m *Manager) RemoveProduct(c context.Context, productID int) (Cart, error) {
	m.mutationLock.Lock()
	defer m.mutationLock.Unlock()

	err := m.ensureLoaded(c)
	if err != nil {
		return nil, m.failed(c, RemoveFailed, productID, err)
	}

	current := m.snapshot()
	_, found := current.Find(productID)
	if !found {
		return nil, m.failed(c, RemoveFailed, productID,
			myerrors.NewNotFoundError(fmt.Errorf("product %d not in cart", productID)))
	}

	updated := current.without(productID)

	err = m.commit(c, Change{
		CartKey:   m.cartKey,
		Operation: OperationProductRemoved,
		ProductID: productID,
		Cart:      updated,
		ChangedAt: m.nower.Now(),
	})
	if err != nil {
		return nil, m.failed(c, RemoveFailed, productID, err)
	}

	m.logger.Log(c, m.cartKey, mylog.SeverityInfo, "Removed product %d", productID)

	return updated.clone(), nil
}

// UpdateProductAmount sets the amount of a product. Amounts below one are ignored.
func (m *Manager) UpdateProductAmount(c context.Context, productID int, amount int) (Cart, error) {
	if amount <= 0 {
		cart, err := m.Cart(c)
		if err != nil {
			return nil, m.failed(c, UpdateAmountFailed, productID, err)
		}
		return cart, nil
	}

	m.mutationLock.Lock()
	defer m.mutationLock.Unlock()

	err := m.ensureLoaded(c)
	if err != nil {
		return nil, m.failed(c, UpdateAmountFailed, productID, err)
	}

	err = m.verifyStock(c, productID, amount, UpdateAmountFailed)
	if err != nil {
		return nil, err
	}

	// an id that is not in the cart leaves the snapshot as is
	updated := m.snapshot().withAmount(productID, amount)

	err = m.commit(c, Change{
		CartKey:   m.cartKey,
		Operation: OperationProductAmountChanged,
		ProductID: productID,
		Amount:    amount,
		Cart:      updated,
		ChangedAt: m.nower.Now(),
	})
	if err != nil {
		return nil, m.failed(c, UpdateAmountFailed, productID, err)
	}

	m.logger.Log(c, m.cartKey, mylog.SeverityInfo, "Changed amount of product %d to %d", productID, amount)

	return updated.clone(), nil
}

func (m *Manager) verifyStock(c context.Context, productID int, requested int, kind FailureKind) error {
	stock, found, err := m.stockAPI.GetStock(c, productID)
	if err != nil {
		return m.failed(c, kind, productID, err)
	}
	if !found || stock.Amount < requested {
		m.logger.Log(c, m.cartKey, mylog.SeverityWarn, "Product %d out of stock: requested %d, available %d",
			productID, requested, stock.Amount)
		return newFailure(OutOfStock, productID, nil)
	}
	return nil
}

func (m *Manager) failed(c context.Context, kind FailureKind, productID int, err error) *Failure {
	m.logger.Log(c, m.cartKey, mylog.SeverityError, "Error processing product %d (%s): %s", productID, kind, err)
	return newFailure(kind, productID, err)
}
