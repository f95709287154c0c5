package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/mykv"
	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mytime"
	"github.com/MarcGrol/shopcart/services/stockapi"
)

// Manager owns one shopping cart: it validates every change against the stock service and keeps
// the in-memory cart and its persisted snapshot in step.
type Manager struct {
	cartKey  string
	stockAPI stockapi.StockAPI
	kv       mykv.Store
	nower    mytime.Nower
	logger   mylog.Logger

	// held from stock query through commit
	mutationLock sync.Mutex

	stateLock sync.RWMutex
	loaded    bool
	cart      Cart
	observers []Observer

	loader singleflight.Group
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewManager(cartKey string, stockAPI stockapi.StockAPI, kv mykv.Store, nower mytime.Nower) *Manager {
	return &Manager{
		cartKey:  cartKey,
		stockAPI: stockAPI,
		kv:       kv,
		nower:    nower,
		logger:   mylog.New("cart"),
	}
}

func (m *Manager) Subscribe(observer Observer) {
	m.stateLock.Lock()
	defer m.stateLock.Unlock()

	m.observers = append(m.observers, observer)
}

// Initialize loads the persisted snapshot when that has not happened yet
func (m *Manager) Initialize(c context.Context) error {
	return m.ensureLoaded(c)
}

// Cart returns a copy of the current cart
func (m *Manager) Cart(c context.Context) (Cart, error) {
	err := m.ensureLoaded(c)
	if err != nil {
		return nil, err
	}
	return m.snapshot(), nil
}

func (m *Manager) snapshot() Cart {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	return m.cart.clone()
}

func (m *Manager) isLoaded() bool {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	return m.loaded
}

func (m *Manager) ensureLoaded(c context.Context) error {
	if m.isLoaded() {
		return nil
	}

	// concurrent first accesses share a single read of the store
	_, err, _ := m.loader.Do(m.cartKey, func() (any, error) {
		if m.isLoaded() {
			return nil, nil
		}

		cart, err := m.load(c)
		if err != nil {
			return nil, err
		}

		m.stateLock.Lock()
		defer m.stateLock.Unlock()

		m.cart = cart
		m.loaded = true

		return nil, nil
	})
	return err
}

func (m *Manager) load(c context.Context) (Cart, error) {
	value, found, err := m.kv.Get(c, m.cartKey)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error reading cart snapshot %s: %w", m.cartKey, err))
	}
	if !found || value == "" {
		m.logger.Log(c, m.cartKey, mylog.SeverityInfo, "No cart snapshot found: start with empty cart")
		return Cart{}, nil
	}

	cart := Cart{}
	err = json.Unmarshal([]byte(value), &cart)
	if err != nil {
		m.logger.Log(c, m.cartKey, mylog.SeverityError, "Corrupt cart snapshot: %s", err)
		return nil, myerrors.NewInvalidInputError(fmt.Errorf("error parsing cart snapshot %s: %w", m.cartKey, err))
	}
	if cart == nil {
		// "null" was persisted
		cart = Cart{}
	}

	m.logger.Log(c, m.cartKey, mylog.SeverityInfo, "Loaded cart snapshot with %d products", cart.Size())

	return cart, nil
}

// commit persists first so that a failed write leaves both copies on the previous snapshot
func (m *Manager) commit(c context.Context, change Change) error {
	data, err := json.Marshal(change.Cart)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error serializing cart: %w", err))
	}

	err = m.kv.Put(c, m.cartKey, string(data))
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error persisting cart snapshot %s: %w", m.cartKey, err))
	}

	m.stateLock.Lock()
	m.cart = change.Cart
	observers := make([]Observer, len(m.observers))
	copy(observers, m.observers)
	m.stateLock.Unlock()

	for _, o := range observers {
		delivered := change
		delivered.Cart = change.Cart.clone()
		o.OnCartChanged(c, delivered)
	}

	return nil
}
