package cartevents

import "time"

const (
	TopicName                     = "cart"
	productAddedEventName         = TopicName + ".product.added"
	productRemovedEventName       = TopicName + ".product.removed"
	productAmountChangedEventName = TopicName + ".product.amount.changed"
)

type ProductAdded struct {
	ChangeUID string
	CartKey   string
	ProductID int
	Amount    int
	CartSize  int
	ChangedAt time.Time
}

func (e ProductAdded) GetEventTypeName() string {
	return productAddedEventName
}

func (e ProductAdded) GetAggregateName() string {
	return e.CartKey
}

type ProductRemoved struct {
	ChangeUID string
	CartKey   string
	ProductID int
	CartSize  int
	ChangedAt time.Time
}

func (e ProductRemoved) GetEventTypeName() string {
	return productRemovedEventName
}

func (e ProductRemoved) GetAggregateName() string {
	return e.CartKey
}

type ProductAmountChanged struct {
	ChangeUID string
	CartKey   string
	ProductID int
	Amount    int
	CartSize  int
	ChangedAt time.Time
}

func (e ProductAmountChanged) GetEventTypeName() string {
	return productAmountChangedEventName
}

func (e ProductAmountChanged) GetAggregateName() string {
	return e.CartKey
}
