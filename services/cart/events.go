package cart

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopcart/lib/myevents"
	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mypublisher"
	"github.com/MarcGrol/shopcart/lib/myuuid"
	"github.com/MarcGrol/shopcart/services/cart/cartevents"
)

type eventPublisher struct {
	publisher mypublisher.Publisher
	uuider    myuuid.UUIDer
	logger    mylog.Logger
}

// NewEventPublisher returns an observer that announces every committed change on the cart topic
func NewEventPublisher(c context.Context, publisher mypublisher.Publisher, uuider myuuid.UUIDer) (Observer, error) {
	err := publisher.CreateTopic(c, cartevents.TopicName)
	if err != nil {
		return nil, fmt.Errorf("error creating topic %s: %w", cartevents.TopicName, err)
	}

	return &eventPublisher{
		publisher: publisher,
		uuider:    uuider,
		logger:    mylog.New("cart"),
	}, nil
}

func (p *eventPublisher) OnCartChanged(c context.Context, change Change) {
	event, err := p.toEvent(change)
	if err != nil {
		p.logger.Log(c, change.CartKey, mylog.SeverityError, "Error converting change: %s", err)
		return
	}

	// the snapshot is already committed: a lost event is logged, not rolled back
	err = p.publisher.Publish(c, cartevents.TopicName, event)
	if err != nil {
		p.logger.Log(c, change.CartKey, mylog.SeverityError, "Error publishing %s: %s", event.GetEventTypeName(), err)
		return
	}
}

func (p *eventPublisher) toEvent(change Change) (myevents.Event, error) {
	switch change.Operation {
	case OperationProductAdded:
		return cartevents.ProductAdded{
			ChangeUID: p.uuider.Create(),
			CartKey:   change.CartKey,
			ProductID: change.ProductID,
			Amount:    change.Amount,
			CartSize:  change.Cart.Size(),
			ChangedAt: change.ChangedAt,
		}, nil
	case OperationProductRemoved:
		return cartevents.ProductRemoved{
			ChangeUID: p.uuider.Create(),
			CartKey:   change.CartKey,
			ProductID: change.ProductID,
			CartSize:  change.Cart.Size(),
			ChangedAt: change.ChangedAt,
		}, nil
	case OperationProductAmountChanged:
		return cartevents.ProductAmountChanged{
			ChangeUID: p.uuider.Create(),
			CartKey:   change.CartKey,
			ProductID: change.ProductID,
			Amount:    change.Amount,
			CartSize:  change.Cart.Size(),
			ChangedAt: change.ChangedAt,
		}, nil
	default:
		return nil, fmt.Errorf("unrecognized operation %q", change.Operation)
	}
}
