package mypublisher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcart/lib/myevents"
	"github.com/MarcGrol/shopcart/lib/mypubsub"
	"github.com/MarcGrol/shopcart/lib/myqueue"
	"github.com/MarcGrol/shopcart/lib/mystore"
	"github.com/MarcGrol/shopcart/lib/mytime"
)

type productAdded struct {
	CartKey   string
	ProductID int
}

func (e productAdded) GetEventTypeName() string {
	return "cart.product.added"
}

func (e productAdded) GetAggregateName() string {
	return e.CartKey
}

func TestTransactionalPublisher(t *testing.T) {

	t.Run("Publish stores envelope and enqueues trigger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, outbox, _, queue, nower, sut := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(c context.Context, task myqueue.Task) error {
			assert.Equal(t, "/pubsub/cart/"+task.UID, task.WebhookURLPath)
			return nil
		})

		// when
		err := sut.Publish(ctx, "cart", productAdded{CartKey: "@RocketShoes:cart", ProductID: 3})

		// then
		require.NoError(t, err)
		envelopes, err := outbox.List(ctx)
		require.NoError(t, err)
		require.Len(t, envelopes, 1)
		assert.Equal(t, "cart", envelopes[0].Topic)
		assert.Equal(t, "@RocketShoes:cart", envelopes[0].AggregateUID)
		assert.Equal(t, "cart.product.added", envelopes[0].EventTypeName)
		assert.JSONEq(t, `{"CartKey":"@RocketShoes:cart","ProductID":3}`, envelopes[0].EventPayload)
		assert.Equal(t, mytime.ExampleTime, envelopes[0].CreatedAt)
		assert.False(t, envelopes[0].Published)
	})

	t.Run("Same event gets same uid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		nower := mytime.NewMockNower(ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime).Times(2)
		e := newEnveloper(nower)

		first, err := e.do("cart", productAdded{CartKey: "@RocketShoes:cart", ProductID: 3})
		require.NoError(t, err)
		second, err := e.do("cart", productAdded{CartKey: "@RocketShoes:cart", ProductID: 3})
		require.NoError(t, err)

		assert.Equal(t, first.UID, second.UID)
	})

	t.Run("Trigger forwards pending envelopes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, outbox, pubsub, _, _, sut := setup(t, ctrl)
		router := mux.NewRouter()
		sut.RegisterEndpoints(ctx, router)

		// given
		outbox.Put(ctx, "1", myevents.EventEnvelope{UID: "1", Topic: "cart", EventTypeName: "cart.product.added", Published: false})
		outbox.Put(ctx, "2", myevents.EventEnvelope{UID: "2", Topic: "cart", EventTypeName: "cart.product.removed", Published: true})
		pubsub.EXPECT().Publish(gomock.Any(), "cart", gomock.Any()).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPut, "/pubsub/cart/1", nil)
		require.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		envelope, found, err := outbox.Get(ctx, "1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, envelope.Published)
	})

	t.Run("Create topic is delegated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, _, pubsub, _, _, sut := setup(t, ctrl)
		pubsub.EXPECT().CreateTopic(ctx, "cart").Return(nil)

		assert.NoError(t, sut.CreateTopic(ctx, "cart"))
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, mystore.Store[myevents.EventEnvelope], *mypubsub.MockPubSub, *myqueue.MockTaskQueuer, *mytime.MockNower, *transactionalPublisher) {
	c := context.TODO()
	outbox, _, err := mystore.NewInMemoryStore[myevents.EventEnvelope](c)
	require.NoError(t, err)
	pubsub := mypubsub.NewMockPubSub(ctrl)
	queue := myqueue.NewMockTaskQueuer(ctrl)
	nower := mytime.NewMockNower(ctrl)

	return c, outbox, pubsub, queue, nower, newTransactionalPublisher(outbox, pubsub, queue, nower)
}
