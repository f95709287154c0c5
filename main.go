package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcart/lib/myconfig"
	"github.com/MarcGrol/shopcart/lib/myhttpclient"
	"github.com/MarcGrol/shopcart/lib/mykv"
	"github.com/MarcGrol/shopcart/lib/mypublisher"
	"github.com/MarcGrol/shopcart/lib/mypubsub"
	"github.com/MarcGrol/shopcart/lib/myqueue"
	"github.com/MarcGrol/shopcart/lib/mystore"
	"github.com/MarcGrol/shopcart/lib/mytime"
	"github.com/MarcGrol/shopcart/lib/myuuid"
	"github.com/MarcGrol/shopcart/services/cart"
	"github.com/MarcGrol/shopcart/services/catalog"
	"github.com/MarcGrol/shopcart/services/stockapi"
	"github.com/MarcGrol/shopcart/services/warmup"
)

func main() {
	c := context.Background()
	config := myconfig.Load()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	stockStore, stockStoreCleanup, err := mystore.New[stockapi.Stock](c)
	if err != nil {
		log.Fatalf("Error creating stock store: %s", err)
	}
	defer stockStoreCleanup()

	productStore, productStoreCleanup, err := mystore.New[stockapi.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	defer productStoreCleanup()

	err = catalog.NewService(stockStore, productStore).RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog: %s", err)
	}

	kv, kvCleanup, err := mykv.New(c, config.RedisAddr)
	if err != nil {
		log.Fatalf("Error creating cart store: %s", err)
	}
	defer kvCleanup()

	stockAPI := stockapi.NewHTTPClient(config.StockAPIURL, myhttpclient.New())

	cartManager := cart.NewManager(config.CartKey, stockAPI, kv, nower)
	eventPublisher, err := cart.NewEventPublisher(c, publisher, uuider)
	if err != nil {
		log.Fatalf("Error creating cart event publisher: %s", err)
	}
	cartManager.Subscribe(eventPublisher)

	cart.NewWebService(cartManager).RegisterEndpoints(c, router)
	warmup.NewService(cartManager).RegisterEndpoints(c, router)

	startWebServerBlocking(router, config.Port)
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
