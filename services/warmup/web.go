package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcart/lib/mycontext"
	"github.com/MarcGrol/shopcart/lib/myhttp"
	"github.com/MarcGrol/shopcart/lib/mylog"
)

// Initializer loads state that would otherwise be loaded on the first real request
type Initializer interface {
	Initialize(c context.Context) error
}

type webService struct {
	logger       mylog.Logger
	initializers []Initializer
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(initializers ...Initializer) *webService {
	return &webService{
		logger:       mylog.New("warmup"),
		initializers: initializers,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		for _, i := range s.initializers {
			err := i.Initialize(c)
			if err != nil {
				errorWriter.WriteError(c, w, 1, err)
				return
			}
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
