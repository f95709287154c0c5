package mycontext

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceContext(t *testing.T) {
	t.Run("Trace from cloud header", func(t *testing.T) {
		t.Setenv("GOOGLE_CLOUD_PROJECT", "myproject")

		request, err := http.NewRequest(http.MethodGet, "/api/cart", nil)
		assert.NoError(t, err)
		request.Header.Set("X-Cloud-Trace-Context", "105445aa7843bc8bf206b12000100000/1;o=1")

		c := ContextFromHTTPRequest(request)
		assert.Equal(t, "projects/myproject/traces/105445aa7843bc8bf206b12000100000", TraceFromContext(c))
	})

	t.Run("No trace header", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodGet, "/api/cart", nil)
		assert.NoError(t, err)

		c := ContextFromHTTPRequest(request)
		assert.Equal(t, "", TraceFromContext(c))
	})

	t.Run("Background context", func(t *testing.T) {
		assert.Equal(t, "", TraceFromContext(context.Background()))
	})
}
