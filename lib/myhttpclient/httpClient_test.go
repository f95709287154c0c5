package myhttpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONHTTPClient(t *testing.T) {
	t.Run("Send request", func(t *testing.T) {
		mux := http.NewServeMux()
		ts := httptest.NewServer(mux)
		defer ts.Close()

		mux.HandleFunc("/stock/1", func(w http.ResponseWriter, r *http.Request) {
			// request validation logic
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Empty(t, body)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(200)
			w.Write([]byte(`{"id":1,"amount":3}`))
		})

		status, payload, err := New().Send(context.TODO(), http.MethodGet, ts.URL+"/stock/1", nil)
		assert.NoError(t, err)
		assert.Equal(t, 200, status)
		assert.JSONEq(t, `{"id":1,"amount":3}`, string(payload))
	})

	t.Run("Server unreachable", func(t *testing.T) {
		ts := httptest.NewServer(http.NewServeMux())
		url := ts.URL
		ts.Close()

		_, _, err := New().Send(context.TODO(), http.MethodGet, url+"/stock/1", nil)
		assert.Error(t, err)
	})
}
